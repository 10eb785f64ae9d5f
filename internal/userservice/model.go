package userservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrNotFound          = errors.New("user not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

func NewPostgresUserModel(db *sql.DB) *PostgresUserModel {
	return &PostgresUserModel{db: db}
}

// UniqueViolation reports whether err is a unique constraint failure on the named constraint.
func UniqueViolation(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23505" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

func (m *PostgresUserModel) Insert(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (id, username, name, password_hash)
		VALUES ($1, $2, $3, $4)`

	id := primitive.NewObjectID()

	args := []any{
		id.Hex(),
		u.Username,
		u.Name,
		u.Password.hash,
	}

	_, err := m.db.ExecContext(ctx, query, args...)
	if err != nil {
		switch {
		case UniqueViolation(err, "users_username_key"):
			return ErrDuplicateUsername
		default:
			return err
		}
	}

	u.ID = id
	u.Notes = []primitive.ObjectID{}
	u.Blogs = []primitive.ObjectID{}

	return nil
}

func (m *PostgresUserModel) GetByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, username, name, password_hash, notes, blogs
		FROM users
		WHERE username = $1`

	var (
		u            User
		id           string
		notes, blogs []string
	)

	err := m.db.QueryRowContext(ctx, query, username).Scan(&id, &u.Username, &u.Name, &u.Password.hash, pq.Array(&notes), pq.Array(&blogs))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	if u.ID, err = primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("stored user id %q: %w", id, err)
	}
	if u.Notes, err = toObjectIDs(notes); err != nil {
		return nil, err
	}
	if u.Blogs, err = toObjectIDs(blogs); err != nil {
		return nil, err
	}

	return &u, nil
}

func toObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, fmt.Errorf("stored reference %q: %w", h, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (m *PostgresUserModel) AppendBlog(ctx context.Context, userID, blogID primitive.ObjectID) error {
	query := `
		UPDATE users
		SET blogs = array_append(blogs, $1)
		WHERE id = $2`

	return m.execOne(ctx, query, blogID.Hex(), userID.Hex())
}

func (m *PostgresUserModel) AppendNote(ctx context.Context, userID, noteID primitive.ObjectID) error {
	query := `
		UPDATE users
		SET notes = array_append(notes, $1)
		WHERE id = $2`

	return m.execOne(ctx, query, noteID.Hex(), userID.Hex())
}

func (m *PostgresUserModel) execOne(ctx context.Context, query string, args ...any) error {
	res, err := m.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows != 1 {
		switch {
		case rows == 0:
			return ErrNotFound
		default:
			return errors.New("too many rows affected")
		}
	}

	return nil
}
