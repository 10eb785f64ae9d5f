package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sushihentaime/bloglist/internal/common"
)

// likesError reports a likes value the blogs table refused in the same form
// the service validation uses.
func likesError(likes int) error {
	v := common.NewValidator()
	validateLikes(v, likes)
	return v.ValidationError()
}

func NewPostgresBlogModel(db *sql.DB) *PostgresBlogModel {
	return &PostgresBlogModel{db: db}
}

// CheckViolation reports whether err is a check constraint failure on the named constraint.
func CheckViolation(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23514" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

// OutOfRange reports whether err is a numeric value out of range failure.
func OutOfRange(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "22003"
	}

	return false
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlog(row rowScanner) (*Blog, error) {
	var (
		blog Blog
		id   string
	)

	err := row.Scan(&id, &blog.Title, &blog.Author, &blog.URL, &blog.Likes)
	if err != nil {
		return nil, err
	}

	blog.ID, err = primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("stored blog id %q: %w", id, err)
	}

	return &blog, nil
}

func (m *PostgresBlogModel) List(ctx context.Context) ([]Blog, error) {
	query := `
		SELECT id, title, author, url, likes
		FROM blogs
		ORDER BY created_at, id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}

		blogs = append(blogs, *blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (m *PostgresBlogModel) Insert(ctx context.Context, blog *Blog) error {
	query := `
		INSERT INTO blogs (id, title, author, url, likes)
		VALUES ($1, $2, $3, $4, $5)`

	id := primitive.NewObjectID()

	_, err := m.db.ExecContext(ctx, query, id.Hex(), blog.Title, blog.Author, blog.URL, blog.Likes)
	if err != nil {
		switch {
		case CheckViolation(err, "blogs_likes_check"), OutOfRange(err):
			return likesError(blog.Likes)
		default:
			return err
		}
	}

	blog.ID = id

	return nil
}

func (m *PostgresBlogModel) Delete(ctx context.Context, id primitive.ObjectID) error {
	query := `
		DELETE FROM blogs
		WHERE id = $1`

	res, err := m.db.ExecContext(ctx, query, id.Hex())
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
			return ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}

func (m *PostgresBlogModel) UpdateLikes(ctx context.Context, id primitive.ObjectID, likes int) (*Blog, error) {
	query := `
		UPDATE blogs
		SET likes = $1
		WHERE id = $2
		RETURNING id, title, author, url, likes`

	blog, err := scanBlog(m.db.QueryRowContext(ctx, query, likes, id.Hex()))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		case CheckViolation(err, "blogs_likes_check"), OutOfRange(err):
			return nil, likesError(likes)
		default:
			return nil, err
		}
	}

	return blog, nil
}
