package userservice

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sushihentaime/bloglist/internal/common"
)

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// CreateUser stores a new user with a bcrypt hash of password.
func (s *UserService) CreateUser(ctx context.Context, username, name, password string) (*User, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	validateName(v, name)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		Username: username,
		Name:     name,
	}

	err := u.Password.set(password)
	if err != nil {
		return nil, err
	}

	err = s.store.Insert(ctx, &u)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.store.GetByUsername(ctx, username)
}

// AddBlog appends a blog reference to the user's blog list. The blog itself
// is not looked up.
func (s *UserService) AddBlog(ctx context.Context, userID, blogID primitive.ObjectID) error {
	return s.store.AppendBlog(ctx, userID, blogID)
}

// AddNote appends a note reference to the user's note list.
func (s *UserService) AddNote(ctx context.Context, userID, noteID primitive.ObjectID) error {
	return s.store.AppendNote(ctx, userID, noteID)
}

// Authenticate returns the user when password matches the stored hash.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrInvalidCredentials
		default:
			return nil, err
		}
	}

	ok, err := u.Password.Matches(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
