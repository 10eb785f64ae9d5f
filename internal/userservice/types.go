package userservice

import (
	"context"
	"database/sql"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore persists users. It is implemented for the same backends as the
// blog store so that user references point into the database holding the blogs.
type UserStore interface {
	Insert(ctx context.Context, u *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	AppendBlog(ctx context.Context, userID, blogID primitive.ObjectID) error
	AppendNote(ctx context.Context, userID, noteID primitive.ObjectID) error
}

type UserService struct {
	store UserStore
}

type PostgresUserModel struct {
	db *sql.DB
}

type MongoUserModel struct {
	coll *mongo.Collection
}

// User references notes and blogs by id only. Removing a blog leaves its id
// in Blogs.
type User struct {
	ID       primitive.ObjectID   `json:"id"`
	Username string               `json:"username"`
	Name     string               `json:"name"`
	Password Password             `json:"-"`
	Notes    []primitive.ObjectID `json:"notes"`
	Blogs    []primitive.ObjectID `json:"blogs"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}
