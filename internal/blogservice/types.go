package blogservice

import (
	"context"
	"database/sql"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Blog is the stored form of a blog entry. ID is assigned by the store on
// insert and never changes afterwards.
type Blog struct {
	ID     primitive.ObjectID `bson:"_id"`
	Title  string             `bson:"title"`
	Author string             `bson:"author"`
	URL    string             `bson:"url"`
	Likes  int                `bson:"likes"`
}

// BlogStore is the persistence contract shared by the MongoDB and Postgres
// backends. Every method is a single-document operation.
type BlogStore interface {
	List(ctx context.Context) ([]Blog, error)
	Insert(ctx context.Context, blog *Blog) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	UpdateLikes(ctx context.Context, id primitive.ObjectID, likes int) (*Blog, error)
}

type MongoBlogModel struct {
	coll *mongo.Collection
}

type PostgresBlogModel struct {
	db *sql.DB
}

type BlogService struct {
	store BlogStore
}
