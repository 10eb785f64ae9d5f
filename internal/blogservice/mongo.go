package blogservice

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const blogsCollection = "blogs"

func NewMongoBlogModel(db *mongo.Database) *MongoBlogModel {
	return &MongoBlogModel{coll: db.Collection(blogsCollection)}
}

// List returns all blogs sorted by _id, which follows insertion order.
func (m *MongoBlogModel) List(ctx context.Context) ([]Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := m.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	blogs := []Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (m *MongoBlogModel) Insert(ctx context.Context, blog *Blog) error {
	blog.ID = primitive.NewObjectID()

	_, err := m.coll.InsertOne(ctx, blog)
	return err
}

func (m *MongoBlogModel) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (m *MongoBlogModel) UpdateLikes(ctx context.Context, id primitive.ObjectID, likes int) (*Blog, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog Blog
	err := m.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"likes": likes}}, opts).Decode(&blog)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &blog, nil
}
