package userservice

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

// userDocument is the stored form of a user. The password hash never leaves
// the package.
type userDocument struct {
	ID           primitive.ObjectID   `bson:"_id"`
	Username     string               `bson:"username"`
	Name         string               `bson:"name"`
	PasswordHash []byte               `bson:"passwordHash"`
	Notes        []primitive.ObjectID `bson:"notes"`
	Blogs        []primitive.ObjectID `bson:"blogs"`
}

// NewMongoUserModel returns a user store on db and ensures the unique
// username index exists.
func NewMongoUserModel(ctx context.Context, db *mongo.Database) (*MongoUserModel, error) {
	coll := db.Collection(usersCollection)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_username_key"),
	})
	if err != nil {
		return nil, err
	}

	return &MongoUserModel{coll: coll}, nil
}

func (m *MongoUserModel) Insert(ctx context.Context, u *User) error {
	doc := userDocument{
		ID:           primitive.NewObjectID(),
		Username:     u.Username,
		Name:         u.Name,
		PasswordHash: u.Password.hash,
		Notes:        []primitive.ObjectID{},
		Blogs:        []primitive.ObjectID{},
	}

	_, err := m.coll.InsertOne(ctx, doc)
	if err != nil {
		switch {
		case mongo.IsDuplicateKeyError(err):
			return ErrDuplicateUsername
		default:
			return err
		}
	}

	u.ID = doc.ID
	u.Notes = doc.Notes
	u.Blogs = doc.Blogs

	return nil
}

func (m *MongoUserModel) GetByUsername(ctx context.Context, username string) (*User, error) {
	var doc userDocument

	err := m.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	u := User{
		ID:       doc.ID,
		Username: doc.Username,
		Name:     doc.Name,
		Password: Password{hash: doc.PasswordHash},
		Notes:    doc.Notes,
		Blogs:    doc.Blogs,
	}
	if u.Notes == nil {
		u.Notes = []primitive.ObjectID{}
	}
	if u.Blogs == nil {
		u.Blogs = []primitive.ObjectID{}
	}

	return &u, nil
}

func (m *MongoUserModel) AppendBlog(ctx context.Context, userID, blogID primitive.ObjectID) error {
	return m.push(ctx, userID, "blogs", blogID)
}

func (m *MongoUserModel) AppendNote(ctx context.Context, userID, noteID primitive.ObjectID) error {
	return m.push(ctx, userID, "notes", noteID)
}

func (m *MongoUserModel) push(ctx context.Context, userID primitive.ObjectID, field string, ref primitive.ObjectID) error {
	res, err := m.coll.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$push": bson.M{field: ref}})
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
