package blogservice

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sushihentaime/bloglist/internal/common"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidID      = errors.New("invalid blog id")
)

func NewBlogService(store BlogStore) *BlogService {
	return &BlogService{store: store}
}

// CreateBlogRequest holds the client supplied fields of a new blog. A nil
// Likes means the field was omitted.
type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

// ParseID converts a path identifier into the store's ObjectID, returning
// ErrInvalidID for anything that is not 24 hex characters.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}

	return oid, nil
}

// GetBlogs returns every blog in insertion order.
func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	return s.store.List(ctx)
}

// CreateBlog stores a new blog. Likes defaults to zero when omitted.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (*Blog, error) {
	blog := &Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
	}
	if req.Likes != nil {
		blog.Likes = *req.Likes
	}

	v := common.NewValidator()
	ValidateBlog(v, blog)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	err := s.store.Insert(ctx, blog)
	if err != nil {
		return nil, err
	}

	return blog, nil
}

// DeleteBlog removes a blog permanently.
func (s *BlogService) DeleteBlog(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	return s.store.Delete(ctx, oid)
}

// UpdateBlogLikes overwrites the likes of a blog and returns the updated
// record. No other field is touched.
func (s *BlogService) UpdateBlogLikes(ctx context.Context, id string, likes *int) (*Blog, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	v := common.NewValidator()
	v.Check(likes != nil, "likes", "must be provided")
	if likes != nil {
		validateLikes(v, *likes)
	}
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.store.UpdateLikes(ctx, oid, *likes)
}
