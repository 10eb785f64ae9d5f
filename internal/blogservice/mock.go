package blogservice

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockBlogStore is a testify mock of BlogStore for handler tests that do not
// need a running database.
type MockBlogStore struct {
	mock.Mock
}

func (m *MockBlogStore) List(ctx context.Context) ([]Blog, error) {
	args := m.Called(ctx)
	blogs, _ := args.Get(0).([]Blog)
	return blogs, args.Error(1)
}

func (m *MockBlogStore) Insert(ctx context.Context, blog *Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlogStore) UpdateLikes(ctx context.Context, id primitive.ObjectID, likes int) (*Blog, error) {
	args := m.Called(ctx, id, likes)
	blog, _ := args.Get(0).(*Blog)
	return blog, args.Error(1)
}
