package blogservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sushihentaime/bloglist/internal/common"
)

func intptr(i int) *int {
	return &i
}

func TestCreateBlog(t *testing.T) {
	errStore := errors.New("connection refused")

	testCases := []struct {
		name        string
		req         *CreateBlogRequest
		storeErr    error
		callsStore  bool
		wantLikes   int
		expectedErr error
	}{
		{
			name: "valid blog",
			req: &CreateBlogRequest{
				Title:  "Third Blog",
				Author: "New Author",
				URL:    "http://example.com/third",
				Likes:  intptr(15),
			},
			callsStore: true,
			wantLikes:  15,
		},
		{
			name: "likes omitted",
			req: &CreateBlogRequest{
				Title:  "Blog Without Likes",
				Author: "Anonymous",
				URL:    "http://example.com/nolikes",
			},
			callsStore: true,
			wantLikes:  0,
		},
		{
			name:       "empty payload",
			req:        &CreateBlogRequest{},
			callsStore: true,
			wantLikes:  0,
		},
		{
			name:        "negative likes",
			req:         &CreateBlogRequest{Title: "Bad", Likes: intptr(-1)},
			expectedErr: common.ValidationError{Errors: map[string]string{"likes": "must be a non-negative integer"}},
		},
		{
			name:        "likes out of range",
			req:         &CreateBlogRequest{Title: "Viral", Likes: intptr(3_000_000_000)},
			expectedErr: common.ValidationError{Errors: map[string]string{"likes": "must not be greater than 2147483647"}},
		},
		{
			name:        "store failure",
			req:         &CreateBlogRequest{Title: "Down"},
			storeErr:    errStore,
			callsStore:  true,
			expectedErr: errStore,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockBlogStore)
			id := primitive.NewObjectID()
			if tc.callsStore {
				store.On("Insert", mock.Anything, mock.AnythingOfType("*blogservice.Blog")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*Blog).ID = id
					}).
					Return(tc.storeErr)
			}

			s := NewBlogService(store)
			blog, err := s.CreateBlog(context.Background(), tc.req)
			assert.Equal(t, tc.expectedErr, err)

			if tc.expectedErr == nil {
				assert.Equal(t, id, blog.ID)
				assert.Equal(t, tc.req.Title, blog.Title)
				assert.Equal(t, tc.wantLikes, blog.Likes)
			} else {
				assert.Nil(t, blog)
			}

			store.AssertExpectations(t)
			if !tc.callsStore {
				store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestDeleteBlog(t *testing.T) {
	existing := primitive.NewObjectID()
	missing := primitive.NewObjectID()

	testCases := []struct {
		name        string
		id          string
		setup       func(store *MockBlogStore)
		expectedErr error
	}{
		{
			name: "existing blog",
			id:   existing.Hex(),
			setup: func(store *MockBlogStore) {
				store.On("Delete", mock.Anything, existing).Return(nil)
			},
		},
		{
			name: "missing blog",
			id:   missing.Hex(),
			setup: func(store *MockBlogStore) {
				store.On("Delete", mock.Anything, missing).Return(ErrRecordNotFound)
			},
			expectedErr: ErrRecordNotFound,
		},
		{
			name:        "malformed id",
			id:          "invalid-id",
			expectedErr: ErrInvalidID,
		},
		{
			name:        "too short hex id",
			id:          "64c4f9c0b6f2063b1f9e4a",
			expectedErr: ErrInvalidID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockBlogStore)
			if tc.setup != nil {
				tc.setup(store)
			}

			s := NewBlogService(store)
			err := s.DeleteBlog(context.Background(), tc.id)
			assert.Equal(t, tc.expectedErr, err)

			store.AssertExpectations(t)
			if tc.setup == nil {
				store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestUpdateBlogLikes(t *testing.T) {
	existing := primitive.NewObjectID()
	missing := primitive.NewObjectID()

	updated := &Blog{ID: existing, Title: "First Blog", Author: "John Doe", URL: "http://example.com/first", Likes: 20}

	testCases := []struct {
		name        string
		id          string
		likes       *int
		setup       func(store *MockBlogStore)
		want        *Blog
		expectedErr error
	}{
		{
			name:  "existing blog",
			id:    existing.Hex(),
			likes: intptr(20),
			setup: func(store *MockBlogStore) {
				store.On("UpdateLikes", mock.Anything, existing, 20).Return(updated, nil)
			},
			want: updated,
		},
		{
			name:  "zero likes",
			id:    existing.Hex(),
			likes: intptr(0),
			setup: func(store *MockBlogStore) {
				store.On("UpdateLikes", mock.Anything, existing, 0).Return(&Blog{ID: existing}, nil)
			},
			want: &Blog{ID: existing},
		},
		{
			name:  "missing blog",
			id:    missing.Hex(),
			likes: intptr(10),
			setup: func(store *MockBlogStore) {
				store.On("UpdateLikes", mock.Anything, missing, 10).Return(nil, ErrRecordNotFound)
			},
			expectedErr: ErrRecordNotFound,
		},
		{
			name:        "malformed id",
			id:          "invalid-id",
			likes:       intptr(10),
			expectedErr: ErrInvalidID,
		},
		{
			name:        "malformed id with missing likes",
			id:          "invalid-id",
			expectedErr: ErrInvalidID,
		},
		{
			name:        "likes missing",
			id:          existing.Hex(),
			expectedErr: common.ValidationError{Errors: map[string]string{"likes": "must be provided"}},
		},
		{
			name:        "negative likes",
			id:          existing.Hex(),
			likes:       intptr(-5),
			expectedErr: common.ValidationError{Errors: map[string]string{"likes": "must be a non-negative integer"}},
		},
		{
			name:        "likes out of range",
			id:          existing.Hex(),
			likes:       intptr(3_000_000_000),
			expectedErr: common.ValidationError{Errors: map[string]string{"likes": "must not be greater than 2147483647"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockBlogStore)
			if tc.setup != nil {
				tc.setup(store)
			}

			s := NewBlogService(store)
			blog, err := s.UpdateBlogLikes(context.Background(), tc.id, tc.likes)
			assert.Equal(t, tc.expectedErr, err)
			assert.Equal(t, tc.want, blog)

			store.AssertExpectations(t)
			if tc.setup == nil {
				store.AssertNotCalled(t, "UpdateLikes", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestGetBlogs(t *testing.T) {
	blogs := []Blog{
		{ID: primitive.NewObjectID(), Title: "First Blog", Likes: 10},
		{ID: primitive.NewObjectID(), Title: "Second Blog", Likes: 5},
	}

	store := new(MockBlogStore)
	store.On("List", mock.Anything).Return(blogs, nil)

	s := NewBlogService(store)
	got, err := s.GetBlogs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, blogs, got)
	store.AssertExpectations(t)
}

func TestParseID(t *testing.T) {
	testCases := []struct {
		id    string
		valid bool
	}{
		{id: "64c4f9c0b6f2063b1f9e4a9f", valid: true},
		{id: "5a422aa71b54a676234d17f8", valid: true},
		{id: "", valid: false},
		{id: "invalid-id", valid: false},
		{id: "64c4f9c0b6f2063b1f9e4a9", valid: false},
		{id: "64c4f9c0b6f2063b1f9e4a9z", valid: false},
		{id: "64c4f9c0b6f2063b1f9e4a9f0", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			oid, err := ParseID(tc.id)
			if tc.valid {
				assert.NoError(t, err)
				assert.Equal(t, tc.id, oid.Hex())
			} else {
				assert.ErrorIs(t, err, ErrInvalidID)
			}
		})
	}
}
