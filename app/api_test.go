package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sushihentaime/bloglist/internal/blogservice"
	"github.com/sushihentaime/bloglist/internal/common"
)

var initialBlogs = []map[string]any{
	{"title": "First Blog", "author": "John Doe", "url": "http://example.com/first", "likes": 10},
	{"title": "Second Blog", "author": "Jane Doe", "url": "http://example.com/second", "likes": 5},
}

// setupServers starts one test server per store driver, each on its own container.
func setupServers(t *testing.T) map[string]*testServer {
	db := common.TestDB("file://../migrations", t)
	client := common.TestMongo(t)

	stores := map[string]blogservice.BlogStore{
		storeDriverPostgres: blogservice.NewPostgresBlogModel(db),
		storeDriverMongo:    blogservice.NewMongoBlogModel(client.Database("testdb")),
	}

	servers := make(map[string]*testServer, len(stores))
	for driver, store := range stores {
		app := newTestApplication(t, store)
		app.config.StoreDriver = driver
		servers[driver] = newTestServer(t, app.routes())
	}

	return servers
}

// reset deletes every blog through the API and posts the initial blogs.
func reset(t *testing.T, ts *testServer) []blogResponse {
	t.Helper()

	_, _, body := ts.get(t, "/api/blogs")
	for _, b := range decodeJSON[[]blogResponse](t, body) {
		status, _, _ := ts.delete(t, "/api/blogs/"+b.ID)
		require.Equal(t, http.StatusNoContent, status)
	}

	created := make([]blogResponse, 0, len(initialBlogs))
	for _, b := range initialBlogs {
		status, _, body := ts.post(t, "/api/blogs", b)
		require.Equal(t, http.StatusCreated, status)
		created = append(created, decodeJSON[blogResponse](t, body))
	}

	return created
}

func listBlogs(t *testing.T, ts *testServer) []blogResponse {
	t.Helper()

	status, _, body := ts.get(t, "/api/blogs")
	require.Equal(t, http.StatusOK, status)

	return decodeJSON[[]blogResponse](t, body)
}

func TestBlogAPI(t *testing.T) {
	servers := setupServers(t)

	for driver, ts := range servers {
		t.Run(driver, func(t *testing.T) {
			t.Run("list returns every blog with an id", func(t *testing.T) {
				created := reset(t, ts)

				status, _, body := ts.get(t, "/api/blogs")
				assert.Equal(t, http.StatusOK, status)
				assert.NotContains(t, string(body), "_id")
				assert.NotContains(t, string(body), "__v")

				blogs := decodeJSON[[]blogResponse](t, body)
				assert.Equal(t, created, blogs)
				for _, b := range blogs {
					assert.Len(t, b.ID, 24)
				}
			})

			t.Run("create adds exactly one blog", func(t *testing.T) {
				reset(t, ts)

				status, _, body := ts.post(t, "/api/blogs", map[string]any{
					"title":  "Third Blog",
					"author": "New Author",
					"url":    "http://example.com/third",
					"likes":  15,
				})
				require.Equal(t, http.StatusCreated, status)

				blog := decodeJSON[blogResponse](t, body)
				assert.Equal(t, "Third Blog", blog.Title)
				assert.Equal(t, 15, blog.Likes)

				blogs := listBlogs(t, ts)
				assert.Len(t, blogs, len(initialBlogs)+1)
				assert.Contains(t, blogs, blog)
			})

			t.Run("create defaults likes to zero", func(t *testing.T) {
				reset(t, ts)

				status, _, body := ts.post(t, "/api/blogs", map[string]any{
					"title":  "Blog Without Likes",
					"author": "Anonymous",
					"url":    "http://example.com/nolikes",
				})
				require.Equal(t, http.StatusCreated, status)
				assert.Equal(t, 0, decodeJSON[blogResponse](t, body).Likes)
			})

			t.Run("create rejects negative likes", func(t *testing.T) {
				reset(t, ts)

				status, _, _ := ts.post(t, "/api/blogs", map[string]any{"title": "Bad", "likes": -1})
				assert.Equal(t, http.StatusBadRequest, status)
				assert.Len(t, listBlogs(t, ts), len(initialBlogs))
			})

			t.Run("create rejects likes beyond the stored range", func(t *testing.T) {
				reset(t, ts)

				status, _, body := ts.post(t, "/api/blogs", map[string]any{"title": "Viral", "likes": int64(3_000_000_000)})
				assert.Equal(t, http.StatusBadRequest, status)
				assert.Equal(t, envelope{"error": "validation failed: likes: must not be greater than 2147483647"}, decodeJSON[envelope](t, body))
				assert.Len(t, listBlogs(t, ts), len(initialBlogs))
			})

			t.Run("delete removes the blog", func(t *testing.T) {
				created := reset(t, ts)

				status, _, body := ts.delete(t, "/api/blogs/"+created[0].ID)
				assert.Equal(t, http.StatusNoContent, status)
				assert.Empty(t, body)

				blogs := listBlogs(t, ts)
				assert.Equal(t, created[1:], blogs)

				status, _, body = ts.delete(t, "/api/blogs/"+created[0].ID)
				assert.Equal(t, http.StatusNotFound, status)
				assert.Equal(t, envelope{"error": "Blog not found"}, decodeJSON[envelope](t, body))
			})

			t.Run("delete rejects a malformed id", func(t *testing.T) {
				reset(t, ts)

				status, _, body := ts.delete(t, "/api/blogs/invalid-id")
				assert.Equal(t, http.StatusBadRequest, status)
				assert.Equal(t, envelope{"error": "Invalid blog ID"}, decodeJSON[envelope](t, body))
				assert.Len(t, listBlogs(t, ts), len(initialBlogs))
			})

			t.Run("update changes only likes", func(t *testing.T) {
				created := reset(t, ts)

				status, _, body := ts.put(t, "/api/blogs/"+created[0].ID, map[string]any{"likes": 20, "title": "Ignored"})
				require.Equal(t, http.StatusOK, status)

				want := created[0]
				want.Likes = 20
				assert.Equal(t, want, decodeJSON[blogResponse](t, body))
				assert.Equal(t, []blogResponse{want, created[1]}, listBlogs(t, ts))
			})

			t.Run("update of a missing blog", func(t *testing.T) {
				reset(t, ts)

				status, _, body := ts.put(t, "/api/blogs/"+primitive.NewObjectID().Hex(), map[string]any{"likes": 10})
				assert.Equal(t, http.StatusNotFound, status)
				assert.Equal(t, envelope{"error": "Blog not found"}, decodeJSON[envelope](t, body))
			})

			t.Run("update rejects bad input", func(t *testing.T) {
				created := reset(t, ts)

				for _, tc := range []struct {
					path    string
					payload any
				}{
					{path: "/api/blogs/invalid-id", payload: map[string]any{"likes": 10}},
					{path: "/api/blogs/" + created[0].ID, payload: map[string]any{"likes": -1}},
					{path: "/api/blogs/" + created[0].ID, payload: map[string]any{}},
					{path: "/api/blogs/" + created[0].ID, payload: map[string]any{"likes": int64(3_000_000_000)}},
				} {
					status, _, body := ts.put(t, tc.path, tc.payload)
					assert.Equal(t, http.StatusBadRequest, status)
					assert.Equal(t, envelope{"error": "Invalid blog ID or request body"}, decodeJSON[envelope](t, body))
				}

				assert.Equal(t, created, listBlogs(t, ts))
			})
		})
	}
}
