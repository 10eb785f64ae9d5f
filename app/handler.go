package main

import (
	"errors"
	"net/http"

	"github.com/sushihentaime/bloglist/internal/blogservice"
	"github.com/sushihentaime/bloglist/internal/common"
)

// blogResponse is the wire form of a blog. The store id is exposed only as "id".
type blogResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

func toBlogResponse(b *blogservice.Blog) blogResponse {
	return blogResponse{
		ID:     b.ID.Hex(),
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
	}
}

func (app *application) listBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.GetBlogs(r.Context())
	if err != nil {
		app.storeErrorResponse(w, r, err, msgFetchBlogsFailed)
		return
	}

	res := make([]blogResponse, 0, len(blogs))
	for i := range blogs {
		res = append(res, toBlogResponse(&blogs[i]))
	}

	err = app.writeJSON(w, http.StatusOK, res, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input blogservice.CreateBlogRequest

	// Parse the request body
	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err.Error())
		return
	}

	// Call the blog service
	blog, err := app.blogService.CreateBlog(r.Context(), &input)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			app.badRequestErrorResponse(w, r, err.Error())
		default:
			app.storeErrorResponse(w, r, err, msgCreateBlogFailed)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toBlogResponse(blog), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r, "id")

	err := app.blogService.DeleteBlog(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrInvalidID):
			app.badRequestErrorResponse(w, r, msgInvalidBlogID)
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.blogNotFoundResponse(w, r)
		default:
			app.storeErrorResponse(w, r, err, msgDeleteBlogFailed)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// updateBlogLikesRequest accepts only likes. Any other field in the body is ignored.
type updateBlogLikesRequest struct {
	Likes *int `json:"likes"`
}

func (app *application) updateBlogLikesHandler(w http.ResponseWriter, r *http.Request) {
	id := app.readIDParam(r, "id")

	// A malformed id never reaches the store, whatever the body holds.
	if _, err := blogservice.ParseID(id); err != nil {
		app.badRequestErrorResponse(w, r, msgInvalidIDOrBody)
		return
	}

	var input updateBlogLikesRequest

	// Parse the request body
	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, msgInvalidIDOrBody)
		return
	}

	blog, err := app.blogService.UpdateBlogLikes(r.Context(), id, input.Likes)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrInvalidID):
			app.badRequestErrorResponse(w, r, msgInvalidIDOrBody)
		case errors.As(err, &common.ValidationError{}):
			app.badRequestErrorResponse(w, r, msgInvalidIDOrBody)
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.blogNotFoundResponse(w, r)
		default:
			app.storeErrorResponse(w, r, err, msgUpdateBlogFailed)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toBlogResponse(blog), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
