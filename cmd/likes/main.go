package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sushihentaime/bloglist/internal/blogservice"
	"github.com/sushihentaime/bloglist/internal/listhelper"
)

const defaultTimeout = 10 * time.Second

// wireBlog is a blog as returned by GET /api/blogs.
type wireBlog struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logger.Error("failed to total likes", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run prints the total likes of a blog list read from -url, a file argument
// or stdin, in that order of preference.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("likes", flag.ContinueOnError)
	var (
		url     = fs.String("url", "", "Blog list endpoint to fetch, e.g. http://localhost:3003/api/blogs")
		timeout = fs.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		src io.Reader
		err error
	)
	switch {
	case *url != "":
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()

		var body io.ReadCloser
		body, err = fetch(ctx, *url)
		if err != nil {
			return err
		}
		defer body.Close()
		src = body
	case fs.NArg() > 0:
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	default:
		src = stdin
	}

	blogs, err := decodeBlogs(src)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, listhelper.TotalLikes(blogs))
	return err
}

func fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, res.Status)
	}

	return res.Body, nil
}

func decodeBlogs(r io.Reader) ([]blogservice.Blog, error) {
	var input []wireBlog

	err := json.NewDecoder(r).Decode(&input)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("input must contain a JSON array of blogs")
		}
		return nil, fmt.Errorf("decode blogs: %w", err)
	}

	blogs := make([]blogservice.Blog, 0, len(input))
	for i, b := range input {
		blog := blogservice.Blog{
			Title:  b.Title,
			Author: b.Author,
			URL:    b.URL,
			Likes:  b.Likes,
		}

		// Blogs written by hand may carry no id.
		if b.ID != "" {
			blog.ID, err = primitive.ObjectIDFromHex(b.ID)
			if err != nil {
				return nil, fmt.Errorf("blog %d: invalid id %q", i, b.ID)
			}
		}

		blogs = append(blogs, blog)
	}

	return blogs, nil
}
