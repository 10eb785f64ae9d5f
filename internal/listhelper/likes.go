// Package listhelper holds reporting helpers over lists of blogs.
package listhelper

import "github.com/sushihentaime/bloglist/internal/blogservice"

// TotalLikes returns the sum of likes across blogs. An empty list sums to zero.
func TotalLikes(blogs []blogservice.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}

	return total
}
