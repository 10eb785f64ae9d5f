package blogservice

import (
	"fmt"
	"math"

	"github.com/sushihentaime/bloglist/internal/common"
)

// maxLikes is the largest value the Postgres INTEGER column holds. Both
// backends enforce it so they accept the same payloads.
const maxLikes = math.MaxInt32

// ValidateBlog checks a complete blog. Title, author and url are free-form
// and may be empty.
func ValidateBlog(v *common.Validator, blog *Blog) {
	validateLikes(v, blog.Likes)
}

func validateLikes(v *common.Validator, likes int) {
	v.Check(likes >= 0, "likes", "must be a non-negative integer")
	v.Check(likes <= maxLikes, "likes", fmt.Sprintf("must not be greater than %d", maxLikes))
}
