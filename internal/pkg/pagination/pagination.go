package pagination

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/pkg/apperror"
)

// ErrInvalidPage is returned when from/size query parameters are out of range.
var ErrInvalidPage = apperror.New(http.StatusBadRequest, "pagination parameters must satisfy from >= 0 and size > 0")

// Page is an offset/limit window parsed from the from/size query parameters.
type Page struct {
	From int
	Size int
}

// Limit returns the window size as a LIMIT value.
func (p Page) Limit() int {
	return p.Size
}

// Offset returns the window start as an OFFSET value.
func (p Page) Offset() int {
	return p.From
}

// Valid reports whether the window satisfies from >= 0 and size > 0.
func (p Page) Valid() bool {
	return p.From >= 0 && p.Size > 0
}

// FromQuery parses the from/size query parameters with the given default size.
// Malformed or out-of-range values yield ErrInvalidPage.
func FromQuery(c *gin.Context, defaultSize int) (Page, error) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		return Page{}, ErrInvalidPage
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultSize)))
	if err != nil {
		return Page{}, ErrInvalidPage
	}

	p := Page{From: from, Size: size}
	if !p.Valid() {
		return Page{}, ErrInvalidPage
	}
	return p, nil
}
