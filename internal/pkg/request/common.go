package request

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/pkg/apperror"
)

// ErrInvalidID is returned when an id path parameter is not a positive integer.
var ErrInvalidID = apperror.New(http.StatusBadRequest, "id must be a positive integer")

// ByIDRequest is a common struct for endpoints that require an id path parameter.
type ByIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// BindID binds and validates the id path parameter.
func BindID(c *gin.Context) (int64, error) {
	var req ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		return 0, ErrInvalidID
	}
	return req.ID, nil
}
