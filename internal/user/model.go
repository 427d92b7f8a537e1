package user

import (
	"net/http"

	"shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound       = apperror.New(http.StatusNotFound, "user not found")
	ErrDuplicateEmail = apperror.New(http.StatusConflict, "email is already used by another user")
)

// User represents a registered user of the sharing service.
type User struct {
	ID    int64
	Name  string
	Email string
}

// Patch is a partial update of a user. Nil fields keep their current value.
type Patch struct {
	Name  *string
	Email *string
}
