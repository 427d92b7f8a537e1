package itemrequest

import (
	"net/http"
	"time"

	"shareit-backend/internal/item"
	"shareit-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "item request not found")

// ItemRequest is a post by a user describing a desired item that is not
// currently listed. Immutable once created.
type ItemRequest struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time
}

// WithItems is a request enriched with the items listed in answer to it.
type WithItems struct {
	Request *ItemRequest
	Items   []*item.Item
}
