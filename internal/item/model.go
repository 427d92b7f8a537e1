package item

import (
	"context"
	"net/http"
	"time"

	"shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "item not found")
	ErrNotOwner        = apperror.New(http.StatusNotFound, "user is not the owner of the item")
	ErrRequestNotFound = apperror.New(http.StatusNotFound, "item request not found")
	ErrCannotComment   = apperror.New(http.StatusBadRequest, "only users with a finished approved booking of the item may comment on it")
)

// Item is a shareable physical object listed by its owner.
// RequestID links the item to the sharing request it was listed in answer to.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// Patch is a partial update of an item. Nil fields keep their current value.
type Patch struct {
	Name        *string
	Description *string
	Available   *bool
}

// Comment is a post-rental note left on an item by a past booker.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// BookingInterval is the projection of a booking this package needs to
// compute the last/next intervals shown to an item's owner.
type BookingInterval struct {
	ID       int64
	Start    time.Time
	End      time.Time
	BookerID int64
}

// Details is an item enriched with its comments and, for the owner only,
// the last and next booking intervals relative to the time of the request.
type Details struct {
	Item        *Item
	Comments    []*Comment
	LastBooking *BookingInterval
	NextBooking *BookingInterval
}

// BookingReader is the view of booking storage this package depends on.
// Implemented by the booking repository.
type BookingReader interface {
	// IntervalsByItemIDs returns the non-rejected booking intervals of the
	// given items, keyed by item id.
	IntervalsByItemIDs(ctx context.Context, itemIDs []int64) (map[int64][]BookingInterval, error)
	// HasFinishedApproved reports whether the user has at least one approved
	// booking of the item that ended before now.
	HasFinishedApproved(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

// RequestLookup resolves sharing request ids when an item is listed against one.
// Implemented by the item request repository.
type RequestLookup interface {
	Exists(ctx context.Context, requestID int64) (bool, error)
}
