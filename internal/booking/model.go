package booking

import (
	"net/http"
	"time"

	"shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "booking not found")
	ErrNoAccess        = apperror.New(http.StatusNotFound, "user has no access to the booking")
	ErrCannotApprove   = apperror.New(http.StatusNotFound, "only the item owner may approve or reject a booking")
	ErrSameStatus      = apperror.New(http.StatusBadRequest, "booking already has the requested approve status")
	ErrItemUnavailable = apperror.New(http.StatusBadRequest, "item is not available for booking")
	ErrOwnItem         = apperror.New(http.StatusNotFound, "owner cannot book their own item")
	ErrInvalidPeriod   = apperror.New(http.StatusBadRequest, "booking period is not valid")
)

// Status is the approval state of a booking. WAITING is the initial state;
// APPROVED and REJECTED are terminal. CANCELED is defined for the schema but
// no transition currently produces it.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

// Booking is a reservation of an item for a time interval by a user other
// than the item's owner. Item and booker names are denormalized for display.
type Booking struct {
	ID          int64
	Start       time.Time
	End         time.Time
	Status      Status
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
	BookerID    int64
	BookerName  string
}
