package booking

import (
	"net/http"

	"shareit-backend/internal/pkg/apperror"
)

// temporal selectors of a StateFilter, evaluated against the current time.
type temporal string

const (
	temporalAll     temporal = "ALL"
	temporalCurrent temporal = "CURRENT" // start < now < end
	temporalPast    temporal = "PAST"    // end < now
	temporalFuture  temporal = "FUTURE"  // start > now
)

// StateFilter selects bookings for listing. It is either a temporal filter
// (ALL/CURRENT/PAST/FUTURE) or an exact-status filter, never both — a
// deliberately separate type from Status.
type StateFilter struct {
	temporal temporal
	status   Status
}

var (
	FilterAll     = StateFilter{temporal: temporalAll}
	FilterCurrent = StateFilter{temporal: temporalCurrent}
	FilterPast    = StateFilter{temporal: temporalPast}
	FilterFuture  = StateFilter{temporal: temporalFuture}
)

// ByStatus returns a filter matching bookings with exactly the given status.
func ByStatus(s Status) StateFilter {
	return StateFilter{status: s}
}

// Status returns the exact status the filter selects, if it is a status filter.
func (f StateFilter) Status() (Status, bool) {
	return f.status, f.status != ""
}

// IsCurrent reports whether the filter selects bookings straddling now.
func (f StateFilter) IsCurrent() bool { return f.temporal == temporalCurrent }

// IsPast reports whether the filter selects bookings already finished.
func (f StateFilter) IsPast() bool { return f.temporal == temporalPast }

// IsFuture reports whether the filter selects bookings not yet started.
func (f StateFilter) IsFuture() bool { return f.temporal == temporalFuture }

// ParseStateFilter maps a state query token to a StateFilter. An empty token
// means ALL. Unknown tokens are a client error.
func ParseStateFilter(token string) (StateFilter, error) {
	switch token {
	case "", "ALL":
		return FilterAll, nil
	case "CURRENT":
		return FilterCurrent, nil
	case "PAST":
		return FilterPast, nil
	case "FUTURE":
		return FilterFuture, nil
	case "WAITING":
		return ByStatus(StatusWaiting), nil
	case "APPROVED":
		return ByStatus(StatusApproved), nil
	case "REJECTED":
		return ByStatus(StatusRejected), nil
	default:
		return StateFilter{}, apperror.Newf(http.StatusBadRequest, "Unknown state: %s", token)
	}
}
