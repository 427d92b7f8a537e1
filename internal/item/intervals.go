package item

import "time"

// LastInterval selects the booking interval shown as "last": among intervals
// that are already finished or currently straddle now, the one with the
// latest end time. Returns nil when no interval qualifies.
func LastInterval(intervals []BookingInterval, now time.Time) *BookingInterval {
	var last *BookingInterval
	for i := range intervals {
		iv := &intervals[i]
		finished := iv.End.Before(now)
		ongoing := iv.Start.Before(now) && iv.End.After(now)
		if !finished && !ongoing {
			continue
		}
		if last == nil || iv.End.After(last.End) {
			last = iv
		}
	}
	return last
}

// NextInterval selects the booking interval shown as "next": the
// earliest-starting one with a start strictly after now. Returns nil when no
// interval qualifies.
func NextInterval(intervals []BookingInterval, now time.Time) *BookingInterval {
	var next *BookingInterval
	for i := range intervals {
		iv := &intervals[i]
		if !iv.Start.After(now) {
			continue
		}
		if next == nil || iv.Start.Before(next.Start) {
			next = iv
		}
	}
	return next
}
