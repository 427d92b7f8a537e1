package booking

import (
	"context"
	"time"

	"shareit-backend/internal/item"
	"shareit-backend/internal/user"
)

// CreateRequest carries the fields needed to request a booking.
type CreateRequest struct {
	BookerID int64
	ItemID   int64
	Start    time.Time
	End      time.Time
}

// Service defines business logic related to bookings.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	// Approve moves a WAITING booking to APPROVED or REJECTED. Only the item
	// owner may do so; repeating an already-reached decision is an error.
	Approve(ctx context.Context, ownerID, bookingID int64, approved bool) (*Booking, error)
	// GetByID returns the booking to its booker or the item's owner only.
	GetByID(ctx context.Context, viewerID, bookingID int64) (*Booking, error)
	ListByBooker(ctx context.Context, bookerID int64, filter StateFilter, limit, offset int) ([]*Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, filter StateFilter, limit, offset int) ([]*Booking, error)
}

type service struct {
	repo        Repository
	itemService item.Service
	userService user.Service

	now func() time.Time
}

// NewService creates a new booking Service.
func NewService(repo Repository, itemService item.Service, userService user.Service) Service {
	return &service{
		repo:        repo,
		itemService: itemService,
		userService: userService,
		now:         time.Now,
	}
}

// ValidatePeriod checks a requested booking interval against now: the start
// must be strictly before the end and neither bound may lie in the past.
func ValidatePeriod(start, end, now time.Time) error {
	if !start.Before(end) || start.Before(now) || end.Before(now) {
		return ErrInvalidPeriod
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if err := ValidatePeriod(req.Start, req.End, s.now()); err != nil {
		return nil, err
	}

	it, err := s.itemService.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !it.Available {
		return nil, ErrItemUnavailable
	}
	if it.OwnerID == req.BookerID {
		return nil, ErrOwnItem
	}

	booker, err := s.userService.GetByID(ctx, req.BookerID)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		Start:       req.Start,
		End:         req.End,
		Status:      StatusWaiting,
		ItemID:      it.ID,
		ItemName:    it.Name,
		ItemOwnerID: it.OwnerID,
		BookerID:    booker.ID,
		BookerName:  booker.Name,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) Approve(ctx context.Context, ownerID, bookingID int64, approved bool) (*Booking, error) {
	owner, err := s.userService.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// The general access gate (booker or owner) applies first; approving is
	// then further restricted to the owner alone.
	b, err := s.GetByID(ctx, owner.ID, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ItemOwnerID != owner.ID {
		return nil, ErrCannotApprove
	}

	if (b.Status == StatusApproved && approved) || (b.Status == StatusRejected && !approved) {
		return nil, ErrSameStatus
	}

	if approved {
		b.Status = StatusApproved
	} else {
		b.Status = StatusRejected
	}

	if err := s.repo.UpdateStatus(ctx, b.ID, b.Status); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, viewerID, bookingID int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.BookerID != viewerID && b.ItemOwnerID != viewerID {
		return nil, ErrNoAccess
	}

	return b, nil
}

func (s *service) ListByBooker(ctx context.Context, bookerID int64, filter StateFilter, limit, offset int) ([]*Booking, error) {
	booker, err := s.userService.GetByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	return s.repo.ListByBooker(ctx, booker.ID, filter, s.now(), limit, offset)
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64, filter StateFilter, limit, offset int) ([]*Booking, error) {
	owner, err := s.userService.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return s.repo.ListByOwner(ctx, owner.ID, filter, s.now(), limit, offset)
}
