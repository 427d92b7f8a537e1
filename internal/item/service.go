package item

import (
	"context"
	"strings"
	"time"

	"shareit-backend/internal/user"
)

// CreateRequest carries the fields needed to list a new item.
type CreateRequest struct {
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// Service defines business logic related to items and their comments.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Item, error)
	Update(ctx context.Context, requesterID, itemID int64, patch Patch) (*Item, error)
	GetByID(ctx context.Context, itemID int64) (*Item, error)
	// GetDetails returns the item with its comments; when the viewer owns the
	// item it also carries the last/next booking intervals relative to now.
	GetDetails(ctx context.Context, viewerID, itemID int64) (*Details, error)
	// ListOwnerItems returns the owner's items with the same enrichment,
	// items lacking both intervals sorted to the end.
	ListOwnerItems(ctx context.Context, ownerID int64, limit, offset int) ([]*Details, error)
	Search(ctx context.Context, text string, limit, offset int) ([]*Item, error)
	AddComment(ctx context.Context, userID, itemID int64, text string) (*Comment, error)
}

type service struct {
	repo        Repository
	commentRepo CommentRepository
	bookings    BookingReader
	requests    RequestLookup
	userService user.Service

	now func() time.Time
}

// NewService creates a new item Service.
func NewService(
	repo Repository,
	commentRepo CommentRepository,
	bookings BookingReader,
	requests RequestLookup,
	userService user.Service,
) Service {
	return &service{
		repo:        repo,
		commentRepo: commentRepo,
		bookings:    bookings,
		requests:    requests,
		userService: userService,
		now:         time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Item, error) {
	owner, err := s.userService.GetByID(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	if req.RequestID != nil {
		exists, err := s.requests.Exists(ctx, *req.RequestID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrRequestNotFound
		}
	}

	it := &Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		OwnerID:     owner.ID,
		RequestID:   req.RequestID,
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

// Update merges only the supplied patch fields onto a freshly loaded record.
// Only the owner may update an item.
func (s *service) Update(ctx context.Context, requesterID, itemID int64, patch Patch) (*Item, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	requester, err := s.userService.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != requester.ID {
		return nil, ErrNotOwner
	}

	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.Available != nil {
		it.Available = *patch.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

func (s *service) GetByID(ctx context.Context, itemID int64) (*Item, error) {
	return s.repo.GetByID(ctx, itemID)
}

func (s *service) GetDetails(ctx context.Context, viewerID, itemID int64) (*Details, error) {
	viewer, err := s.userService.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByItemIDs(ctx, []int64{it.ID})
	if err != nil {
		return nil, err
	}

	details := &Details{Item: it, Comments: comments}

	// Booking intervals are owner-only.
	if it.OwnerID != viewer.ID {
		return details, nil
	}

	intervals, err := s.bookings.IntervalsByItemIDs(ctx, []int64{it.ID})
	if err != nil {
		return nil, err
	}

	now := s.now()
	details.LastBooking = LastInterval(intervals[it.ID], now)
	details.NextBooking = NextInterval(intervals[it.ID], now)

	return details, nil
}

func (s *service) ListOwnerItems(ctx context.Context, ownerID int64, limit, offset int) ([]*Details, error) {
	owner, err := s.userService.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListByOwner(ctx, owner.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]int64, len(items))
	for i, it := range items {
		itemIDs[i] = it.ID
	}

	intervals, err := s.bookings.IntervalsByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	itemComments := make(map[int64][]*Comment)
	for _, cm := range comments {
		itemComments[cm.ItemID] = append(itemComments[cm.ItemID], cm)
	}

	now := s.now()

	// Items without any known interval go to the tail of the list,
	// otherwise relative order is preserved.
	var withIntervals, withoutIntervals []*Details
	for _, it := range items {
		details := &Details{
			Item:        it,
			Comments:    itemComments[it.ID],
			LastBooking: LastInterval(intervals[it.ID], now),
			NextBooking: NextInterval(intervals[it.ID], now),
		}
		if details.LastBooking == nil && details.NextBooking == nil {
			withoutIntervals = append(withoutIntervals, details)
			continue
		}
		withIntervals = append(withIntervals, details)
	}

	return append(withIntervals, withoutIntervals...), nil
}

func (s *service) Search(ctx context.Context, text string, limit, offset int) ([]*Item, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	return s.repo.Search(ctx, text, limit, offset)
}

func (s *service) AddComment(ctx context.Context, userID, itemID int64, text string) (*Comment, error) {
	author, err := s.userService.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	ok, err := s.bookings.HasFinishedApproved(ctx, author.ID, it.ID, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCannotComment
	}

	cm := &Comment{
		Text:     text,
		ItemID:   it.ID,
		AuthorID: author.ID,
	}

	if err := s.commentRepo.Create(ctx, cm); err != nil {
		return nil, err
	}

	return cm, nil
}
