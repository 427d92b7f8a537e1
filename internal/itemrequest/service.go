package itemrequest

import (
	"context"

	"shareit-backend/internal/item"
	"shareit-backend/internal/user"
)

// Service defines business logic related to sharing requests.
type Service interface {
	Create(ctx context.Context, requestorID int64, description string) (*ItemRequest, error)
	// ListMine returns all requests made by the user, newest first, each
	// enriched with the items listed in answer to it.
	ListMine(ctx context.Context, requestorID int64) ([]*WithItems, error)
	// ListOthers returns a page of requests made by other users, newest
	// first, with the same enrichment.
	ListOthers(ctx context.Context, requestorID int64, limit, offset int) ([]*WithItems, error)
	GetByID(ctx context.Context, viewerID, requestID int64) (*WithItems, error)
}

type service struct {
	repo        Repository
	itemRepo    item.Repository
	userService user.Service
}

// NewService creates a new item request Service.
func NewService(repo Repository, itemRepo item.Repository, userService user.Service) Service {
	return &service{
		repo:        repo,
		itemRepo:    itemRepo,
		userService: userService,
	}
}

func (s *service) Create(ctx context.Context, requestorID int64, description string) (*ItemRequest, error) {
	requestor, err := s.userService.GetByID(ctx, requestorID)
	if err != nil {
		return nil, err
	}

	req := &ItemRequest{
		Description: description,
		RequestorID: requestor.ID,
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

func (s *service) ListMine(ctx context.Context, requestorID int64) ([]*WithItems, error) {
	requestor, err := s.userService.GetByID(ctx, requestorID)
	if err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByRequestor(ctx, requestor.ID)
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, requests)
}

func (s *service) ListOthers(ctx context.Context, requestorID int64, limit, offset int) ([]*WithItems, error) {
	requestor, err := s.userService.GetByID(ctx, requestorID)
	if err != nil {
		return nil, err
	}

	requests, err := s.repo.ListOthers(ctx, requestor.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, requests)
}

func (s *service) GetByID(ctx context.Context, viewerID, requestID int64) (*WithItems, error) {
	if _, err := s.userService.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	enriched, err := s.enrich(ctx, []*ItemRequest{req})
	if err != nil {
		return nil, err
	}

	return enriched[0], nil
}

// enrich attaches to each request the items that reference it as their
// originating request.
func (s *service) enrich(ctx context.Context, requests []*ItemRequest) ([]*WithItems, error) {
	requestIDs := make([]int64, len(requests))
	for i, req := range requests {
		requestIDs[i] = req.ID
	}

	items, err := s.itemRepo.ListByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, err
	}

	requestItems := make(map[int64][]*item.Item)
	for _, it := range items {
		if it.RequestID == nil {
			continue
		}
		requestItems[*it.RequestID] = append(requestItems[*it.RequestID], it)
	}

	result := make([]*WithItems, len(requests))
	for i, req := range requests {
		result[i] = &WithItems{
			Request: req,
			Items:   requestItems[req.ID],
		}
	}

	return result, nil
}
