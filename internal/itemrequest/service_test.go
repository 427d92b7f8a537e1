package itemrequest

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit-backend/internal/item"
	"shareit-backend/internal/user"
)

type fakeRepo struct {
	requests map[int64]*ItemRequest
	nextID   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{requests: make(map[int64]*ItemRequest), nextID: 1}
}

func (r *fakeRepo) Create(_ context.Context, req *ItemRequest) error {
	req.ID = r.nextID
	r.nextID++
	req.Created = time.Now()
	stored := *req
	r.requests[req.ID] = &stored
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*ItemRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *req
	return &copied, nil
}

func (r *fakeRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.requests[id]
	return ok, nil
}

func (r *fakeRepo) ListByRequestor(_ context.Context, requestorID int64) ([]*ItemRequest, error) {
	var out []*ItemRequest
	for _, req := range r.requests {
		if req.RequestorID == requestorID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeRepo) ListOthers(_ context.Context, requestorID int64, _, _ int) ([]*ItemRequest, error) {
	var out []*ItemRequest
	for _, req := range r.requests {
		if req.RequestorID != requestorID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type fakeItemRepo struct {
	items []*item.Item
}

func (r *fakeItemRepo) Create(_ context.Context, _ *item.Item) error     { panic("not used") }
func (r *fakeItemRepo) Update(_ context.Context, _ *item.Item) error     { panic("not used") }
func (r *fakeItemRepo) GetByID(_ context.Context, _ int64) (*item.Item, error) {
	panic("not used")
}

func (r *fakeItemRepo) ListByOwner(_ context.Context, _ int64, _, _ int) ([]*item.Item, error) {
	panic("not used")
}

func (r *fakeItemRepo) Search(_ context.Context, _ string, _, _ int) ([]*item.Item, error) {
	panic("not used")
}

func (r *fakeItemRepo) ListByRequestIDs(_ context.Context, requestIDs []int64) ([]*item.Item, error) {
	wanted := make(map[int64]bool, len(requestIDs))
	for _, id := range requestIDs {
		wanted[id] = true
	}
	var out []*item.Item
	for _, it := range r.items {
		if it.RequestID != nil && wanted[*it.RequestID] {
			out = append(out, it)
		}
	}
	return out, nil
}

type stubUserService struct {
	users map[int64]*user.User
}

func (s *stubUserService) Create(_ context.Context, _, _ string) (*user.User, error) {
	panic("not used")
}

func (s *stubUserService) Update(_ context.Context, _ int64, _ user.Patch) (*user.User, error) {
	panic("not used")
}

func (s *stubUserService) Delete(_ context.Context, _ int64) error {
	panic("not used")
}

func (s *stubUserService) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (s *stubUserService) List(_ context.Context) ([]*user.User, error) {
	panic("not used")
}

func newTestService(t *testing.T) (Service, *fakeRepo, *fakeItemRepo) {
	t.Helper()

	repo := newFakeRepo()
	itemRepo := &fakeItemRepo{}
	users := &stubUserService{users: map[int64]*user.User{
		1: {ID: 1, Name: "Rita Requestor"},
		2: {ID: 2, Name: "Olivia Owner"},
	}}

	return NewService(repo, itemRepo, users), repo, itemRepo
}

func requestIDPtr(id int64) *int64 { return &id }

func TestCreateRequest(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		req, err := svc.Create(context.Background(), 1, "Need a drill for the weekend")
		require.NoError(t, err)

		assert.NotZero(t, req.ID)
		assert.Equal(t, int64(1), req.RequestorID)
		assert.False(t, req.Created.IsZero())
	})

	t.Run("unknown requestor", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Create(context.Background(), 99, "Need a drill")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestListMine(t *testing.T) {
	svc, _, itemRepo := newTestService(t)

	first, err := svc.Create(context.Background(), 1, "Need a drill")
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), 1, "Need a ladder")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 2, "Need a saw")
	require.NoError(t, err)

	itemRepo.items = []*item.Item{
		{ID: 10, Name: "Drill", Available: true, OwnerID: 2, RequestID: requestIDPtr(first.ID)},
		{ID: 11, Name: "Ladder", Available: true, OwnerID: 2, RequestID: requestIDPtr(second.ID)},
		{ID: 12, Name: "Spare drill", Available: true, OwnerID: 2, RequestID: requestIDPtr(first.ID)},
	}

	result, err := svc.ListMine(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result, 2)

	// Newest first, each carrying exactly its own answers.
	assert.Equal(t, second.ID, result[0].Request.ID)
	assert.Len(t, result[0].Items, 1)
	assert.Equal(t, first.ID, result[1].Request.ID)
	assert.Len(t, result[1].Items, 2)
}

func TestListOthers(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), 1, "Need a drill")
	require.NoError(t, err)
	other, err := svc.Create(context.Background(), 2, "Need a saw")
	require.NoError(t, err)

	result, err := svc.ListOthers(context.Background(), 1, 20, 0)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, other.ID, result[0].Request.ID)
	assert.Empty(t, result[0].Items)
}

func TestGetRequestByID(t *testing.T) {
	svc, _, itemRepo := newTestService(t)

	req, err := svc.Create(context.Background(), 1, "Need a drill")
	require.NoError(t, err)

	itemRepo.items = []*item.Item{
		{ID: 10, Name: "Drill", Available: true, OwnerID: 2, RequestID: requestIDPtr(req.ID)},
	}

	t.Run("any known user may read", func(t *testing.T) {
		got, err := svc.GetByID(context.Background(), 2, req.ID)
		require.NoError(t, err)
		assert.Equal(t, req.ID, got.Request.ID)
		assert.Len(t, got.Items, 1)
	})

	t.Run("unknown viewer", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 99, req.ID)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
