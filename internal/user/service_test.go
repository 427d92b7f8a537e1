package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	users  map[int64]*User
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[int64]*User), nextID: 1}
}

func (r *fakeRepo) emailTaken(u *User) bool {
	for _, existing := range r.users {
		if existing.ID != u.ID && existing.Email == u.Email {
			return true
		}
	}
	return false
}

func (r *fakeRepo) Create(_ context.Context, u *User) error {
	if r.emailTaken(u) {
		return ErrDuplicateEmail
	}
	u.ID = r.nextID
	r.nextID++
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *fakeRepo) Update(_ context.Context, u *User) error {
	if _, ok := r.users[u.ID]; !ok {
		return ErrNotFound
	}
	if r.emailTaken(u) {
		return ErrDuplicateEmail
	}
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeRepo) List(_ context.Context) ([]*User, error) {
	var out []*User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func TestCreateUser(t *testing.T) {
	t.Run("normalizes name and email", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		u, err := svc.Create(context.Background(), "  Ann  ", " Ann@Example.COM ")
		require.NoError(t, err)

		assert.Equal(t, "Ann", u.Name)
		assert.Equal(t, "ann@example.com", u.Email)
		assert.NotZero(t, u.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		_, err := svc.Create(context.Background(), "Ann", "ann@example.com")
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), "Other Ann", "ANN@example.com")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestUpdateUser(t *testing.T) {
	seed := func(t *testing.T) (Service, *User) {
		t.Helper()
		svc := NewService(newFakeRepo())
		u, err := svc.Create(context.Background(), "Ann", "ann@example.com")
		require.NoError(t, err)
		return svc, u
	}

	t.Run("name only keeps email", func(t *testing.T) {
		svc, u := seed(t)

		name := "Anna"
		updated, err := svc.Update(context.Background(), u.ID, Patch{Name: &name})
		require.NoError(t, err)

		assert.Equal(t, "Anna", updated.Name)
		assert.Equal(t, "ann@example.com", updated.Email)
	})

	t.Run("email only keeps name", func(t *testing.T) {
		svc, u := seed(t)

		email := "Anna@Example.com"
		updated, err := svc.Update(context.Background(), u.ID, Patch{Email: &email})
		require.NoError(t, err)

		assert.Equal(t, "Ann", updated.Name)
		assert.Equal(t, "anna@example.com", updated.Email)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		svc, _ := seed(t)

		other, err := svc.Create(context.Background(), "Bob", "bob@example.com")
		require.NoError(t, err)

		email := "ann@example.com"
		_, err = svc.Update(context.Background(), other.ID, Patch{Email: &email})
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _ := seed(t)

		name := "Ghost"
		_, err := svc.Update(context.Background(), 999, Patch{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	svc := NewService(newFakeRepo())

	u, err := svc.Create(context.Background(), "Ann", "ann@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), u.ID))

	_, err = svc.GetByID(context.Background(), u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
