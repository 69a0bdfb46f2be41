package users

import (
	"context"
	"fmt"
	"sync"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int64) (User, error)
	Update(ctx context.Context, user User) (User, error)
	Roles(ctx context.Context) ([]string, error)
	AddRole(ctx context.Context, name string) error
}

type repository struct {
	mu    sync.RWMutex
	items []User
	roles []string
}

func NewRepository() Repository {
	return &repository{items: seedUsers(), roles: seedRoles()}
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]User, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *repository) Get(ctx context.Context, id int64) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, fmt.Errorf("%w: user %d", httpx.ErrNotFound, id)
}

func (r *repository) Update(ctx context.Context, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.items {
		if u.ID == user.ID {
			r.items[i] = user
			return user, nil
		}
	}
	return User{}, fmt.Errorf("%w: user %d", httpx.ErrNotFound, user.ID)
}

func (r *repository) Roles(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.roles))
	copy(out, r.roles)
	return out, nil
}

// AddRole appends a role name, rejecting duplicates.
func (r *repository) AddRole(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.roles {
		if existing == name {
			return fmt.Errorf("%w: role %q", httpx.ErrDuplicate, name)
		}
	}
	r.roles = append(r.roles, name)
	return nil
}
