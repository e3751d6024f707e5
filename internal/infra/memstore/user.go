package memstore

import (
	"context"
	"sort"
	"sync"

	"reservatenis/internal/domain/user"
	"reservatenis/internal/infra"

	"github.com/google/uuid"
)

type UserRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID: make(map[uuid.UUID]*user.User),
	}
}

func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Email().Value() == u.Email().Value() {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "email already registered", nil)
		}
	}

	r.byID[u.ID()] = u
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email().Value() == email {
			return u, nil
		}
	}
	return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
}

func (r *UserRepository) List(_ context.Context) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := []*user.User{}
	for _, u := range r.byID {
		users = append(users, u)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].Email().Value() < users[j].Email().Value()
	})
	return users, nil
}

func (r *UserRepository) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[u.ID()]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	for _, existing := range r.byID {
		if existing.ID() != u.ID() && existing.Email().Value() == u.Email().Value() {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "email already registered", nil)
		}
	}
	r.byID[u.ID()] = u
	return nil
}
