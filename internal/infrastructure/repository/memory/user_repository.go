package memory

import (
	"context"
	"sync"

	"github.com/jogolindo/jogolindo-api/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]user.Principal
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]user.Principal)}
}

func (r *UserRepository) Upsert(_ context.Context, p user.Principal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[p.ID] = p

	return nil
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.Principal, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.users[userID]

	return p, ok, nil
}
