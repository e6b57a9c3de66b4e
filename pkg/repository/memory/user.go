package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/repository"
)

type userRepository struct {
	mu           sync.RWMutex
	users        map[model.UserID]*model.User
	loginHistory map[model.UserID][]*model.LoginHistory
}

func newUserRepository() *userRepository {
	return &userRepository{
		users:        make(map[model.UserID]*model.User),
		loginHistory: make(map[model.UserID][]*model.LoginHistory),
	}
}

func copyUser(u *model.User) *model.User {
	c := *u
	return &c
}

func (r *userRepository) Create(_ context.Context, user *model.User) (*model.User, error) {
	if user.ID == "" {
		return nil, goerr.New("user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	user.Role = user.Role.Normalize()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.users[user.ID] = copyUser(user)
	return user, nil
}

func (r *userRepository) Get(_ context.Context, id model.UserID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "user not found", goerr.V("id", id))
	}
	return copyUser(user), nil
}

func (r *userRepository) Update(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.ID]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "user not found", goerr.V("id", user.ID))
	}

	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now().UTC()
	r.users[user.ID] = copyUser(user)
	return user, nil
}

func (r *userRepository) ListByRole(_ context.Context, role types.Role) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var users []*model.User
	for _, u := range r.users {
		if u.Role == role {
			users = append(users, copyUser(u))
		}
	}
	return users, nil
}

func (r *userRepository) AppendLoginHistory(_ context.Context, id model.UserID, entry *model.LoginHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *entry
	r.loginHistory[id] = append(r.loginHistory[id], &c)
	return nil
}
