package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"maideasy/pkg/model"
)

// UserRepository is a dumb persistence primitive: it assigns ids and fills
// defaults but never enforces uniqueness. That policy belongs to the service
// layer, via the FindBy lookups below.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[int]model.User
	order  []int
	nextID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int]model.User),
		nextID: 1,
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) model.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if user.Role == "" {
		user.Role = model.RoleCustomer
	}

	r.users[user.ID] = user
	r.order = append(r.order, user.ID)
	return user
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	return user, ok
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.users[id].Username == username {
			return r.users[id], true
		}
	}
	return model.User{}, false
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if strings.EqualFold(r.users[id].Email, email) {
			return r.users[id], true
		}
	}
	return model.User{}, false
}
