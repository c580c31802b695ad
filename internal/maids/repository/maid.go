package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"maideasy/pkg/model"
)

type MaidRepository struct {
	mu     sync.RWMutex
	maids  map[int]model.Maid
	order  []int
	nextID int
}

func NewMaidRepository() *MaidRepository {
	return &MaidRepository{
		maids:  make(map[int]model.Maid),
		nextID: 1,
	}
}

func (r *MaidRepository) Create(ctx context.Context, maid model.Maid) model.Maid {
	r.mu.Lock()
	defer r.mu.Unlock()

	maid.ID = r.nextID
	r.nextID++
	if maid.JoinedAt == "" {
		maid.JoinedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if maid.Services == nil {
		maid.Services = []string{}
	}
	maid.IsAvailable = true

	r.maids[maid.ID] = maid
	r.order = append(r.order, maid.ID)
	return maid
}

func (r *MaidRepository) FindByID(ctx context.Context, id int) (model.Maid, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	maid, ok := r.maids[id]
	return maid, ok
}

func (r *MaidRepository) FindByEmail(ctx context.Context, email string) (model.Maid, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if strings.EqualFold(r.maids[id].Email, email) {
			return r.maids[id], true
		}
	}
	return model.Maid{}, false
}

func (r *MaidRepository) FindAll(ctx context.Context) []model.Maid {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Maid, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.maids[id])
	}
	return out
}

func (r *MaidRepository) FindByCity(ctx context.Context, city string) []model.Maid {
	return r.filter(func(m model.Maid) bool {
		return strings.EqualFold(m.City, city)
	})
}

func (r *MaidRepository) FindByLocality(ctx context.Context, locality string) []model.Maid {
	return r.filter(func(m model.Maid) bool {
		return strings.EqualFold(m.Locality, locality)
	})
}

// UpdateAvailability is the only mutation a Maid record supports.
func (r *MaidRepository) UpdateAvailability(ctx context.Context, id int, isAvailable bool) (model.Maid, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	maid, ok := r.maids[id]
	if !ok {
		return model.Maid{}, false
	}

	maid.IsAvailable = isAvailable
	r.maids[id] = maid
	return maid, true
}

func (r *MaidRepository) filter(match func(model.Maid) bool) []model.Maid {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Maid, 0)
	for _, id := range r.order {
		if match(r.maids[id]) {
			out = append(out, r.maids[id])
		}
	}
	return out
}
