package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"maideasy/pkg/model"
)

type WaitlistRepository struct {
	mu      sync.RWMutex
	entries map[int]model.WaitlistEntry
	order   []int
	nextID  int
}

func NewWaitlistRepository() *WaitlistRepository {
	return &WaitlistRepository{
		entries: make(map[int]model.WaitlistEntry),
		nextID:  1,
	}
}

func (r *WaitlistRepository) Create(ctx context.Context, entry model.WaitlistEntry) model.WaitlistEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	r.nextID++
	entry.JoinedAt = time.Now().UTC().Format(time.RFC3339)

	r.entries[entry.ID] = entry
	r.order = append(r.order, entry.ID)
	return entry
}

func (r *WaitlistRepository) FindByEmail(ctx context.Context, email string) (model.WaitlistEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if strings.EqualFold(r.entries[id].Email, email) {
			return r.entries[id], true
		}
	}
	return model.WaitlistEntry{}, false
}

func (r *WaitlistRepository) FindAll(ctx context.Context) []model.WaitlistEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.WaitlistEntry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

func (r *WaitlistRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
