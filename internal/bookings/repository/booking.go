package repository

import (
	"context"
	"sync"
	"time"

	"maideasy/pkg/model"
)

type BookingRepository struct {
	mu       sync.RWMutex
	bookings map[int]model.Booking
	order    []int
	nextID   int
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{
		bookings: make(map[int]model.Booking),
		nextID:   1,
	}
}

func (r *BookingRepository) Create(ctx context.Context, booking model.Booking) model.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = r.nextID
	r.nextID++
	booking.Status = model.BookingStatusPending
	booking.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	r.bookings[booking.ID] = booking
	r.order = append(r.order, booking.ID)
	return booking
}

func (r *BookingRepository) FindByID(ctx context.Context, id int) (model.Booking, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	return booking, ok
}

func (r *BookingRepository) FindAll(ctx context.Context) []model.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Booking, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.bookings[id])
	}
	return out
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID int) []model.Booking {
	return r.filter(func(b model.Booking) bool { return b.UserID == userID })
}

func (r *BookingRepository) FindByMaidID(ctx context.Context, maidID int) []model.Booking {
	return r.filter(func(b model.Booking) bool { return b.MaidID == maidID })
}

// UpdateStatus trusts its input: the status vocabulary is enforced at the API
// boundary, not here.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int, status string) (model.Booking, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return model.Booking{}, false
	}

	booking.Status = status
	r.bookings[id] = booking
	return booking, true
}

func (r *BookingRepository) filter(match func(model.Booking) bool) []model.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Booking, 0)
	for _, id := range r.order {
		if match(r.bookings[id]) {
			out = append(out, r.bookings[id])
		}
	}
	return out
}
