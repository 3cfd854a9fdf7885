package repositories

import "sync"

// Identified is implemented by every booking record kept in a BookingRepo.
type Identified interface {
	BookingID() int64
}

// BookingRepo is the process-lifetime booking ledger of one service. Ids start
// at 1 and increase by one per created booking; nothing is ever removed.
type BookingRepo[T Identified] struct {
	mu     sync.Mutex
	items  []T
	nextID int64
}

func NewBookingRepo[T Identified]() *BookingRepo[T] {
	return &BookingRepo[T]{items: []T{}, nextID: 1}
}

// Create reserves the next id, builds the record with it and appends it.
func (r *BookingRepo[T]) Create(build func(id int64) T) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := build(r.nextID)
	r.items = append(r.items, item)
	r.nextID++
	return item
}

// List returns a snapshot of every booking in creation order.
func (r *BookingRepo[T]) List() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Find returns the bookings matching pred in creation order.
func (r *BookingRepo[T]) Find(pred func(T) bool) []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []T{}
	for _, item := range r.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

func (r *BookingRepo[T]) Get(id int64) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.BookingID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
