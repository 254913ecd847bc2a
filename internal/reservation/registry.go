package reservation

import (
	"sync"

	"github.com/grandpalace/booking/internal/logger"
)

// Registry owns the reservation lifecycle: committing a reservation flips
// all its rooms to unavailable, cancelling flips them back. The mutex
// serializes the availability check-then-set, which would otherwise race
// between concurrent Create calls.
type Registry struct {
	mu           sync.Mutex
	l            *logger.Logger
	reservations map[string]*Reservation
	order        []string
}

func NewRegistry(l *logger.Logger) *Registry {
	return &Registry{
		l:            l,
		reservations: make(map[string]*Reservation),
	}
}

// Create commits a reservation. If the id is taken or any referenced room
// is unavailable, nothing changes and the result is false; otherwise every
// room is marked unavailable and the reservation is stored.
func (r *Registry) Create(res *Reservation) bool {
	if res == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reservations[res.ID()]; exists {
		r.l.LogWarnf("Reservation %v already exists", res.ID())

		return false
	}

	rooms := res.Rooms()

	for _, room := range rooms {
		if !room.Available() {
			r.l.LogWarnf("Room %v is not available, reservation %v rejected", room.Number, res.ID())

			return false
		}
	}

	for _, room := range rooms {
		room.SetAvailable(false)
	}

	r.reservations[res.ID()] = res
	r.order = append(r.order, res.ID())

	r.l.LogInfo("Reservation %v created, %v room(s), total %.2f", res.ID(), len(rooms), res.TotalPrice())

	return true
}

// Cancel releases every room held by the reservation and removes it from
// the registry.
func (r *Registry) Cancel(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, exists := r.reservations[id]
	if !exists {
		r.l.LogWarnf("Reservation %v not found", id)

		return false
	}

	for _, room := range res.Rooms() {
		room.SetAvailable(true)
	}

	delete(r.reservations, id)

	for i, resID := range r.order {
		if resID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)

			break
		}
	}

	r.l.LogInfo("Reservation %v cancelled", id)

	return true
}

func (r *Registry) FindByID(id string) *Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.reservations[id]
}

func (r *Registry) ByCustomer(customerID string) []*Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*Reservation

	for _, id := range r.order {
		res := r.reservations[id]
		if res.Customer() != nil && res.Customer().ID == customerID {
			result = append(result, res)
		}
	}

	return result
}

func (r *Registry) All() []*Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*Reservation, 0, len(r.order))

	for _, id := range r.order {
		result = append(result, r.reservations[id])
	}

	return result
}

func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.reservations)
}
