package hotel

import (
	"sync"

	"github.com/grandpalace/booking/internal/logger"
)

// RoomRegistry holds the room inventory keyed by room number, in insertion
// order. All operations are serialized by one mutex; the availability
// check-then-set of the reservation lifecycle runs under the reservation
// registry's lock, not this one.
type RoomRegistry struct {
	mu    sync.Mutex
	l     *logger.Logger
	rooms map[string]*Room
	order []string
}

func NewRoomRegistry(l *logger.Logger) *RoomRegistry {
	return &RoomRegistry{
		l:     l,
		rooms: make(map[string]*Room),
	}
}

// Add rejects nil rooms and duplicate numbers with a false result and no
// mutation.
func (r *RoomRegistry) Add(room *Room) bool {
	if room == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rooms[room.Number]; exists {
		r.l.LogWarnf("Room %v already exists", room.Number)

		return false
	}

	r.rooms[room.Number] = room
	r.order = append(r.order, room.Number)

	r.l.LogInfo("Room %v added", room.Number)

	return true
}

func (r *RoomRegistry) FindByNumber(number string) *Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rooms[number]
}

func (r *RoomRegistry) Available() []*Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*Room

	for _, number := range r.order {
		if room := r.rooms[number]; room.Available() {
			result = append(result, room)
		}
	}

	return result
}

func (r *RoomRegistry) ByKind(kind RoomKind) []*Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*Room

	for _, number := range r.order {
		if room := r.rooms[number]; room.Kind == kind {
			result = append(result, room)
		}
	}

	return result
}

func (r *RoomRegistry) All() []*Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*Room, 0, len(r.order))

	for _, number := range r.order {
		result = append(result, r.rooms[number])
	}

	return result
}

func (r *RoomRegistry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.rooms)
}
