package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grandpalace/booking/internal/hotel"
)

func TestCreateMarksRoomsUnavailable(t *testing.T) {
	registry := NewRegistry(testLogger())

	room1 := hotel.NewStandardRoom("101", 50000, 2)
	room2 := hotel.NewSuiteRoom("201", 150000, 4, true, true)

	res := New(testLogger(), "R001", testCustomer(), date(2026, 9, 7), date(2026, 9, 10), &methodStub{available: true})
	res.AddRoom(room1)
	res.AddRoom(room2)

	assert.True(t, registry.Create(res))
	assert.False(t, room1.Available())
	assert.False(t, room2.Available())
	assert.Equal(t, 1, registry.Count())
	assert.Equal(t, res, registry.FindByID("R001"))
}

func TestCreateIsAllOrNothing(t *testing.T) {
	registry := NewRegistry(testLogger())

	room1 := hotel.NewStandardRoom("101", 50000, 2)
	room2 := hotel.NewStandardRoom("102", 50000, 2)

	// Both rooms were available when added; one got locked in the meantime.
	res := New(testLogger(), "R001", testCustomer(), date(2026, 9, 7), date(2026, 9, 10), nil)
	res.AddRoom(room1)
	res.AddRoom(room2)

	room2.SetAvailable(false)

	assert.False(t, registry.Create(res))
	assert.True(t, room1.Available())
	assert.Equal(t, 0, registry.Count())
	assert.Nil(t, registry.FindByID("R001"))
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	registry := NewRegistry(testLogger())

	room1 := hotel.NewStandardRoom("101", 50000, 2)
	room2 := hotel.NewStandardRoom("102", 50000, 2)

	first := New(testLogger(), "R001", testCustomer(), date(2026, 9, 7), date(2026, 9, 10), nil)
	first.AddRoom(room1)

	second := New(testLogger(), "R001", testCustomer(), date(2026, 9, 7), date(2026, 9, 10), nil)
	second.AddRoom(room2)

	assert.True(t, registry.Create(first))
	assert.False(t, registry.Create(second))

	// The rejected reservation left its room untouched.
	assert.True(t, room2.Available())
	assert.Equal(t, 1, registry.Count())
}

func TestCreateRejectsNil(t *testing.T) {
	registry := NewRegistry(testLogger())

	assert.False(t, registry.Create(nil))
	assert.Equal(t, 0, registry.Count())
}

func TestCancelReleasesRooms(t *testing.T) {
	registry := NewRegistry(testLogger())

	room1 := hotel.NewStandardRoom("101", 50000, 2)
	room2 := hotel.NewSuiteRoom("201", 150000, 4, true, true)

	res := New(testLogger(), "R001", testCustomer(), date(2026, 9, 7), date(2026, 9, 10), nil)
	res.AddRoom(room1)
	res.AddRoom(room2)

	assert.True(t, registry.Create(res))
	assert.True(t, registry.Cancel("R001"))

	assert.True(t, room1.Available())
	assert.True(t, room2.Available())
	assert.Nil(t, registry.FindByID("R001"))
	assert.Equal(t, 0, registry.Count())
}

func TestCancelUnknownID(t *testing.T) {
	registry := NewRegistry(testLogger())

	assert.False(t, registry.Cancel("R999"))
}

func TestRoomCanBeRebookedAfterCancel(t *testing.T) {
	registry := NewRegistry(testLogger())

	room := hotel.NewStandardRoom("101", 50000, 2)

	first := New(testLogger(), "R001", testCustomer(), date(2026, 9, 7), date(2026, 9, 10), nil)
	first.AddRoom(room)
	assert.True(t, registry.Create(first))

	assert.True(t, registry.Cancel("R001"))

	second := New(testLogger(), "R002", testCustomer(), date(2026, 9, 14), date(2026, 9, 17), nil)
	second.AddRoom(room)
	assert.True(t, registry.Create(second))
	assert.False(t, room.Available())
}

// A room added to two draft reservations is only committed once; the second
// commit fails whole. The optimistic add-time check is deliberately weak,
// the registry is the authority.
func TestTwoDraftsRaceForOneRoom(t *testing.T) {
	registry := NewRegistry(testLogger())

	room := hotel.NewStandardRoom("101", 50000, 2)

	first := New(testLogger(), "R001", testCustomer(), date(2026, 9, 7), date(2026, 9, 10), nil)
	first.AddRoom(room)

	second := New(testLogger(), "R002", testCustomer(), date(2026, 9, 8), date(2026, 9, 11), nil)
	second.AddRoom(room)

	assert.Len(t, second.Rooms(), 1)

	assert.True(t, registry.Create(first))
	assert.False(t, registry.Create(second))
	assert.Equal(t, 1, registry.Count())
}

func TestByCustomer(t *testing.T) {
	registry := NewRegistry(testLogger())

	maria := hotel.NewCustomer("C001", "María Victoria", "maria.victoria@email.com", "3001234567")
	carlos := hotel.NewCustomer("C002", "Carlos Arturo Barón", "carlos.baron@email.com", "3002345678")

	res1 := New(testLogger(), "R001", maria, date(2026, 9, 7), date(2026, 9, 10), nil)
	res1.AddRoom(hotel.NewStandardRoom("101", 50000, 2))

	res2 := New(testLogger(), "R002", carlos, date(2026, 9, 7), date(2026, 9, 10), nil)
	res2.AddRoom(hotel.NewStandardRoom("102", 50000, 2))

	res3 := New(testLogger(), "R003", maria, date(2026, 9, 14), date(2026, 9, 17), nil)
	res3.AddRoom(hotel.NewSuiteRoom("201", 150000, 4, true, true))

	assert.True(t, registry.Create(res1))
	assert.True(t, registry.Create(res2))
	assert.True(t, registry.Create(res3))

	byMaria := registry.ByCustomer("C001")
	assert.Len(t, byMaria, 2)
	assert.Equal(t, "R001", byMaria[0].ID())
	assert.Equal(t, "R003", byMaria[1].ID())

	assert.Empty(t, registry.ByCustomer("C999"))
	assert.Len(t, registry.All(), 3)
}
