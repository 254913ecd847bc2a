package hotel

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grandpalace/booking/internal/logger"
)

func testLogger() *logger.Logger {
	return logger.New(log.New(io.Discard, "", 0))
}

func TestRoomRegistryRejectsDuplicateNumber(t *testing.T) {
	registry := NewRoomRegistry(testLogger())

	assert.True(t, registry.Add(NewStandardRoom("101", 50000, 2)))
	assert.False(t, registry.Add(NewSuiteRoom("101", 150000, 4, true, true)))

	assert.Equal(t, 1, registry.Count())
	assert.Equal(t, RoomKindStandard, registry.FindByNumber("101").Kind)
}

func TestRoomRegistryRejectsNil(t *testing.T) {
	registry := NewRoomRegistry(testLogger())

	assert.False(t, registry.Add(nil))
	assert.Equal(t, 0, registry.Count())
}

func TestRoomRegistryAvailableFilter(t *testing.T) {
	registry := NewRoomRegistry(testLogger())

	booked := NewStandardRoom("101", 50000, 2)
	free := NewStandardRoom("102", 50000, 2)

	registry.Add(booked)
	registry.Add(free)

	booked.SetAvailable(false)

	available := registry.Available()

	assert.Len(t, available, 1)
	assert.Equal(t, "102", available[0].Number)
}

func TestRoomRegistryByKind(t *testing.T) {
	registry := NewRoomRegistry(testLogger())

	registry.Add(NewStandardRoom("101", 50000, 2))
	registry.Add(NewStandardRoom("102", 50000, 2))
	registry.Add(NewSuiteRoom("201", 150000, 4, true, true))

	assert.Len(t, registry.ByKind(RoomKindStandard), 2)
	assert.Len(t, registry.ByKind(RoomKindSuite), 1)
}

func TestRoomRegistryAllIsACopy(t *testing.T) {
	registry := NewRoomRegistry(testLogger())

	registry.Add(NewStandardRoom("101", 50000, 2))
	registry.Add(NewStandardRoom("102", 50000, 2))

	all := registry.All()
	all[0] = nil

	assert.NotNil(t, registry.FindByNumber("101"))
	assert.Len(t, registry.All(), 2)
	assert.Equal(t, "101", registry.All()[0].Number)
}

func TestCustomerRegistryRejectsDuplicateID(t *testing.T) {
	registry := NewCustomerRegistry(testLogger())

	assert.True(t, registry.Add(NewCustomer("C001", "María Victoria", "maria.victoria@email.com", "3001234567")))
	assert.False(t, registry.Add(NewCustomer("C001", "Someone Else", "else@email.com", "3009999999")))

	assert.Equal(t, 1, registry.Count())
	assert.Equal(t, "María Victoria", registry.FindByID("C001").Name)
}

func TestCustomerRegistryFindByEmail(t *testing.T) {
	registry := NewCustomerRegistry(testLogger())

	registry.Add(NewCustomer("C001", "María Victoria", "maria.victoria@email.com", "3001234567"))
	registry.Add(NewCustomer("C002", "Carlos Arturo Barón", "shared@email.com", "3002345678"))
	registry.Add(NewCustomer("C003", "Carlos Augusto Aranzazu", "shared@email.com", "3003456789"))

	// First match in registration order wins.
	found := registry.FindByEmail("shared@email.com")
	assert.NotNil(t, found)
	assert.Equal(t, "C002", found.ID)

	assert.Nil(t, registry.FindByEmail("missing@email.com"))
}

func TestCustomerRegistryAllKeepsInsertionOrder(t *testing.T) {
	registry := NewCustomerRegistry(testLogger())

	registry.Add(NewCustomer("C003", "c", "c@email.com", "3"))
	registry.Add(NewCustomer("C001", "a", "a@email.com", "1"))
	registry.Add(NewCustomer("C002", "b", "b@email.com", "2"))

	all := registry.All()

	assert.Equal(t, []string{"C003", "C001", "C002"}, []string{all[0].ID, all[1].ID, all[2].ID})
}
