package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_BlocksTable(t *testing.T) {
	assert.True(t, StatusConfirmed.BlocksTable())
	assert.True(t, StatusPending.BlocksTable())
	assert.False(t, StatusCompleted.BlocksTable())
	assert.False(t, StatusCancelled.BlocksTable())
	assert.False(t, StatusNoShow.BlocksTable())

	for _, s := range ActiveStatuses {
		assert.True(t, s.BlocksTable(), s)
	}
	for _, s := range InactiveStatuses {
		assert.False(t, s.BlocksTable(), s)
	}
}

func TestReservationStatus_IsValid(t *testing.T) {
	assert.True(t, StatusNoShow.IsValid())
	assert.False(t, ReservationStatus("Seated").IsValid())
	assert.True(t, StatusPending.IsInitial())
	assert.False(t, StatusCompleted.IsInitial())
}

func TestOperatingHours(t *testing.T) {
	h := OperatingHours{ShiftStart: 720, ShiftEnd: 1380, IntervalMinutes: 30, TurnaroundMinutes: 90, BufferMinutes: 15}
	assert.Equal(t, 105, h.OccupancyMinutes())
	assert.Equal(t, 660, h.ShiftLength())
	assert.True(t, h.CanHostReservation())

	h.ShiftEnd = 700
	assert.Equal(t, 0, h.ShiftLength())
	assert.False(t, h.CanHostReservation())
}

func TestReservation_OccupiedInterval(t *testing.T) {
	r := Reservation{StartMinute: 750, Status: StatusConfirmed}
	start, end := r.OccupiedInterval(OperatingHours{TurnaroundMinutes: 90})
	assert.Equal(t, 750, start)
	assert.Equal(t, 840, end)
}

func TestTable_Fits(t *testing.T) {
	table := Table{Capacity: 4, Active: true}
	assert.True(t, table.Fits(4))
	assert.False(t, table.Fits(5))

	table.Active = false
	assert.False(t, table.Fits(2))
}

func TestDates(t *testing.T) {
	now := time.Date(2026, 10, 19, 18, 30, 0, 0, time.UTC)
	assert.True(t, IsSameDay(now, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)))
	assert.True(t, IsDateInPast(time.Date(2026, 10, 18, 23, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), DateOnly(now))
}

func TestReservationUpdate(t *testing.T) {
	var u ReservationUpdate
	assert.True(t, u.IsEmpty())
	assert.False(t, u.MovesSlot())

	notes := "window seat"
	u.Notes = &notes
	assert.False(t, u.IsEmpty())
	assert.False(t, u.MovesSlot())

	tableID := int64(3)
	u.TableID = &tableID
	assert.True(t, u.MovesSlot())
}
