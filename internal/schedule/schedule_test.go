package schedule

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

var (
	testDate  = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	dinnerCfg = domain.OperatingHours{
		ShiftStart:        720,
		ShiftEnd:          1380,
		IntervalMinutes:   30,
		TurnaroundMinutes: 90,
		BufferMinutes:     0,
	}
)

func reservationAt(tableID int64, start types.MinuteOfDay, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{TableID: tableID, Date: testDate, StartMinute: start, PartySize: 2, Status: status}
}

func TestEnumerate(t *testing.T) {
	t.Run("empty day scenario", func(t *testing.T) {
		slots, err := Enumerate(dinnerCfg)
		require.NoError(t, err)
		require.Len(t, slots, 23)
		assert.Equal(t, types.MinuteOfDay(720), slots[0])
		assert.Equal(t, types.MinuteOfDay(1380), slots[len(slots)-1])
	})

	t.Run("end not on step is not exceeded", func(t *testing.T) {
		slots, err := Enumerate(domain.OperatingHours{ShiftStart: 600, ShiftEnd: 700, IntervalMinutes: 45})
		require.NoError(t, err)
		assert.Equal(t, []types.MinuteOfDay{600, 645, 690}, slots)
	})

	t.Run("start equals end", func(t *testing.T) {
		slots, err := Enumerate(domain.OperatingHours{ShiftStart: 600, ShiftEnd: 600, IntervalMinutes: 15})
		require.NoError(t, err)
		assert.Equal(t, []types.MinuteOfDay{600}, slots)
	})

	t.Run("start after end yields empty", func(t *testing.T) {
		slots, err := Enumerate(domain.OperatingHours{ShiftStart: 900, ShiftEnd: 600, IntervalMinutes: 15})
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("non-positive interval", func(t *testing.T) {
		for _, interval := range []int{0, -15} {
			_, err := Enumerate(domain.OperatingHours{ShiftStart: 600, ShiftEnd: 900, IntervalMinutes: interval})
			assert.ErrorIs(t, err, ErrInvalidInterval)
		}
	})
}

func TestEnumerate_Properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	intervals := []int{5, 15, 30, 45, 60, 90}

	for i := 0; i < 200; i++ {
		start := types.MinuteOfDay(rnd.Intn(1440))
		end := types.MinuteOfDay(int(start) + rnd.Intn(1440-int(start)))
		cfg := domain.OperatingHours{ShiftStart: start, ShiftEnd: end, IntervalMinutes: intervals[rnd.Intn(len(intervals))]}

		first, err := Enumerate(cfg)
		require.NoError(t, err)
		second, err := Enumerate(cfg)
		require.NoError(t, err)
		require.Equal(t, first, second)

		require.NotEmpty(t, first)
		assert.Equal(t, cfg.ShiftStart, first[0])
		for j, slot := range first {
			assert.LessOrEqual(t, slot, cfg.ShiftEnd)
			if j > 0 {
				assert.Equal(t, cfg.IntervalMinutes, int(slot-first[j-1]))
			}
		}
	}
}

func TestResolve_EmptyDay(t *testing.T) {
	slots, err := Enumerate(dinnerCfg)
	require.NoError(t, err)

	available := Resolve(1, testDate, slots, nil, dinnerCfg)
	assert.Equal(t, slots, available.Sorted())
}

func TestResolve_SingleConflict(t *testing.T) {
	slots, err := Enumerate(dinnerCfg)
	require.NoError(t, err)

	available := Resolve(1, testDate, slots, []*domain.Reservation{reservationAt(1, 750, domain.StatusConfirmed)}, dinnerCfg)

	for _, blocked := range []types.MinuteOfDay{720, 750, 780, 810} {
		assert.False(t, available.Contains(blocked), "slot %s must be blocked", blocked)
	}
	for _, free := range []types.MinuteOfDay{690, 840, 870, 1380} {
		if Contains(slots, free) {
			assert.True(t, available.Contains(free), "slot %s must be free", free)
		}
	}
	assert.Equal(t, 19, len(available))
}

func TestResolve_IgnoresOtherTablesDatesAndInactive(t *testing.T) {
	slots, err := Enumerate(dinnerCfg)
	require.NoError(t, err)

	otherDay := reservationAt(1, 750, domain.StatusConfirmed)
	otherDay.Date = testDate.AddDate(0, 0, 1)

	reservations := []*domain.Reservation{
		reservationAt(2, 750, domain.StatusConfirmed),
		otherDay,
		reservationAt(1, 750, domain.StatusCancelled),
		reservationAt(1, 750, domain.StatusNoShow),
		reservationAt(1, 750, domain.StatusCompleted),
		nil,
	}

	available := Resolve(1, testDate, slots, reservations, dinnerCfg)
	assert.Len(t, available, len(slots))
}

func TestResolve_PendingBlocks(t *testing.T) {
	available := Resolve(1, testDate, []types.MinuteOfDay{720}, []*domain.Reservation{reservationAt(1, 720, domain.StatusPending)}, dinnerCfg)
	assert.Empty(t, available)
}

func TestResolve_BufferExtendsWindow(t *testing.T) {
	cfg := dinnerCfg
	cfg.BufferMinutes = 30
	slots, err := Enumerate(cfg)
	require.NoError(t, err)

	available := Resolve(1, testDate, slots, []*domain.Reservation{reservationAt(1, 750, domain.StatusConfirmed)}, cfg)
	// [750, 870) blocks through 840, 870 is the first free slot after it
	assert.False(t, available.Contains(840))
	assert.True(t, available.Contains(870))
	assert.False(t, available.Contains(720))
}

func TestResolve_Properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		cfg := domain.OperatingHours{
			ShiftStart:        types.MinuteOfDay(600 + 15*rnd.Intn(8)),
			ShiftEnd:          types.MinuteOfDay(1200 + 15*rnd.Intn(8)),
			IntervalMinutes:   []int{15, 30, 45}[rnd.Intn(3)],
			TurnaroundMinutes: 30 + rnd.Intn(120),
			BufferMinutes:     rnd.Intn(30),
		}
		slots, err := Enumerate(cfg)
		require.NoError(t, err)

		var reservations []*domain.Reservation
		previous := Resolve(1, testDate, slots, reservations, cfg)

		for k := 0; k < 5; k++ {
			reservations = append(reservations, reservationAt(1, types.MinuteOfDay(600+rnd.Intn(700)), domain.StatusConfirmed))
			current := Resolve(1, testDate, slots, reservations, cfg)

			// monotonicity: adding a reservation never frees a slot
			for slot := range current {
				require.True(t, previous.Contains(slot))
			}

			// non-overlap correctness
			for slot := range current {
				for _, r := range reservations {
					rs, re := r.OccupiedInterval(cfg)
					require.False(t, Overlaps(int(slot), int(slot)+cfg.OccupancyMinutes(), rs, re))
				}
			}
			previous = current
		}
	}
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(720, 810, 750, 840))
	assert.True(t, Overlaps(750, 840, 750, 840))
	assert.False(t, Overlaps(840, 930, 750, 840))
	assert.False(t, Overlaps(660, 750, 750, 840))
}

func TestDropStarted(t *testing.T) {
	slots := []types.MinuteOfDay{720, 750, 780}
	assert.Equal(t, []types.MinuteOfDay{750, 780}, DropStarted(slots, 745))
	assert.Equal(t, slots, DropStarted(slots, 0))
	assert.Empty(t, DropStarted(slots, 1000))
}
