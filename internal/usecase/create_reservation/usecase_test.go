package create_reservation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	tableRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
	uc "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type reservationRepoMock struct {
	mock.Mock
}

func (m *reservationRepoMock) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, res)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	res.ID = 100
	return res, nil
}

func (m *reservationRepoMock) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*domain.Reservation)
	return list, args.Error(1)
}

type tableRepoMock struct {
	mock.Mock
}

func (m *tableRepoMock) GetByID(ctx context.Context, restaurantID, id int64) (*domain.Table, error) {
	args := m.Called(ctx, restaurantID, id)
	t, _ := args.Get(0).(*domain.Table)
	return t, args.Error(1)
}

func (m *tableRepoMock) List(ctx context.Context, restaurantID int64, activeOnly bool) ([]*domain.Table, error) {
	args := m.Called(ctx, restaurantID, activeOnly)
	list, _ := args.Get(0).([]*domain.Table)
	return list, args.Error(1)
}

type staticSettings struct {
	hours domain.OperatingHours
}

func (s staticSettings) GetOperatingHours(context.Context, int64) (domain.OperatingHours, error) {
	return s.hours, nil
}

type txSpy struct {
	calls int
}

func (tx *txSpy) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type outcomes []string

func (o *outcomes) RecordReservation(outcome string) { *o = append(*o, outcome) }

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	hours = domain.OperatingHours{
		RestaurantID:      1,
		ShiftStart:        720,
		ShiftEnd:          1380,
		IntervalMinutes:   30,
		TurnaroundMinutes: 90,
		BufferMinutes:     15,
	}
	today    = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	tomorrow = today.AddDate(0, 0, 1)

	small = &domain.Table{ID: 1, RestaurantID: 1, Label: "A1", Capacity: 2, Active: true}
	large = &domain.Table{ID: 2, RestaurantID: 1, Label: "B1", Capacity: 6, Active: true}
	patio = &domain.Table{ID: 3, RestaurantID: 1, Label: "C1", Capacity: 6, Active: true}
)

type fixture struct {
	reservations *reservationRepoMock
	tables       *tableRepoMock
	tx           *txSpy
	outcomes     *outcomes
	useCase      *uc.UseCase
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		reservations: &reservationRepoMock{},
		tables:       &tableRepoMock{},
		tx:           &txSpy{},
		outcomes:     &outcomes{},
	}
	f.useCase = uc.NewUseCase(f.reservations, f.tables, staticSettings{hours: hours}, f.tx, f.outcomes, nopLogger{}).
		WithTimeProvider(fixedClock{now: now})
	return f
}

func request() *uc.Request {
	return &uc.Request{
		RestaurantID: 1,
		GuestName:    " Ada Lovelace ",
		Phone:        "+44 20 7946 0000",
		PartySize:    4,
		Date:         tomorrow,
		StartTime:    1140,
	}
}

func forTable(id int64) interface{} {
	return mock.MatchedBy(func(f domain.ReservationsFilter) bool {
		return f.TableID != nil && *f.TableID == id && f.Date != nil && !f.IncludeInactive
	})
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("requested table", func(t *testing.T) {
		f := newFixture(today.Add(9 * time.Hour))
		f.tables.On("GetByID", ctx, int64(1), int64(2)).Return(large, nil)
		f.reservations.On("List", ctx, forTable(2)).Return([]*domain.Reservation{
			{TableID: 2, Date: tomorrow, StartMinute: 1020, Status: domain.StatusConfirmed},
		}, nil)
		f.reservations.On("Create", ctx, mock.MatchedBy(func(r *domain.Reservation) bool {
			return r.GuestName == "Ada Lovelace" && r.TableLabel == "B1" && r.Status == domain.StatusConfirmed &&
				r.Source == domain.DefaultReservationSrc && r.EndMinute == 1245
		})).Return(nil, nil)

		req := request()
		req.TableID = ptr.Ptr(int64(2))

		resp, err := f.useCase.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(100), resp.ID)
		assert.Equal(t, "7:00 PM", resp.StartTime.String())
		assert.Equal(t, types.MinuteOfDay(1245), resp.EndTime)
		assert.Equal(t, 1, f.tx.calls)
		assert.Equal(t, outcomes{"created"}, *f.outcomes)
	})

	t.Run("requested table is taken", func(t *testing.T) {
		f := newFixture(today.Add(9 * time.Hour))
		f.tables.On("GetByID", ctx, int64(1), int64(2)).Return(large, nil)
		f.reservations.On("List", ctx, forTable(2)).Return([]*domain.Reservation{
			{TableID: 2, Date: tomorrow, StartMinute: 1080, Status: domain.StatusPending},
		}, nil)

		req := request()
		req.TableID = ptr.Ptr(int64(2))

		_, err := f.useCase.Execute(ctx, req)
		assert.ErrorIs(t, err, uc.ErrSlotUnavailable)
		f.reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		assert.Equal(t, outcomes{"conflict"}, *f.outcomes)
	})

	t.Run("requested table too small", func(t *testing.T) {
		f := newFixture(today.Add(9 * time.Hour))
		f.tables.On("GetByID", ctx, int64(1), int64(1)).Return(small, nil)

		req := request()
		req.TableID = ptr.Ptr(int64(1))

		_, err := f.useCase.Execute(ctx, req)
		assert.ErrorIs(t, err, uc.ErrTableNotSuitable)
	})

	t.Run("requested table missing", func(t *testing.T) {
		f := newFixture(today.Add(9 * time.Hour))
		f.tables.On("GetByID", ctx, int64(1), int64(9)).Return(nil, tableRepo.ErrTableNotFound)

		req := request()
		req.TableID = ptr.Ptr(int64(9))

		_, err := f.useCase.Execute(ctx, req)
		assert.ErrorIs(t, err, uc.ErrTableNotFound)
	})

	t.Run("auto pick skips small and busy tables", func(t *testing.T) {
		f := newFixture(today.Add(9 * time.Hour))
		f.tables.On("List", ctx, int64(1), true).Return([]*domain.Table{small, large, patio}, nil)
		f.reservations.On("List", ctx, forTable(2)).Return([]*domain.Reservation{
			{TableID: 2, Date: tomorrow, StartMinute: 1140, Status: domain.StatusConfirmed},
		}, nil)
		f.reservations.On("List", ctx, forTable(3)).Return([]*domain.Reservation{}, nil)
		f.reservations.On("Create", ctx, mock.MatchedBy(func(r *domain.Reservation) bool { return r.TableID == 3 })).
			Return(nil, nil)

		resp, err := f.useCase.Execute(ctx, request())
		require.NoError(t, err)
		assert.Equal(t, "C1", resp.TableLabel)
		f.reservations.AssertNotCalled(t, "List", ctx, forTable(1))
	})

	t.Run("auto pick with every table taken", func(t *testing.T) {
		f := newFixture(today.Add(9 * time.Hour))
		f.tables.On("List", ctx, int64(1), true).Return([]*domain.Table{large}, nil)
		f.reservations.On("List", ctx, forTable(2)).Return([]*domain.Reservation{
			{TableID: 2, Date: tomorrow, StartMinute: 1200, Status: domain.StatusConfirmed},
		}, nil)

		_, err := f.useCase.Execute(ctx, request())
		assert.ErrorIs(t, err, uc.ErrSlotUnavailable)
	})

	t.Run("auto pick without a fitting table", func(t *testing.T) {
		f := newFixture(today.Add(9 * time.Hour))
		f.tables.On("List", ctx, int64(1), true).Return([]*domain.Table{small}, nil)

		_, err := f.useCase.Execute(ctx, request())
		assert.ErrorIs(t, err, uc.ErrTableNotSuitable)
	})

	t.Run("time off the slot grid", func(t *testing.T) {
		f := newFixture(today.Add(9 * time.Hour))

		req := request()
		req.StartTime = 1145

		_, err := f.useCase.Execute(ctx, req)
		assert.ErrorIs(t, err, uc.ErrInvalidTimeSlot)
		assert.Equal(t, outcomes{"rejected"}, *f.outcomes)
	})

	t.Run("slot already started today", func(t *testing.T) {
		f := newFixture(today.Add(20 * time.Hour))

		req := request()
		req.Date = today

		_, err := f.useCase.Execute(ctx, req)
		assert.ErrorIs(t, err, uc.ErrInvalidTimeSlot)
		assert.Zero(t, f.tx.calls)
	})

	t.Run("past date", func(t *testing.T) {
		f := newFixture(today.Add(9 * time.Hour))

		req := request()
		req.Date = today.AddDate(0, 0, -1)

		_, err := f.useCase.Execute(ctx, req)
		assert.ErrorIs(t, err, uc.ErrInvalidDate)
	})

	t.Run("pending status and custom source", func(t *testing.T) {
		f := newFixture(today.Add(9 * time.Hour))
		f.tables.On("List", ctx, int64(1), true).Return([]*domain.Table{large}, nil)
		f.reservations.On("List", ctx, forTable(2)).Return([]*domain.Reservation{}, nil)
		f.reservations.On("Create", ctx, mock.MatchedBy(func(r *domain.Reservation) bool {
			return r.Status == domain.StatusPending && r.Source == "Web"
		})).Return(nil, nil)

		req := request()
		req.Status = ptr.Ptr("Pending")
		req.Source = ptr.Ptr("Web")

		resp, err := f.useCase.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Pending", resp.Status)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(today.Add(9 * time.Hour))
		f.tables.On("List", ctx, int64(1), true).Return(nil, errors.New("db down"))

		_, err := f.useCase.Execute(ctx, request())
		assert.ErrorIs(t, err, uc.ErrInternal)
		assert.Equal(t, outcomes{"error"}, *f.outcomes)
	})
}

func TestUseCase_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(r *uc.Request)
	}{
		{name: "missing name", mutate: func(r *uc.Request) { r.GuestName = "  " }},
		{name: "missing phone", mutate: func(r *uc.Request) { r.Phone = "" }},
		{name: "zero party", mutate: func(r *uc.Request) { r.PartySize = 0 }},
		{name: "missing date", mutate: func(r *uc.Request) { r.Date = time.Time{} }},
		{name: "start out of day", mutate: func(r *uc.Request) { r.StartTime = types.MinutesPerDay }},
		{name: "completed status", mutate: func(r *uc.Request) { r.Status = ptr.Ptr("Completed") }},
		{name: "non-positive table", mutate: func(r *uc.Request) { r.TableID = ptr.Ptr(int64(0)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(today)
			req := request()
			tt.mutate(req)

			_, err := f.useCase.Execute(ctx, req)
			assert.ErrorIs(t, err, uc.ErrInvalidInput)
			assert.Zero(t, f.tx.calls)
		})
	}
}
