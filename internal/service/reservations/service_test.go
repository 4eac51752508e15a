package reservations_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type reservationRepoMock struct {
	mock.Mock
}

func (m *reservationRepoMock) GetByID(ctx context.Context, restaurantID, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, restaurantID, id)
	res, _ := args.Get(0).(*domain.Reservation)
	return res, args.Error(1)
}

func (m *reservationRepoMock) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*domain.Reservation)
	return list, args.Error(1)
}

func (m *reservationRepoMock) Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, res)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	return res, nil
}

type tableRepoMock struct {
	mock.Mock
}

func (m *tableRepoMock) GetByID(ctx context.Context, restaurantID, id int64) (*domain.Table, error) {
	args := m.Called(ctx, restaurantID, id)
	t, _ := args.Get(0).(*domain.Table)
	return t, args.Error(1)
}

type staticSettings struct {
	hours domain.OperatingHours
}

func (s staticSettings) GetOperatingHours(_ context.Context, restaurantID int64) (domain.OperatingHours, error) {
	h := s.hours
	h.RestaurantID = restaurantID
	return h, nil
}

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	today    = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	tomorrow = today.AddDate(0, 0, 1)
	hours    = domain.DefaultOperatingHours(1)
)

func existing() *domain.Reservation {
	return &domain.Reservation{
		ID:           5,
		RestaurantID: 1,
		TableID:      2,
		TableLabel:   "T2",
		GuestName:    "Ada",
		Phone:        "+100",
		PartySize:    2,
		Date:         tomorrow,
		StartMinute:  750,
		EndMinute:    840,
		Status:       domain.StatusConfirmed,
		Source:       domain.DefaultReservationSrc,
	}
}

func newService(resRepo *reservationRepoMock, tblRepo *tableRepoMock) *reservations.Service {
	return reservations.NewService(resRepo, tblRepo, staticSettings{hours: hours}, inlineTx{}, nopLogger{}).
		WithTimeProvider(fixedClock{now: today.Add(10 * time.Hour)})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("guest fields only skip conflict check", func(t *testing.T) {
		resRepo := &reservationRepoMock{}
		resRepo.On("GetByID", ctx, int64(1), int64(5)).Return(existing(), nil)
		resRepo.On("Update", ctx, mock.MatchedBy(func(r *domain.Reservation) bool {
			return r.GuestName == "Grace" && r.Notes != nil && *r.Notes == "window"
		})).Return(nil, nil)

		svc := newService(resRepo, &tableRepoMock{})
		resp, err := svc.Update(ctx, 1, 5, &models.UpdateReservationRequest{
			GuestName: ptr.Ptr(" Grace "),
			Notes:     ptr.Ptr("window"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Grace", resp.GuestName)
		resRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("moving start re-checks conflicts excluding itself", func(t *testing.T) {
		resRepo := &reservationRepoMock{}
		resRepo.On("GetByID", ctx, int64(1), int64(5)).Return(existing(), nil)
		resRepo.On("List", ctx, mock.MatchedBy(func(f domain.ReservationsFilter) bool {
			return f.ExcludeID != nil && *f.ExcludeID == 5 && *f.TableID == 2
		})).Return([]*domain.Reservation{
			{ID: 6, TableID: 2, Date: tomorrow, StartMinute: 960, Status: domain.StatusPending},
		}, nil)
		resRepo.On("Update", ctx, mock.Anything).Return(nil, nil)

		svc := newService(resRepo, &tableRepoMock{})
		resp, err := svc.Update(ctx, 1, 5, &models.UpdateReservationRequest{StartTime: ptr.Ptr(types.MinuteOfDay(840))})
		require.NoError(t, err)
		assert.Equal(t, 840, resp.StartMinute)
		assert.Equal(t, types.MinuteOfDay(930), resp.EndTime)
	})

	t.Run("moving into an occupied slot", func(t *testing.T) {
		resRepo := &reservationRepoMock{}
		resRepo.On("GetByID", ctx, int64(1), int64(5)).Return(existing(), nil)
		resRepo.On("List", ctx, mock.Anything).Return([]*domain.Reservation{
			{ID: 6, TableID: 2, Date: tomorrow, StartMinute: 900, Status: domain.StatusConfirmed},
		}, nil)

		svc := newService(resRepo, &tableRepoMock{})
		_, err := svc.Update(ctx, 1, 5, &models.UpdateReservationRequest{StartTime: ptr.Ptr(types.MinuteOfDay(840))})
		assert.ErrorIs(t, err, reservations.ErrSlotUnavailable)
		resRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("start off the slot grid", func(t *testing.T) {
		resRepo := &reservationRepoMock{}
		resRepo.On("GetByID", ctx, int64(1), int64(5)).Return(existing(), nil)

		svc := newService(resRepo, &tableRepoMock{})
		_, err := svc.Update(ctx, 1, 5, &models.UpdateReservationRequest{StartTime: ptr.Ptr(types.MinuteOfDay(845))})
		assert.ErrorIs(t, err, reservations.ErrInvalidTimeSlot)
	})

	t.Run("moving to an inactive table", func(t *testing.T) {
		resRepo := &reservationRepoMock{}
		resRepo.On("GetByID", ctx, int64(1), int64(5)).Return(existing(), nil)
		tblRepo := &tableRepoMock{}
		tblRepo.On("GetByID", ctx, int64(1), int64(3)).
			Return(&domain.Table{ID: 3, RestaurantID: 1, Label: "T3", Capacity: 4, Active: false}, nil)

		svc := newService(resRepo, tblRepo)
		_, err := svc.Update(ctx, 1, 5, &models.UpdateReservationRequest{TableID: ptr.Ptr(int64(3))})
		assert.ErrorIs(t, err, reservations.ErrTableNotSuitable)
	})

	t.Run("cancelling does not check conflicts", func(t *testing.T) {
		resRepo := &reservationRepoMock{}
		resRepo.On("GetByID", ctx, int64(1), int64(5)).Return(existing(), nil)
		resRepo.On("Update", ctx, mock.MatchedBy(func(r *domain.Reservation) bool {
			return r.Status == domain.StatusCancelled
		})).Return(nil, nil)

		svc := newService(resRepo, &tableRepoMock{})
		resp, err := svc.Update(ctx, 1, 5, &models.UpdateReservationRequest{Status: ptr.Ptr("Cancelled")})
		require.NoError(t, err)
		assert.Equal(t, "Cancelled", resp.Status)
	})

	t.Run("reactivating re-checks conflicts", func(t *testing.T) {
		cancelled := existing()
		cancelled.Status = domain.StatusCancelled

		resRepo := &reservationRepoMock{}
		resRepo.On("GetByID", ctx, int64(1), int64(5)).Return(cancelled, nil)
		resRepo.On("List", ctx, mock.Anything).Return([]*domain.Reservation{
			{ID: 7, TableID: 2, Date: tomorrow, StartMinute: 720, Status: domain.StatusConfirmed},
		}, nil)

		svc := newService(resRepo, &tableRepoMock{})
		_, err := svc.Update(ctx, 1, 5, &models.UpdateReservationRequest{Status: ptr.Ptr("Confirmed")})
		assert.ErrorIs(t, err, reservations.ErrSlotUnavailable)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := newService(&reservationRepoMock{}, &tableRepoMock{})
		_, err := svc.Update(ctx, 1, 5, &models.UpdateReservationRequest{Status: ptr.Ptr("Seated")})
		assert.ErrorIs(t, err, reservations.ErrInvalidStatus)
	})

	t.Run("past date", func(t *testing.T) {
		resRepo := &reservationRepoMock{}
		resRepo.On("GetByID", ctx, int64(1), int64(5)).Return(existing(), nil)

		svc := newService(resRepo, &tableRepoMock{})
		_, err := svc.Update(ctx, 1, 5, &models.UpdateReservationRequest{Date: ptr.Ptr(today.AddDate(0, 0, -1))})
		assert.ErrorIs(t, err, reservations.ErrInvalidDate)
	})

	t.Run("not found", func(t *testing.T) {
		resRepo := &reservationRepoMock{}
		resRepo.On("GetByID", ctx, int64(1), int64(5)).Return(nil, reservationRepo.ErrReservationNotFound)

		svc := newService(resRepo, &tableRepoMock{})
		_, err := svc.Update(ctx, 1, 5, &models.UpdateReservationRequest{Phone: ptr.Ptr("+1")})
		assert.ErrorIs(t, err, reservations.ErrReservationNotFound)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	resRepo := &reservationRepoMock{}
	resRepo.On("List", ctx, mock.MatchedBy(func(f domain.ReservationsFilter) bool {
		return f.RestaurantID == 1 && f.TableID != nil && *f.TableID == 2 && f.Status == nil
	})).Return([]*domain.Reservation{existing()}, nil)

	svc := newService(resRepo, &tableRepoMock{})
	resp, err := svc.List(ctx, &models.ListReservationsRequest{RestaurantID: 1, TableID: ptr.Ptr(int64(2)), Date: &tomorrow})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "2026-10-20", resp.Reservations[0].Date)
	assert.Equal(t, "12:30 PM", resp.Reservations[0].StartTime.String())

	_, err = svc.List(ctx, &models.ListReservationsRequest{RestaurantID: 1, Status: ptr.Ptr("bogus")})
	assert.ErrorIs(t, err, reservations.ErrInvalidStatus)
}
