package get_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

type serviceMock struct {
	mock.Mock
}

func (m *serviceMock) GetByID(ctx context.Context, restaurantID, id int64) (*models.ReservationResponse, error) {
	args := m.Called(ctx, restaurantID, id)
	if resp, ok := args.Get(0).(*models.ReservationResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler(t *testing.T) {
	svc := new(serviceMock)
	svc.On("GetByID", mock.Anything, int64(4), int64(11)).Return(&models.ReservationResponse{ID: 11, GuestName: "Bo"}, nil)
	svc.On("GetByID", mock.Anything, int64(4), int64(12)).Return(nil, reservations.ErrReservationNotFound)
	svc.On("GetByID", mock.Anything, int64(4), int64(13)).Return(nil, reservations.ErrInternal)

	r := mux.NewRouter()
	r.Use(middleware.RestaurantScope)
	r.HandleFunc("/reservations/{reservationId}", NewHandler(svc, nopLogger{}).Handle)

	tests := []struct {
		path   string
		status int
	}{
		{path: "/reservations/11", status: http.StatusOK},
		{path: "/reservations/12", status: http.StatusNotFound},
		{path: "/reservations/13", status: http.StatusInternalServerError},
		{path: "/reservations/abc", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(middleware.RestaurantIDHeader, "4")
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
