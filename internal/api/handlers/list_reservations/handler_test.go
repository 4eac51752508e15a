package list_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

type serviceMock struct {
	mock.Mock
}

func (m *serviceMock) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*models.ReservationListResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(svc ReservationService, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.RestaurantIDHeader, "2")
	rec := httptest.NewRecorder()
	middleware.RestaurantScope(http.HandlerFunc(NewHandler(svc, nopLogger{}).Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler_TableAndDateFilter(t *testing.T) {
	svc := new(serviceMock)
	svc.On("List", mock.Anything, mock.MatchedBy(func(req *models.ListReservationsRequest) bool {
		return req.RestaurantID == 2 && req.TableID != nil && *req.TableID == 9 &&
			req.Date != nil && req.Date.Format("2006-01-02") == "2026-10-20" &&
			req.Status == nil && !req.IncludeInactive
	})).Return(&models.ReservationListResponse{Reservations: []models.ReservationResponse{{ID: 1}}}, nil)

	rec := get(svc, "/reservations?tableId=9&date=2026-10-20")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reservations"`)
	svc.AssertExpectations(t)
}

func TestHandler_InvalidParams(t *testing.T) {
	for _, target := range []string{
		"/reservations?tableId=x",
		"/reservations?date=2026/10/20",
		"/reservations?includeInactive=maybe",
	} {
		t.Run(target, func(t *testing.T) {
			svc := new(serviceMock)
			rec := get(svc, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_ServiceErrors(t *testing.T) {
	svc := new(serviceMock)
	svc.On("List", mock.Anything, mock.Anything).Return(nil, reservations.ErrInvalidStatus).Once()
	assert.Equal(t, http.StatusBadRequest, get(svc, "/reservations?status=Seated").Code)

	svc.On("List", mock.Anything, mock.Anything).Return(nil, reservations.ErrInternal).Once()
	assert.Equal(t, http.StatusInternalServerError, get(svc, "/reservations").Code)
}
