package list_tables

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/tables/models"
)

type serviceMock struct {
	mock.Mock
}

func (m *serviceMock) List(ctx context.Context, restaurantID int64, activeOnly bool) (*models.TableListResponse, error) {
	args := m.Called(ctx, restaurantID, activeOnly)
	if resp, ok := args.Get(0).(*models.TableListResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(svc TableService, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.RestaurantIDHeader, "5")
	rec := httptest.NewRecorder()
	middleware.RestaurantScope(http.HandlerFunc(NewHandler(svc, nopLogger{}).Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	svc := new(serviceMock)
	svc.On("List", mock.Anything, int64(5), true).
		Return(&models.TableListResponse{Tables: []models.TableResponse{{ID: 1, Label: "A1", Capacity: 4, Active: true}}}, nil)
	svc.On("List", mock.Anything, int64(5), false).Return(nil, errors.New("db down"))

	rec := get(svc, "/tables?active=true")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"label":"A1"`)

	assert.Equal(t, http.StatusInternalServerError, get(svc, "/tables").Code)
	assert.Equal(t, http.StatusBadRequest, get(svc, "/tables?active=yes").Code)
	svc.AssertExpectations(t)
}
