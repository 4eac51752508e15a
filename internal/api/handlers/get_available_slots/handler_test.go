package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
)

type useCaseMock struct {
	mock.Mock
}

func (m *useCaseMock) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*getAvailableSlots.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc GetAvailableSlotsUseCase) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RestaurantScope)
	r.HandleFunc("/tables/{tableId}/available-slots", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)
	return r
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.RestaurantIDHeader, "1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	uc := new(useCaseMock)
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.Local)
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{RestaurantID: 1, TableID: 5, Date: date}).
		Return(&getAvailableSlots.Response{
			Date:             date,
			TableID:          5,
			TableLabel:       "T5",
			IntervalMinutes:  30,
			OccupancyMinutes: 90,
			Slots: []getAvailableSlots.Slot{
				{Start: 720, Available: false},
				{Start: 840, Available: true},
			},
			AvailableCount: 1,
		}, nil)

	rec := doGet(newRouter(uc), "/tables/5/available-slots?date=2026-10-20")

	require.Equal(t, http.StatusOK, rec.Code)
	var body AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "2026-10-20", body.Date)
	assert.Equal(t, "T5", body.TableLabel)
	assert.Equal(t, 1, body.AvailableCount)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, "12:00 PM", body.Slots[0].StartTime.String())
	assert.False(t, body.Slots[0].Available)
	assert.Equal(t, 840, body.Slots[1].StartMinute)
	assert.True(t, body.Slots[1].Available)
	uc.AssertExpectations(t)
}

func TestHandler_BadRequests(t *testing.T) {
	uc := new(useCaseMock)
	r := newRouter(uc)

	for _, path := range []string{
		"/tables/abc/available-slots?date=2026-10-20",
		"/tables/0/available-slots?date=2026-10-20",
		"/tables/5/available-slots",
		"/tables/5/available-slots?date=20.10.2026",
	} {
		t.Run(path, func(t *testing.T) {
			rec := doGet(r, path)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: getAvailableSlots.ErrTableNotFound, status: http.StatusNotFound},
		{name: "inactive", err: getAvailableSlots.ErrTableInactive, status: http.StatusConflict},
		{name: "settings", err: fmt.Errorf("%w: interval", getAvailableSlots.ErrInvalidSettings), status: http.StatusUnprocessableEntity},
		{name: "input", err: getAvailableSlots.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", err: getAvailableSlots.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(useCaseMock)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doGet(newRouter(uc), "/tables/5/available-slots?date=2026-10-20")

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
