package create_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

type useCaseMock struct {
	mock.Mock
}

func (m *useCaseMock) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*createReservation.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.RestaurantIDHeader, "3")
	rec := httptest.NewRecorder()
	middleware.RestaurantScope(h).ServeHTTP(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	uc := new(useCaseMock)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createReservation.Request) bool {
		return req.RestaurantID == 3 && req.TableID == nil && req.GuestName == "Ann" &&
			req.PartySize == 2 && req.StartTime == 1170 && req.Date.Format("2006-01-02") == "2026-10-20"
	})).Return(&createReservation.Response{
		ID:           10,
		RestaurantID: 3,
		TableID:      7,
		TableLabel:   "A1",
		GuestName:    "Ann",
		Phone:        "+100",
		PartySize:    2,
		Date:         time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:    1170,
		EndTime:      1260,
		Status:       "Confirmed",
		Source:       "Phone",
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil)

	rec := post(http.HandlerFunc(NewHandler(uc, nopLogger{}).Handle),
		`{"guestName":"Ann","phone":"+100","partySize":2,"date":"2026-10-20","startTime":"7:30 PM"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "A1", body["tableLabel"])
	assert.Equal(t, "7:30 PM", body["startTime"])
	assert.Equal(t, "9:00 PM", body["endTime"])
	assert.Equal(t, float64(1170), body["startMinute"])
	uc.AssertExpectations(t)
}

func TestHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `invalid`},
		{name: "unknown field", body: `{"guestName":"Ann","seat":"window"}`},
		{name: "bad date", body: `{"guestName":"Ann","phone":"1","partySize":2,"date":"20/10/2026","startTime":"7:30 PM"}`},
		{name: "bad time", body: `{"guestName":"Ann","phone":"1","partySize":2,"date":"2026-10-20","startTime":"25:99"}`},
		{name: "missing time", body: `{"guestName":"Ann","phone":"1","partySize":2,"date":"2026-10-20"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(useCaseMock)
			rec := post(http.HandlerFunc(NewHandler(uc, nopLogger{}).Handle), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "slot taken", err: createReservation.ErrSlotUnavailable, status: http.StatusConflict},
		{name: "table not found", err: createReservation.ErrTableNotFound, status: http.StatusNotFound},
		{name: "table too small", err: createReservation.ErrTableNotSuitable, status: http.StatusBadRequest},
		{name: "past date", err: createReservation.ErrInvalidDate, status: http.StatusBadRequest},
		{name: "off grid", err: createReservation.ErrInvalidTimeSlot, status: http.StatusBadRequest},
		{name: "invalid input", err: createReservation.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", err: createReservation.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(useCaseMock)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := post(http.HandlerFunc(NewHandler(uc, nopLogger{}).Handle),
				`{"tableId":4,"guestName":"Ann","phone":"1","partySize":2,"date":"2026-10-20","startTime":1170}`)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
