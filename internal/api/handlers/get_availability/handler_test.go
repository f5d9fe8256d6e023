package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/api/handlers"
	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
	getAvailability "github.com/jpereira-dev/VWS-SchedulerService/internal/usecase/get_availability"
)

type mockUseCase struct {
	resp *getAvailability.Response
	err  error

	gotReq *getAvailability.Request
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	m.gotReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestHandle_Success(t *testing.T) {
	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{resp: &getAvailability.Response{
		Date:     monday,
		Night:    false,
		Capacity: domain.SlotCapacity,
		Slots: []getAvailability.Slot{
			{
				Key:             "08-10",
				Label:           "08:00 - 10:00",
				DurationMinutes: 120,
				Booked:          1,
				Capacity:        domain.SlotCapacity,
				Available:       2,
				Start:           time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC),
			},
		},
	}}

	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/public/appointments/availability?date=2025-03-10", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "2025-03-10", resp.Date)
	assert.False(t, resp.Night)
	assert.Equal(t, domain.SlotCapacity, resp.Capacity)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "08-10", resp.Slots[0].Key)
	assert.Equal(t, 1, resp.Slots[0].Booked)
	assert.Equal(t, 2, resp.Slots[0].Available)
	assert.Equal(t, "2025-03-10T08:00:00Z", resp.Slots[0].Start)

	// Дата распаршена в UTC полночь
	assert.Equal(t, monday, uc.gotReq.Date)
}

func TestHandle_MissingDate(t *testing.T) {
	h := NewHandler(&mockUseCase{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/public/appointments/availability", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.CodeValidationError, resp.Error.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{name: "garbage", date: "not-a-date"},
		{name: "wrong order", date: "10-03-2025"},
		{name: "out of range", date: "2025-13-40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&mockUseCase{}, noopLogger{})

			req := httptest.NewRequest(http.MethodGet, "/public/appointments/availability?date="+tt.date, nil)
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, handlers.CodeInvalidDate, resp.Error.Code)
		})
	}
}

func TestHandle_TimestampDateTruncated(t *testing.T) {
	// ISO timestamp принимается: дата обрезается до YYYY-MM-DD
	uc := &mockUseCase{resp: &getAvailability.Response{
		Date:     time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Capacity: domain.SlotCapacity,
		Slots:    []getAvailability.Slot{},
	}}
	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/public/appointments/availability?date=2025-03-10T15:04:05Z", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), uc.gotReq.Date)
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&mockUseCase{err: getAvailability.ErrInternal}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/public/appointments/availability?date=2025-03-10", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.CodeInternalError, resp.Error.Code)
}
