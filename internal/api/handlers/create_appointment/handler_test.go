package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/api/handlers"
	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
	createAppointment "github.com/jpereira-dev/VWS-SchedulerService/internal/usecase/create_appointment"
)

type mockUseCase struct {
	resp *createAppointment.Response
	err  error

	gotReq *createAppointment.Request
}

func (m *mockUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
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

func postAppointment(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/public/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{
	"client_full_name": "Иван Петров",
	"client_phone": "0414-713-1270",
	"date": "2025-03-10",
	"slot_key": "08-10"
}`

func TestHandle_Created(t *testing.T) {
	scheduledAt := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	uc := &mockUseCase{resp: &createAppointment.Response{
		Appointment: &domain.Appointment{
			ID:              10,
			CustomerID:      42,
			ScheduledAt:     scheduledAt,
			DurationMinutes: 120,
			Status:          domain.StatusScheduled,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		Customer: &domain.Customer{
			ID:        42,
			FullName:  "Иван Петров",
			Phone:     "04147131270",
			CreatedAt: now,
		},
	}}

	h := NewHandler(uc, noopLogger{})
	rec := postAppointment(t, h, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateAppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, int64(10), resp.Appointment.ID)
	assert.Equal(t, int64(42), resp.Appointment.ClientID)
	assert.Equal(t, "2025-03-10T08:00:00Z", resp.Appointment.ScheduledAt)
	assert.Equal(t, 120, resp.Appointment.DurationMinutes)
	assert.Equal(t, "scheduled", resp.Appointment.Status)
	assert.Equal(t, int64(42), resp.Client.ID)
	assert.Equal(t, "04147131270", resp.Client.Phone)

	// Дата из тела запроса распаршена в UTC полночь
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), uc.gotReq.Date)
	assert.Equal(t, "08-10", uc.gotReq.SlotKey)
}

func TestHandle_NoCapacityConflict(t *testing.T) {
	h := NewHandler(&mockUseCase{err: createAppointment.ErrNoCapacity}, noopLogger{})
	rec := postAppointment(t, h, validBody)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.CodeNoCapacity, resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "validation", err: createAppointment.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantCode: handlers.CodeValidationError},
		{name: "phone", err: createAppointment.ErrInvalidPhone, wantStatus: http.StatusBadRequest, wantCode: handlers.CodeInvalidPhone},
		{name: "slot", err: createAppointment.ErrInvalidSlot, wantStatus: http.StatusBadRequest, wantCode: handlers.CodeInvalidSlot},
		{name: "customer persistence", err: createAppointment.ErrCustomerPersistence, wantStatus: http.StatusInternalServerError, wantCode: handlers.CodeInternalError},
		{name: "internal", err: createAppointment.ErrInternal, wantStatus: http.StatusInternalServerError, wantCode: handlers.CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&mockUseCase{err: tt.err}, noopLogger{})
			rec := postAppointment(t, h, validBody)

			require.Equal(t, tt.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandle_InvalidDate(t *testing.T) {
	body := `{
		"client_full_name": "Иван Петров",
		"client_phone": "04147131270",
		"date": "10.03.2025",
		"slot_key": "08-10"
	}`

	h := NewHandler(&mockUseCase{}, noopLogger{})
	rec := postAppointment(t, h, body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.CodeInvalidDate, resp.Error.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	h := NewHandler(&mockUseCase{}, noopLogger{})
	rec := postAppointment(t, h, `{"client_full_name": `)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.CodeValidationError, resp.Error.Code)
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	body := `{
		"client_full_name": "Иван Петров",
		"client_phone": "04147131270",
		"date": "2025-03-10",
		"slot_key": "08-10",
		"staff_id": 5
	}`

	h := NewHandler(&mockUseCase{}, noopLogger{})
	rec := postAppointment(t, h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
