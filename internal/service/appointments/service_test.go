package appointments

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
	appointmentRepo "github.com/jpereira-dev/VWS-SchedulerService/internal/infra/storage/appointment"
	customerRepo "github.com/jpereira-dev/VWS-SchedulerService/internal/infra/storage/customer"
	"github.com/jpereira-dev/VWS-SchedulerService/internal/service/appointments/models"
	"github.com/jpereira-dev/VWS-SchedulerService/pkg/ptr"
)

// mockAppointmentRepo реализует AppointmentRepository для тестов
type mockAppointmentRepo struct {
	byID map[int64]*domain.Appointment

	byCustomer []*domain.Appointment
	byRange    []*domain.Appointment

	cancelledID    int64
	cancelReason   *string
	updatedID      int64
	updatedStatus  domain.AppointmentStatus
	gotFrom, gotTo time.Time
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{byID: make(map[int64]*domain.Appointment)}
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if appt, ok := m.byID[id]; ok {
		return appt, nil
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (m *mockAppointmentRepo) GetByTimeRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	m.gotFrom, m.gotTo = from, to
	return m.byRange, nil
}

func (m *mockAppointmentRepo) GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Appointment, error) {
	return m.byCustomer, nil
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	m.updatedID = id
	m.updatedStatus = status
	return nil
}

func (m *mockAppointmentRepo) Cancel(ctx context.Context, id int64, reason *string) error {
	m.cancelledID = id
	m.cancelReason = reason
	return nil
}

// mockCustomerRepo реализует CustomerRepository для тестов
type mockCustomerRepo struct {
	byID map[int64]*domain.Customer
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if c, ok := m.byID[id]; ok {
		return c, nil
	}
	return nil, customerRepo.ErrCustomerNotFound
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func scheduledAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:          id,
		CustomerID:  1,
		ScheduledAt: time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC),
		Status:      domain.StatusScheduled,
	}
}

func TestGetByID(t *testing.T) {
	repo := newMockAppointmentRepo()
	repo.byID[10] = scheduledAppointment(10)

	svc := NewService(repo, &mockCustomerRepo{}, noopLogger{})

	resp, err := svc.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "scheduled", resp.Status)
	assert.Equal(t, "2025-03-10T08:00:00Z", resp.ScheduledAt)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newMockAppointmentRepo(), &mockCustomerRepo{}, noopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetDayAppointments_IncludesCancelled(t *testing.T) {
	repo := newMockAppointmentRepo()
	cancelled := scheduledAppointment(2)
	cancelled.Status = domain.StatusCancelled
	repo.byRange = []*domain.Appointment{scheduledAppointment(1), cancelled}

	svc := NewService(repo, &mockCustomerRepo{}, noopLogger{})

	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	resp, err := svc.GetDayAppointments(context.Background(), &models.GetDayAppointmentsRequest{Date: date})
	require.NoError(t, err)

	// Журнал смены показывает и отменённые записи
	assert.Equal(t, 2, resp.Total)

	// Запрошены полные сутки в UTC
	assert.Equal(t, date, repo.gotFrom)
	assert.Equal(t, date.AddDate(0, 0, 1), repo.gotTo)
}

func TestGetCustomerAppointments(t *testing.T) {
	repo := newMockAppointmentRepo()
	repo.byCustomer = []*domain.Appointment{scheduledAppointment(1)}
	customers := &mockCustomerRepo{byID: map[int64]*domain.Customer{5: {ID: 5}}}

	svc := NewService(repo, customers, noopLogger{})

	resp, err := svc.GetCustomerAppointments(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestGetCustomerAppointments_CustomerNotFound(t *testing.T) {
	svc := NewService(newMockAppointmentRepo(), &mockCustomerRepo{}, noopLogger{})

	_, err := svc.GetCustomerAppointments(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCancel(t *testing.T) {
	repo := newMockAppointmentRepo()
	repo.byID[10] = scheduledAppointment(10)

	svc := NewService(repo, &mockCustomerRepo{}, noopLogger{})

	reason := ptr.Ptr("клиент попросил перенести")
	err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{Reason: reason})
	require.NoError(t, err)

	assert.Equal(t, int64(10), repo.cancelledID)
	assert.Equal(t, "клиент попросил перенести", ptr.Value(repo.cancelReason))
}

func TestCancel_OnlyPendingStatuses(t *testing.T) {
	tests := []struct {
		status  domain.AppointmentStatus
		wantErr error
	}{
		{status: domain.StatusScheduled},
		{status: domain.StatusConfirmed},
		{status: domain.StatusInProgress, wantErr: ErrCannotCancel},
		{status: domain.StatusCompleted, wantErr: ErrCannotCancel},
		{status: domain.StatusCancelled, wantErr: ErrCannotCancel},
		{status: domain.StatusNoShow, wantErr: ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			repo := newMockAppointmentRepo()
			appt := scheduledAppointment(10)
			appt.Status = tt.status
			repo.byID[10] = appt

			svc := NewService(repo, &mockCustomerRepo{}, noopLogger{})

			err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCancel_ReasonTooLong(t *testing.T) {
	repo := newMockAppointmentRepo()
	repo.byID[10] = scheduledAppointment(10)

	svc := NewService(repo, &mockCustomerRepo{}, noopLogger{})

	reason := ptr.Ptr(strings.Repeat("a", domain.MaxCancellationReasonLength+1))
	err := svc.Cancel(context.Background(), 10, &models.CancelAppointmentRequest{Reason: reason})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus(t *testing.T) {
	repo := newMockAppointmentRepo()
	repo.byID[10] = scheduledAppointment(10)

	svc := NewService(repo, &mockCustomerRepo{}, noopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	assert.Equal(t, int64(10), repo.updatedID)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestUpdateStatus_CancelledNotAllowed(t *testing.T) {
	// Отмена идёт через Cancel с причиной, не через смену статуса
	repo := newMockAppointmentRepo()
	repo.byID[10] = scheduledAppointment(10)

	svc := NewService(repo, &mockCustomerRepo{}, noopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc := NewService(newMockAppointmentRepo(), &mockCustomerRepo{}, noopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
