package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
	settingsRepo "github.com/jpereira-dev/VWS-SchedulerService/internal/infra/storage/settings"
)

// mockAppointmentRepo реализует AppointmentRepository для тестов
type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error

	gotFrom time.Time
	gotTo   time.Time
}

func (m *mockAppointmentRepo) GetByTimeRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	m.gotFrom = from
	m.gotTo = to
	if m.err != nil {
		return nil, m.err
	}
	return m.appointments, nil
}

// mockSettingsRepo реализует SettingsRepository для тестов
type mockSettingsRepo struct {
	nightEnabled bool
	err          error
}

func (m *mockSettingsRepo) GetNightShiftEnabled(ctx context.Context) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.nightEnabled, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func monday() time.Time {
	return time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
}

func appointmentAt(ts time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:          1,
		CustomerID:  1,
		ScheduledAt: ts,
		Status:      status,
	}
}

func TestExecute_WeekdayAllSlotsFree(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepo{}, &mockSettingsRepo{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday()})
	require.NoError(t, err)

	assert.Equal(t, monday(), resp.Date)
	assert.False(t, resp.Night)
	assert.Equal(t, domain.SlotCapacity, resp.Capacity)
	require.Len(t, resp.Slots, 5)

	keys := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		keys[i] = s.Key
		assert.Equal(t, 0, s.Booked)
		assert.Equal(t, domain.SlotCapacity, s.Available)
	}
	assert.Equal(t, []string{"08-10", "10-30_12", "12-30_14", "14-16", "16-30_18"}, keys)

	// Первый слот начинается в 08:00 UTC запрошенной даты
	assert.Equal(t, time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC), resp.Slots[0].Start)
}

func TestExecute_BookedCountsOnlyNonCancelled(t *testing.T) {
	slotStart := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	repo := &mockAppointmentRepo{appointments: []*domain.Appointment{
		appointmentAt(slotStart, domain.StatusScheduled),
		appointmentAt(slotStart.Add(30*time.Minute), domain.StatusCompleted),
		appointmentAt(slotStart, domain.StatusCancelled), // место не занимает
	}}

	uc := NewUseCase(repo, &mockSettingsRepo{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday()})
	require.NoError(t, err)

	first := resp.Slots[0]
	assert.Equal(t, "08-10", first.Key)
	assert.Equal(t, 2, first.Booked)
	assert.Equal(t, 1, first.Available)
}

func TestExecute_WindowBoundaries(t *testing.T) {
	// Начало, совпадающее с концом окна, принадлежит следующему слоту
	repo := &mockAppointmentRepo{appointments: []*domain.Appointment{
		appointmentAt(time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC), domain.StatusScheduled),  // конец 08-10
		appointmentAt(time.Date(2025, time.March, 10, 10, 30, 0, 0, time.UTC), domain.StatusScheduled), // начало 10-30_12
	}}

	uc := NewUseCase(repo, &mockSettingsRepo{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday()})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Slots[0].Booked) // 08-10
	assert.Equal(t, 1, resp.Slots[1].Booked) // 10-30_12
}

func TestExecute_AvailableNeverNegative(t *testing.T) {
	// Вместимость слота может быть превышена историческими данными,
	// но available не уходит ниже нуля
	slotStart := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	appointments := make([]*domain.Appointment, 0, domain.SlotCapacity+2)
	for i := 0; i < domain.SlotCapacity+2; i++ {
		appointments = append(appointments, appointmentAt(slotStart, domain.StatusScheduled))
	}

	uc := NewUseCase(&mockAppointmentRepo{appointments: appointments}, &mockSettingsRepo{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday()})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotCapacity+2, resp.Slots[0].Booked)
	assert.Equal(t, 0, resp.Slots[0].Available)
}

func TestExecute_NightShiftAppendsSlots(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepo{}, &mockSettingsRepo{nightEnabled: true}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday()})
	require.NoError(t, err)

	assert.True(t, resp.Night)
	require.Len(t, resp.Slots, 7)
	assert.Equal(t, "18-30_20", resp.Slots[5].Key)
	assert.Equal(t, "20-30_22", resp.Slots[6].Key)
}

func TestExecute_WeekendWithoutNightIsEmpty(t *testing.T) {
	saturday := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	repo := &mockAppointmentRepo{}

	uc := NewUseCase(repo, &mockSettingsRepo{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: saturday})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, domain.SlotCapacity, resp.Capacity)
	// Пустой набор кандидатов - валидный ответ, запрос к БД не выполняется
	assert.True(t, repo.gotFrom.IsZero())
}

func TestExecute_MissingNightSettingMeansDisabled(t *testing.T) {
	settings := &mockSettingsRepo{err: settingsRepo.ErrSettingNotFound}

	uc := NewUseCase(&mockAppointmentRepo{}, settings, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday()})
	require.NoError(t, err)

	assert.False(t, resp.Night)
	assert.Len(t, resp.Slots, 5)
}

func TestExecute_QueriesFullDay(t *testing.T) {
	repo := &mockAppointmentRepo{}

	uc := NewUseCase(repo, &mockSettingsRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: monday()})
	require.NoError(t, err)

	assert.Equal(t, monday(), repo.gotFrom)
	assert.Equal(t, monday().AddDate(0, 0, 1), repo.gotTo)
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepo{}, &mockSettingsRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorWrapped(t *testing.T) {
	repo := &mockAppointmentRepo{err: errors.New("connection refused")}

	uc := NewUseCase(repo, &mockSettingsRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: monday()})
	assert.ErrorIs(t, err, ErrInternal)
}
