package create_appointment

import (
	"context"
	"time"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByTimeRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
}

// CustomerRepository интерфейс каталога клиентов
type CustomerRepository interface {
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

// SettingsRepository интерфейс провайдера настроек
type SettingsRepository interface {
	GetNightShiftEnabled(ctx context.Context) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
