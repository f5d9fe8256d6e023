package get_availability

import (
	"context"
	"time"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByTimeRange получает все записи с началом в [from, to), включая отменённые
	GetByTimeRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
}

// SettingsRepository интерфейс провайдера настроек.
// Флаг ночной смены читается заново на каждый запрос.
type SettingsRepository interface {
	GetNightShiftEnabled(ctx context.Context) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
