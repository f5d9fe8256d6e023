package update_night_shift

import (
	"context"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/service/settings"
)

type SettingsService interface {
	UpdateNightShift(ctx context.Context, enabled bool) (*settings.NightShiftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
