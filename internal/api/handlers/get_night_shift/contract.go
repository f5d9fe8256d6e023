package get_night_shift

import (
	"context"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/service/settings"
)

type SettingsService interface {
	GetNightShift(ctx context.Context) (*settings.NightShiftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
