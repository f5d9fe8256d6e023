package settings

import "context"

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetNightShiftEnabled(ctx context.Context) (bool, error)
	SetNightShiftEnabled(ctx context.Context, enabled bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
