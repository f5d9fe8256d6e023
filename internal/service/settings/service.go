package settings

import (
	"context"
	"errors"
	"fmt"

	settingsRepo "github.com/jpereira-dev/VWS-SchedulerService/internal/infra/storage/settings"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("settings service: internal error")

// NightShiftResponse состояние флага ночной смены
type NightShiftResponse struct {
	NightEnabled bool `json:"night_enabled"`
}

// UpdateNightShiftRequest запрос на изменение флага ночной смены
type UpdateNightShiftRequest struct {
	NightEnabled *bool `json:"night_enabled"`
}

// Service сервис настроек мастерской
type Service struct {
	repo   SettingsRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetNightShift возвращает текущее состояние ночной смены.
// Отсутствие настройки означает выключенную смену.
func (s *Service) GetNightShift(ctx context.Context) (*NightShiftResponse, error) {
	enabled, err := s.repo.GetNightShiftEnabled(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingNotFound) {
			return &NightShiftResponse{NightEnabled: false}, nil
		}
		s.logger.Error("GetNightShift: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetNightShift - repository error: %v", ErrInternal, err)
	}

	return &NightShiftResponse{NightEnabled: enabled}, nil
}

// UpdateNightShift включает или выключает ночную смену
func (s *Service) UpdateNightShift(ctx context.Context, enabled bool) (*NightShiftResponse, error) {
	if err := s.repo.SetNightShiftEnabled(ctx, enabled); err != nil {
		s.logger.Error("UpdateNightShift: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateNightShift - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateNightShift: night shift set to %t", enabled)
	return &NightShiftResponse{NightEnabled: enabled}, nil
}
