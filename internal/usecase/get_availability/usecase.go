package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
	settingsRepo "github.com/jpereira-dev/VWS-SchedulerService/internal/infra/storage/settings"
)

// UseCase use case для расчёта доступности слотов на дату.
// Операция только читает данные и идемпотентна: повторные вызовы с теми же
// входными данными при неизменных записях возвращают одинаковый результат.
type UseCase struct {
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		logger:          logger,
	}
}

// Execute выполняет use case расчёта доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailability: validation failed: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Читаем флаг ночной смены (отсутствие настройки = выключена)
	nightEnabled, err := uc.settingsRepo.GetNightShiftEnabled(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingNotFound) {
			uc.logger.Error("GetAvailability: failed to get night shift setting: %v", err)
			return nil, fmt.Errorf("%w: failed to get night shift setting: %v", ErrInternal, err)
		}
		nightEnabled = false
	}

	// 3. Набор слотов-кандидатов на дату
	candidates := domain.SlotsForDate(req.Date, nightEnabled)

	// Пустой набор (выходной без ночной смены) - корректный ответ, не ошибка
	if len(candidates) == 0 {
		uc.logger.Info("GetAvailability: no candidate slots for %s (night=%t)",
			req.Date.Format(domain.DateFormat), nightEnabled)
		return &Response{
			Date:     req.Date,
			Night:    nightEnabled,
			Capacity: domain.SlotCapacity,
			Slots:    []Slot{},
		}, nil
	}

	// 4. Все записи за сутки одним запросом
	dayStart, dayEnd := dayBounds(req.Date)
	appointments, err := uc.appointmentRepo.GetByTimeRange(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Занятость каждого слота
	slots, err := buildSlots(req.Date, candidates, appointments)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to build slots: %v", err)
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: %d slots for date=%s, night=%t",
		len(slots), req.Date.Format(domain.DateFormat), nightEnabled)

	return &Response{
		Date:     req.Date,
		Night:    nightEnabled,
		Capacity: domain.SlotCapacity,
		Slots:    slots,
	}, nil
}
