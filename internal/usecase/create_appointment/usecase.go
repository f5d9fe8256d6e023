package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
	customerRepo "github.com/jpereira-dev/VWS-SchedulerService/internal/infra/storage/customer"
	settingsRepo "github.com/jpereira-dev/VWS-SchedulerService/internal/infra/storage/settings"
)

// UseCase use case для создания записи на обслуживание.
//
// Проверка вместимости и вставка выполняются в SERIALIZABLE транзакции
// с блокировкой выборки окна слота (FOR UPDATE), поэтому параллельные
// запросы на один слот сериализуются и вместимость не превышается.
type UseCase struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	settingsRepo    SettingsRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		settingsRepo:    settingsRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, slot=%s",
		req.Date.Format(domain.DateFormat), req.SlotKey)

	// 1. Валидация входных данных - до любого обращения к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализация телефона (только цифры, ровно 11)
	phone, err := normalizePhone(req.Phone)
	if err != nil {
		uc.logger.Warn("CreateAppointment: phone validation failed: %v", err)
		return nil, err
	}

	var result *Response

	// 3. Все операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Флаг ночной смены читается заново на каждое бронирование,
		// результат предыдущего запроса доступности не переиспользуется
		nightEnabled, err := uc.settingsRepo.GetNightShiftEnabled(txCtx)
		if err != nil {
			if !errors.Is(err, settingsRepo.ErrSettingNotFound) {
				uc.logger.Error("CreateAppointment: failed to get night shift setting: %v", err)
				return fmt.Errorf("%w: failed to get night shift setting: %v", ErrInternal, err)
			}
			nightEnabled = false
		}

		// 3.2. Ключ слота должен входить в набор кандидатов на дату
		candidates := domain.SlotsForDate(req.Date, nightEnabled)
		slot, found := domain.FindSlot(candidates, req.SlotKey)
		if !found {
			uc.logger.Warn("CreateAppointment: slot %s not in candidate set for %s (night=%t)",
				req.SlotKey, req.Date.Format(domain.DateFormat), nightEnabled)
			return ErrInvalidSlot
		}

		// 3.3. Окно слота на дату
		slotStart, slotEnd, err := slot.WindowFor(req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to compute slot window: %v", err)
			return fmt.Errorf("%w: failed to compute slot window: %v", ErrInternal, err)
		}

		// 3.4. Записи в окне слота с блокировкой (FOR UPDATE внутри транзакции)
		existing, err := uc.appointmentRepo.GetByTimeRange(txCtx, slotStart, slotEnd)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 3.5. Проверка вместимости: отменённые записи место не занимают
		booked := 0
		for _, appt := range existing {
			if appt.OccupiesSlot() {
				booked++
			}
		}
		if booked >= domain.SlotCapacity {
			uc.logger.Warn("CreateAppointment: slot %s at capacity, %d/%d taken",
				slot.Key, booked, domain.SlotCapacity)
			return ErrNoCapacity
		}

		uc.logger.Info("CreateAppointment: slot %s available, %d/%d taken",
			slot.Key, booked, domain.SlotCapacity)

		// 3.6. Find-or-create клиента по нормализованному телефону
		customer, err := uc.findOrCreateCustomer(txCtx, req.FullName, phone)
		if err != nil {
			return err
		}

		// 3.7. Создаем запись: начало = начало слота, длительность - из
		// конфигурации слота, мастер на этапе создания не назначается
		appt := &domain.Appointment{
			CustomerID:      customer.ID,
			ServiceID:       req.ServiceID,
			ScheduledAt:     slotStart,
			DurationMinutes: slot.DurationMinutes,
			Status:          domain.StatusScheduled,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = &Response{Appointment: created, Customer: customer}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d for customer id=%d",
		result.Appointment.ID, result.Customer.ID)

	return result, nil
}

// findOrCreateCustomer ищет клиента по нормализованному телефону,
// при отсутствии - создает
func (uc *UseCase) findOrCreateCustomer(ctx context.Context, fullName, phone string) (*domain.Customer, error) {
	customer, err := uc.customerRepo.GetByPhone(ctx, phone)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		uc.logger.Error("CreateAppointment: failed to look up customer: %v", err)
		return nil, fmt.Errorf("%w: failed to look up customer: %v", ErrInternal, err)
	}

	created, err := uc.customerRepo.Create(ctx, &domain.Customer{
		FullName: strings.TrimSpace(fullName),
		Phone:    phone,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create customer: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCustomerPersistence, err)
	}
	if created == nil || created.ID == 0 {
		uc.logger.Error("CreateAppointment: customer creation returned no usable record")
		return nil, fmt.Errorf("%w: creation returned no usable record", ErrCustomerPersistence)
	}

	return created, nil
}
