package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
	appointmentRepo "github.com/jpereira-dev/VWS-SchedulerService/internal/infra/storage/appointment"
	customerRepo "github.com/jpereira-dev/VWS-SchedulerService/internal/infra/storage/customer"
	"github.com/jpereira-dev/VWS-SchedulerService/internal/service/appointments/models"
)

// Service сервис для работы с записями на обслуживание (операции персонала)
type Service struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetDayAppointments получает все записи на календарную дату для журнала
// смены. Отменённые записи включаются - персоналу они видны.
func (s *Service) GetDayAppointments(ctx context.Context, req *models.GetDayAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetDayAppointments: fetching appointments for date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		s.logger.Warn("GetDayAppointments: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	y, m, d := req.Date.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	appointments, err := s.appointmentRepo.GetByTimeRange(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		s.logger.Error("GetDayAppointments: repository error for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDayAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDayAppointments: fetched %d appointments for date=%s",
		len(appointments), req.Date.Format(domain.DateFormat))
	return models.FromDomainAppointmentList(appointments), nil
}

// GetCustomerAppointments получает историю записей клиента
func (s *Service) GetCustomerAppointments(ctx context.Context, customerID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetCustomerAppointments: fetching appointments for customer=%d", customerID)

	// Проверяем существование клиента, чтобы отличить пустую историю от
	// несуществующего клиента
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetCustomerAppointments: customer id=%d not found", customerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetCustomerAppointments: failed to get customer id=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	appointments, err := s.appointmentRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerAppointments: fetched %d appointments for customer=%d",
		len(appointments), customerID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись с опциональной причиной.
// Отменить можно только записи в статусах scheduled и confirmed.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: reason too long for appointment id=%d", id)
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, id, req.Reason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}

// UpdateStatus обновляет статус записи (подтверждение, начало работ,
// завершение, неявка). Отмена идёт через Cancel.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", id, req.Status)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return ErrInvalidStatus
	}

	if _, err := s.appointmentRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", id, newStatus)
	return nil
}
