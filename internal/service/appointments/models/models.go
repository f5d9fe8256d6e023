package models

import (
	"errors"
	"time"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetDayAppointmentsRequest запрос списка записей на дату
type GetDayAppointmentsRequest struct {
	Date time.Time
}

// Response модели

// AppointmentResponse представление записи для API
type AppointmentResponse struct {
	ID                 int64   `json:"id"`
	CustomerID         int64   `json:"client_id"`
	ServiceID          *int64  `json:"service_id"`
	StaffID            *int64  `json:"staff_id"`
	ScheduledAt        string  `json:"scheduled_at"`
	DurationMinutes    int     `json:"duration_minutes"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	CancelledAt        *string `json:"cancelled_at,omitempty"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment конвертирует доменную модель в API представление
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:                 appt.ID,
		CustomerID:         appt.CustomerID,
		ServiceID:          appt.ServiceID,
		StaffID:            appt.StaffID,
		ScheduledAt:        appt.ScheduledAt.UTC().Format(time.RFC3339),
		DurationMinutes:    appt.DurationMinutes,
		Status:             string(appt.Status),
		Notes:              appt.Notes,
		CancellationReason: appt.CancellationReason,
		CreatedAt:          appt.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          appt.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if appt.CancelledAt != nil {
		formatted := appt.CancelledAt.UTC().Format(time.RFC3339)
		resp.CancelledAt = &formatted
	}

	return resp
}

// FromDomainAppointmentList конвертирует список доменных моделей
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, len(appointments))
	for i, appt := range appointments {
		result[i] = FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}

// ToDomainStatus конвертирует строку статуса в доменный статус.
// Статус cancelled этим путём не устанавливается - для отмены есть
// отдельная операция с причиной и временем отмены.
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !domain.ValidStatus(status) || status == domain.StatusCancelled {
		return "", ErrInvalidStatus
	}
	return status, nil
}
