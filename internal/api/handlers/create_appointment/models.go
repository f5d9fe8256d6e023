package create_appointment

import (
	"time"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
	createAppointment "github.com/jpereira-dev/VWS-SchedulerService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientFullName string  `json:"client_full_name"`
	ClientPhone    string  `json:"client_phone"`
	ServiceID      *int64  `json:"service_id,omitempty"`
	Date           string  `json:"date"` // "2025-03-10"
	SlotKey        string  `json:"slot_key"`
	Notes          *string `json:"notes,omitempty"`
}

// CreateAppointmentResponse HTTP response model: созданная запись вместе
// с найденным или созданным клиентом
type CreateAppointmentResponse struct {
	Appointment AppointmentData `json:"appointment"`
	Client      ClientData      `json:"client"`
}

// AppointmentData представление записи
type AppointmentData struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"client_id"`
	ServiceID       *int64  `json:"service_id"`
	StaffID         *int64  `json:"staff_id"`
	ScheduledAt     string  `json:"scheduled_at"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// ClientData представление клиента
type ClientData struct {
	ID        int64  `json:"id"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Дата обрезается до 10 символов и парсится строго как YYYY-MM-DD.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	dateStr := r.Date
	if len(dateStr) > domain.DateParamLength {
		dateStr = dateStr[:domain.DateParamLength]
	}

	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.UTC)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		FullName:  r.ClientFullName,
		Phone:     r.ClientPhone,
		ServiceID: r.ServiceID,
		Date:      date,
		SlotKey:   r.SlotKey,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	appt := resp.Appointment
	client := resp.Customer

	return &CreateAppointmentResponse{
		Appointment: AppointmentData{
			ID:              appt.ID,
			ClientID:        appt.CustomerID,
			ServiceID:       appt.ServiceID,
			StaffID:         appt.StaffID,
			ScheduledAt:     appt.ScheduledAt.UTC().Format(time.RFC3339),
			DurationMinutes: appt.DurationMinutes,
			Status:          string(appt.Status),
			Notes:           appt.Notes,
			CreatedAt:       appt.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:       appt.UpdatedAt.UTC().Format(time.RFC3339),
		},
		Client: ClientData{
			ID:        client.ID,
			FullName:  client.FullName,
			Phone:     client.Phone,
			CreatedAt: client.CreatedAt.UTC().Format(time.RFC3339),
		},
	}
}
