package get_day_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/api/handlers"
	"github.com/jpereira-dev/VWS-SchedulerService/internal/domain"
	"github.com/jpereira-dev/VWS-SchedulerService/internal/service/appointments"
	"github.com/jpereira-dev/VWS-SchedulerService/internal/service/appointments/models"
)

const (
	msgMissingDate = "параметр date обязателен"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /appointments - Missing date")
		handlers.RespondBadRequest(w, handlers.CodeValidationError, msgMissingDate)
		return
	}

	if len(dateStr) > domain.DateParamLength {
		dateStr = dateStr[:domain.DateParamLength]
	}

	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.UTC)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidDate, msgInvalidDate)
		return
	}

	result, err := h.service.GetDayAppointments(r.Context(), &models.GetDayAppointmentsRequest{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeValidationError, err.Error())

		default:
			h.logger.Error("GET /appointments - Failed to get appointments: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("GET /appointments - Fetched %d appointments: date=%s", result.Total, dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
