package get_customer_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/api/handlers"
	"github.com/jpereira-dev/VWS-SchedulerService/internal/service/appointments"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgCustomerNotFound  = "клиент не найден"
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

// Handle GET /api/v1/customers/{customerId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем customerId из URL
	vars := mux.Vars(r)
	customerIDStr := vars["customerId"]

	customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /customers/{id}/appointments - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeValidationError, msgInvalidCustomerID)
		return
	}

	result, err := h.service.GetCustomerAppointments(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrCustomerNotFound):
			h.logger.Warn("GET /customers/{id}/appointments - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		default:
			h.logger.Error("GET /customers/{id}/appointments - Failed to get appointments: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("GET /customers/{id}/appointments - Fetched %d appointments: customer_id=%d", result.Total, customerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
