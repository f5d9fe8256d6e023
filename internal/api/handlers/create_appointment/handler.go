package create_appointment

import (
	"errors"
	"net/http"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/api/handlers"
	createAppointment "github.com/jpereira-dev/VWS-SchedulerService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPhone       = "некорректный номер телефона, ожидается 11 цифр"
	msgInvalidSlot        = "слот недоступен на выбранную дату"
	msgNoCapacity         = "все места слота заняты"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /public/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /public/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeValidationError, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /public/appointments - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidDate, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /public/appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeValidationError, err.Error())

		case errors.Is(err, createAppointment.ErrInvalidPhone):
			h.logger.Warn("POST /public/appointments - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidPhone, msgInvalidPhone)

		case errors.Is(err, createAppointment.ErrInvalidSlot):
			h.logger.Warn("POST /public/appointments - Invalid slot: date=%s, slot_key=%s", req.Date, req.SlotKey)
			handlers.RespondBadRequest(w, handlers.CodeInvalidSlot, msgInvalidSlot)

		case errors.Is(err, createAppointment.ErrNoCapacity):
			h.logger.Warn("POST /public/appointments - No capacity: date=%s, slot_key=%s", req.Date, req.SlotKey)
			handlers.RespondConflict(w, handlers.CodeNoCapacity, msgNoCapacity)

		default:
			h.logger.Error("POST /public/appointments - Failed to create appointment: date=%s, slot_key=%s, error=%v",
				req.Date, req.SlotKey, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /public/appointments - Appointment created: appointment_id=%d, client_id=%d, slot_key=%s",
		result.Appointment.ID, result.Customer.ID, req.SlotKey)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
