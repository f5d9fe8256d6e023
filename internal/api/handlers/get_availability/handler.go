package get_availability

import (
	"errors"
	"net/http"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/api/handlers"
	getAvailability "github.com/jpereira-dev/VWS-SchedulerService/internal/usecase/get_availability"
)

const (
	msgMissingDate = "параметр date обязателен"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /public/appointments/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /public/appointments/availability - Missing date")
		handlers.RespondBadRequest(w, handlers.CodeValidationError, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr)
	if err != nil {
		h.logger.Warn("GET /public/appointments/availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidDate, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /public/appointments/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeValidationError, err.Error())

		default:
			h.logger.Error("GET /public/appointments/availability - Failed to compute availability: date=%s, error=%v",
				dateStr, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("GET /public/appointments/availability - Availability computed: date=%s, night=%t, slots_count=%d",
		dateStr, result.Night, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
