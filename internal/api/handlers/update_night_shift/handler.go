package update_night_shift

import (
	"net/http"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/api/handlers"
	"github.com/jpereira-dev/VWS-SchedulerService/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingNightFlag   = "поле night_enabled обязательно"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings/night-shift
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateNightShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/night-shift - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeValidationError, msgInvalidRequestBody)
		return
	}

	if req.NightEnabled == nil {
		h.logger.Warn("PUT /settings/night-shift - Missing night_enabled field")
		handlers.RespondBadRequest(w, handlers.CodeValidationError, msgMissingNightFlag)
		return
	}

	result, err := h.service.UpdateNightShift(r.Context(), *req.NightEnabled)
	if err != nil {
		h.logger.Error("PUT /settings/night-shift - Failed to update night shift: enabled=%t, error=%v",
			*req.NightEnabled, err)
		handlers.RespondInternalError(w, err)
		return
	}

	h.logger.Info("PUT /settings/night-shift - Night shift updated: enabled=%t", result.NightEnabled)
	handlers.RespondJSON(w, http.StatusOK, result)
}
