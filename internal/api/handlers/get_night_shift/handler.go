package get_night_shift

import (
	"net/http"

	"github.com/jpereira-dev/VWS-SchedulerService/internal/api/handlers"
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

// Handle GET /api/v1/settings/night-shift
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetNightShift(r.Context())
	if err != nil {
		h.logger.Error("GET /settings/night-shift - Failed to get night shift state: %v", err)
		handlers.RespondInternalError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
