package get_time_slots

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.TimeSlots()

	h.logger.Info("GET /time-slots - Slots retrieved successfully: count=%d", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
