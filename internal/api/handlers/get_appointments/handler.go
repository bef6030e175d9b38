package get_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
)

const msgPhoneRequired = "телефон обязателен"

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?phone={phone}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")

	result, err := h.service.GetByPhone(r.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Phone is required")
			handlers.RespondBadRequest(w, msgPhoneRequired)
		default:
			h.logger.Error("GET /appointments - Failed to get appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
