package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	usecase "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidInput       = "некорректные данные записи"
	msgDateNotAllowed     = "дата вне доступного окна записи"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidSlot        = "время не входит в сетку слотов"
	msgDayFull            = "на выбранный день больше нет свободных слотов"
	msgSlotTaken          = "выбранное время уже занято"
)

type Handler struct {
	useCase AppointmentCreator
	logger  Logger
}

func NewHandler(useCase AppointmentCreator, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, usecase.ErrDateNotAllowed):
			h.logger.Warn("POST /appointments - Date not allowed: %v", err)
			handlers.RespondBadRequest(w, msgDateNotAllowed)
		case errors.Is(err, usecase.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: %v", err)
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, usecase.ErrInvalidSlot):
			h.logger.Warn("POST /appointments - Invalid slot: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlot)
		case errors.Is(err, usecase.ErrDayFull):
			h.logger.Warn("POST /appointments - Day is full: %v", err)
			handlers.RespondConflict(w, msgDayFull)
		case errors.Is(err, usecase.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot already taken: %v", err)
			handlers.RespondConflict(w, msgSlotTaken)
		default:
			h.logger.Error("POST /appointments - Failed to create appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
