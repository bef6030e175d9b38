package get_booked_times

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	usecase "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_booked_times"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректные параметры запроса"
	msgDateNotAllowed   = "дата вне доступного окна записи"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase BookedTimesProvider
	logger  Logger
}

func NewHandler(useCase BookedTimesProvider, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booked-times?serviceId={id}&date={YYYY-MM-DD}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceID, err := strconv.ParseInt(query.Get("serviceId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /booked-times - Invalid serviceId %q: %v", query.Get("serviceId"), err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /booked-times - Invalid date %q: %v", query.Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &usecase.Request{
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			h.logger.Warn("GET /booked-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, usecase.ErrDateNotAllowed):
			h.logger.Warn("GET /booked-times - Date not allowed: %v", err)
			handlers.RespondBadRequest(w, msgDateNotAllowed)
		case errors.Is(err, usecase.ErrServiceNotFound):
			h.logger.Warn("GET /booked-times - Service not found: %v", err)
			handlers.RespondNotFound(w, msgServiceNotFound)
		default:
			h.logger.Error("GET /booked-times - Failed to get booked times: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booked-times - Booked times retrieved: service=%d, date=%s, count=%d",
		serviceID, query.Get("date"), len(result.Times))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
