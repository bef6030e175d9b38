package get_calendar_load

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	usecase "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_calendar_load"
)

const (
	msgInvalidMonth     = "некорректный формат месяца, ожидается YYYY-MM"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidInput     = "некорректные параметры запроса"
	msgMonthNotAllowed  = "месяц вне доступного окна записи"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase CalendarLoadProvider
	logger  Logger
}

func NewHandler(useCase CalendarLoadProvider, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar-load?month={YYYY-MM}&serviceId={id}
// serviceId опционален: без него счетчики нулевые и дни не бывают заполненными
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	month, err := time.Parse(domain.MonthFormat, query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /calendar-load - Invalid month %q: %v", query.Get("month"), err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	scope := domain.AllServices()
	if raw := query.Get("serviceId"); raw != "" {
		serviceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /calendar-load - Invalid serviceId %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		scope = domain.ForService(serviceID)
	}

	result, err := h.useCase.Execute(r.Context(), &usecase.Request{
		Month: month,
		Scope: scope,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			h.logger.Warn("GET /calendar-load - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, usecase.ErrMonthNotAllowed):
			h.logger.Warn("GET /calendar-load - Month not allowed: %v", err)
			handlers.RespondBadRequest(w, msgMonthNotAllowed)
		case errors.Is(err, usecase.ErrServiceNotFound):
			h.logger.Warn("GET /calendar-load - Service not found: %v", err)
			handlers.RespondNotFound(w, msgServiceNotFound)
		default:
			h.logger.Error("GET /calendar-load - Failed to get calendar load: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar-load - Calendar load retrieved: month=%s, days=%d",
		query.Get("month"), len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
