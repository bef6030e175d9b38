package get_calendar_load

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/usecase/get_calendar_load"
)

type CalendarLoadProvider interface {
	Execute(ctx context.Context, req *get_calendar_load.Request) (*get_calendar_load.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
