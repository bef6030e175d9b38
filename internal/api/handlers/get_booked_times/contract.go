package get_booked_times

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/usecase/get_booked_times"
)

type BookedTimesProvider interface {
	Execute(ctx context.Context, req *get_booked_times.Request) (*get_booked_times.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
