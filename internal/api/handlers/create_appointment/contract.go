package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

type AppointmentCreator interface {
	Execute(ctx context.Context, req *create_appointment.Request) (*create_appointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
