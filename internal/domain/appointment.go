package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a patient appointment in the system
// Записи никогда не удаляются физически - только перевод в cancelled
type Appointment struct {
	ID            int64
	PatientName   string
	Phone         string
	SituationType string
	ServiceID     int64
	Date          time.Time        // Дата приема (без времени)
	SlotTime      types.TimeString // Слот приема (например, "09:30")
	Status        AppointmentStatus

	// Denormalized data for history
	ServiceName string

	CreatedAt time.Time
}

// IsBooked returns true if the appointment is active
func (a *Appointment) IsBooked() bool {
	return a.Status == StatusBooked
}

// IsCancelled returns true if the appointment has been cancelled
// cancelled - терминальный статус, обратного перехода нет
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}
