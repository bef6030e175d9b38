package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	PatientName   string           // Имя пациента (2-60 символов после trim)
	Phone         string           // Телефон (6-20 символов после trim)
	SituationType string           // Тип обращения
	ServiceID     int64            // ID услуги
	Date          time.Time        // Дата приема (без времени)
	SlotTime      types.TimeString // Слот приема (например, "09:30")
}

// Response модель ответа с созданной записью
type Response struct {
	ID            int64
	PatientName   string
	Phone         string
	SituationType string
	ServiceID     int64
	ServiceName   string // Название услуги (денормализовано при создании)
	Date          time.Time
	SlotTime      types.TimeString
	Status        string
	CreatedAt     time.Time
}
