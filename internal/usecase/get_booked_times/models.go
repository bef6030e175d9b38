package get_booked_times

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса занятых слотов
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата (без времени)
}

// Response модель ответа со списком занятых слотов
type Response struct {
	ServiceID int64
	Date      time.Time
	Times     []types.TimeString // Занятые слоты по возрастанию времени
}
