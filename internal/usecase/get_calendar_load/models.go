package get_calendar_load

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса календарной загрузки
type Request struct {
	Month time.Time           // Первый день запрашиваемого месяца
	Scope domain.ServiceScope // Конкретная услуга или "без услуги" (нулевые счетчики)
}

// Response модель ответа с загрузкой по дням месяца
type Response struct {
	Month         time.Time
	Scope         domain.ServiceScope
	DailyCapacity int
	Days          []domain.DayLoad // По одному элементу на каждый день месяца
}
