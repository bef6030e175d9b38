package get_calendar_load

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	usecase "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_calendar_load"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

// DayLoadResponse загрузка одного дня месяца
type DayLoadResponse struct {
	Date     string `json:"date"` // "2025-10-15"
	Count    int    `json:"count"`
	Level    string `json:"level"` // Low | Medium | High
	IsFull   bool   `json:"isFull"`
	Disabled bool   `json:"disabled"`
}

// CalendarLoadResponse загрузка всех дней месяца
type CalendarLoadResponse struct {
	Month         string            `json:"month"` // "2025-10"
	ServiceID     *int64            `json:"serviceId"`
	DailyCapacity int               `json:"dailyCapacity"`
	Days          []DayLoadResponse `json:"days"`
}

// FromUseCaseResponse конвертирует модель usecase в DTO
func FromUseCaseResponse(resp *usecase.Response) *CalendarLoadResponse {
	days := make([]DayLoadResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayLoadResponse{
			Date:     d.Date.Format(domain.DateFormat),
			Count:    d.Count,
			Level:    string(d.Level),
			IsFull:   d.IsFull,
			Disabled: d.Disabled,
		})
	}

	var serviceID *int64
	if id, ok := resp.Scope.ServiceID(); ok {
		serviceID = ptr.Ptr(id)
	}

	return &CalendarLoadResponse{
		Month:         resp.Month.Format(domain.MonthFormat),
		ServiceID:     serviceID,
		DailyCapacity: resp.DailyCapacity,
		Days:          days,
	}
}
