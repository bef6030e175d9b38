package get_booked_times

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	usecase "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_booked_times"
)

// BookedTimesResponse занятые слоты услуги на дату
type BookedTimesResponse struct {
	ServiceID int64    `json:"serviceId"`
	Date      string   `json:"date"`
	Times     []string `json:"times"`
}

// FromUseCaseResponse конвертирует модель usecase в DTO
func FromUseCaseResponse(resp *usecase.Response) *BookedTimesResponse {
	times := make([]string, 0, len(resp.Times))
	for _, t := range resp.Times {
		times = append(times, t.String())
	}

	return &BookedTimesResponse{
		ServiceID: resp.ServiceID,
		Date:      resp.Date.Format(domain.DateFormat),
		Times:     times,
	}
}
