package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	usecase "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateAppointmentRequest тело запроса на создание записи
type CreateAppointmentRequest struct {
	PatientName   string `json:"patientName"`
	Phone         string `json:"phone"`
	SituationType string `json:"situationType"`
	ServiceID     int64  `json:"serviceId"`
	Date          string `json:"date"` // "2025-10-15"
	Time          string `json:"time"` // "09:30"
}

// CreateAppointmentResponse тело ответа с созданной записью
type CreateAppointmentResponse struct {
	ID            int64  `json:"id"`
	PatientName   string `json:"patientName"`
	Phone         string `json:"phone"`
	SituationType string `json:"situationType"`
	ServiceID     int64  `json:"serviceId"`
	ServiceName   string `json:"serviceName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует DTO в модель usecase
// Форматы даты и времени проверяются здесь: это контракт API, а не бизнес-правило
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*usecase.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format %q: %w", r.Date, err)
	}

	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("invalid time format %q: %w", r.Time, err)
	}

	return &usecase.Request{
		PatientName:   r.PatientName,
		Phone:         r.Phone,
		SituationType: r.SituationType,
		ServiceID:     r.ServiceID,
		Date:          date,
		SlotTime:      slotTime,
	}, nil
}

// FromUseCaseResponse конвертирует модель usecase в DTO
func FromUseCaseResponse(resp *usecase.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		ID:            resp.ID,
		PatientName:   resp.PatientName,
		Phone:         resp.Phone,
		SituationType: resp.SituationType,
		ServiceID:     resp.ServiceID,
		ServiceName:   resp.ServiceName,
		Date:          resp.Date.Format(domain.DateFormat),
		Time:          resp.SlotTime.String(),
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
