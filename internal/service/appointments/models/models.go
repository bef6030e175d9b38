package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID            int64  `json:"id"`
	PatientName   string `json:"patientName"`
	Phone         string `json:"phone"`
	SituationType string `json:"situationType"`
	ServiceID     int64  `json:"serviceId"`
	ServiceName   string `json:"serviceName"`
	Date          string `json:"date"` // "2025-10-15"
	Time          string `json:"time"` // "09:30"
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"` // ISO 8601
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// CancelResponse результат отмены записи
type CancelResponse struct {
	OK bool `json:"ok"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:            a.ID,
		PatientName:   a.PatientName,
		Phone:         a.Phone,
		SituationType: a.SituationType,
		ServiceID:     a.ServiceID,
		ServiceName:   a.ServiceName,
		Date:          a.Date.Format(domain.DateFormat),
		Time:          a.SlotTime.String(),
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}
