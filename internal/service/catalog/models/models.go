package models

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// TimeSlotsResponse ответ с сеткой слотов рабочего дня
type TimeSlotsResponse struct {
	Slots         []string `json:"slots"`
	DailyCapacity int      `json:"dailyCapacity"`
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, svc := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
		})
	}

	return resp
}

// FromSlotCatalog конвертирует каталог слотов в DTO
func FromSlotCatalog(catalog *domain.SlotCatalog) *TimeSlotsResponse {
	slots := catalog.Slots()
	labels := make([]string, 0, len(slots))
	for _, s := range slots {
		labels = append(labels, s.String())
	}

	return &TimeSlotsResponse{
		Slots:         labels,
		DailyCapacity: catalog.DailyCapacity(),
	}
}
