package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

// Service сервис справочных данных: услуги и сетка слотов
type Service struct {
	serviceRepo ServiceRepository
	catalog     *domain.SlotCatalog
	logger      Logger
}

// NewService создает новый экземпляр сервиса справочных данных
func NewService(serviceRepo ServiceRepository, catalog *domain.SlotCatalog, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		catalog:     catalog,
		logger:      logger,
	}
}

// ListServices получает список услуг клиники
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// TimeSlots возвращает сетку слотов рабочего дня и вместимость
// Каталог вычисляется один раз при старте, поэтому обращения к БД нет
func (s *Service) TimeSlots() *models.TimeSlotsResponse {
	return models.FromSlotCatalog(s.catalog)
}
