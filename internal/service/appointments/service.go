package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// Service сервис для работы с записями на прием
type Service struct {
	apptRepo AppointmentRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(apptRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// GetByPhone получает историю записей пациента по телефону
// Телефон сравнивается после trim; сортировка - сначала новые
func (s *Service) GetByPhone(ctx context.Context, phone string) (*models.AppointmentListResponse, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	s.logger.Info("GetByPhone: fetching appointments for phone=%s", phone)

	appointments, err := s.apptRepo.GetByPhone(ctx, phone)
	if err != nil {
		s.logger.Error("GetByPhone: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: GetByPhone - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByPhone: successfully fetched %d appointments for phone=%s",
		len(appointments), phone)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись на прием
// Идемпотентна: повторная отмена уже отмененной записи - успех без изменений.
// cancelled - терминальный статус, других переходов нет
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appt.IsCancelled() {
		s.logger.Info("Cancel: appointment id=%d is already cancelled", id)
		return nil
	}

	if err := s.apptRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}
