package get_booked_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
)

// UseCase use case получения занятых слотов на услугу и дату
type UseCase struct {
	apptRepo     AppointmentRepository
	serviceRepo  ServiceRepository
	window       domain.BookingWindow
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		serviceRepo:  serviceRepo,
		window:       domain.NewBookingWindow(),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения занятых слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookedTimes: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Проверяем, что дата в окне бронирования
	now := uc.timeProvider.Now()
	if !uc.window.DateAllowed(req.Date, now) {
		uc.logger.Warn("GetBookedTimes: date %s is outside the booking window",
			req.Date.Format(domain.DateFormat))
		return nil, ErrDateNotAllowed
	}

	// 3. Проверяем существование услуги
	if _, err := uc.serviceRepo.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetBookedTimes: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetBookedTimes: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Получаем занятые слоты
	times, err := uc.apptRepo.BookedTimes(ctx, req.ServiceID, req.Date)
	if err != nil {
		uc.logger.Error("GetBookedTimes: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	uc.logger.Info("GetBookedTimes: found %d booked slots for service=%d, date=%s",
		len(times), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Times:     times,
	}, nil
}
