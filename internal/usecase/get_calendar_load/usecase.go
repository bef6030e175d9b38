package get_calendar_load

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
)

// UseCase use case расчета календарной загрузки за месяц
type UseCase struct {
	apptRepo     AppointmentRepository
	serviceRepo  ServiceRepository
	catalog      *domain.SlotCatalog
	window       domain.BookingWindow
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	catalog *domain.SlotCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		serviceRepo:  serviceRepo,
		catalog:      catalog,
		window:       domain.NewBookingWindow(),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case расчета загрузки
// Для каждого дня месяца возвращается количество записей, уровень загрузки,
// признак заполненности (только при заданной услуге) и признак недоступности
// (день в прошлом или заполнен)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendarLoad: month=%s, scoped=%t",
		req.Month.Format(domain.MonthFormat), req.Scope.IsSpecified())

	// 1. Валидация входных данных
	if req.Month.IsZero() {
		return nil, fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	// 2. Проверяем, что месяц в окне бронирования
	now := uc.timeProvider.Now()
	if !uc.window.MonthAllowed(req.Month, now) {
		uc.logger.Warn("GetCalendarLoad: month %s is outside the booking window",
			req.Month.Format(domain.MonthFormat))
		return nil, ErrMonthNotAllowed
	}

	monthStart := domain.MonthStart(req.Month)
	nextMonth := domain.AddMonths(monthStart, 1)

	// 3. Считаем записи по дням, если задана услуга
	// Без услуги счетчики нулевые и день не может быть заполнен
	counts := make(map[string]int)
	if serviceID, ok := req.Scope.ServiceID(); ok {
		if _, err := uc.serviceRepo.GetByID(ctx, serviceID); err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetCalendarLoad: service id=%d not found", serviceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetCalendarLoad: failed to get service id=%d: %v", serviceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		perDay, err := uc.apptRepo.CountBookedPerDay(ctx, serviceID, monthStart, nextMonth)
		if err != nil {
			uc.logger.Error("GetCalendarLoad: failed to count appointments: %v", err)
			return nil, fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
		}
		counts = perDay
	}

	// 4. Строим агрегат по каждому дню месяца
	today := domain.DateOnly(now)
	capacity := uc.catalog.DailyCapacity()

	days := make([]domain.DayLoad, 0, 31)
	for d := monthStart; d.Before(nextMonth); d = d.AddDate(0, 0, 1) {
		count := counts[d.Format(domain.DateFormat)]

		isFull := req.Scope.IsSpecified() && count >= capacity
		isPast := d.Before(today)

		days = append(days, domain.DayLoad{
			Date:     d,
			Count:    count,
			Level:    domain.ClassifyLoad(count),
			IsFull:   isFull,
			Disabled: isPast || isFull,
		})
	}

	uc.logger.Info("GetCalendarLoad: computed load for %d days of %s",
		len(days), req.Month.Format(domain.MonthFormat))

	return &Response{
		Month:         monthStart,
		Scope:         req.Scope,
		DailyCapacity: capacity,
		Days:          days,
	}, nil
}
