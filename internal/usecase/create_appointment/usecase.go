package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
)

// UseCase use case для создания записи на прием
type UseCase struct {
	apptRepo     AppointmentRepository
	serviceRepo  ServiceRepository
	catalog      *domain.SlotCatalog
	window       domain.BookingWindow
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	catalog *domain.SlotCatalog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		serviceRepo:  serviceRepo,
		catalog:      catalog,
		window:       domain.NewBookingWindow(),
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
// Проверка вместимости дня, занятости слота и вставка выполняются
// в сериализуемой транзакции с блокировкой строк дня (FOR UPDATE),
// чтобы два конкурентных запроса на один слот не прошли оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%d, date=%s, time=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.SlotTime)

	// 1. Нормализация и валидация входных данных
	normalizeRequest(req)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата в окне бронирования
	if !uc.window.DateAllowed(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is outside the booking window",
			req.Date.Format(domain.DateFormat))
		return nil, ErrDateNotAllowed
	}

	// 4. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Проверяем, что время входит в сетку слотов
	if !uc.catalog.Contains(req.SlotTime) {
		uc.logger.Warn("CreateAppointment: time %s is not in the slot catalog", req.SlotTime)
		return nil, ErrInvalidSlot
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Выполняем проверки занятости и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем все активные записи на эту услугу и дату с блокировкой (FOR UPDATE)
		booked, err := uc.apptRepo.GetBookedForDay(txCtx, req.ServiceID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get booked appointments: %v", err)
			return fmt.Errorf("%w: failed to get booked appointments: %v", ErrInternal, err)
		}

		// 6.2. Проверяем вместимость дня
		if len(booked) >= uc.catalog.DailyCapacity() {
			uc.logger.Warn("CreateAppointment: day %s is full for service=%d (%d/%d)",
				req.Date.Format(domain.DateFormat), req.ServiceID, len(booked), uc.catalog.DailyCapacity())
			return ErrDayFull
		}

		// 6.3. Проверяем, что именно этот слот свободен
		for _, appt := range booked {
			if appt.SlotTime == req.SlotTime {
				uc.logger.Warn("CreateAppointment: slot %s on %s is already booked for service=%d",
					req.SlotTime, req.Date.Format(domain.DateFormat), req.ServiceID)
				return ErrSlotTaken
			}
		}

		// 6.4. Создаем запись с денормализацией названия услуги
		appt := &domain.Appointment{
			PatientName:   req.PatientName,
			Phone:         req.Phone,
			SituationType: req.SituationType,
			ServiceID:     req.ServiceID,
			ServiceName:   service.Name,
			Date:          req.Date,
			SlotTime:      req.SlotTime,
			Status:        domain.StatusBooked,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			// Уникальный индекс на занятый слот - страховка на уровне схемы
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		PatientName:   result.PatientName,
		Phone:         result.Phone,
		SituationType: result.SituationType,
		ServiceID:     result.ServiceID,
		ServiceName:   result.ServiceName,
		Date:          result.Date,
		SlotTime:      result.SlotTime,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
	}, nil
}
