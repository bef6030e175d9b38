package create_appointment

import "errors"

var (
	// ErrDateNotAllowed возвращается, когда дата вне окна бронирования
	// (в прошлом или дальше конца последнего доступного месяца)
	ErrDateNotAllowed = errors.New("create_appointment: date is outside the booking window")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidSlot возвращается, когда время не входит в сетку слотов
	ErrInvalidSlot = errors.New("create_appointment: time is not a valid slot")

	// ErrDayFull возвращается, когда на день уже записано daily capacity пациентов
	ErrDayFull = errors.New("create_appointment: day is fully booked for this service")

	// ErrSlotTaken возвращается, когда слот (услуга, дата, время) уже занят
	ErrSlotTaken = errors.New("create_appointment: slot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
