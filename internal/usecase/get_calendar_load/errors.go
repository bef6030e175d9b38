package get_calendar_load

import "errors"

var (
	// ErrMonthNotAllowed возвращается, когда месяц вне окна бронирования
	ErrMonthNotAllowed = errors.New("get_calendar_load: month is outside the booking window")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_calendar_load: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar_load: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar_load: internal error")
)
