package get_booked_times

import "errors"

var (
	// ErrDateNotAllowed возвращается, когда дата вне окна бронирования
	ErrDateNotAllowed = errors.New("get_booked_times: date is outside the booking window")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_booked_times: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_booked_times: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_booked_times: internal error")
)
