package domain

import "time"

// BookingWindow правила горизонта бронирования
// Записи принимаются в диапазоне [сегодня, конец месяца (текущий + MonthsAhead)]
type BookingWindow struct {
	MonthsAhead int
}

// NewBookingWindow создает окно бронирования с дефолтным горизонтом
func NewBookingWindow() BookingWindow {
	return BookingWindow{MonthsAhead: AllowedMonthsAhead}
}

// DateAllowed проверяет, что дата попадает в окно бронирования
// Нижняя граница - сегодня (включительно), верхняя - первый день месяца
// (текущий + MonthsAhead + 1), не включается
func (w BookingWindow) DateAllowed(date, now time.Time) bool {
	today := DateOnly(now)
	requested := DateOnly(date)

	if requested.Before(today) {
		return false
	}

	upperBound := AddMonths(MonthStart(now), w.MonthsAhead+1)
	return requested.Before(upperBound)
}

// MonthAllowed проверяет, что месяц попадает в окно бронирования
// Допустимы месяцы от текущего до (текущий + MonthsAhead) включительно
func (w BookingWindow) MonthAllowed(month, now time.Time) bool {
	current := MonthStart(now)
	requested := MonthStart(month)
	max := AddMonths(current, w.MonthsAhead)

	return !requested.Before(current) && !requested.After(max)
}

// MonthStart возвращает первый день месяца для переданной даты
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddMonths возвращает первый день месяца, отстоящего на months вперед
func AddMonths(t time.Time, months int) time.Time {
	return MonthStart(t).AddDate(0, months, 0)
}

// DateOnly обнуляет компонент времени, оставляя только дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
