package domain

// Service represents a medical service offered by the clinic
// Справочные данные: заполняются миграцией и не изменяются в рантайме
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
}
