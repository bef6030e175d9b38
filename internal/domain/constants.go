package domain

// Working day configuration
// Сетка слотов фиксирована для всех услуг: полчаса, с 09:00 до 17:00
const (
	WorkStartHour = 9
	WorkEndHour   = 17
	SlotMinutes   = 30
)

// Booking horizon
// Записываться можно с сегодняшнего дня до конца (текущий месяц + AllowedMonthsAhead)
const (
	AllowedMonthsAhead = 3
)

// Business validation constants
const (
	MinPatientNameLength = 2
	MaxPatientNameLength = 60
	MinPhoneLength       = 6
	MaxPhoneLength       = 20
)

// Calendar load thresholds
// Пороги классификации загрузки дня - презентационная эвристика,
// не зависящая от вместимости дня (DailyCapacity)
const (
	LoadLevelLowMax    = 5
	LoadLevelMediumMax = 12
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
