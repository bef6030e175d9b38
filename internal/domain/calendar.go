package domain

import "time"

// LoadLevel классификация загрузки дня
type LoadLevel string

const (
	LoadLevelLow    LoadLevel = "Low"
	LoadLevelMedium LoadLevel = "Medium"
	LoadLevelHigh   LoadLevel = "High"
)

// ClassifyLoad возвращает уровень загрузки по количеству записей за день
func ClassifyLoad(count int) LoadLevel {
	switch {
	case count <= LoadLevelLowMax:
		return LoadLevelLow
	case count <= LoadLevelMediumMax:
		return LoadLevelMedium
	default:
		return LoadLevelHigh
	}
}

// DayLoad агрегат загрузки одного календарного дня
// Не хранится в БД, вычисляется из записей на лету
type DayLoad struct {
	Date     time.Time
	Count    int
	Level    LoadLevel
	IsFull   bool // день заполнен до вместимости (только при заданной услуге)
	Disabled bool // день в прошлом или заполнен
}

// ServiceScope область подсчета занятости календаря
// Либо конкретная услуга, либо "без услуги" - тогда счетчики нулевые
// и день не может считаться заполненным
type ServiceScope struct {
	serviceID int64
	specified bool
}

// AllServices создает scope без конкретной услуги
func AllServices() ServiceScope {
	return ServiceScope{}
}

// ForService создает scope для конкретной услуги
func ForService(serviceID int64) ServiceScope {
	return ServiceScope{serviceID: serviceID, specified: true}
}

// ServiceID возвращает ID услуги и признак того, что услуга задана
func (s ServiceScope) ServiceID() (int64, bool) {
	return s.serviceID, s.specified
}

// IsSpecified возвращает true, если scope указывает на конкретную услугу
func (s ServiceScope) IsSpecified() bool {
	return s.specified
}
