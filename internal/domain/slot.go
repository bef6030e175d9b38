package domain

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// SlotCatalog фиксированная сетка слотов рабочего дня
// Генерируется один раз при старте процесса и дальше не изменяется
type SlotCatalog struct {
	slots []types.TimeString
	index map[types.TimeString]struct{}
}

// GenerateSlots строит каталог слотов от WorkStartHour до WorkEndHour
// с шагом SlotMinutes; верхняя граница не включается
// (при дефолтной конфигурации: 16 слотов, "09:00" ... "16:30")
func GenerateSlots() *SlotCatalog {
	slots := make([]types.TimeString, 0)

	for minutes := WorkStartHour * 60; minutes < WorkEndHour*60; minutes += SlotMinutes {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)))
	}

	index := make(map[types.TimeString]struct{}, len(slots))
	for _, s := range slots {
		index[s] = struct{}{}
	}

	return &SlotCatalog{slots: slots, index: index}
}

// Slots возвращает копию упорядоченного списка слотов
func (c *SlotCatalog) Slots() []types.TimeString {
	out := make([]types.TimeString, len(c.slots))
	copy(out, c.slots)
	return out
}

// Contains возвращает true, если время входит в каталог слотов
func (c *SlotCatalog) Contains(t types.TimeString) bool {
	_, ok := c.index[t]
	return ok
}

// DailyCapacity возвращает вместимость одного дня (количество слотов)
func (c *SlotCatalog) DailyCapacity() int {
	return len(c.slots)
}
