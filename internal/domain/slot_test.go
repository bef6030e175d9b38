package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func TestGenerateSlots(t *testing.T) {
	catalog := GenerateSlots()
	slots := catalog.Slots()

	// 09:00-17:00 с шагом 30 минут, правая граница не включается
	require.Len(t, slots, 16)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("16:30"), slots[len(slots)-1])
	assert.Equal(t, 16, catalog.DailyCapacity())

	// Слоты строго возрастают
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]),
			"slot %s must be before %s", slots[i-1], slots[i])
	}
}

func TestSlotCatalog_Contains(t *testing.T) {
	catalog := GenerateSlots()

	assert.True(t, catalog.Contains("09:00"))
	assert.True(t, catalog.Contains("12:30"))
	assert.True(t, catalog.Contains("16:30"))

	assert.False(t, catalog.Contains("17:00"), "end of working day is not a slot")
	assert.False(t, catalog.Contains("08:30"), "before working day")
	assert.False(t, catalog.Contains("09:15"), "off-grid time")
	assert.False(t, catalog.Contains(""))
}

func TestSlotCatalog_SlotsReturnsCopy(t *testing.T) {
	catalog := GenerateSlots()

	slots := catalog.Slots()
	slots[0] = "00:00"

	assert.Equal(t, types.TimeString("09:00"), catalog.Slots()[0])
}
