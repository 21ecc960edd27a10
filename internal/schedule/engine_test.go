package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendly/appointment-service/internal/domain"
	"github.com/agendly/appointment-service/pkg/types"
)

func mondayToFridayWindow(from, to types.TimeString) domain.WorkingWindow {
	return domain.WorkingWindow{
		FromWeekday: time.Monday,
		ToWeekday:   time.Friday,
		FromTime:    from,
		ToTime:      to,
	}
}

// 2025-10-05 is a Sunday, 2025-10-06 is a Monday.
var (
	sunday    = time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
	monday    = time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
	wednesday = time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC)
)

func TestComputeAvailability_DayGate(t *testing.T) {
	window := mondayToFridayWindow("09:00", "12:00")

	occupied := map[types.TimeString]struct{}{
		"10:00": {},
	}

	// день вне рабочего диапазона - пустой список независимо от занятости
	slots := ComputeAvailability(sunday, window, occupied)
	assert.Empty(t, slots)

	saturday := time.Date(2025, 10, 11, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, ComputeAvailability(saturday, window, nil))
}

func TestComputeAvailability_WindowFiltering(t *testing.T) {
	window := mondayToFridayWindow("09:00", "12:00")

	slots := ComputeAvailability(monday, window, nil)

	// обе границы включительно: слот ровно в 12:00 предлагается
	expected := []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00"}
	require.Len(t, slots, len(expected))
	for i, slot := range slots {
		assert.Equal(t, expected[i], slot.Time)
		assert.True(t, slot.Available)
	}
}

func TestComputeAvailability_OccupancyMarking(t *testing.T) {
	window := mondayToFridayWindow("09:00", "12:00")

	occupied := map[types.TimeString]struct{}{
		"10:00": {},
	}

	slots := ComputeAvailability(monday, window, occupied)
	require.Len(t, slots, 7)

	for _, slot := range slots {
		if slot.Time == "10:00" {
			assert.False(t, slot.Available, "occupied slot must be unavailable")
		} else {
			assert.True(t, slot.Available, "slot %s must be available", slot.Time)
		}
	}
}

func TestComputeAvailability_CancellationFreesSlot(t *testing.T) {
	window := mondayToFridayWindow("09:00", "12:00")

	appt := &domain.Appointment{
		ProfessionalID: 1,
		Date:           monday,
		StartTime:      "10:00",
		Status:         domain.StatusConfirmed,
	}

	slots := ComputeAvailability(monday, window, OccupiedSet([]*domain.Appointment{appt}))
	require.Len(t, slots, 7)
	assert.False(t, slots[2].Available, "10:00 must be occupied")

	// отмена - смена статуса, а не удаление; слот освобождается сразу
	appt.Status = domain.StatusCancelledByClient

	slots = ComputeAvailability(monday, window, OccupiedSet([]*domain.Appointment{appt}))
	require.Len(t, slots, 7)
	assert.True(t, slots[2].Available, "cancelled appointment must free the slot")
}

func TestComputeAvailability_Idempotence(t *testing.T) {
	window := mondayToFridayWindow("08:00", "18:00")

	occupied := map[types.TimeString]struct{}{
		"09:30": {},
		"14:00": {},
	}

	first := ComputeAvailability(wednesday, window, occupied)
	second := ComputeAvailability(wednesday, window, occupied)

	assert.Equal(t, first, second)
}

func TestComputeAvailability_LabelTruncatesSeconds(t *testing.T) {
	window := mondayToFridayWindow("09:00", "12:00")

	slots := ComputeAvailability(monday, window, nil)
	require.Len(t, slots, 7)
	assert.Equal(t, "09:30", slots[1].Label)

	// секунды усекаются и в занятых временах
	appt := &domain.Appointment{StartTime: "09:30:00", Status: domain.StatusScheduled}
	occupied := OccupiedSet([]*domain.Appointment{appt})
	_, busy := occupied[types.TimeString("09:30")]
	assert.True(t, busy)
}

func TestComputeAvailability_MalformedWindowYieldsNoSlots(t *testing.T) {
	tests := []struct {
		name   string
		window domain.WorkingWindow
	}{
		{
			name:   "fromTime after toTime",
			window: mondayToFridayWindow("18:00", "09:00"),
		},
		{
			name: "weekday out of range",
			window: domain.WorkingWindow{
				FromWeekday: 8,
				ToWeekday:   9,
				FromTime:    "09:00",
				ToTime:      "18:00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ComputeAvailability(monday, tt.window, nil))
		})
	}
}

func TestSlotGrid(t *testing.T) {
	grid := SlotGrid()

	require.Len(t, grid, 48)
	assert.Equal(t, types.TimeString("00:00"), grid[0])
	assert.Equal(t, types.TimeString("23:30"), grid[47])

	// пользователи получают копию, а не глобальный срез
	grid[0] = "mutated"
	assert.Equal(t, types.TimeString("00:00"), SlotGrid()[0])
}

func TestSlotOffered(t *testing.T) {
	window := mondayToFridayWindow("09:00", "12:00")

	assert.True(t, SlotOffered(monday, window, "09:00"))
	assert.True(t, SlotOffered(monday, window, "12:00"))
	assert.True(t, SlotOffered(monday, window, "10:30:00"))

	assert.False(t, SlotOffered(monday, window, "08:30"), "before opening")
	assert.False(t, SlotOffered(monday, window, "12:30"), "after closing")
	assert.False(t, SlotOffered(monday, window, "10:15"), "off the grid")
	assert.False(t, SlotOffered(sunday, window, "10:00"), "non-working day")
}
