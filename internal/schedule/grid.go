package schedule

import (
	"fmt"

	"github.com/agendly/appointment-service/internal/domain"
	"github.com/agendly/appointment-service/pkg/types"
)

// slotGrid фиксированная глобальная сетка кандидатов времени:
// каждые domain.SlotGridStepMinutes минут от 00:00 до конца дня.
// Сетка не зависит от профессионала, строится один раз.
var slotGrid = buildGrid(domain.SlotGridStepMinutes)

// SlotGrid возвращает копию глобальной сетки слотов
func SlotGrid() []types.TimeString {
	grid := make([]types.TimeString, len(slotGrid))
	copy(grid, slotGrid)
	return grid
}

func buildGrid(stepMinutes int) []types.TimeString {
	grid := make([]types.TimeString, 0, 24*60/stepMinutes)
	for m := 0; m < 24*60; m += stepMinutes {
		grid = append(grid, types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)))
	}
	return grid
}
