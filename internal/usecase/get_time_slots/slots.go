package get_time_slots

import (
	"fmt"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	"github.com/m04kA/HMA-AdminService/pkg/types"
)

// generateGrid строит дневную сетку слотов.
// Сетка фиксированная: с 08:00 до границы 18:00 с шагом 30 минут, всего 20
// позиций. Слот занят, только если его время в точности совпадает со временем
// активной записи.
func generateGrid(takenTimes []types.TimeString) []Slot {
	taken := make(map[types.TimeString]struct{}, len(takenTimes))
	for _, t := range takenTimes {
		taken[t] = struct{}{}
	}

	slots := make([]Slot, 0, domain.SlotsPerDay)
	for hour := domain.ScheduleStartHour; hour < domain.ScheduleEndHour; hour++ {
		for minute := 0; minute < 60; minute += domain.SlotStepMinutes {
			slotTime := types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute))
			_, isTaken := taken[slotTime]
			slots = append(slots, Slot{
				Time:      slotTime,
				Available: !isTaken,
			})
		}
	}

	return slots
}
