package domain

import "github.com/m04kA/HMA-AdminService/pkg/types"

// TimeSlot represents one position of the daily appointment grid
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}
