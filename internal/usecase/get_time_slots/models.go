package get_time_slots

import (
	"time"

	"github.com/m04kA/HMA-AdminService/pkg/types"
)

// Request модель запроса сетки слотов
type Request struct {
	DoctorID int64     // ID врача
	Date     time.Time // Дата (без времени)
}

// Slot один слот дневной сетки
type Slot struct {
	Time      types.TimeString // Время начала слота
	Available bool             // Свободен ли слот
}

// Response модель ответа с дневной сеткой слотов
type Response struct {
	DoctorID int64     // ID врача
	Date     time.Time // Дата
	Slots    []Slot    // Сетка слотов в порядке возрастания времени
}
