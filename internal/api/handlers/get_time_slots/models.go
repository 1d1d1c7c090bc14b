package get_time_slots

import (
	"time"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	getTimeSlots "github.com/m04kA/HMA-AdminService/internal/usecase/get_time_slots"
)

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	DoctorID int64      `json:"doctorId"`
	Date     string     `json:"date"`
	Slots    []TimeSlot `json:"slots"`
}

// TimeSlot модель временного слота
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(doctorID int64, dateStr string) (*getTimeSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getTimeSlots.Request{
		DoctorID: doctorID,
		Date:     date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *TimeSlotsResponse {
	slots := make([]TimeSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = TimeSlot{
			Time:      slot.Time.String(),
			Available: slot.Available,
		}
	}

	return &TimeSlotsResponse{
		DoctorID: resp.DoctorID,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
	}
}
