package domain

// Schedule grid constants
const (
	ScheduleStartHour = 8  // первый слот 08:00
	ScheduleEndHour   = 18 // последний слот 17:30 (граница не включается)
	SlotStepMinutes   = 30
	SlotsPerDay       = (ScheduleEndHour - ScheduleStartHour) * 60 / SlotStepMinutes
)

// Business validation constants
const (
	MaxNotesLength     = 1000
	MaxTitleLength     = 255
	MaxNameLength      = 100
	MaxEmailLength     = 255
	MaxPhoneLength     = 20
	MaxDocumentLength  = 50
	DefaultEventColor  = "#3B82F6"
	DefaultTutorialETA = 15 // минут
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
