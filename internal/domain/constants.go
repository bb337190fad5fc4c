package domain

// Default agenda values
const (
	DefaultSlotDurationMinutes = 60
	DefaultDayStartHour        = 8
	DefaultDayEndHour          = 22
	DefaultAppointmentColor    = "#3b82f6"
)

// Business validation constants
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MinSlotDuration      = 5
	MaxSlotDuration      = 480 // 8 hours
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DaysInWeek number of calendar days in a week bucket
const DaysInWeek = 7
