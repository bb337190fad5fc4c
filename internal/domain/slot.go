package domain

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Slot is a candidate time slot tagged with its availability
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}

// Conflicting returns true if the slot overlaps an existing appointment
func (s Slot) Conflicting() bool {
	return !s.Available
}

// DefaultStartTimes returns every whole hour from DefaultDayStartHour to DefaultDayEndHour inclusive
func DefaultStartTimes() []types.TimeString {
	return HourlyStartTimes(DefaultDayStartHour, DefaultDayEndHour)
}

// HourlyStartTimes returns every whole hour in [fromHour, toHour]
func HourlyStartTimes(fromHour, toHour int) []types.TimeString {
	if toHour < fromHour {
		return []types.TimeString{}
	}

	times := make([]types.TimeString, 0, toHour-fromHour+1)
	for h := fromHour; h <= toHour; h++ {
		times = append(times, types.FromMinutes(h*60))
	}
	return times
}

// AvailableSlots evaluates each candidate start time against the existing appointments.
// Empty startTimes falls back to DefaultStartTimes, non-positive duration to DefaultSlotDurationMinutes.
func AvailableSlots(
	date time.Time,
	existing []Appointment,
	startTimes []types.TimeString,
	durationMinutes int,
	excludeID *int64,
) []Slot {
	if len(startTimes) == 0 {
		startTimes = DefaultStartTimes()
	}
	if durationMinutes <= 0 {
		durationMinutes = DefaultSlotDurationMinutes
	}

	slots := make([]Slot, len(startTimes))
	for i, start := range startTimes {
		end := types.FromMinutes(start.Minutes() + durationMinutes)
		conflict := HasConflict(date, start.String(), end.String(), existing, excludeID)

		slots[i] = Slot{
			StartTime: start,
			EndTime:   end,
			Available: !conflict,
		}
	}
	return slots
}
