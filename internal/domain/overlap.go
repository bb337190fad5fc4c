package domain

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// IntervalsOverlap reports whether [startA, endA) and [startB, endB) overlap.
// Times are "HH:MM"; malformed values count as 00:00.
// Touching intervals (endA == startB) do not overlap.
func IntervalsOverlap(startA, endA, startB, endB string) bool {
	return types.ParseMinutes(startA) < types.ParseMinutes(endB) &&
		types.ParseMinutes(endA) > types.ParseMinutes(startB)
}

// ValidInterval reports whether start is strictly before end
func ValidInterval(start, end string) bool {
	return types.ParseMinutes(start) < types.ParseMinutes(end)
}

// HasConflict reports whether [start, end) on date overlaps any active appointment.
// excludeID skips the appointment being edited.
func HasConflict(date time.Time, start, end string, existing []Appointment, excludeID *int64) bool {
	for i := range existing {
		a := &existing[i]

		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if !a.IsActive() || !a.SameDate(date) || !a.HasTimes() {
			continue
		}

		if IntervalsOverlap(start, end, a.StartTime.String(), a.EndTime.String()) {
			return true
		}
	}
	return false
}
