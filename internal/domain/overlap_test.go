package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		startA, endA, startB, endB string
		want                       bool
	}{
		{name: "touching", startA: "09:00", endA: "10:00", startB: "10:00", endB: "11:00", want: false},
		{name: "partial", startA: "09:00", endA: "10:30", startB: "10:00", endB: "11:00", want: true},
		{name: "contained", startA: "09:00", endA: "12:00", startB: "10:00", endB: "11:00", want: true},
		{name: "identical", startA: "09:00", endA: "10:00", startB: "09:00", endB: "10:00", want: true},
		{name: "disjoint", startA: "08:00", endA: "09:00", startB: "13:00", endB: "14:00", want: false},
		{name: "malformed counts as midnight", startA: "xx", endA: "01:00", startB: "00:30", endB: "02:00", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntervalsOverlap(tt.startA, tt.endA, tt.startB, tt.endB))
			// symmetry
			assert.Equal(t, tt.want, IntervalsOverlap(tt.startB, tt.endB, tt.startA, tt.endA))
		})
	}
}

func TestIntervalsOverlap_Symmetric(t *testing.T) {
	times := []string{"08:00", "08:30", "09:00", "09:45", "10:00", "12:15", "bad"}

	for _, sa := range times {
		for _, ea := range times {
			for _, sb := range times {
				for _, eb := range times {
					assert.Equal(t,
						IntervalsOverlap(sa, ea, sb, eb),
						IntervalsOverlap(sb, eb, sa, ea),
						"A=(%s,%s) B=(%s,%s)", sa, ea, sb, eb)
				}
			}
		}
	}
}

func TestValidInterval(t *testing.T) {
	assert.True(t, ValidInterval("09:00", "09:01"))
	assert.False(t, ValidInterval("09:00", "09:00"))
	assert.False(t, ValidInterval("10:00", "09:00"))
}

func TestHasConflict(t *testing.T) {
	day := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	existing := []Appointment{
		{ID: 1, Date: day, StartTime: "09:00", EndTime: "10:00"},
		{ID: 2, Date: day, StartTime: "14:00", EndTime: "15:00", Cancelled: true},
		{ID: 3, Date: day.AddDate(0, 0, 1), StartTime: "11:00", EndTime: "12:00"},
		{ID: 4, Date: day, StartTime: "", EndTime: "18:00"},
	}

	tests := []struct {
		name       string
		date       time.Time
		start, end string
		excludeID  *int64
		want       bool
	}{
		{name: "overlaps active", date: day, start: "09:30", end: "10:30", want: true},
		{name: "touching active", date: day, start: "10:00", end: "11:00", want: false},
		{name: "cancelled ignored", date: day, start: "14:00", end: "15:00", want: false},
		{name: "other date ignored", date: day, start: "11:00", end: "12:00", want: false},
		{name: "missing times ignored", date: day, start: "17:00", end: "17:30", want: false},
		{name: "excluded self", date: day, start: "09:00", end: "10:00", excludeID: ptr.Ptr(int64(1)), want: false},
		{name: "excluded other still conflicts", date: day, start: "09:00", end: "10:00", excludeID: ptr.Ptr(int64(3)), want: true},
		{name: "same date different clock time", date: day.Add(13 * time.Hour), start: "09:15", end: "09:45", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasConflict(tt.date, tt.start, tt.end, existing, tt.excludeID))
		})
	}
}

func TestHasConflict_EditNeverConflictsWithItself(t *testing.T) {
	day := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	self := Appointment{ID: 42, Date: day, StartTime: "13:00", EndTime: "14:00"}
	existing := []Appointment{
		self,
		{ID: 43, Date: day, StartTime: "15:00", EndTime: "16:00"},
	}

	for _, candidate := range [][2]string{{"13:00", "14:00"}, {"12:30", "13:30"}, {"13:15", "13:45"}} {
		assert.False(t, HasConflict(day, candidate[0], candidate[1], existing, &self.ID),
			"candidate %v", candidate)
	}
}
