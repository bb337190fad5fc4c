package domain

import (
	"regexp"
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Appointment represents a scheduled booking of a client with a professional
type Appointment struct {
	ID             int64
	CreatedAt      time.Time
	UserID         *string // auth user that created the appointment
	ProfessionalID *int64
	ClientID       *int64
	Date           time.Time // date only, time of day is ignored
	StartTime      types.TimeString
	EndTime        types.TimeString
	Title          string
	Description    *string
	Cancelled      bool
	CancelledAt    *time.Time
	Color          string
}

// IsActive returns true if the appointment has not been cancelled
func (a *Appointment) IsActive() bool {
	return !a.Cancelled
}

// HasTimes returns true if both start and end times are set
func (a *Appointment) HasTimes() bool {
	return !a.StartTime.IsZero() && !a.EndTime.IsZero()
}

// SameDate reports whether the appointment falls on the given calendar date
func (a *Appointment) SameDate(date time.Time) bool {
	return SameDay(a.Date, date)
}

// AppointmentDetails are the only fields that can change after creation
type AppointmentDetails struct {
	Title       string
	Description *string
	Color       string
}

// Apply copies the mutable fields onto the appointment
func (d AppointmentDetails) Apply(a *Appointment) {
	a.Title = d.Title
	a.Description = d.Description
	a.Color = d.Color
}

// SameDay compares calendar dates ignoring time of day and location
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// CompareAppointments orders appointments by date, then start time
func CompareAppointments(a, b Appointment) int {
	if c := CompareDates(a.Date, b.Date); c != 0 {
		return c
	}
	return a.StartTime.Minutes() - b.StartTime.Minutes()
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidColor reports whether s is a #rrggbb color
func ValidColor(s string) bool {
	return hexColorPattern.MatchString(s)
}
