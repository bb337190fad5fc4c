package domain

import "time"

// ReportAppointment appointment enriched with client and professional data
type ReportAppointment struct {
	Appointment
	Client       ReportClient
	Professional ReportProfessional
}

type ReportClient struct {
	ID      int64
	CPF     string
	Name    string
	Address string
	Email   string
	Phone   string
}

type ReportProfessional struct {
	ID          int64
	Name        string
	Specialty   string
	ProfileID   int64
	SpecialtyID int64
}

// ReportFilter фильтр для отчёта по всем записям
type ReportFilter struct {
	ProfessionalID   *int64
	ClientID         *int64
	From             *time.Time
	To               *time.Time
	IncludeCancelled bool
}

// Matches проверяет, проходит ли запись фильтр
func (f ReportFilter) Matches(a *ReportAppointment) bool {
	if !f.IncludeCancelled && a.Cancelled {
		return false
	}
	if f.ProfessionalID != nil && a.Professional.ID != *f.ProfessionalID {
		return false
	}
	if f.ClientID != nil && a.Client.ID != *f.ClientID {
		return false
	}
	if f.From != nil && CompareDates(a.Date, *f.From) < 0 {
		return false
	}
	if f.To != nil && CompareDates(a.Date, *f.To) > 0 {
		return false
	}
	return true
}

// CompareDates compares calendar dates ignoring time of day and location
func CompareDates(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return ay - by
	case am != bm:
		return int(am) - int(bm)
	}
	return ad - bd
}
