package models

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Направления навигации по неделям
const (
	DirectionNext     = "next"
	DirectionPrevious = "previous"
	DirectionToday    = "today"
)

// NavigateRequest запрос навигации по неделям
type NavigateRequest struct {
	Direction string `json:"direction"`
}

// UpdateAppointmentRequest изменяемые поля записи
// nil - поле не меняется, пустое описание очищает его
type UpdateAppointmentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// Empty сообщает, что в запросе нет ни одного поля
func (r *UpdateAppointmentRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Color == nil
}

// MergeInto накладывает переданные поля на текущие значения записи
func (r *UpdateAppointmentRequest) MergeInto(current *domain.Appointment) domain.AppointmentDetails {
	details := domain.AppointmentDetails{
		Title:       current.Title,
		Description: current.Description,
		Color:       current.Color,
	}
	if details.Color == "" {
		details.Color = domain.DefaultAppointmentColor
	}

	if r.Title != nil {
		details.Title = *r.Title
	}
	if r.Description != nil {
		details.Description = r.Description
		if *r.Description == "" {
			details.Description = nil
		}
	}
	if r.Color != nil {
		details.Color = *r.Color
	}
	return details
}

// AppointmentResponse запись в ответе API
type AppointmentResponse struct {
	ID             int64      `json:"id"`
	CreatedAt      time.Time  `json:"createdAt"`
	ProfessionalID *int64     `json:"professionalId"`
	ClientID       *int64     `json:"clientId"`
	Date           string     `json:"date"`
	StartTime      string     `json:"startTime"`
	EndTime        string     `json:"endTime"`
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	Color          string     `json:"color"`
	Cancelled      bool       `json:"cancelled"`
	CancelledAt    *time.Time `json:"cancelledAt"`
}

// DayResponse записи одного дня недели
type DayResponse struct {
	Date         string                `json:"date"`
	Weekday      int                   `json:"weekday"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// WeekResponse неделя записей (воскресенье..суббота)
type WeekResponse struct {
	ReferenceDate string        `json:"referenceDate"`
	WeekStart     string        `json:"weekStart"`
	WeekEnd       string        `json:"weekEnd"`
	Days          []DayResponse `json:"days"`
	Total         int           `json:"total"`
}

// FromDomainAppointment конвертирует запись в ответ
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             a.ID,
		CreatedAt:      a.CreatedAt,
		ProfessionalID: a.ProfessionalID,
		ClientID:       a.ClientID,
		Date:           a.Date.Format(domain.DateFormat),
		StartTime:      a.StartTime.String(),
		EndTime:        a.EndTime.String(),
		Title:          a.Title,
		Description:    a.Description,
		Color:          a.Color,
		Cancelled:      a.Cancelled,
		CancelledAt:    a.CancelledAt,
	}
}

// FromDomainWeek раскладывает записи недели по дням
func FromDomainWeek(ref time.Time, list []domain.Appointment) *WeekResponse {
	dates := domain.WeekDates(ref)

	resp := &WeekResponse{
		ReferenceDate: ref.Format(domain.DateFormat),
		WeekStart:     dates[0].Format(domain.DateFormat),
		WeekEnd:       dates[len(dates)-1].Format(domain.DateFormat),
		Days:          make([]DayResponse, len(dates)),
		Total:         len(list),
	}

	for i, d := range dates {
		resp.Days[i] = DayResponse{
			Date:         d.Format(domain.DateFormat),
			Weekday:      int(d.Weekday()),
			Appointments: make([]AppointmentResponse, 0),
		}
	}

	for i := range list {
		a := &list[i]
		for j := range dates {
			if a.SameDate(dates[j]) {
				resp.Days[j].Appointments = append(resp.Days[j].Appointments, *FromDomainAppointment(a))
				break
			}
		}
	}

	return resp
}
