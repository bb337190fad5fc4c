package events

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Type тип события записи
type Type string

const (
	AppointmentCreated   Type = "appointment.created"
	AppointmentUpdated   Type = "appointment.updated"
	AppointmentCancelled Type = "appointment.cancelled"
)

// Event событие, отправляемое в топик записей
type Event struct {
	ID          string          `json:"id"`
	Type        Type            `json:"type"`
	OccurredAt  time.Time       `json:"occurredAt"`
	UserID      string          `json:"userId"`
	Appointment AppointmentData `json:"appointment"`
}

// AppointmentData состояние записи на момент события
type AppointmentData struct {
	ID             int64      `json:"id"`
	ProfessionalID *int64     `json:"professionalId,omitempty"`
	ClientID       *int64     `json:"clientId,omitempty"`
	Date           string     `json:"date"`
	StartTime      string     `json:"startTime"`
	EndTime        string     `json:"endTime"`
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	Color          string     `json:"color"`
	Cancelled      bool       `json:"cancelled"`
	CancelledAt    *time.Time `json:"cancelledAt,omitempty"`
}

// FromDomainAppointment конвертирует запись в данные события
func FromDomainAppointment(a *domain.Appointment) AppointmentData {
	return AppointmentData{
		ID:             a.ID,
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
