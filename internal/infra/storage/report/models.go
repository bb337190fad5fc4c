package report

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// appointmentDTO элемент data процедуры ag_listar_agendamentos_completo
type appointmentDTO struct {
	ID             int64           `json:"id"`
	CreatedAt      *time.Time      `json:"created_at"`
	ProfessionalID *int64          `json:"profissional_id"`
	ClientID       *int64          `json:"cliente_id"`
	Date           string          `json:"data"`
	StartTime      string          `json:"hora_inicio"`
	EndTime        string          `json:"hora_fim"`
	Title          *string         `json:"titulo"`
	Description    *string         `json:"descricao"`
	Cancelled      *bool           `json:"cancelado"`
	Color          *string         `json:"cor"`
	UserID         *string         `json:"user_id"`
	CancelledAt    *time.Time      `json:"cancelado_as"`
	Client         clientDTO       `json:"cliente"`
	Professional   professionalDTO `json:"profissional"`
}

type clientDTO struct {
	ID      int64   `json:"id"`
	CPF     *string `json:"cpf"`
	Name    *string `json:"nome"`
	Address *string `json:"endereco"`
	Email   *string `json:"email"`
	Phone   *string `json:"telefone"`
}

type professionalDTO struct {
	ID          int64   `json:"id"`
	Name        *string `json:"nome"`
	Specialty   *string `json:"especialidade"`
	ProfileID   *int64  `json:"profile_id"`
	SpecialtyID *int64  `json:"especialidade_id"`
}

func (d appointmentDTO) toDomain() (domain.ReportAppointment, error) {
	date, err := time.Parse(domain.DateFormat, d.Date)
	if err != nil {
		return domain.ReportAppointment{}, fmt.Errorf("%w: id=%d date %q: %v", ErrInvalidRow, d.ID, d.Date, err)
	}

	a := domain.Appointment{
		ID:             d.ID,
		UserID:         d.UserID,
		ProfessionalID: d.ProfessionalID,
		ClientID:       d.ClientID,
		Date:           date,
		Title:          deref(d.Title),
		Description:    d.Description,
		Cancelled:      d.Cancelled != nil && *d.Cancelled,
		CancelledAt:    d.CancelledAt,
		Color:          deref(d.Color),
	}
	if d.CreatedAt != nil {
		a.CreatedAt = *d.CreatedAt
	}
	// Поля времени приходят как "HH:MM:SS+TZ"
	_ = a.StartTime.Scan(d.StartTime)
	_ = a.EndTime.Scan(d.EndTime)
	if a.Color == "" {
		a.Color = domain.DefaultAppointmentColor
	}

	return domain.ReportAppointment{
		Appointment: a,
		Client: domain.ReportClient{
			ID:      d.Client.ID,
			CPF:     deref(d.Client.CPF),
			Name:    deref(d.Client.Name),
			Address: deref(d.Client.Address),
			Email:   deref(d.Client.Email),
			Phone:   deref(d.Client.Phone),
		},
		Professional: domain.ReportProfessional{
			ID:          d.Professional.ID,
			Name:        deref(d.Professional.Name),
			Specialty:   deref(d.Professional.Specialty),
			ProfileID:   deref(d.Professional.ProfileID),
			SpecialtyID: deref(d.Professional.SpecialtyID),
		},
	}, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
