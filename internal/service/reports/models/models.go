package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ReportRequest параметры отчёта, даты в формате YYYY-MM-DD
type ReportRequest struct {
	ProfessionalID   *int64
	ClientID         *int64
	From             *string
	To               *string
	IncludeCancelled bool
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *ReportRequest) ToDomainFilter() (domain.ReportFilter, error) {
	filter := domain.ReportFilter{
		ProfessionalID:   r.ProfessionalID,
		ClientID:         r.ClientID,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.From != nil {
		from, err := time.Parse(domain.DateFormat, *r.From)
		if err != nil {
			return filter, fmt.Errorf("from: %v", err)
		}
		filter.From = &from
	}
	if r.To != nil {
		to, err := time.Parse(domain.DateFormat, *r.To)
		if err != nil {
			return filter, fmt.Errorf("to: %v", err)
		}
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return filter, fmt.Errorf("from %s is after to %s", *r.From, *r.To)
	}

	return filter, nil
}

// ReportAppointmentResponse запись отчёта
type ReportAppointmentResponse struct {
	ID           int64      `json:"id"`
	Date         string     `json:"data"`
	StartTime    string     `json:"hora_inicio"`
	EndTime      string     `json:"hora_fim"`
	Title        string     `json:"titulo"`
	Description  *string    `json:"descricao"`
	Color        string     `json:"cor"`
	Cancelled    bool       `json:"cancelado"`
	CancelledAt  *time.Time `json:"cancelado_as"`
	Client       Client     `json:"cliente"`
	Professional Person     `json:"profissional"`
}

type Client struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
	Phone string `json:"telefone"`
}

type Person struct {
	ID        int64  `json:"id"`
	Name      string `json:"nome"`
	Specialty string `json:"especialidade"`
}

// ReportResponse отчёт по записям
type ReportResponse struct {
	Appointments []ReportAppointmentResponse `json:"agendamentos"`
	Summary      Summary                     `json:"resumo"`
}

// Summary сводка по отчёту
type Summary struct {
	Total          int            `json:"total"`
	Active         int            `json:"ativos"`
	Cancelled      int            `json:"cancelados"`
	ByProfessional map[string]int `json:"por_profissional"`
	ByDay          map[string]int `json:"por_dia"`
}

func FromDomainReport(list []domain.ReportAppointment) *ReportResponse {
	resp := &ReportResponse{
		Appointments: make([]ReportAppointmentResponse, 0, len(list)),
		Summary: Summary{
			ByProfessional: make(map[string]int),
			ByDay:          make(map[string]int),
		},
	}

	for i := range list {
		a := &list[i]
		date := a.Date.Format(domain.DateFormat)

		resp.Appointments = append(resp.Appointments, ReportAppointmentResponse{
			ID:          a.ID,
			Date:        date,
			StartTime:   a.StartTime.String(),
			EndTime:     a.EndTime.String(),
			Title:       a.Title,
			Description: a.Description,
			Color:       a.Color,
			Cancelled:   a.Cancelled,
			CancelledAt: a.CancelledAt,
			Client: Client{
				ID:    a.Client.ID,
				Name:  a.Client.Name,
				CPF:   domain.FormatCPF(a.Client.CPF),
				Email: a.Client.Email,
				Phone: domain.FormatPhone(a.Client.Phone),
			},
			Professional: Person{
				ID:        a.Professional.ID,
				Name:      a.Professional.Name,
				Specialty: a.Professional.Specialty,
			},
		})

		resp.Summary.Total++
		if a.Cancelled {
			resp.Summary.Cancelled++
		} else {
			resp.Summary.Active++
		}
		resp.Summary.ByProfessional[a.Professional.Name]++
		resp.Summary.ByDay[date]++
	}

	return resp
}
