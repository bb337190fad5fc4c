package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	createAppointment "github.com/m04kA/SMC-AgendaService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID    *int64  `json:"clientId"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Color       string  `json:"color"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
// Время проверяется use case'ом, здесь только разбирается дата
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID string) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:      userID,
		ClientID:    r.ClientID,
		Date:        date,
		StartTime:   types.TimeString(r.StartTime),
		EndTime:     types.TimeString(r.EndTime),
		Title:       r.Title,
		Description: r.Description,
		Color:       r.Color,
	}, nil
}
