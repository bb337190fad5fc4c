package update_appointment

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/agenda/models"
)

type AgendaService interface {
	Update(ctx context.Context, userID string, id int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
