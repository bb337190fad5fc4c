package navigate_week

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/agenda/models"
)

type AgendaService interface {
	Navigate(ctx context.Context, userID string, req *models.NavigateRequest) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
