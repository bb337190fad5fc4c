package get_week

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/service/agenda/models"
)

type AgendaService interface {
	Week(ctx context.Context, userID string, date *time.Time) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
