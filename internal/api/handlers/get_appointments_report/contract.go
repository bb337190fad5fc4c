package get_appointments_report

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/reports/models"
)

type ReportService interface {
	Appointments(ctx context.Context, req *models.ReportRequest) (*models.ReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
