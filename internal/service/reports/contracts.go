package reports

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ReportRepository интерфейс репозитория отчётов
type ReportRepository interface {
	ListAppointments(ctx context.Context) ([]domain.ReportAppointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
