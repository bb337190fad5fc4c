package professionals

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/sessions"
)

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	ListSpecialties(ctx context.Context) ([]domain.Specialty, error)
	GetSpecialtyByID(ctx context.Context, id int64) (*domain.Specialty, error)
	ListAdmin(ctx context.Context) ([]domain.Professional, error)
}

// SessionProvider источник сессий пользователей
type SessionProvider interface {
	Get(ctx context.Context, userID string) (*sessions.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
