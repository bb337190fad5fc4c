package sessions

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/weekcache"
)

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	GetProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	GetByProfileID(ctx context.Context, profileID int64) (*domain.Professional, error)
	ListAdmin(ctx context.Context) ([]domain.Professional, error)
	ListSpecialties(ctx context.Context) ([]domain.Specialty, error)
}

// AppointmentStore хранилище записей для недельного кэша сессии
type AppointmentStore = weekcache.Store

// Recorder метрики недельного кэша
type Recorder = weekcache.Recorder

// TimeProvider интерфейс для получения текущего времени
type TimeProvider = weekcache.TimeProvider

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
