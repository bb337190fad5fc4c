package weekcache

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Store интерфейс хранилища записей (таблица ag_agendamento)
type Store interface {
	GetActiveByProfessionalAndDates(ctx context.Context, professionalID int64, dates []time.Time) ([]domain.Appointment, error)
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	UpdateDetails(ctx context.Context, id int64, details domain.AppointmentDetails) (*domain.Appointment, error)
	Cancel(ctx context.Context, id int64, cancelledAt time.Time) error
}

// Identity источник текущего пользователя и профессионала сессии
// Ошибки должны оборачивать ErrUnauthenticated / ErrProfessionalNotResolved
type Identity interface {
	CurrentUserID(ctx context.Context) (string, error)
	CurrentProfessionalID(ctx context.Context) (int64, error)
}

// Recorder интерфейс метрик кэша (может быть nil)
type Recorder interface {
	WeekCacheHit()
	WeekCacheMiss()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Listener получает актуальный список записей просматриваемой недели
type Listener func(weekKey int64, appointments []domain.Appointment)

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
