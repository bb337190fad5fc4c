package agenda

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/events"
	"github.com/m04kA/SMC-AgendaService/internal/service/weekcache"
)

// CacheProvider источник недельного кэша сессии пользователя
type CacheProvider interface {
	CacheFor(ctx context.Context, userID string) (*weekcache.Cache, error)
}

// EventPublisher интерфейс публикации событий записей
type EventPublisher interface {
	Publish(ctx context.Context, eventType events.Type, userID string, appointment *domain.Appointment) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
