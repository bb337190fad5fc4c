package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/weekcache"
)

// CacheProvider источник недельного кэша сессии пользователя
type CacheProvider interface {
	CacheFor(ctx context.Context, userID string) (*weekcache.Cache, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
