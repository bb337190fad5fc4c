package clients

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, id int64, client *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
