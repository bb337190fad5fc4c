package update_client

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/clients/models"
)

type ClientService interface {
	Update(ctx context.Context, id int64, req *models.ClientRequest) (*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
