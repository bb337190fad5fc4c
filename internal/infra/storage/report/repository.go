package report

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/rpc"
)

const listAppointmentsProcedure = "ag_listar_agendamentos_completo"

// Repository репозиторий отчётов по записям
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отчётов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListAppointments получает все записи с данными клиента и профессионала
func (r *Repository) ListAppointments(ctx context.Context) ([]domain.ReportAppointment, error) {
	dtos, err := rpc.Call[[]appointmentDTO](ctx, r.db, listAppointmentsProcedure)
	if err != nil {
		return nil, fmt.Errorf("ListAppointments: %w", err)
	}

	result := make([]domain.ReportAppointment, 0, len(dtos))
	for _, d := range dtos {
		a, err := d.toDomain()
		if err != nil {
			return nil, fmt.Errorf("ListAppointments: %w", err)
		}
		result = append(result, a)
	}
	return result, nil
}
