package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// GuardedRepository репозиторий записей с проверкой пересечений при вставке
// Create выполняется в сериализуемой транзакции: активные записи профессионала на дату
// блокируются (FOR UPDATE), пересечение даёт ErrTimeConflict.
type GuardedRepository struct {
	*Repository
	txManager TransactionManager
	logger    Logger
}

// NewGuardedRepository создает репозиторий с проверкой пересечений
func NewGuardedRepository(repo *Repository, txManager TransactionManager, logger Logger) *GuardedRepository {
	return &GuardedRepository{
		Repository: repo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Create создает запись, если интервал свободен
func (r *GuardedRepository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if appointment.ProfessionalID == nil {
		return nil, ErrMissingProfessional
	}
	professionalID := *appointment.ProfessionalID

	var created *domain.Appointment
	err := r.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := r.Repository.GetActiveByProfessionalAndDates(txCtx, professionalID, []time.Time{appointment.Date})
		if err != nil {
			return err
		}

		if domain.HasConflict(appointment.Date, appointment.StartTime.String(), appointment.EndTime.String(), existing, nil) {
			r.logger.Warn("Create: time conflict for professional=%d on %s %s-%s",
				professionalID, appointment.Date.Format(domain.DateFormat), appointment.StartTime, appointment.EndTime)
			return ErrTimeConflict
		}

		created, err = r.Repository.Create(txCtx, appointment)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrTimeConflict) {
			return nil, err
		}
		r.logger.Error("Create: failed to create appointment for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Create - transaction: %v", ErrExecQuery, err)
	}

	r.logger.Info("Create: appointment id=%d created for professional=%d", created.ID, professionalID)
	return created, nil
}
