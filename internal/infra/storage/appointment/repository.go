package appointment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/rpc"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

const (
	tableName = "ag_agendamento"

	// cancelProcedure процедура отмены записи
	cancelProcedure = "ag_cancelar_agendamento"

	// pgUndefinedFunction код ошибки PostgreSQL "function does not exist"
	pgUndefinedFunction = "42883"
)

var columns = []string{
	"id",
	"created_at",
	"user_id",
	"profissional_id",
	"cliente_id",
	"data",
	"hora_inicio",
	"hora_fim",
	"titulo",
	"descricao",
	"cancelado",
	"cancelado_as",
	"cor",
}

// Repository репозиторий записей (ag_agendamento)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByProfessionalAndDates получает неотменённые записи профессионала на указанные даты
// Сортировка по дате и времени начала.
// Внутри транзакции строки блокируются (FOR UPDATE) - для проверки пересечений при вставке.
func (r *Repository) GetActiveByProfessionalAndDates(ctx context.Context, professionalID int64, dates []time.Time) ([]domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(dates) == 0 {
		return []domain.Appointment{}, nil
	}

	dateValues := make([]string, len(dates))
	for i, d := range dates {
		dateValues[i] = d.Format(domain.DateFormat)
	}

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"profissional_id": professionalID}).
		Where(squirrel.Eq{"cancelado": false}).
		Where(squirrel.Eq{"data": dateValues}).
		OrderBy("data ASC", "hora_inicio ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByProfessionalAndDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByProfessionalAndDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"user_id",
			"profissional_id",
			"cliente_id",
			"data",
			"hora_inicio",
			"hora_fim",
			"titulo",
			"descricao",
			"cancelado",
			"cor",
		).
		Values(
			appointment.UserID,
			appointment.ProfessionalID,
			appointment.ClientID,
			appointment.Date.Format(domain.DateFormat),
			appointment.StartTime,
			appointment.EndTime,
			appointment.Title,
			appointment.Description,
			false,
			appointment.Color,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&appointment.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.Cancelled = false
	appointment.CancelledAt = nil

	return appointment, nil
}

// UpdateDetails обновляет заголовок, описание и цвет записи
func (r *Repository) UpdateDetails(ctx context.Context, id int64, details domain.AppointmentDetails) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("titulo", details.Title).
		Set("descricao", details.Description).
		Set("cor", details.Color).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDetails - build update query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateDetails - execute update: %v", ErrExecQuery, err)
	}

	return &appointment, nil
}

// Cancel отменяет запись процедурой ag_cancelar_agendamento
// Если процедуры нет в БД (42883), выставляет cancelado/cancelado_as обычным UPDATE.
func (r *Repository) Cancel(ctx context.Context, id int64, cancelledAt time.Time) error {
	raw, err := rpc.CallRaw(ctx, r.db, cancelProcedure, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUndefinedFunction {
			return r.cancelByUpdate(ctx, id, cancelledAt)
		}
		return fmt.Errorf("%w: Cancel - call %s: %v", ErrExecQuery, cancelProcedure, err)
	}

	// Процедура может ничего не возвращать; если вернула объект - это конверт {"success","message","data"}
	if len(raw) > 0 && raw[0] == '{' {
		if _, err := rpc.Decode[json.RawMessage](raw); err != nil {
			if errors.Is(err, rpc.ErrRPCFailed) {
				return fmt.Errorf("%w: %v", ErrCancelRejected, err)
			}
			return err
		}
	}

	return nil
}

func (r *Repository) cancelByUpdate(ctx context.Context, id int64, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("cancelado", true).
		Set("cancelado_as", cancelledAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(s rowScanner) (domain.Appointment, error) {
	var a domain.Appointment
	var createdAt, date sql.NullTime
	var title, color sql.NullString
	var cancelled sql.NullBool

	err := s.Scan(
		&a.ID,
		&createdAt,
		&a.UserID,
		&a.ProfessionalID,
		&a.ClientID,
		&date,
		&a.StartTime,
		&a.EndTime,
		&title,
		&a.Description,
		&cancelled,
		&a.CancelledAt,
		&color,
	)
	if err != nil {
		return domain.Appointment{}, err
	}

	a.CreatedAt = createdAt.Time
	a.Date = date.Time
	a.Title = title.String
	a.Cancelled = cancelled.Bool
	a.Color = color.String
	if a.Color == "" {
		a.Color = domain.DefaultAppointmentColor
	}

	return a, nil
}

func scanAppointments(rows *sql.Rows) ([]domain.Appointment, error) {
	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrScanRow, err)
	}

	return appointments, nil
}
