package professional

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/rpc"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

const (
	professionalsTable = "ag_profissionais"
	specialtiesTable   = "ag_especialidades"
	profilesTable      = "ag_profiles"

	listProfessionalsProcedure = "ag_listar_profissionais_admin"
)

// Repository репозиторий профессионалов, специальностей и профилей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профессионалов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListSpecialties получает все специальности, отсортированные по названию
func (r *Repository) ListSpecialties(ctx context.Context) ([]domain.Specialty, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "especialidade").
		From(specialtiesTable).
		OrderBy("especialidade ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSpecialties - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSpecialties - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	specialties := make([]domain.Specialty, 0)
	for rows.Next() {
		var s domain.Specialty
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("%w: ListSpecialties - scan specialty: %v", ErrScanRow, err)
		}
		specialties = append(specialties, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSpecialties - iterate rows: %v", ErrScanRow, err)
	}

	return specialties, nil
}

// GetSpecialtyByID получает специальность по ID
func (r *Repository) GetSpecialtyByID(ctx context.Context, id int64) (*domain.Specialty, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "especialidade").
		From(specialtiesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialtyByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Specialty
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSpecialtyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialtyByID - scan specialty: %v", ErrScanRow, err)
	}

	return &s, nil
}

// GetByProfileID получает профессионала, привязанного к профилю
func (r *Repository) GetByProfileID(ctx context.Context, profileID int64) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "created_at", "nome", "especialidade_id", "profile_id").
		From(professionalsTable).
		Where(squirrel.Eq{"profile_id": profileID}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfileID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Professional
	var createdAt sql.NullTime
	var name sql.NullString

	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &name, &p.SpecialtyID, &p.ProfileID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfileID - scan professional: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.Name = name.String

	return &p, nil
}

// ListAdmin получает профессионалов процедурой ag_listar_profissionais_admin
func (r *Repository) ListAdmin(ctx context.Context) ([]domain.Professional, error) {
	dtos, err := rpc.Call[[]professionalDTO](ctx, r.db, listProfessionalsProcedure)
	if err != nil {
		return nil, fmt.Errorf("ListAdmin: %w", err)
	}

	professionals := make([]domain.Professional, 0, len(dtos))
	for _, d := range dtos {
		professionals = append(professionals, d.toDomain())
	}
	return professionals, nil
}

// GetProfileByUserID получает профиль по ID пользователя авторизации
func (r *Repository) GetProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_id", "nome", "role").
		From(profilesTable).
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetProfileByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Profile
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.UserID, &p.Name, &p.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProfileByUserID - scan profile: %v", ErrScanRow, err)
	}

	return &p, nil
}
