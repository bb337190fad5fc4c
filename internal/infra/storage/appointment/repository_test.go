package appointment

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
	"github.com/m04kA/SMC-AgendaService/pkg/txmanager"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

func newMock(t *testing.T) (*dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return dbmetrics.Wrap(db, nil), mock
}

func appointmentRow(id int64, date time.Time, start, end string) []driver.Value {
	return []driver.Value{
		id,
		time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		"user-1",
		int64(7),
		nil,
		date,
		start,
		end,
		"Consulta",
		nil,
		false,
		nil,
		nil,
	}
}

func TestRepository_GetActiveByProfessionalAndDates(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	day := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, created_at, .* FROM ag_agendamento WHERE profissional_id = \$1 AND cancelado = \$2 AND data IN \(\$3,\$4\) ORDER BY data ASC, hora_inicio ASC`).
		WithArgs(int64(7), false, "2024-06-12", "2024-06-13").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(appointmentRow(1, day, "09:00:00+00", "10:00:00+00")...))

	list, err := repo.GetActiveByProfessionalAndDates(context.Background(), 7, []time.Time{day, day.AddDate(0, 0, 1)})
	require.NoError(t, err)
	require.Len(t, list, 1)

	a := list[0]
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, "09:00", a.StartTime.String())
	assert.Equal(t, "10:00", a.EndTime.String())
	assert.Equal(t, "user-1", *a.UserID)
	assert.Equal(t, int64(7), *a.ProfessionalID)
	assert.Nil(t, a.ClientID)
	assert.Nil(t, a.Description)
	assert.Equal(t, domain.DefaultAppointmentColor, a.Color)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetActiveByProfessionalAndDates_NoDates(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	list, err := repo.GetActiveByProfessionalAndDates(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	createdAt := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO ag_agendamento \(user_id,profissional_id,cliente_id,data,hora_inicio,hora_fim,titulo,descricao,cancelado,cor\) VALUES .* RETURNING id, created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(15), createdAt))

	created, err := repo.Create(context.Background(), &domain.Appointment{
		UserID:         ptr.Ptr("user-1"),
		ProfessionalID: ptr.Ptr(int64(7)),
		Date:           time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		StartTime:      "09:00",
		EndTime:        "10:00",
		Title:          "Consulta",
		Color:          "#3b82f6",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateDetails_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`UPDATE ag_agendamento SET titulo = \$1, descricao = \$2, cor = \$3 WHERE id = \$4 RETURNING id`).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.UpdateDetails(context.Background(), 99, domain.AppointmentDetails{Title: "x", Color: "#000000"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel(t *testing.T) {
	at := time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)

	t.Run("procedure", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT ag_cancelar_agendamento\(\$1\)`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"r"}).AddRow([]byte(`{"success":true,"message":"ok"}`)))

		require.NoError(t, repo.Cancel(context.Background(), 5, at))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("procedure rejects", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT ag_cancelar_agendamento\(\$1\)`).
			WillReturnRows(sqlmock.NewRows([]string{"r"}).AddRow([]byte(`{"success":false,"message":"já cancelado"}`)))

		err := repo.Cancel(context.Background(), 5, at)
		assert.ErrorIs(t, err, ErrCancelRejected)
	})

	t.Run("fallback when procedure is missing", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT ag_cancelar_agendamento\(\$1\)`).
			WillReturnError(&pq.Error{Code: "42883", Message: "function ag_cancelar_agendamento(bigint) does not exist"})
		mock.ExpectExec(`UPDATE ag_agendamento SET cancelado = \$1, cancelado_as = \$2 WHERE id = \$3`).
			WithArgs(true, at, int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Cancel(context.Background(), 5, at))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fallback not found", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT ag_cancelar_agendamento\(\$1\)`).
			WillReturnError(&pq.Error{Code: "42883"})
		mock.ExpectExec(`UPDATE ag_agendamento`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Cancel(context.Background(), 5, at), ErrAppointmentNotFound)
	})

	t.Run("other database error", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT ag_cancelar_agendamento\(\$1\)`).
			WillReturnError(&pq.Error{Code: "42501"})

		assert.ErrorIs(t, repo.Cancel(context.Background(), 5, at), ErrExecQuery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGuardedRepository_Create(t *testing.T) {
	day := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	newAppointment := func(start, end string) *domain.Appointment {
		return &domain.Appointment{
			UserID:         ptr.Ptr("user-1"),
			ProfessionalID: ptr.Ptr(int64(7)),
			Date:           day,
			StartTime:      types.TimeString(start),
			EndTime:        types.TimeString(end),
			Title:          "Consulta",
		}
	}

	t.Run("conflict rolls back", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewGuardedRepository(NewRepository(db), txmanager.NewTransactionManager(db), logger.Nop())

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM ag_agendamento .* FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(appointmentRow(1, day, "09:00:00+00", "10:30:00+00")...))
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), newAppointment("10:00", "11:00"))
		assert.ErrorIs(t, err, ErrTimeConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("free interval commits", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewGuardedRepository(NewRepository(db), txmanager.NewTransactionManager(db), logger.Nop())

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM ag_agendamento .* FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(appointmentRow(1, day, "09:00:00+00", "10:00:00+00")...))
		mock.ExpectQuery(`INSERT INTO ag_agendamento`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(2), time.Now()))
		mock.ExpectCommit()

		created, err := repo.Create(context.Background(), newAppointment("10:00", "11:00"))
		require.NoError(t, err)
		assert.Equal(t, int64(2), created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing professional", func(t *testing.T) {
		db, _ := newMock(t)
		repo := NewGuardedRepository(NewRepository(db), txmanager.NewTransactionManager(db), logger.Nop())

		a := newAppointment("10:00", "11:00")
		a.ProfessionalID = nil

		_, err := repo.Create(context.Background(), a)
		assert.ErrorIs(t, err, ErrMissingProfessional)
	})
}
