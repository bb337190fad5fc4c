package rpc

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []item
		wantErr error
	}{
		{
			name: "success with data",
			raw:  `{"success":true,"message":"ok","data":[{"id":1,"nome":"Ana","extra":true}]}`,
			want: []item{{ID: 1, Name: "Ana"}},
		},
		{
			name: "success with null data",
			raw:  `{"success":true,"message":"ok","data":null}`,
		},
		{
			name:    "failure reported",
			raw:     `{"success":false,"message":"sem permissão"}`,
			wantErr: ErrRPCFailed,
		},
		{
			name:    "wrapped in procedure name",
			raw:     `{"ag_listar_profissionais_admin":{"success":true,"data":[]}}`,
			wantErr: ErrUnexpectedRPCShape,
		},
		{
			name:    "top level array",
			raw:     `[{"success":true,"data":[]}]`,
			wantErr: ErrUnexpectedRPCShape,
		},
		{
			name:    "missing success",
			raw:     `{"message":"ok","data":[]}`,
			wantErr: ErrUnexpectedRPCShape,
		},
		{
			name:    "data of wrong type",
			raw:     `{"success":true,"data":{"id":1}}`,
			wantErr: ErrUnexpectedRPCShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode[[]item]([]byte(tt.raw))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCall(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT ag_listar_profissionais_admin\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"result"}).
			AddRow([]byte(`{"success":true,"message":"","data":[{"id":3,"nome":"Bia"}]}`)))

	got, err := Call[[]item](context.Background(), db, "ag_listar_profissionais_admin")
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: 3, Name: "Bia"}}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCallRaw_WithArgs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT ag_cancelar_agendamento\(\$1\)`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"result"}).AddRow(nil))

	raw, err := CallRaw(context.Background(), db, "ag_cancelar_agendamento", int64(9))
	require.NoError(t, err)
	assert.Empty(t, raw)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCallRaw_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT ag_listar_agendamentos_completo\(\)`).WillReturnError(sql.ErrConnDone)

	_, err = CallRaw(context.Background(), db, "ag_listar_agendamentos_completo")
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}
