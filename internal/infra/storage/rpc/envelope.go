package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

// envelope единственный допустимый формат ответа процедур ag_*
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Decode разбирает ответ процедуры строго по формату {"success","message","data"}
// Любая другая форма (массив, обёртка с именем процедуры, отсутствие success) - ErrUnexpectedRPCShape
func Decode[T any](raw []byte) (T, error) {
	var zero T

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var env envelope
	if err := dec.Decode(&env); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrUnexpectedRPCShape, err)
	}
	if env.Success == nil {
		return zero, fmt.Errorf("%w: missing success field", ErrUnexpectedRPCShape)
	}
	if !*env.Success {
		return zero, fmt.Errorf("%w: %s", ErrRPCFailed, env.Message)
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return zero, nil
	}

	var data T
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return zero, fmt.Errorf("%w: data: %v", ErrUnexpectedRPCShape, err)
	}
	return data, nil
}

// Call вызывает процедуру name(args...) и разбирает её ответ
func Call[T any](ctx context.Context, db dbmetrics.DBExecutor, name string, args ...interface{}) (T, error) {
	var zero T

	raw, err := CallRaw(ctx, db, name, args...)
	if err != nil {
		return zero, err
	}
	if len(raw) == 0 {
		return zero, fmt.Errorf("%w: %s returned nothing", ErrUnexpectedRPCShape, name)
	}

	return Decode[T](raw)
}

// CallRaw вызывает процедуру и возвращает её результат без разбора (nil для NULL/void)
func CallRaw(ctx context.Context, db dbmetrics.DBExecutor, name string, args ...interface{}) ([]byte, error) {
	executor := dbmetrics.GetExecutor(ctx, db)

	query, queryArgs, err := psqlbuilder.Select().
		Column(squirrel.Expr(name+"("+placeholders(len(args))+")", args...)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build query: %v", ErrBuildQuery, name, err)
	}

	var result []byte
	if err := executor.QueryRowContext(ctx, query, queryArgs...).Scan(&result); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrExecQuery, name, err)
	}

	return bytes.TrimSpace(result), nil
}

func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}
