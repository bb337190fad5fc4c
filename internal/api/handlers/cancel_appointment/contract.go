package cancel_appointment

import "context"

type AgendaService interface {
	Cancel(ctx context.Context, userID string, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
