package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrTimeConflict возвращается, когда интервал пересекается с активной записью профессионала
	ErrTimeConflict = errors.New("appointment.repository: time conflict")

	// ErrMissingProfessional возвращается при вставке записи без профессионала
	ErrMissingProfessional = errors.New("appointment.repository: professional is required")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")

	// ErrCancelRejected возвращается, когда процедура отмены вернула ошибку
	ErrCancelRejected = errors.New("appointment.repository: cancel rejected")
)
