package create_appointment

import "errors"

var (
	// ErrUnauthenticated возвращается, когда пользователь не определён
	ErrUnauthenticated = errors.New("create_appointment: user not authenticated")

	// ErrProfessionalNotResolved возвращается, когда профессионал пользователя не определён
	ErrProfessionalNotResolved = errors.New("create_appointment: professional not resolved")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrTimeConflict возвращается, когда интервал пересекается с активной записью профессионала
	ErrTimeConflict = errors.New("create_appointment: time conflicts with another appointment")

	// ErrInsertInProgress возвращается, когда в сессии уже выполняется создание записи
	ErrInsertInProgress = errors.New("create_appointment: another appointment is being created")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
