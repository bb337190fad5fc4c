package agenda

import "errors"

var (
	// ErrUnauthenticated возвращается, когда пользователь не определён
	ErrUnauthenticated = errors.New("user not authenticated")

	// ErrProfessionalNotResolved возвращается, когда профессионал пользователя не определён
	ErrProfessionalNotResolved = errors.New("professional not resolved")

	// ErrAppointmentNotFound возвращается, когда запись не найдена в загруженных неделях
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCannotCancel возвращается, когда отмена отклонена базой
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDirection возвращается при неизвестном направлении навигации
	ErrInvalidDirection = errors.New("invalid navigation direction")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
