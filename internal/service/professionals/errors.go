package professionals

import "errors"

var (
	// ErrSpecialtyNotFound возвращается, когда специальность не найдена
	ErrSpecialtyNotFound = errors.New("specialty not found")

	// ErrProfessionalNotResolved возвращается, когда профессионал пользователя не определён
	ErrProfessionalNotResolved = errors.New("professional not resolved")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
