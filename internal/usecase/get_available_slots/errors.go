package get_available_slots

import "errors"

var (
	// ErrUnauthenticated возвращается, когда пользователь не определён
	ErrUnauthenticated = errors.New("user not authenticated")

	// ErrProfessionalNotResolved возвращается, когда профессионал пользователя не определён
	ErrProfessionalNotResolved = errors.New("professional not resolved")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
