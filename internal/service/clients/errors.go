package clients

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrInvalidCPF возвращается при некорректном CPF
	ErrInvalidCPF = errors.New("invalid cpf")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidPhone возвращается при некорректном телефоне
	ErrInvalidPhone = errors.New("invalid phone")

	// ErrDuplicateCPF возвращается, когда клиент с таким CPF уже есть
	ErrDuplicateCPF = errors.New("cpf already registered")

	// ErrClientInUse возвращается при удалении клиента, у которого есть записи
	ErrClientInUse = errors.New("client has appointments")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
