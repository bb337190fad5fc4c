package reports

import "errors"

var (
	// ErrInvalidFilter возвращается при некорректном фильтре отчёта
	ErrInvalidFilter = errors.New("invalid report filter")

	// ErrUnexpectedResponse возвращается, когда процедура вернула ответ неизвестной формы
	ErrUnexpectedResponse = errors.New("unexpected report response")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
