package events

import "errors"

var (
	// ErrMarshal возвращается при ошибке сериализации события
	ErrMarshal = errors.New("events: failed to marshal event")

	// ErrPublish возвращается при ошибке отправки события в kafka
	ErrPublish = errors.New("events: failed to publish event")
)
