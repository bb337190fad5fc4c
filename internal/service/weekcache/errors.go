package weekcache

import "errors"

var (
	// ErrUnauthenticated возвращается, когда текущий пользователь не определён
	ErrUnauthenticated = errors.New("weekcache: user not authenticated")

	// ErrProfessionalNotResolved возвращается, когда профессионал сессии не определён
	ErrProfessionalNotResolved = errors.New("weekcache: professional not resolved")

	// ErrAppointmentNotCached возвращается, когда запись не найдена ни в одной загруженной неделе
	ErrAppointmentNotCached = errors.New("weekcache: appointment not found in cache")

	// ErrInsertInProgress возвращается при попытке второй одновременной вставки
	ErrInsertInProgress = errors.New("weekcache: insert already in progress")

	// ErrStore возвращается при ошибке хранилища
	ErrStore = errors.New("weekcache: store error")
)
