package sessions

import (
	"errors"

	"github.com/m04kA/SMC-AgendaService/internal/service/weekcache"
)

var (
	// ErrUnauthenticated возвращается для пустого ID пользователя
	ErrUnauthenticated = weekcache.ErrUnauthenticated

	// ErrProfessionalNotResolved возвращается, когда профессионал сессии не определён
	ErrProfessionalNotResolved = weekcache.ErrProfessionalNotResolved

	// ErrProfileNotFound возвращается, когда у пользователя нет профиля или имени в профиле
	ErrProfileNotFound = errors.New("sessions: profile not found or has no name")

	// ErrNoProfessionals возвращается, когда в системе нет ни одного профессионала
	ErrNoProfessionals = errors.New("sessions: no professionals registered")

	// ErrSpecialtyNotFound возвращается, когда специальность профессионала не найдена
	ErrSpecialtyNotFound = errors.New("sessions: professional specialty not found")
)
