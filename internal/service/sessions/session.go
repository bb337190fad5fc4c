package sessions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	professionalRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/professional"
	"github.com/m04kA/SMC-AgendaService/internal/service/weekcache"
)

// Session сессия пользователя: владеет недельным кэшем и знает текущего профессионала
type Session struct {
	userID string
	repo   ProfessionalRepository
	logger Logger
	cache  *weekcache.Cache

	// lastUsed защищён мьютексом реестра
	lastUsed time.Time

	mu           sync.Mutex
	professional *domain.CurrentProfessional
}

// UserID возвращает ID пользователя сессии
func (s *Session) UserID() string {
	return s.userID
}

// Cache возвращает недельный кэш сессии
func (s *Session) Cache() *weekcache.Cache {
	return s.cache
}

// CurrentUserID реализует weekcache.Identity
func (s *Session) CurrentUserID(context.Context) (string, error) {
	if s.userID == "" {
		return "", ErrUnauthenticated
	}
	return s.userID, nil
}

// CurrentProfessionalID реализует weekcache.Identity
func (s *Session) CurrentProfessionalID(ctx context.Context) (int64, error) {
	p, err := s.Professional(ctx)
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

// Professional возвращает текущего профессионала, определяя его при первом обращении
// Неудачная попытка не запоминается.
func (s *Session) Professional(ctx context.Context) (*domain.CurrentProfessional, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.professional != nil {
		p := *s.professional
		return &p, nil
	}

	p, err := s.resolve(ctx)
	if err != nil {
		s.logger.Warn("Professional: failed to resolve professional for user=%s: %v", s.userID, err)
		return nil, fmt.Errorf("%w: %w", ErrProfessionalNotResolved, err)
	}

	s.logger.Info("Professional: user=%s works with professional id=%d (%s)", s.userID, p.ID, p.Specialty)
	s.professional = p
	out := *p
	return &out, nil
}

// resolve порядок определения:
// 1. профессионал, привязанный к профилю пользователя (имя берётся из профиля)
// 2. иначе первый профессионал из ag_listar_profissionais_admin
// В обоих случаях специальность должна существовать.
func (s *Session) resolve(ctx context.Context) (*domain.CurrentProfessional, error) {
	profile, err := s.repo.GetProfileByUserID(ctx, s.userID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if profile.Name == nil || *profile.Name == "" {
		return nil, ErrProfileNotFound
	}

	professional, err := s.repo.GetByProfileID(ctx, profile.ID)
	name := *profile.Name
	switch {
	case errors.Is(err, professionalRepo.ErrProfessionalNotFound):
		professionals, err := s.repo.ListAdmin(ctx)
		if err != nil {
			return nil, err
		}
		if len(professionals) == 0 {
			return nil, ErrNoProfessionals
		}
		professional = &professionals[0]
		name = professional.Name
	case err != nil:
		return nil, err
	}

	specialty, err := s.findSpecialty(ctx, professional.SpecialtyID)
	if err != nil {
		return nil, err
	}

	return &domain.CurrentProfessional{
		ID:        professional.ID,
		Name:      name,
		Specialty: specialty.Name,
	}, nil
}

func (s *Session) findSpecialty(ctx context.Context, specialtyID *int64) (*domain.Specialty, error) {
	if specialtyID == nil {
		return nil, ErrSpecialtyNotFound
	}

	specialties, err := s.repo.ListSpecialties(ctx)
	if err != nil {
		return nil, err
	}
	for i := range specialties {
		if specialties[i].ID == *specialtyID {
			return &specialties[i], nil
		}
	}
	return nil, ErrSpecialtyNotFound
}
