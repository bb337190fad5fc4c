package professionals

import (
	"context"
	"errors"
	"fmt"

	professionalRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/professional"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals/models"
	"github.com/m04kA/SMC-AgendaService/internal/service/sessions"
)

// Service сервис профессионалов и специальностей
type Service struct {
	repo     ProfessionalRepository
	sessions SessionProvider
	logger   Logger
}

// NewService создает новый экземпляр сервиса профессионалов
func NewService(repo ProfessionalRepository, sessions SessionProvider, logger Logger) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
	}
}

// ListSpecialties получает специальности, отсортированные по названию
func (s *Service) ListSpecialties(ctx context.Context) (*models.SpecialtyListResponse, error) {
	list, err := s.repo.ListSpecialties(ctx)
	if err != nil {
		s.logger.Error("ListSpecialties: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSpecialties - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSpecialties(list), nil
}

// GetSpecialty получает специальность по ID
func (s *Service) GetSpecialty(ctx context.Context, id int64) (*models.SpecialtyResponse, error) {
	specialty, err := s.repo.GetSpecialtyByID(ctx, id)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrSpecialtyNotFound) {
			s.logger.Warn("GetSpecialty: specialty id=%d not found", id)
			return nil, ErrSpecialtyNotFound
		}
		s.logger.Error("GetSpecialty: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetSpecialty - repository error: %v", ErrInternal, err)
	}
	return &models.SpecialtyResponse{ID: specialty.ID, Name: specialty.Name}, nil
}

// ListProfessionals получает профессионалов (ag_listar_profissionais_admin)
func (s *Service) ListProfessionals(ctx context.Context) (*models.ProfessionalListResponse, error) {
	list, err := s.repo.ListAdmin(ctx)
	if err != nil {
		s.logger.Error("ListProfessionals: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProfessionals - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainProfessionals(list), nil
}

// Current возвращает профессионала, с календарём которого работает пользователь
func (s *Service) Current(ctx context.Context, userID string) (*models.CurrentProfessionalResponse, error) {
	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, err := session.Professional(ctx)
	if err != nil {
		if errors.Is(err, sessions.ErrProfessionalNotResolved) {
			return nil, fmt.Errorf("%w: %v", ErrProfessionalNotResolved, err)
		}
		return nil, fmt.Errorf("%w: Current: %v", ErrInternal, err)
	}
	return models.FromDomainCurrent(p), nil
}
