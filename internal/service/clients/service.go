package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	clientRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/client"
	"github.com/m04kA/SMC-AgendaService/internal/service/clients/models"
)

// Service сервис для работы с клиентами
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// List получает всех клиентов
func (s *Service) List(ctx context.Context) (*models.ClientListResponse, error) {
	list, err := s.clientRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d clients", len(list))
	return models.FromDomainClientList(list), nil
}

// Create создает клиента
// CPF проверяется по контрольным цифрам, CPF и телефон сохраняются без маски
func (s *Service) Create(ctx context.Context, req *models.ClientRequest) (*models.ClientResponse, error) {
	client := req.ToDomain()
	if err := validateClient(client); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		return nil, s.mapRepoError("Create", 0, err)
	}

	s.logger.Info("Create: client id=%d created", created.ID)
	return models.FromDomainClient(created), nil
}

// Update обновляет клиента
func (s *Service) Update(ctx context.Context, id int64, req *models.ClientRequest) (*models.ClientResponse, error) {
	client := req.ToDomain()
	if err := validateClient(client); err != nil {
		s.logger.Warn("Update: validation failed for client id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.clientRepo.Update(ctx, id, client)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	s.logger.Info("Update: client id=%d updated", id)
	return models.FromDomainClient(updated), nil
}

// Delete удаляет клиента
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: client id=%d deleted", id)
	return nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, clientRepo.ErrClientNotFound):
		s.logger.Warn("%s: client id=%d not found", op, id)
		return ErrClientNotFound
	case errors.Is(err, clientRepo.ErrDuplicateCPF):
		s.logger.Warn("%s: duplicate cpf", op)
		return ErrDuplicateCPF
	case errors.Is(err, clientRepo.ErrClientInUse):
		s.logger.Warn("%s: client id=%d has appointments", op, id)
		return ErrClientInUse
	}

	s.logger.Error("%s: repository error for client id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validateClient(c *domain.Client) error {
	if !domain.ValidCPF(c.CPF) {
		return ErrInvalidCPF
	}
	if !domain.ValidEmail(c.Email) {
		return ErrInvalidEmail
	}
	if c.Phone != nil && (len(*c.Phone) < 10 || len(*c.Phone) > 11) {
		return ErrInvalidPhone
	}
	return nil
}
