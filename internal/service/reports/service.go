package reports

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/rpc"
	"github.com/m04kA/SMC-AgendaService/internal/service/reports/models"
)

// Service сервис отчётов по записям
type Service struct {
	repo   ReportRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(repo ReportRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Appointments строит отчёт по записям с фильтрацией по профессионалу, клиенту и периоду
// Отменённые записи включаются только по запросу
func (s *Service) Appointments(ctx context.Context, req *models.ReportRequest) (*models.ReportResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("Appointments: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}

	all, err := s.repo.ListAppointments(ctx)
	if err != nil {
		if errors.Is(err, rpc.ErrUnexpectedRPCShape) {
			s.logger.Error("Appointments: unexpected rpc response: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
		}
		s.logger.Error("Appointments: repository error: %v", err)
		return nil, fmt.Errorf("%w: Appointments - repository error: %v", ErrInternal, err)
	}

	selected := make([]domain.ReportAppointment, 0, len(all))
	for i := range all {
		if filter.Matches(&all[i]) {
			selected = append(selected, all[i])
		}
	}
	slices.SortStableFunc(selected, func(a, b domain.ReportAppointment) int {
		return domain.CompareAppointments(a.Appointment, b.Appointment)
	})

	s.logger.Info("Appointments: %d of %d appointments selected", len(selected), len(all))
	return models.FromDomainReport(selected), nil
}
