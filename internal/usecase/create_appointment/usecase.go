package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/events"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda/models"
	"github.com/m04kA/SMC-AgendaService/internal/service/weekcache"
)

// UseCase use case для создания записи
type UseCase struct {
	caches    CacheProvider
	publisher EventPublisher
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(caches CacheProvider, publisher EventPublisher, logger Logger) *UseCase {
	return &UseCase{
		caches:    caches,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute выполняет use case создания записи
// Пересечения сначала проверяются по кэшу недели, окончательно - хранилищем в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.AppointmentResponse, error) {
	uc.logger.Info("CreateAppointment: user=%s, date=%s, time=%s-%s",
		req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Кэш сессии
	cache, err := uc.caches.CacheFor(ctx, req.UserID)
	if err != nil {
		return nil, uc.mapError(err)
	}

	// 3. Проверяем пересечения с записями недели
	week, err := cache.GetAppointmentsForWeek(ctx, req.Date)
	if err != nil {
		return nil, uc.mapError(err)
	}
	if domain.HasConflict(req.Date, req.StartTime.String(), req.EndTime.String(), week, nil) {
		uc.logger.Warn("CreateAppointment: %s %s-%s conflicts with cached appointment",
			req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
		return nil, ErrTimeConflict
	}

	// 4. Сохраняем запись
	created, err := cache.Insert(ctx, domain.Appointment{
		ClientID:    req.ClientID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return nil, uc.mapError(err)
	}

	// 5. Публикуем событие, ошибка публикации не отменяет создание
	if err := uc.publisher.Publish(ctx, events.AppointmentCreated, req.UserID, created); err != nil {
		uc.logger.Warn("CreateAppointment: event for id=%d not delivered: %v", created.ID, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", created.ID)
	return models.FromDomainAppointment(created), nil
}

func (uc *UseCase) mapError(err error) error {
	switch {
	case errors.Is(err, weekcache.ErrUnauthenticated):
		return ErrUnauthenticated
	case errors.Is(err, weekcache.ErrProfessionalNotResolved):
		uc.logger.Warn("CreateAppointment: %v", err)
		return fmt.Errorf("%w: %v", ErrProfessionalNotResolved, err)
	case errors.Is(err, weekcache.ErrInsertInProgress):
		uc.logger.Warn("CreateAppointment: %v", err)
		return ErrInsertInProgress
	case errors.Is(err, appointmentRepo.ErrTimeConflict):
		uc.logger.Warn("CreateAppointment: conflict detected by store: %v", err)
		return ErrTimeConflict
	}

	uc.logger.Error("CreateAppointment: %v", err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
