package agenda

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/events"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda/models"
	"github.com/m04kA/SMC-AgendaService/internal/service/weekcache"
)

// Service сервис недельной агенды поверх кэша сессии
type Service struct {
	caches    CacheProvider
	publisher EventPublisher
	clock     TimeProvider
	logger    Logger
}

// NewService создает новый экземпляр сервиса агенды
func NewService(caches CacheProvider, publisher EventPublisher, clock TimeProvider, logger Logger) *Service {
	return &Service{
		caches:    caches,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

// Week возвращает неделю записей
// Без даты отдаётся просматриваемая неделя, с датой - просмотр переключается на её неделю
func (s *Service) Week(ctx context.Context, userID string, date *time.Time) (*models.WeekResponse, error) {
	cache, err := s.caches.CacheFor(ctx, userID)
	if err != nil {
		return nil, s.mapError("Week", userID, err)
	}

	var list []domain.Appointment
	if date != nil {
		list, err = cache.SetReferenceDate(ctx, *date)
	} else {
		list, err = cache.CurrentWeek(ctx)
	}
	if err != nil {
		return nil, s.mapError("Week", userID, err)
	}

	ref := cache.ReferenceDate()
	s.logger.Info("Week: user=%s week of %s, %d appointments", userID, ref.Format(domain.DateFormat), len(list))
	return models.FromDomainWeek(ref, list), nil
}

// Navigate переключает просматриваемую неделю: next, previous, today
func (s *Service) Navigate(ctx context.Context, userID string, req *models.NavigateRequest) (*models.WeekResponse, error) {
	cache, err := s.caches.CacheFor(ctx, userID)
	if err != nil {
		return nil, s.mapError("Navigate", userID, err)
	}

	var list []domain.Appointment
	switch req.Direction {
	case models.DirectionNext:
		list, err = cache.NextWeek(ctx)
	case models.DirectionPrevious:
		list, err = cache.PreviousWeek(ctx)
	case models.DirectionToday:
		list, err = cache.Today(ctx)
	default:
		s.logger.Warn("Navigate: invalid direction=%q from user=%s", req.Direction, userID)
		return nil, ErrInvalidDirection
	}
	if err != nil {
		return nil, s.mapError("Navigate", userID, err)
	}

	return models.FromDomainWeek(cache.ReferenceDate(), list), nil
}

// Update меняет заголовок, описание и цвет записи
// Переданные поля накладываются на запись из кэша, остальные сохраняются.
func (s *Service) Update(ctx context.Context, userID string, id int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	if req.Empty() {
		s.logger.Warn("Update: empty request for appointment id=%d", id)
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	cache, err := s.caches.CacheFor(ctx, userID)
	if err != nil {
		return nil, s.mapError("Update", userID, err)
	}

	current, ok := cache.Find(id)
	if !ok {
		return nil, s.mapError("Update", userID, fmt.Errorf("%w: id=%d", weekcache.ErrAppointmentNotCached, id))
	}

	details := req.MergeInto(&current)
	if err := validateDetails(details); err != nil {
		s.logger.Warn("Update: validation failed for appointment id=%d: %v", id, err)
		return nil, err
	}

	updated, err := cache.Edit(ctx, id, details)
	if err != nil {
		return nil, s.mapError("Update", userID, err)
	}

	s.publish(ctx, events.AppointmentUpdated, userID, updated)
	s.logger.Info("Update: appointment id=%d updated by user=%s", id, userID)
	return models.FromDomainAppointment(updated), nil
}

// Cancel отменяет запись
func (s *Service) Cancel(ctx context.Context, userID string, id int64) error {
	cache, err := s.caches.CacheFor(ctx, userID)
	if err != nil {
		return s.mapError("Cancel", userID, err)
	}

	original, _ := cache.Find(id)

	if err := cache.Cancel(ctx, id); err != nil {
		return s.mapError("Cancel", userID, err)
	}

	cancelledAt := s.clock.Now()
	original.Cancelled = true
	original.CancelledAt = &cancelledAt
	s.publish(ctx, events.AppointmentCancelled, userID, &original)

	s.logger.Info("Cancel: appointment id=%d cancelled by user=%s", id, userID)
	return nil
}

// publish ошибки публикации не влияют на результат операции
func (s *Service) publish(ctx context.Context, eventType events.Type, userID string, a *domain.Appointment) {
	if err := s.publisher.Publish(ctx, eventType, userID, a); err != nil {
		s.logger.Warn("publish: %s for appointment id=%d not delivered: %v", eventType, a.ID, err)
	}
}

func (s *Service) mapError(op, userID string, err error) error {
	switch {
	case errors.Is(err, weekcache.ErrUnauthenticated):
		return ErrUnauthenticated
	case errors.Is(err, weekcache.ErrProfessionalNotResolved):
		s.logger.Warn("%s: professional not resolved for user=%s: %v", op, userID, err)
		return fmt.Errorf("%w: %v", ErrProfessionalNotResolved, err)
	case errors.Is(err, weekcache.ErrAppointmentNotCached),
		errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
		s.logger.Warn("%s: %v", op, err)
		return ErrAppointmentNotFound
	case errors.Is(err, appointmentRepo.ErrCancelRejected):
		s.logger.Warn("%s: %v", op, err)
		return fmt.Errorf("%w: %v", ErrCannotCancel, err)
	}

	s.logger.Error("%s: failed for user=%s: %v", op, userID, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}

func validateDetails(d domain.AppointmentDetails) error {
	if d.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len([]rune(d.Title)) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title is too long", ErrInvalidInput)
	}
	if d.Description != nil && len([]rune(*d.Description)) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	if !domain.ValidColor(d.Color) {
		return fmt.Errorf("%w: color must be #rrggbb", ErrInvalidInput)
	}
	return nil
}
