package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/weekcache"
)

// UseCase use case для получения слотов дня с признаком доступности
type UseCase struct {
	caches   CacheProvider
	settings Settings
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
// Нулевые значения settings заменяются значениями по умолчанию
func NewUseCase(caches CacheProvider, settings Settings, logger Logger) *UseCase {
	if settings.DayStartHour == 0 && settings.DayEndHour == 0 {
		settings.DayStartHour = domain.DefaultDayStartHour
		settings.DayEndHour = domain.DefaultDayEndHour
	}
	if settings.DefaultDurationMinutes <= 0 {
		settings.DefaultDurationMinutes = domain.DefaultSlotDurationMinutes
	}

	return &UseCase{
		caches:   caches,
		settings: settings,
		logger:   logger,
	}
}

// Execute выполняет use case получения слотов
// Записи дня читаются через недельный кэш, просматриваемая неделя не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%s, date=%s, duration=%d, candidates=%d",
		req.UserID, req.Date.Format(domain.DateFormat), req.DurationMinutes, len(req.StartTimes))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Значения по умолчанию
	duration := req.DurationMinutes
	if duration == 0 {
		duration = uc.settings.DefaultDurationMinutes
	}
	startTimes := req.StartTimes
	if len(startTimes) == 0 {
		startTimes = domain.HourlyStartTimes(uc.settings.DayStartHour, uc.settings.DayEndHour)
	}
	if err := validateFitsInDay(startTimes, duration); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 3. Записи недели
	cache, err := uc.caches.CacheFor(ctx, req.UserID)
	if err != nil {
		return nil, uc.mapError(err)
	}
	week, err := cache.GetAppointmentsForWeek(ctx, req.Date)
	if err != nil {
		return nil, uc.mapError(err)
	}

	// 4. Доступность каждого кандидата
	domainSlots := domain.AvailableSlots(req.Date, week, startTimes, duration, req.ExcludeID)

	slots := make([]Slot, len(domainSlots))
	free := 0
	for i, s := range domainSlots {
		slots[i] = Slot{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Available: s.Available,
		}
		if s.Available {
			free++
		}
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available on %s",
		free, len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) mapError(err error) error {
	switch {
	case errors.Is(err, weekcache.ErrUnauthenticated):
		return ErrUnauthenticated
	case errors.Is(err, weekcache.ErrProfessionalNotResolved):
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return fmt.Errorf("%w: %v", ErrProfessionalNotResolved, err)
	}

	uc.logger.Error("GetAvailableSlots: %v", err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
