package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return ErrUnauthenticated
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 &&
		(req.DurationMinutes < domain.MinSlotDuration || req.DurationMinutes > domain.MaxSlotDuration) {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDuration, domain.MaxSlotDuration)
	}

	if req.ExcludeID != nil && *req.ExcludeID <= 0 {
		return fmt.Errorf("%w: excludeId must be positive", ErrInvalidInput)
	}

	for _, start := range req.StartTimes {
		if err := start.Validate(); err != nil {
			return fmt.Errorf("%w: invalid start time %q: %v", ErrInvalidInput, start, err)
		}
	}

	return nil
}

// validateFitsInDay проверяет, что все слоты заканчиваются не позже полуночи
func validateFitsInDay(startTimes []types.TimeString, duration int) error {
	for _, start := range startTimes {
		if _, err := start.AddMinutes(duration); err != nil {
			return fmt.Errorf("%w: slot %s does not fit into the day", ErrInvalidInput, start)
		}
	}
	return nil
}
