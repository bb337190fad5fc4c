package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-AgendaService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate             = "дата обязательна"
	msgInvalidParams           = "некорректные параметры запроса"
	msgProfessionalNotResolved = "профессионал для пользователя не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/agenda/available-slots
// Query params: date (required, YYYY-MM-DD), duration, times, excludeId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	query := r.URL.Query()
	if query.Get("date") == "" {
		h.logger.Warn("GET /agenda/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(userID, query)
	if err != nil {
		h.logger.Warn("GET /agenda/available-slots - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /agenda/available-slots - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableSlots.ErrUnauthenticated):
			handlers.RespondUnauthorized(w)

		case errors.Is(err, getAvailableSlots.ErrProfessionalNotResolved):
			h.logger.Warn("GET /agenda/available-slots - Professional not resolved: user_id=%s", userID)
			handlers.RespondForbidden(w, msgProfessionalNotResolved)

		default:
			h.logger.Error("GET /agenda/available-slots - Failed to get slots: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agenda/available-slots - Slots retrieved: user_id=%s, date=%s, slots_count=%d",
		userID, query.Get("date"), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
