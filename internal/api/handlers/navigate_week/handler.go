package navigate_week

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda/models"
)

const (
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgInvalidDirection        = "direction должен быть next, previous или today"
	msgProfessionalNotResolved = "профессионал для пользователя не найден"
)

type Handler struct {
	service AgendaService
	logger  Logger
}

func NewHandler(service AgendaService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/agenda/week/navigate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req models.NavigateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /agenda/week/navigate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	week, err := h.service.Navigate(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, agenda.ErrInvalidDirection):
			handlers.RespondBadRequest(w, msgInvalidDirection)

		case errors.Is(err, agenda.ErrUnauthenticated):
			handlers.RespondUnauthorized(w)

		case errors.Is(err, agenda.ErrProfessionalNotResolved):
			h.logger.Warn("POST /agenda/week/navigate - Professional not resolved: user_id=%s", userID)
			handlers.RespondForbidden(w, msgProfessionalNotResolved)

		default:
			h.logger.Error("POST /agenda/week/navigate - Failed to navigate: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /agenda/week/navigate - Moved %s: user_id=%s, week_start=%s",
		req.Direction, userID, week.WeekStart)
	handlers.RespondJSON(w, http.StatusOK, week)
}
