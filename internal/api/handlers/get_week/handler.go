package get_week

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda"
)

const (
	msgInvalidDate             = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/agenda/week
// Query params: date (optional, YYYY-MM-DD) - переключает просматриваемую неделю
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var date *time.Time
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /agenda/week - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	week, err := h.service.Week(r.Context(), userID, date)
	if err != nil {
		switch {
		case errors.Is(err, agenda.ErrUnauthenticated):
			handlers.RespondUnauthorized(w)

		case errors.Is(err, agenda.ErrProfessionalNotResolved):
			h.logger.Warn("GET /agenda/week - Professional not resolved: user_id=%s", userID)
			handlers.RespondForbidden(w, msgProfessionalNotResolved)

		default:
			h.logger.Error("GET /agenda/week - Failed to get week: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agenda/week - Week retrieved: user_id=%s, week_start=%s, total=%d",
		userID, week.WeekStart, week.Total)
	handlers.RespondJSON(w, http.StatusOK, week)
}
