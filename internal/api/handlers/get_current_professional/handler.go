package get_current_professional

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals"
)

const msgProfessionalNotResolved = "профессионал для пользователя не найден"

type Handler struct {
	service ProfessionalService
	logger  Logger
}

func NewHandler(service ProfessionalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	current, err := h.service.Current(r.Context(), userID)
	if err != nil {
		if errors.Is(err, professionals.ErrProfessionalNotResolved) {
			h.logger.Warn("GET /professionals/me - Professional not resolved: user_id=%s, error=%v", userID, err)
			handlers.RespondNotFound(w, msgProfessionalNotResolved)
			return
		}
		h.logger.Error("GET /professionals/me - Failed to resolve professional: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, current)
}
