package list_specialties

import (
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
)

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

// Handle GET /api/v1/specialties
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListSpecialties(r.Context())
	if err != nil {
		h.logger.Error("GET /specialties - Failed to list specialties: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /specialties - Specialties retrieved: count=%d", len(list.Specialties))
	handlers.RespondJSON(w, http.StatusOK, list)
}
