package get_specialty

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals"
)

const (
	msgInvalidSpecialtyID = "некорректный ID специальности"
	msgNotFound           = "специальность не найдена"
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

// Handle GET /api/v1/specialties/{specialtyId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specialtyID, err := strconv.ParseInt(mux.Vars(r)["specialtyId"], 10, 64)
	if err != nil || specialtyID <= 0 {
		h.logger.Warn("GET /specialties/{id} - Invalid specialty ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialtyID)
		return
	}

	specialty, err := h.service.GetSpecialty(r.Context(), specialtyID)
	if err != nil {
		if errors.Is(err, professionals.ErrSpecialtyNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /specialties/{id} - Failed to get specialty: id=%d, error=%v", specialtyID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, specialty)
}
