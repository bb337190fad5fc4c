package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda/models"
)

const (
	msgInvalidAppointmentID    = "некорректный ID записи"
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgInvalidInput            = "некорректные данные записи"
	msgNotFound                = "запись не найдена"
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

// Handle PATCH /api/v1/agenda/appointments/{appointmentId}
// Меняются только переданные поля из title, description и color
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		h.logger.Warn("PATCH /agenda/appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /agenda/appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), userID, appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, agenda.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, agenda.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /agenda/appointments/{id} - Appointment not found: id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, agenda.ErrUnauthenticated):
			handlers.RespondUnauthorized(w)

		case errors.Is(err, agenda.ErrProfessionalNotResolved):
			h.logger.Warn("PATCH /agenda/appointments/{id} - Professional not resolved: user_id=%s", userID)
			handlers.RespondForbidden(w, msgProfessionalNotResolved)

		default:
			h.logger.Error("PATCH /agenda/appointments/{id} - Failed to update: id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /agenda/appointments/{id} - Appointment updated: id=%d, user_id=%s", appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
