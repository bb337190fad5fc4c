package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda"
)

const (
	msgInvalidAppointmentID    = "некорректный ID записи"
	msgNotFound                = "запись не найдена"
	msgCannotCancel            = "запись не может быть отменена"
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

// Handle PATCH /api/v1/agenda/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		h.logger.Warn("PATCH /agenda/appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	err = h.service.Cancel(r.Context(), userID, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, agenda.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /agenda/appointments/{id}/cancel - Appointment not found: id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, agenda.ErrCannotCancel):
			h.logger.Warn("PATCH /agenda/appointments/{id}/cancel - Cannot cancel: id=%d", appointmentID)
			handlers.RespondUnprocessable(w, msgCannotCancel)

		case errors.Is(err, agenda.ErrUnauthenticated):
			handlers.RespondUnauthorized(w)

		case errors.Is(err, agenda.ErrProfessionalNotResolved):
			h.logger.Warn("PATCH /agenda/appointments/{id}/cancel - Professional not resolved: user_id=%s", userID)
			handlers.RespondForbidden(w, msgProfessionalNotResolved)

		default:
			h.logger.Error("PATCH /agenda/appointments/{id}/cancel - Failed to cancel: id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /agenda/appointments/{id}/cancel - Appointment cancelled: id=%d, user_id=%s", appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
