package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-AgendaService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgInvalidDate             = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput            = "некорректные данные записи"
	msgTimeConflict            = "время пересекается с другой записью"
	msgInsertInProgress        = "запись уже создаётся, повторите позже"
	msgProfessionalNotResolved = "профессионал для пользователя не найден"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/agenda/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /agenda/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /agenda/appointments - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	created, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /agenda/appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrTimeConflict):
			h.logger.Warn("POST /agenda/appointments - Time conflict: user_id=%s, date=%s, %s-%s",
				userID, req.Date, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, createAppointment.ErrInsertInProgress):
			handlers.RespondConflict(w, msgInsertInProgress)

		case errors.Is(err, createAppointment.ErrUnauthenticated):
			handlers.RespondUnauthorized(w)

		case errors.Is(err, createAppointment.ErrProfessionalNotResolved):
			h.logger.Warn("POST /agenda/appointments - Professional not resolved: user_id=%s", userID)
			handlers.RespondForbidden(w, msgProfessionalNotResolved)

		default:
			h.logger.Error("POST /agenda/appointments - Failed to create appointment: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /agenda/appointments - Appointment created: id=%d, user_id=%s", created.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
