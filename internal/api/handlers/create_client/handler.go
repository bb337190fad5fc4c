package create_client

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/clients"
	"github.com/m04kA/SMC-AgendaService/internal/service/clients/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCPF         = "некорректный CPF"
	msgInvalidEmail       = "некорректный email"
	msgInvalidPhone       = "некорректный телефон"
	msgDuplicateCPF       = "клиент с таким CPF уже зарегистрирован"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidCPF):
			handlers.RespondBadRequest(w, msgInvalidCPF)

		case errors.Is(err, clients.ErrInvalidEmail):
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, clients.ErrInvalidPhone):
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, clients.ErrDuplicateCPF):
			h.logger.Warn("POST /clients - Duplicate CPF")
			handlers.RespondConflict(w, msgDuplicateCPF)

		default:
			h.logger.Error("POST /clients - Failed to create client: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - Client created: id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
