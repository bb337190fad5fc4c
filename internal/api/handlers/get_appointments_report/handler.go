package get_appointments_report

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	"github.com/m04kA/SMC-AgendaService/internal/service/reports"
)

const (
	msgInvalidParams = "некорректные параметры отчёта"
	msgBadGateway    = "база данных вернула ответ неизвестного формата"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/appointments
// Query params: professionalId, clientId, from, to (YYYY-MM-DD), includeCancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/appointments - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	report, err := h.service.Appointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidFilter):
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, reports.ErrUnexpectedResponse):
			h.logger.Error("GET /reports/appointments - Unexpected response shape: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBadGateway)

		default:
			h.logger.Error("GET /reports/appointments - Failed to build report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/appointments - Report built: count=%d", len(report.Appointments))
	handlers.RespondJSON(w, http.StatusOK, report)
}
