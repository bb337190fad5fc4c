package cancel_appointment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type fakeService struct {
	gotID int64
	err   error
}

func (f *fakeService) Cancel(_ context.Context, _ string, id int64) error {
	f.gotID = id
	return f.err
}

func patch(id string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/agenda/appointments/"+id+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"appointmentId": id})
	return req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, patch("15"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(15), svc.gotID)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{name: "bad id", id: "abc", status: http.StatusBadRequest},
		{name: "zero id", id: "0", status: http.StatusBadRequest},
		{name: "not found", id: "1", err: agenda.ErrAppointmentNotFound, status: http.StatusNotFound},
		{name: "rejected", id: "1", err: fmt.Errorf("%w: already cancelled", agenda.ErrCannotCancel), status: http.StatusUnprocessableEntity},
		{name: "no professional", id: "1", err: agenda.ErrProfessionalNotResolved, status: http.StatusForbidden},
		{name: "internal", id: "1", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.Nop())
			rec := httptest.NewRecorder()
			h.Handle(rec, patch(tt.id))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
