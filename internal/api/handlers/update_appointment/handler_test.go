package update_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda"
	"github.com/m04kA/SMC-AgendaService/internal/service/agenda/models"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

type fakeService struct {
	got *models.UpdateAppointmentRequest
	err error
}

func (f *fakeService) Update(_ context.Context, _ string, id int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentResponse{ID: id, Title: ptr.Value(req.Title), Color: ptr.Value(req.Color)}, nil
}

func patch(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/agenda/appointments/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"appointmentId": id})
	return req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, patch("9", `{"title":"Retorno","description":"exames","color":"#ff0000"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, ptr.Ptr("Retorno"), svc.got.Title)
	assert.Equal(t, ptr.Ptr("exames"), svc.got.Description)
	assert.Equal(t, ptr.Ptr("#ff0000"), svc.got.Color)
	assert.Contains(t, rec.Body.String(), `"id":9`)
}

func TestHandler_Handle_PartialBody(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, patch("9", `{"color":"#00ff00"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Nil(t, svc.got.Title)
	assert.Nil(t, svc.got.Description)
	assert.Equal(t, ptr.Ptr("#00ff00"), svc.got.Color)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		body   string
		err    error
		status int
	}{
		{name: "bad id", id: "x", body: `{}`, status: http.StatusBadRequest},
		{name: "immutable field", id: "1", body: `{"title":"a","startTime":"10:00"}`, status: http.StatusBadRequest},
		{name: "invalid", id: "1", body: `{"title":""}`, err: agenda.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "not cached", id: "1", body: `{"title":"a"}`, err: agenda.ErrAppointmentNotFound, status: http.StatusNotFound},
		{name: "no professional", id: "1", body: `{"title":"a"}`, err: agenda.ErrProfessionalNotResolved, status: http.StatusForbidden},
		{name: "internal", id: "1", body: `{"title":"a"}`, err: agenda.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.Nop())
			rec := httptest.NewRecorder()
			h.Handle(rec, patch(tt.id, tt.body))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
