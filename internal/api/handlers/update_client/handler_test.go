package update_client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/service/clients"
	"github.com/m04kA/SMC-AgendaService/internal/service/clients/models"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type fakeService struct {
	gotID int64
	got   *models.ClientRequest
	err   error
}

func (f *fakeService) Update(_ context.Context, id int64, req *models.ClientRequest) (*models.ClientResponse, error) {
	f.gotID = id
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ClientResponse{ID: id, CPF: "52998224725", Email: req.Email}, nil
}

const body = `{"cpf":"529.982.247-25","nome":"Ana","email":"ana@example.com"}`

func put(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/clients/"+id, strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"clientId": id})
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, put("4", body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(4), svc.gotID)
	require.NotNil(t, svc.got)
	assert.Equal(t, "529.982.247-25", svc.got.CPF)
	assert.Contains(t, rec.Body.String(), `"id":4`)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		body   string
		err    error
		status int
	}{
		{name: "bad id", id: "abc", body: body, status: http.StatusBadRequest},
		{name: "negative id", id: "-1", body: body, status: http.StatusBadRequest},
		{name: "bad body", id: "4", body: `{"cpf":`, status: http.StatusBadRequest},
		{name: "cpf", id: "4", body: body, err: fmt.Errorf("%w: check digit", clients.ErrInvalidCPF), status: http.StatusBadRequest},
		{name: "email", id: "4", body: body, err: clients.ErrInvalidEmail, status: http.StatusBadRequest},
		{name: "phone", id: "4", body: body, err: clients.ErrInvalidPhone, status: http.StatusBadRequest},
		{name: "not found", id: "4", body: body, err: clients.ErrClientNotFound, status: http.StatusNotFound},
		{name: "duplicate", id: "4", body: body, err: clients.ErrDuplicateCPF, status: http.StatusConflict},
		{name: "internal", id: "4", body: body, err: clients.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.Nop())
			rec := httptest.NewRecorder()
			h.Handle(rec, put(tt.id, tt.body))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
