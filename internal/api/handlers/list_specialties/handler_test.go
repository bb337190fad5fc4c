package list_specialties

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AgendaService/internal/service/professionals"
	"github.com/m04kA/SMC-AgendaService/internal/service/professionals/models"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type fakeService struct{ err error }

func (f *fakeService) ListSpecialties(context.Context) (*models.SpecialtyListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.SpecialtyListResponse{Specialties: []models.SpecialtyResponse{{ID: 1, Name: "Fisioterapia"}}}, nil
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "ok", status: http.StatusOK},
		{name: "internal", err: professionals.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.Nop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/specialties", nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
