package clients

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	clientRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/client"
	"github.com/m04kA/SMC-AgendaService/internal/service/clients/models"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

type fakeRepo struct {
	clients   []domain.Client
	created   *domain.Client
	createErr error
	updated   *domain.Client
	deleted   []int64
	updateErr error
	deleteErr error
}

func (f *fakeRepo) List(context.Context) ([]domain.Client, error) {
	return f.clients, nil
}

func (f *fakeRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *c
	created.ID = 1
	f.created = &created
	return &created, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, c *domain.Client) (*domain.Client, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	updated := *c
	updated.ID = id
	f.updated = &updated
	return &updated, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func TestService_Create(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, logger.Nop())

	resp, err := svc.Create(context.Background(), &models.ClientRequest{
		CPF:   "529.982.247-25",
		Name:  ptr.Ptr("Maria"),
		Email: "maria@example.com",
		Phone: ptr.Ptr("(11) 9 8765-4321"),
	})
	require.NoError(t, err)

	assert.Equal(t, "52998224725", repo.created.CPF)
	assert.Equal(t, "11987654321", *repo.created.Phone)
	assert.Equal(t, "529.982.247-25", resp.CPFFormatted)
	assert.Equal(t, "(11) 9 8765-4321", *resp.PhoneFormatted)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ClientRequest
		wantErr error
	}{
		{name: "bad cpf", req: models.ClientRequest{CPF: "123.456.789-00", Email: "a@b.com"}, wantErr: ErrInvalidCPF},
		{name: "repeated digits", req: models.ClientRequest{CPF: "000.000.000-00", Email: "a@b.com"}, wantErr: ErrInvalidCPF},
		{name: "bad email", req: models.ClientRequest{CPF: "52998224725", Email: "a@b"}, wantErr: ErrInvalidEmail},
		{name: "short phone", req: models.ClientRequest{CPF: "52998224725", Email: "a@b.com", Phone: ptr.Ptr("9999")}, wantErr: ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewService(repo, logger.Nop())

			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.created)
		})
	}
}

func TestService_RepositoryErrors(t *testing.T) {
	repo := &fakeRepo{
		createErr: clientRepo.ErrDuplicateCPF,
		updateErr: clientRepo.ErrClientNotFound,
		deleteErr: clientRepo.ErrClientInUse,
	}
	svc := NewService(repo, logger.Nop())
	req := &models.ClientRequest{CPF: "52998224725", Email: "a@b.com"}

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateCPF)

	_, err = svc.Update(context.Background(), 5, req)
	assert.ErrorIs(t, err, ErrClientNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 5), ErrClientInUse)

	repo.deleteErr = errors.New("connection reset")
	assert.ErrorIs(t, svc.Delete(context.Background(), 5), ErrInternal)
}

func TestService_List(t *testing.T) {
	repo := &fakeRepo{clients: []domain.Client{{ID: 1, CPF: "52998224725"}, {ID: 2, CPF: "11144477735"}}}
	svc := NewService(repo, logger.Nop())

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "111.444.777-35", resp.Clients[1].CPFFormatted)
}

func TestService_Update(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, logger.Nop())

	resp, err := svc.Update(context.Background(), 7, &models.ClientRequest{
		CPF:   "111.444.777-35",
		Name:  ptr.Ptr("Joana"),
		Email: "joana@example.com",
		Phone: ptr.Ptr("(21) 3456-7890"),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.updated)
	assert.Equal(t, int64(7), repo.updated.ID)
	assert.Equal(t, "11144477735", repo.updated.CPF)
	assert.Equal(t, "2134567890", *repo.updated.Phone)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "111.444.777-35", resp.CPFFormatted)
}

func TestService_Update_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ClientRequest
		wantErr error
	}{
		{name: "bad cpf", req: models.ClientRequest{CPF: "111.444.777-36", Email: "a@b.com"}, wantErr: ErrInvalidCPF},
		{name: "bad email", req: models.ClientRequest{CPF: "11144477735", Email: "joana"}, wantErr: ErrInvalidEmail},
		{name: "long phone", req: models.ClientRequest{CPF: "11144477735", Email: "a@b.com", Phone: ptr.Ptr("219876543210")}, wantErr: ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewService(repo, logger.Nop())

			_, err := svc.Update(context.Background(), 7, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.updated)
		})
	}
}

func TestService_Delete(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, logger.Nop())

	require.NoError(t, svc.Delete(context.Background(), 3))
	assert.Equal(t, []int64{3}, repo.deleted)

	repo.deleteErr = clientRepo.ErrClientNotFound
	assert.ErrorIs(t, svc.Delete(context.Background(), 4), ErrClientNotFound)
	assert.Equal(t, []int64{3}, repo.deleted)
}
