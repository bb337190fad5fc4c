package professional

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// professionalDTO элемент data процедуры ag_listar_profissionais_admin
type professionalDTO struct {
	ID          int64      `json:"id"`
	CreatedAt   *time.Time `json:"created_at"`
	Name        *string    `json:"nome"`
	Specialty   *string    `json:"especialidade"`
	ProfileID   *int64     `json:"profile_id"`
	SpecialtyID *int64     `json:"especialidade_id"`
}

func (d professionalDTO) toDomain() domain.Professional {
	p := domain.Professional{
		ID:          d.ID,
		ProfileID:   d.ProfileID,
		SpecialtyID: d.SpecialtyID,
	}
	if d.CreatedAt != nil {
		p.CreatedAt = *d.CreatedAt
	}
	if d.Name != nil {
		p.Name = *d.Name
	}
	if d.Specialty != nil {
		p.Specialty = *d.Specialty
	}
	return p
}
