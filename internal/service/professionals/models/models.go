package models

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// SpecialtyResponse специальность
type SpecialtyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"especialidade"`
}

// SpecialtyListResponse список специальностей
type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"especialidades"`
}

// ProfessionalResponse профессионал
type ProfessionalResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"nome"`
	Specialty   string `json:"especialidade"`
	ProfileID   *int64 `json:"profile_id,omitempty"`
	SpecialtyID *int64 `json:"especialidade_id,omitempty"`
}

// ProfessionalListResponse список профессионалов
type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"profissionais"`
}

// CurrentProfessionalResponse профессионал текущей сессии
type CurrentProfessionalResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"nome"`
	Specialty string `json:"especialidade"`
}

func FromDomainSpecialties(list []domain.Specialty) *SpecialtyListResponse {
	resp := &SpecialtyListResponse{Specialties: make([]SpecialtyResponse, 0, len(list))}
	for _, s := range list {
		resp.Specialties = append(resp.Specialties, SpecialtyResponse{ID: s.ID, Name: s.Name})
	}
	return resp
}

func FromDomainProfessionals(list []domain.Professional) *ProfessionalListResponse {
	resp := &ProfessionalListResponse{Professionals: make([]ProfessionalResponse, 0, len(list))}
	for _, p := range list {
		resp.Professionals = append(resp.Professionals, ProfessionalResponse{
			ID:          p.ID,
			Name:        p.Name,
			Specialty:   p.Specialty,
			ProfileID:   p.ProfileID,
			SpecialtyID: p.SpecialtyID,
		})
	}
	return resp
}

func FromDomainCurrent(p *domain.CurrentProfessional) *CurrentProfessionalResponse {
	return &CurrentProfessionalResponse{ID: p.ID, Name: p.Name, Specialty: p.Specialty}
}
