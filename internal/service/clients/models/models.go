package models

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ClientRequest данные для создания и обновления клиента
type ClientRequest struct {
	CPF     string  `json:"cpf"`
	Name    *string `json:"nome"`
	Address *string `json:"endereco"`
	Email   string  `json:"email"`
	Phone   *string `json:"telefone"`
}

// ToDomain конвертирует запрос в доменную модель (CPF и телефон без маски)
func (r *ClientRequest) ToDomain() *domain.Client {
	c := &domain.Client{
		CPF:     domain.DigitsOnly(r.CPF),
		Name:    r.Name,
		Address: r.Address,
		Email:   r.Email,
	}
	if r.Phone != nil {
		phone := domain.DigitsOnly(*r.Phone)
		if phone != "" {
			c.Phone = &phone
		}
	}
	return c
}

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID             int64     `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	CPF            string    `json:"cpf"`
	CPFFormatted   string    `json:"cpf_formatado"`
	Name           *string   `json:"nome"`
	Address        *string   `json:"endereco"`
	Email          string    `json:"email"`
	Phone          *string   `json:"telefone"`
	PhoneFormatted *string   `json:"telefone_formatado,omitempty"`
}

// ClientListResponse список клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clientes"`
	Total   int              `json:"total"`
}

// FromDomainClient конвертирует доменную модель в ответ
func FromDomainClient(c *domain.Client) *ClientResponse {
	resp := &ClientResponse{
		ID:           c.ID,
		CreatedAt:    c.CreatedAt,
		CPF:          c.CPF,
		CPFFormatted: domain.FormatCPF(c.CPF),
		Name:         c.Name,
		Address:      c.Address,
		Email:        c.Email,
		Phone:        c.Phone,
	}
	if c.Phone != nil {
		formatted := domain.FormatPhone(*c.Phone)
		resp.PhoneFormatted = &formatted
	}
	return resp
}

// FromDomainClientList конвертирует список клиентов
func FromDomainClientList(list []domain.Client) *ClientListResponse {
	resp := &ClientListResponse{
		Clients: make([]ClientResponse, 0, len(list)),
		Total:   len(list),
	}
	for i := range list {
		resp.Clients = append(resp.Clients, *FromDomainClient(&list[i]))
	}
	return resp
}
