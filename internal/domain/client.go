package domain

import "time"

// Client represents a customer who books appointments
type Client struct {
	ID        int64
	CreatedAt time.Time
	CPF       string // digits only
	Name      *string
	Address   *string
	Email     string
	Phone     *string // digits only
}
