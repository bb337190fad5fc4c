package domain

import "time"

// Specialty is a category/skill tag associated with a professional
type Specialty struct {
	ID   int64
	Name string
}

// Professional is a service provider who owns a calendar of appointments
type Professional struct {
	ID          int64
	CreatedAt   time.Time
	ProfileID   *int64
	SpecialtyID *int64
	Name        string
	Specialty   string
}

// Profile links an auth user to a display name and role
type Profile struct {
	ID     int64
	UserID *string
	Name   *string
	Role   *string
}

// CurrentProfessional is the professional whose calendar the session works with
type CurrentProfessional struct {
	ID        int64
	Name      string
	Specialty string
}
