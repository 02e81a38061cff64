package model

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is a clinic doctor. CRM is the professional license number.
type Doctor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CRM       string    `db:"crm" json:"crm"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Specialty string    `db:"specialty" json:"specialty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreateDoctorRequest struct {
	CRM       string `json:"crm" binding:"required,crm"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
}

type UpdateDoctorRequest struct {
	CRM       string `json:"crm" binding:"required,crm"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
}

// SpecialtyGroup is one row of the grouped specialty listing.
type SpecialtyGroup struct {
	Specialty string   `json:"specialty"`
	Doctors   []string `json:"doctors"`
}

// DoctorRoster is the projection returned by the full-roster listing.
type DoctorRoster struct {
	Name      string `db:"name" json:"name"`
	Specialty string `db:"specialty" json:"specialty"`
}
