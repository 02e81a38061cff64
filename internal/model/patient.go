package model

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a clinic patient, exposed on the API under the /users routes.
// PasswordHash is never serialized.
type Patient struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	CPF          string    `db:"cpf" json:"cpf"`
	Email        string    `db:"email" json:"email"`
	Age          int       `db:"age" json:"age"`
	Gender       string    `db:"gender" json:"gender"`
	Phone        string    `db:"phone" json:"phone"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CreatePatientRequest struct {
	Name     string `json:"name" binding:"required"`
	CPF      string `json:"cpf" binding:"omitempty,cpf"`
	Email    string `json:"email" binding:"omitempty,email"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type UpdatePatientRequest struct {
	Name     string `json:"name" binding:"required"`
	CPF      string `json:"cpf" binding:"omitempty,cpf"`
	Email    string `json:"email" binding:"omitempty,email"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
