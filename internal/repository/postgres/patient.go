package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vidaplus/clinic-api/internal/model"
	"github.com/vidaplus/clinic-api/internal/repository"
	"github.com/vidaplus/clinic-api/pkg/errors"
)

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO users (id, name, cpf, email, age, gender, phone, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.Name,
		patient.CPF,
		patient.Email,
		patient.Age,
		patient.Gender,
		patient.Phone,
		patient.PasswordHash,
		patient.CreatedAt,
		patient.UpdatedAt,
	)
	if err != nil {
		if conflict := translateConstraint(err); conflict != err {
			return conflict
		}
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	query := `SELECT * FROM users WHERE id = $1`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("usuário não encontrado", err)
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) GetByEmail(ctx context.Context, email string) (*model.Patient, error) {
	query := `SELECT * FROM users WHERE email = $1`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, email); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("usuário não encontrado", err)
		}
		return nil, fmt.Errorf("failed to get patient by email: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE users
		SET name = $1, cpf = $2, email = $3, age = $4, gender = $5, phone = $6, password_hash = $7, updated_at = $8
		WHERE id = $9
	`
	patient.UpdatedAt = time.Now()

	res, err := r.db.ExecContext(ctx, query,
		patient.Name,
		patient.CPF,
		patient.Email,
		patient.Age,
		patient.Gender,
		patient.Phone,
		patient.PasswordHash,
		patient.UpdatedAt,
		patient.ID,
	)
	if err != nil {
		if conflict := translateConstraint(err); conflict != err {
			return conflict
		}
		return fmt.Errorf("failed to update patient: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	if rows == 0 {
		return errors.NotFound("usuário não encontrado", nil)
	}
	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if conflict := translateConstraint(err); conflict != err {
			return conflict
		}
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	if rows == 0 {
		return errors.NotFound("usuário não encontrado", nil)
	}
	return nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT * FROM users ORDER BY created_at`
	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}
