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

type doctorRepository struct {
	db *sqlx.DB
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (id, crm, name, email, phone, specialty, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	doctor.CreatedAt = time.Now()
	doctor.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		doctor.ID,
		doctor.CRM,
		doctor.Name,
		doctor.Email,
		doctor.Phone,
		doctor.Specialty,
		doctor.CreatedAt,
		doctor.UpdatedAt,
	)
	if err != nil {
		if conflict := translateConstraint(err); conflict != err {
			return conflict
		}
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	query := `SELECT * FROM doctors WHERE id = $1`
	var doctor model.Doctor
	if err := r.db.GetContext(ctx, &doctor, query, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("Médico não encontrado", err)
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) GetByCRM(ctx context.Context, crm string) (*model.Doctor, error) {
	query := `SELECT * FROM doctors WHERE crm = $1`
	var doctor model.Doctor
	if err := r.db.GetContext(ctx, &doctor, query, crm); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("Médico não encontrado", err)
		}
		return nil, fmt.Errorf("failed to get doctor by crm: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	query := `
		UPDATE doctors
		SET crm = $1, name = $2, email = $3, phone = $4, specialty = $5, updated_at = $6
		WHERE id = $7
	`
	doctor.UpdatedAt = time.Now()

	res, err := r.db.ExecContext(ctx, query,
		doctor.CRM,
		doctor.Name,
		doctor.Email,
		doctor.Phone,
		doctor.Specialty,
		doctor.UpdatedAt,
		doctor.ID,
	)
	if err != nil {
		if conflict := translateConstraint(err); conflict != err {
			return conflict
		}
		return fmt.Errorf("failed to update doctor: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	if rows == 0 {
		return errors.NotFound("Médico não encontrado", nil)
	}
	return nil
}

func (r *doctorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM doctors WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if conflict := translateConstraint(err); conflict != err {
			return conflict
		}
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	if rows == 0 {
		return errors.NotFound("Médico não encontrado", nil)
	}
	return nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query := `SELECT * FROM doctors ORDER BY created_at`
	doctors := []*model.Doctor{}
	if err := r.db.SelectContext(ctx, &doctors, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) ListOrderedBySpecialty(ctx context.Context) ([]*model.Doctor, error) {
	query := `SELECT * FROM doctors ORDER BY specialty ASC, name ASC`
	doctors := []*model.Doctor{}
	if err := r.db.SelectContext(ctx, &doctors, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors by specialty: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) ListBySpecialty(ctx context.Context, specialty string) ([]*model.Doctor, error) {
	query := `SELECT * FROM doctors WHERE specialty = $1 ORDER BY name ASC`
	doctors := []*model.Doctor{}
	if err := r.db.SelectContext(ctx, &doctors, query, specialty); err != nil {
		return nil, fmt.Errorf("failed to list doctors for specialty: %w", err)
	}
	return doctors, nil
}

// FindBySpecialtyAndName orders by id so callers resolving a doctor reference
// get a deterministic first match when names collide within a specialty.
func (r *doctorRepository) FindBySpecialtyAndName(ctx context.Context, specialty, name string) ([]*model.Doctor, error) {
	query := `SELECT * FROM doctors WHERE specialty = $1 AND name = $2 ORDER BY id ASC`
	doctors := []*model.Doctor{}
	if err := r.db.SelectContext(ctx, &doctors, query, specialty, name); err != nil {
		return nil, fmt.Errorf("failed to find doctor by specialty and name: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) ListRoster(ctx context.Context) ([]*model.DoctorRoster, error) {
	query := `SELECT name, specialty FROM doctors ORDER BY name ASC`
	roster := []*model.DoctorRoster{}
	if err := r.db.SelectContext(ctx, &roster, query); err != nil {
		return nil, fmt.Errorf("failed to list doctor roster: %w", err)
	}
	return roster, nil
}
