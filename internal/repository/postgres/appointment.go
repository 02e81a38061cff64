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

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (id, date, doctor_id, patient_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	appointment.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.Date,
		appointment.DoctorID,
		appointment.PatientID,
		appointment.CreatedAt,
	)
	if err != nil {
		if conflict := translateConstraint(err); conflict != err {
			return conflict
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `SELECT * FROM appointments WHERE id = $1`
	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFound("consulta não encontrada", err)
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM appointments WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	if rows == 0 {
		return errors.NotFound("consulta não encontrada", nil)
	}
	return nil
}

func (r *appointmentRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.AppointmentDetail, error) {
	query := `
		SELECT a.id, a.date,
		       d.name AS doctor_name, d.crm AS doctor_crm, d.specialty,
		       u.name AS patient_name, u.id AS patient_id
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		JOIN users u ON u.id = a.patient_id
		WHERE a.doctor_id = $1
		ORDER BY a.date ASC
	`
	details := []*model.AppointmentDetail{}
	if err := r.db.SelectContext(ctx, &details, query, doctorID); err != nil {
		return nil, fmt.Errorf("failed to list appointments for doctor: %w", err)
	}
	return details, nil
}
