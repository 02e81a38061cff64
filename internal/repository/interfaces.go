package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/vidaplus/clinic-api/internal/model"
)

// All repository interfaces in one file
type (
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		GetByEmail(ctx context.Context, email string) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Patient, error)
	}

	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) error
		Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
		GetByCRM(ctx context.Context, crm string) (*model.Doctor, error)
		Update(ctx context.Context, doctor *model.Doctor) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Doctor, error)
		ListOrderedBySpecialty(ctx context.Context) ([]*model.Doctor, error)
		ListBySpecialty(ctx context.Context, specialty string) ([]*model.Doctor, error)
		FindBySpecialtyAndName(ctx context.Context, specialty, name string) ([]*model.Doctor, error)
		ListRoster(ctx context.Context) ([]*model.DoctorRoster, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		Delete(ctx context.Context, id uuid.UUID) error
		ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.AppointmentDetail, error)
	}
)
