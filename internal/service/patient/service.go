package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vidaplus/clinic-api/internal/model"
	"github.com/vidaplus/clinic-api/internal/repository"
	"github.com/vidaplus/clinic-api/pkg/security"
)

type PatientService interface {
	CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo   repository.PatientRepository
	hasher security.PasswordHasher
}

func NewService(repo repository.PatientRepository, hasher security.PasswordHasher) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
	}
}

// CreatePatient hashes the password before the row ever exists; the
// plaintext is never persisted and the hash never serialized back.
func (s *Service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	patient := &model.Patient{
		ID:           uuid.New(),
		Name:         req.Name,
		CPF:          req.CPF,
		Email:        req.Email,
		Age:          req.Age,
		Gender:       req.Gender,
		Phone:        req.Phone,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return s.repo.List(ctx)
}

// UpdatePatient overwrites all mutable fields. A supplied password is always
// re-hashed; an empty one keeps the stored hash.
func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	hash := existing.PasswordHash
	if req.Password != "" {
		hash, err = s.hasher.Hash(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	patient := &model.Patient{
		ID:           id,
		Name:         req.Name,
		CPF:          req.CPF,
		Email:        req.Email,
		Age:          req.Age,
		Gender:       req.Gender,
		Phone:        req.Phone,
		PasswordHash: hash,
		CreatedAt:    existing.CreatedAt,
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
