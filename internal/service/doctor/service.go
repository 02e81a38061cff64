package doctor

import (
	"context"

	"github.com/google/uuid"

	"github.com/vidaplus/clinic-api/internal/model"
	"github.com/vidaplus/clinic-api/internal/repository"
)

type DoctorService interface {
	CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error)
	ListDoctors(ctx context.Context) ([]*model.Doctor, error)
	UpdateDoctor(ctx context.Context, id uuid.UUID, req *model.UpdateDoctorRequest) (*model.Doctor, error)
	DeleteDoctor(ctx context.Context, id uuid.UUID) error
	ListSpecialtyGroups(ctx context.Context) ([]*model.SpecialtyGroup, error)
	ListBySpecialty(ctx context.Context, specialty string) ([]*model.Doctor, error)
	ListRoster(ctx context.Context) ([]*model.DoctorRoster, error)
}

type Service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	doctor := &model.Doctor{
		ID:        uuid.New(),
		CRM:       req.CRM,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateDoctor(ctx context.Context, id uuid.UUID, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	doctor := &model.Doctor{
		ID:        id,
		CRM:       req.CRM,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	}

	if err := s.repo.Update(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// ListSpecialtyGroups groups patient-visible doctor names under their
// specialty, ordered by specialty ascending.
func (s *Service) ListSpecialtyGroups(ctx context.Context) ([]*model.SpecialtyGroup, error) {
	doctors, err := s.repo.ListOrderedBySpecialty(ctx)
	if err != nil {
		return nil, err
	}

	groups := []*model.SpecialtyGroup{}
	var current *model.SpecialtyGroup
	for _, d := range doctors {
		if current == nil || current.Specialty != d.Specialty {
			current = &model.SpecialtyGroup{Specialty: d.Specialty, Doctors: []string{}}
			groups = append(groups, current)
		}
		current.Doctors = append(current.Doctors, d.Name)
	}
	return groups, nil
}

// ListBySpecialty is an exact, case-sensitive match. No matches is an empty
// result, not an error.
func (s *Service) ListBySpecialty(ctx context.Context, specialty string) ([]*model.Doctor, error) {
	return s.repo.ListBySpecialty(ctx, specialty)
}

func (s *Service) ListRoster(ctx context.Context) ([]*model.DoctorRoster, error) {
	return s.repo.ListRoster(ctx)
}
