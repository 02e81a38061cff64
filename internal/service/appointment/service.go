package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vidaplus/clinic-api/internal/model"
	"github.com/vidaplus/clinic-api/internal/repository"
	"github.com/vidaplus/clinic-api/pkg/errors"
)

type AppointmentService interface {
	CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	ListByDoctorCRM(ctx context.Context, crm string) ([]*model.AppointmentDetail, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo        repository.AppointmentRepository
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
}

func NewService(repo repository.AppointmentRepository, doctorRepo repository.DoctorRepository, patientRepo repository.PatientRepository) *Service {
	return &Service{
		repo:        repo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
	}
}

// CreateAppointment resolves the doctor reference, checks the patient
// exists and persists the appointment. All required fields are checked
// before any lookup happens.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, errors.BadRequest("data inválida, use o formato ISO-8601", err)
	}

	doctor, err := s.resolveDoctor(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.patientRepo.Get(ctx, *req.UserID); err != nil {
		if _, ok := errors.As(err); ok {
			return nil, errors.NotFound("Paciente não encontrado", err)
		}
		return nil, err
	}

	appointment := &model.Appointment{
		ID:        uuid.New(),
		Date:      date,
		DoctorID:  doctor.ID,
		PatientID: *req.UserID,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// resolveDoctor matches by ID when one is given, otherwise by exact
// name+specialty. When several doctors share a name within a specialty the
// lowest ID wins, so resolution is deterministic.
func (s *Service) resolveDoctor(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Doctor, error) {
	if req.DoctorID != nil {
		return s.doctorRepo.Get(ctx, *req.DoctorID)
	}

	matches, err := s.doctorRepo.FindBySpecialtyAndName(ctx, req.Specialty, req.DoctorName)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errors.NotFound("Médico não encontrado", nil)
	}

	doctor := matches[0]
	for _, m := range matches[1:] {
		if strings.Compare(m.ID.String(), doctor.ID.String()) < 0 {
			doctor = m
		}
	}
	return doctor, nil
}

func (s *Service) ListByDoctorCRM(ctx context.Context, crm string) ([]*model.AppointmentDetail, error) {
	doctor, err := s.doctorRepo.GetByCRM(ctx, crm)
	if err != nil {
		return nil, err
	}

	details, err := s.repo.ListByDoctor(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, errors.NotFound("nenhuma consulta agendada para este médico", nil)
	}
	return details, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func validateRequest(req *model.CreateAppointmentRequest) error {
	var missing []string
	if req.Specialty == "" {
		missing = append(missing, "specialty")
	}
	if req.DoctorID == nil && req.DoctorName == "" {
		missing = append(missing, "doctorId ou doctorName")
	}
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.UserID == nil {
		missing = append(missing, "userId")
	}

	if len(missing) > 0 {
		return errors.BadRequest("campos obrigatórios ausentes: "+strings.Join(missing, ", "), nil)
	}
	return nil
}
