package appointment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidaplus/clinic-api/internal/model"
	"github.com/vidaplus/clinic-api/pkg/errors"
)

// -- Mock repositories --

type mockAppointmentRepo struct {
	appointments map[uuid.UUID]*model.Appointment
	details      map[uuid.UUID][]*model.AppointmentDetail
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{
		appointments: make(map[uuid.UUID]*model.Appointment),
		details:      make(map[uuid.UUID][]*model.AppointmentDetail),
	}
}

func (m *mockAppointmentRepo) Create(_ context.Context, a *model.Appointment) error {
	m.appointments[a.ID] = a
	return nil
}

func (m *mockAppointmentRepo) Get(_ context.Context, id uuid.UUID) (*model.Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, errors.NotFound("consulta não encontrada", nil)
	}
	return a, nil
}

func (m *mockAppointmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.appointments[id]; !ok {
		return errors.NotFound("consulta não encontrada", nil)
	}
	delete(m.appointments, id)
	return nil
}

func (m *mockAppointmentRepo) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]*model.AppointmentDetail, error) {
	return m.details[doctorID], nil
}

type mockDoctorRepo struct {
	doctors map[uuid.UUID]*model.Doctor
	lookups int
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[uuid.UUID]*model.Doctor)}
}

func (m *mockDoctorRepo) Create(_ context.Context, d *model.Doctor) error {
	m.doctors[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) Get(_ context.Context, id uuid.UUID) (*model.Doctor, error) {
	m.lookups++
	d, ok := m.doctors[id]
	if !ok {
		return nil, errors.NotFound("Médico não encontrado", nil)
	}
	return d, nil
}

func (m *mockDoctorRepo) GetByCRM(_ context.Context, crm string) (*model.Doctor, error) {
	m.lookups++
	for _, d := range m.doctors {
		if d.CRM == crm {
			return d, nil
		}
	}
	return nil, errors.NotFound("Médico não encontrado", nil)
}

func (m *mockDoctorRepo) Update(_ context.Context, d *model.Doctor) error { return nil }

func (m *mockDoctorRepo) Delete(_ context.Context, id uuid.UUID) error { return nil }

func (m *mockDoctorRepo) List(_ context.Context) ([]*model.Doctor, error) { return nil, nil }

func (m *mockDoctorRepo) ListOrderedBySpecialty(_ context.Context) ([]*model.Doctor, error) {
	return nil, nil
}

func (m *mockDoctorRepo) ListBySpecialty(_ context.Context, specialty string) ([]*model.Doctor, error) {
	return nil, nil
}

func (m *mockDoctorRepo) FindBySpecialtyAndName(_ context.Context, specialty, name string) ([]*model.Doctor, error) {
	m.lookups++
	out := []*model.Doctor{}
	for _, d := range m.doctors {
		if d.Specialty == specialty && d.Name == name {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDoctorRepo) ListRoster(_ context.Context) ([]*model.DoctorRoster, error) {
	return nil, nil
}

type mockPatientRepo struct {
	patients map[uuid.UUID]*model.Patient
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[uuid.UUID]*model.Patient)}
}

func (m *mockPatientRepo) Create(_ context.Context, p *model.Patient) error {
	m.patients[p.ID] = p
	return nil
}

func (m *mockPatientRepo) Get(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, errors.NotFound("usuário não encontrado", nil)
	}
	return p, nil
}

func (m *mockPatientRepo) GetByEmail(_ context.Context, email string) (*model.Patient, error) {
	return nil, errors.NotFound("usuário não encontrado", nil)
}

func (m *mockPatientRepo) Update(_ context.Context, p *model.Patient) error { return nil }

func (m *mockPatientRepo) Delete(_ context.Context, id uuid.UUID) error { return nil }

func (m *mockPatientRepo) List(_ context.Context) ([]*model.Patient, error) { return nil, nil }

// -- Fixtures --

type fixture struct {
	svc     *Service
	repo    *mockAppointmentRepo
	doctors *mockDoctorRepo
	users   *mockPatientRepo
	doctor  *model.Doctor
	patient *model.Patient
}

func newFixture() *fixture {
	repo := newMockAppointmentRepo()
	doctors := newMockDoctorRepo()
	users := newMockPatientRepo()

	doctor := &model.Doctor{ID: uuid.New(), CRM: "111", Name: "Dr. A", Specialty: "Cardio"}
	doctors.doctors[doctor.ID] = doctor

	patient := &model.Patient{ID: uuid.New(), Name: "P", Email: "p@x.com"}
	users.patients[patient.ID] = patient

	return &fixture{
		svc:     NewService(repo, doctors, users),
		repo:    repo,
		doctors: doctors,
		users:   users,
		doctor:  doctor,
		patient: patient,
	}
}

func TestCreateAppointmentByDoctorID(t *testing.T) {
	f := newFixture()

	created, err := f.svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		Specialty: "Cardio",
		DoctorID:  &f.doctor.ID,
		Date:      "2024-12-31T23:59:00Z",
		UserID:    &f.patient.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, f.doctor.ID, created.DoctorID)
	assert.Equal(t, f.patient.ID, created.PatientID)
	assert.Equal(t, "31/12/2024 23:59", created.FormattedDate())
	assert.Contains(t, f.repo.appointments, created.ID)
}

func TestCreateAppointmentByNameAndSpecialty(t *testing.T) {
	f := newFixture()

	created, err := f.svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		Specialty:  "Cardio",
		DoctorName: "Dr. A",
		Date:       "2024-12-31T23:59:00Z",
		UserID:     &f.patient.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, f.doctor.ID, created.DoctorID)
}

func TestCreateAppointmentNameTieBreaksOnLowestID(t *testing.T) {
	f := newFixture()

	twin := &model.Doctor{ID: uuid.New(), CRM: "222", Name: "Dr. A", Specialty: "Cardio"}
	f.doctors.doctors[twin.ID] = twin

	lowest := f.doctor.ID
	if twin.ID.String() < lowest.String() {
		lowest = twin.ID
	}

	created, err := f.svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		Specialty:  "Cardio",
		DoctorName: "Dr. A",
		Date:       "2024-12-31T23:59:00Z",
		UserID:     &f.patient.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, lowest, created.DoctorID)
}

func TestCreateAppointmentUnknownDoctorIsNotFound(t *testing.T) {
	f := newFixture()
	missing := uuid.New()

	_, err := f.svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		Specialty: "Cardio",
		DoctorID:  &missing,
		Date:      "2024-12-31T23:59:00Z",
		UserID:    &f.patient.ID,
	})
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
	assert.Equal(t, "Médico não encontrado", appErr.Message)
}

func TestCreateAppointmentUnknownPatientIsNotFound(t *testing.T) {
	f := newFixture()
	missing := uuid.New()

	_, err := f.svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		Specialty: "Cardio",
		DoctorID:  &f.doctor.ID,
		Date:      "2024-12-31T23:59:00Z",
		UserID:    &missing,
	})
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
	assert.Equal(t, "Paciente não encontrado", appErr.Message)
}

func TestCreateAppointmentMissingFieldsFailsBeforeLookup(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		Specialty: "Cardio",
	})
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrBadRequest, appErr.Code)
	assert.Zero(t, f.doctors.lookups)
}

func TestCreateAppointmentMalformedDateIsBadRequest(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		Specialty: "Cardio",
		DoctorID:  &f.doctor.ID,
		Date:      "31-12-2024 23:59",
		UserID:    &f.patient.ID,
	})
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrBadRequest, appErr.Code)
}

func TestListByDoctorCRM(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ListByDoctorCRM(context.Background(), "999")
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)

	// doctor exists but has nothing scheduled
	_, err = f.svc.ListByDoctorCRM(context.Background(), "111")
	appErr, ok = errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)

	f.repo.details[f.doctor.ID] = []*model.AppointmentDetail{
		{ID: uuid.New(), DoctorName: "Dr. A", DoctorCRM: "111", Specialty: "Cardio", PatientName: "P", PatientID: f.patient.ID},
	}

	details, err := f.svc.ListByDoctorCRM(context.Background(), "111")
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Dr. A", details[0].DoctorName)
	assert.Equal(t, "P", details[0].PatientName)
}

func TestDeleteAppointment(t *testing.T) {
	f := newFixture()

	created, err := f.svc.CreateAppointment(context.Background(), &model.CreateAppointmentRequest{
		Specialty: "Cardio",
		DoctorID:  &f.doctor.ID,
		Date:      "2024-12-31T23:59:00Z",
		UserID:    &f.patient.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteAppointment(context.Background(), created.ID))

	err = f.svc.DeleteAppointment(context.Background(), created.ID)
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
