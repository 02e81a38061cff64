package model

import (
	"time"

	"github.com/google/uuid"
)

// DisplayDateLayout is the localized format appointment dates are rendered
// in on responses (DD/MM/YYYY HH:mm).
const DisplayDateLayout = "02/01/2006 15:04"

type Appointment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Date      time.Time `db:"date" json:"-"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctor_id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// FormattedDate renders the appointment timestamp for display.
func (a *Appointment) FormattedDate() string {
	return a.Date.Format(DisplayDateLayout)
}

// AppointmentResponse is the appointment as serialized to clients, with the
// stored timestamp reformatted for display.
type AppointmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	PatientID uuid.UUID `json:"patient_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Appointment) ToResponse() *AppointmentResponse {
	return &AppointmentResponse{
		ID:        a.ID,
		Date:      a.FormattedDate(),
		DoctorID:  a.DoctorID,
		PatientID: a.PatientID,
		CreatedAt: a.CreatedAt,
	}
}

// CreateAppointmentRequest carries either a doctor ID or a doctor name to be
// resolved together with the specialty. Presence of the required fields is
// checked before any lookup.
type CreateAppointmentRequest struct {
	Specialty  string     `json:"specialty"`
	DoctorID   *uuid.UUID `json:"doctorId"`
	DoctorName string     `json:"doctorName"`
	Date       string     `json:"date"`
	UserID     *uuid.UUID `json:"userId"`
}

// AppointmentDetail is an appointment joined with its doctor and patient.
type AppointmentDetail struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Date        time.Time `db:"date" json:"-"`
	DoctorName  string    `db:"doctor_name" json:"doctor_name"`
	DoctorCRM   string    `db:"doctor_crm" json:"doctor_crm"`
	Specialty   string    `db:"specialty" json:"specialty"`
	PatientName string    `db:"patient_name" json:"patient_name"`
	PatientID   uuid.UUID `db:"patient_id" json:"patient_id"`
}

// AppointmentDetailResponse mirrors AppointmentDetail with the display date.
type AppointmentDetailResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	DoctorName  string    `json:"doctor_name"`
	DoctorCRM   string    `json:"doctor_crm"`
	Specialty   string    `json:"specialty"`
	PatientName string    `json:"patient_name"`
	PatientID   uuid.UUID `json:"patient_id"`
}

func (d *AppointmentDetail) ToResponse() *AppointmentDetailResponse {
	return &AppointmentDetailResponse{
		ID:          d.ID,
		Date:        d.Date.Format(DisplayDateLayout),
		DoctorName:  d.DoctorName,
		DoctorCRM:   d.DoctorCRM,
		Specialty:   d.Specialty,
		PatientName: d.PatientName,
		PatientID:   d.PatientID,
	}
}
