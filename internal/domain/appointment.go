package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Appointment-specific validation errors
var (
	// ErrAppointmentPatientNil is returned when an appointment's patient is nil.
	ErrAppointmentPatientNil = errors.New("appointment patient cannot be nil")

	// ErrAppointmentDoctorNil is returned when an appointment's doctor is nil.
	ErrAppointmentDoctorNil = errors.New("appointment doctor cannot be nil")

	// ErrAppointmentTimeZero is returned when an appointment's scheduled time is unset.
	ErrAppointmentTimeZero = errors.New("appointment time cannot be zero")

	// ErrAppointmentSpecialtyEmpty is returned when an appointment's specialty name is empty.
	ErrAppointmentSpecialtyEmpty = errors.New("appointment specialty cannot be empty")
)

// Appointment is an immutable record of a scheduled visit: which patient
// sees which doctor, when, and for which specialty. Instances are created
// only by the clinic service once every scheduling rule has passed, and
// are never modified or deleted afterwards. Patient and doctor references
// are shared and read-only.
type Appointment struct {
	id            uuid.UUID
	patient       *Patient
	doctor        *Doctor
	scheduledAt   time.Time
	specialtyName string
	createdAt     time.Time
}

// NewAppointment creates a new Appointment for the given patient, doctor,
// scheduled time and specialty name. It generates a new UUID for the
// record ID and stamps the creation time. Returns an error if validation
// fails.
func NewAppointment(
	patient *Patient,
	doctor *Doctor,
	scheduledAt time.Time,
	specialtyName string,
) (*Appointment, error) {
	appointment := &Appointment{
		id:            uuid.New(),
		patient:       patient,
		doctor:        doctor,
		scheduledAt:   scheduledAt,
		specialtyName: specialtyName,
		createdAt:     time.Now().UTC(),
	}

	if err := appointment.validate(); err != nil {
		return nil, err
	}

	return appointment, nil
}

func (a *Appointment) validate() error {
	if a.patient == nil {
		return ErrAppointmentPatientNil
	}
	if a.doctor == nil {
		return ErrAppointmentDoctorNil
	}
	if a.scheduledAt.IsZero() {
		return ErrAppointmentTimeZero
	}
	if a.specialtyName == "" {
		return ErrAppointmentSpecialtyEmpty
	}
	return nil
}

// ID returns the appointment's record identifier.
func (a *Appointment) ID() uuid.UUID {
	return a.id
}

// Patient returns the patient the appointment was scheduled for.
func (a *Appointment) Patient() *Patient {
	return a.patient
}

// Doctor returns the doctor the appointment was scheduled with.
func (a *Appointment) Doctor() *Doctor {
	return a.doctor
}

// ScheduledAt returns the date and time of the visit.
func (a *Appointment) ScheduledAt() time.Time {
	return a.scheduledAt
}

// SpecialtyName returns the name of the specialty the visit was booked for.
func (a *Appointment) SpecialtyName() string {
	return a.specialtyName
}

// CreatedAt returns the instant the appointment was recorded.
func (a *Appointment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Appointment) String() string {
	return fmt.Sprintf("%s - %s with %s (%s) for %s",
		a.scheduledAt.Format("2006-01-02 15:04"),
		a.patient.Name,
		a.doctor.Name,
		a.doctor.LicenseID,
		a.specialtyName)
}
