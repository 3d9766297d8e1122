package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prescription-specific validation errors
var (
	// ErrPrescriptionPatientNil is returned when a prescription's patient is nil.
	ErrPrescriptionPatientNil = errors.New("prescription patient cannot be nil")

	// ErrPrescriptionDoctorNil is returned when a prescription's doctor is nil.
	ErrPrescriptionDoctorNil = errors.New("prescription doctor cannot be nil")

	// ErrNoMedications is returned when a prescription has no medications.
	ErrNoMedications = errors.New("prescription must contain at least one medication")
)

// Prescription is an immutable record of medications a doctor issued to a
// patient. There is no limit on how many prescriptions a doctor may issue
// per patient or per day.
type Prescription struct {
	id          uuid.UUID
	patient     *Patient
	doctor      *Doctor
	medications []string
	issuedAt    time.Time
}

// NewPrescription creates a Prescription issued at the current instant.
// Returns an error if validation fails.
func NewPrescription(patient *Patient, doctor *Doctor, medications []string) (*Prescription, error) {
	return NewPrescriptionAt(patient, doctor, medications, time.Now().UTC())
}

// NewPrescriptionAt creates a Prescription with an explicit issue time.
func NewPrescriptionAt(
	patient *Patient,
	doctor *Doctor,
	medications []string,
	issuedAt time.Time,
) (*Prescription, error) {
	if patient == nil {
		return nil, ErrPrescriptionPatientNil
	}
	if doctor == nil {
		return nil, ErrPrescriptionDoctorNil
	}
	if len(medications) == 0 {
		return nil, ErrNoMedications
	}

	meds := make([]string, len(medications))
	copy(meds, medications)

	return &Prescription{
		id:          uuid.New(),
		patient:     patient,
		doctor:      doctor,
		medications: meds,
		issuedAt:    issuedAt,
	}, nil
}

// ID returns the prescription's record identifier.
func (p *Prescription) ID() uuid.UUID {
	return p.id
}

// Patient returns the patient the prescription was issued to.
func (p *Prescription) Patient() *Patient {
	return p.patient
}

// Doctor returns the doctor who issued the prescription.
func (p *Prescription) Doctor() *Doctor {
	return p.doctor
}

// Medications returns a copy of the prescribed medication list in the
// order it was supplied.
func (p *Prescription) Medications() []string {
	medications := make([]string, len(p.medications))
	copy(medications, p.medications)
	return medications
}

// IssuedAt returns the instant the prescription was issued.
func (p *Prescription) IssuedAt() time.Time {
	return p.issuedAt
}

func (p *Prescription) String() string {
	return fmt.Sprintf("Prescription for %s by %s: %s (issued %s)",
		p.patient.Name,
		p.doctor.Name,
		strings.Join(p.medications, ", "),
		p.issuedAt.Format("2006-01-02 15:04"))
}
