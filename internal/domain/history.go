package domain

import (
	"errors"
	"fmt"
	"sort"
)

// MedicalHistory-specific validation errors
var (
	// ErrHistoryPatientNil is returned when a history's owning patient is nil.
	ErrHistoryPatientNil = errors.New("medical history patient cannot be nil")
)

// MedicalHistory aggregates one patient's appointments and prescriptions.
// Appointments are kept in ascending scheduled-time order, prescriptions
// in descending issue-time order. Both sequences are re-sorted on every
// insert, which is fine at the volumes a single clinic produces.
//
// Exactly one history exists per registered patient; it is created
// together with the patient's registration.
type MedicalHistory struct {
	patient       *Patient
	appointments  []*Appointment
	prescriptions []*Prescription
}

// NewMedicalHistory creates an empty history owned by the given patient.
func NewMedicalHistory(patient *Patient) (*MedicalHistory, error) {
	if patient == nil {
		return nil, ErrHistoryPatientNil
	}

	return &MedicalHistory{patient: patient}, nil
}

// Patient returns the history's owning patient.
func (h *MedicalHistory) Patient() *Patient {
	return h.patient
}

// AddAppointment inserts the appointment and restores ascending
// scheduled-time order. A nil appointment is ignored.
func (h *MedicalHistory) AddAppointment(appointment *Appointment) {
	if appointment == nil {
		return
	}

	h.appointments = append(h.appointments, appointment)
	sort.SliceStable(h.appointments, func(i, j int) bool {
		return h.appointments[i].ScheduledAt().Before(h.appointments[j].ScheduledAt())
	})
}

// Appointments returns a copy of the appointment sequence in ascending
// scheduled-time order. Callers cannot mutate the history through the
// returned slice.
func (h *MedicalHistory) Appointments() []*Appointment {
	appointments := make([]*Appointment, len(h.appointments))
	copy(appointments, h.appointments)
	return appointments
}

// AddPrescription inserts the prescription and restores descending
// issue-time order. A nil prescription is ignored.
func (h *MedicalHistory) AddPrescription(prescription *Prescription) {
	if prescription == nil {
		return
	}

	h.prescriptions = append(h.prescriptions, prescription)
	sort.SliceStable(h.prescriptions, func(i, j int) bool {
		return h.prescriptions[i].IssuedAt().After(h.prescriptions[j].IssuedAt())
	})
}

// Prescriptions returns a copy of the prescription sequence in descending
// issue-time order.
func (h *MedicalHistory) Prescriptions() []*Prescription {
	prescriptions := make([]*Prescription, len(h.prescriptions))
	copy(prescriptions, h.prescriptions)
	return prescriptions
}

func (h *MedicalHistory) String() string {
	return fmt.Sprintf("MedicalHistory(%s: %d appointments, %d prescriptions)",
		h.patient.Name, len(h.appointments), len(h.prescriptions))
}
