package store

import (
	"context"
	"time"

	"github.com/medrano/clinic-registry/internal/domain"
)

// The memory stores back the single-process clinic model. Only one logical
// caller exists at a time (the interactive session), so plain maps and
// slices are sufficient; no locking is needed.

// MemoryPatientStore is an in-memory PatientStore.
type MemoryPatientStore struct {
	byID  map[domain.NationalID]*domain.Patient
	order []domain.NationalID
}

// NewMemoryPatientStore creates an empty in-memory patient store.
func NewMemoryPatientStore() *MemoryPatientStore {
	return &MemoryPatientStore{byID: make(map[domain.NationalID]*domain.Patient)}
}

// Create implements PatientStore.
func (s *MemoryPatientStore) Create(_ context.Context, patient *domain.Patient) error {
	if _, ok := s.byID[patient.NationalID]; ok {
		return ErrPatientExists
	}
	s.byID[patient.NationalID] = patient
	s.order = append(s.order, patient.NationalID)
	return nil
}

// GetByNationalID implements PatientStore.
func (s *MemoryPatientStore) GetByNationalID(
	_ context.Context,
	id domain.NationalID,
) (*domain.Patient, error) {
	patient, ok := s.byID[id]
	if !ok {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

// List implements PatientStore.
func (s *MemoryPatientStore) List(_ context.Context) ([]*domain.Patient, error) {
	patients := make([]*domain.Patient, 0, len(s.order))
	for _, id := range s.order {
		patients = append(patients, s.byID[id])
	}
	return patients, nil
}

// MemoryDoctorStore is an in-memory DoctorStore.
type MemoryDoctorStore struct {
	byID  map[domain.LicenseID]*domain.Doctor
	order []domain.LicenseID
}

// NewMemoryDoctorStore creates an empty in-memory doctor store.
func NewMemoryDoctorStore() *MemoryDoctorStore {
	return &MemoryDoctorStore{byID: make(map[domain.LicenseID]*domain.Doctor)}
}

// Create implements DoctorStore.
func (s *MemoryDoctorStore) Create(_ context.Context, doctor *domain.Doctor) error {
	if _, ok := s.byID[doctor.LicenseID]; ok {
		return ErrDoctorExists
	}
	s.byID[doctor.LicenseID] = doctor
	s.order = append(s.order, doctor.LicenseID)
	return nil
}

// GetByLicenseID implements DoctorStore.
func (s *MemoryDoctorStore) GetByLicenseID(
	_ context.Context,
	id domain.LicenseID,
) (*domain.Doctor, error) {
	doctor, ok := s.byID[id]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}

// List implements DoctorStore.
func (s *MemoryDoctorStore) List(_ context.Context) ([]*domain.Doctor, error) {
	doctors := make([]*domain.Doctor, 0, len(s.order))
	for _, id := range s.order {
		doctors = append(doctors, s.byID[id])
	}
	return doctors, nil
}

// MemoryAppointmentStore is an in-memory AppointmentStore.
type MemoryAppointmentStore struct {
	appointments []*domain.Appointment
}

// NewMemoryAppointmentStore creates an empty in-memory appointment store.
func NewMemoryAppointmentStore() *MemoryAppointmentStore {
	return &MemoryAppointmentStore{}
}

// Append implements AppointmentStore.
func (s *MemoryAppointmentStore) Append(_ context.Context, appointment *domain.Appointment) error {
	s.appointments = append(s.appointments, appointment)
	return nil
}

// List implements AppointmentStore.
func (s *MemoryAppointmentStore) List(_ context.Context) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, len(s.appointments))
	copy(appointments, s.appointments)
	return appointments, nil
}

// ExistsForDoctorAt implements AppointmentStore. The scan is linear over
// the whole book, which is acceptable at the single-clinic scale this
// model targets.
func (s *MemoryAppointmentStore) ExistsForDoctorAt(
	_ context.Context,
	id domain.LicenseID,
	t time.Time,
) (bool, error) {
	for _, appointment := range s.appointments {
		if appointment.Doctor().LicenseID == id && appointment.ScheduledAt().Equal(t) {
			return true, nil
		}
	}
	return false, nil
}

// MemoryHistoryStore is an in-memory HistoryStore.
type MemoryHistoryStore struct {
	byPatient map[domain.NationalID]*domain.MedicalHistory
}

// NewMemoryHistoryStore creates an empty in-memory history store.
func NewMemoryHistoryStore() *MemoryHistoryStore {
	return &MemoryHistoryStore{byPatient: make(map[domain.NationalID]*domain.MedicalHistory)}
}

// Create implements HistoryStore.
func (s *MemoryHistoryStore) Create(_ context.Context, history *domain.MedicalHistory) error {
	id := history.Patient().NationalID
	if _, ok := s.byPatient[id]; ok {
		return ErrHistoryExists
	}
	s.byPatient[id] = history
	return nil
}

// GetByNationalID implements HistoryStore.
func (s *MemoryHistoryStore) GetByNationalID(
	_ context.Context,
	id domain.NationalID,
) (*domain.MedicalHistory, error) {
	history, ok := s.byPatient[id]
	if !ok {
		return nil, ErrHistoryNotFound
	}
	return history, nil
}
