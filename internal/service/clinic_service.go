package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/medrano/clinic-registry/internal/domain"
	"github.com/medrano/clinic-registry/internal/store"
)

// dateTimeLayout is the wire format for appointment times: 24-hour clock,
// no timezone, no seconds.
const dateTimeLayout = "2006-01-02 15:04"

// ClinicService provides the registry operations the front-end consumes.
type ClinicService interface {
	// RegisterPatient registers a new patient and atomically creates their
	// empty medical history. Returns store.ErrPatientExists if the national
	// ID is already registered.
	RegisterPatient(ctx context.Context, patient *domain.Patient) error

	// RegisterDoctor registers a new doctor.
	// Returns store.ErrDoctorExists if the license ID is already registered.
	RegisterDoctor(ctx context.Context, doctor *domain.Doctor) error

	// AddDoctorSpecialty appends a specialty to an already-registered
	// doctor and returns the doctor.
	// Returns store.ErrDoctorNotFound if the doctor does not exist.
	AddDoctorSpecialty(
		ctx context.Context,
		id domain.LicenseID,
		specialty *domain.Specialty,
	) (*domain.Doctor, error)

	// FindPatient retrieves a patient by national ID.
	// Returns store.ErrPatientNotFound if the patient does not exist.
	FindPatient(ctx context.Context, id domain.NationalID) (*domain.Patient, error)

	// FindDoctor retrieves a doctor by license ID.
	// Returns store.ErrDoctorNotFound if the doctor does not exist.
	FindDoctor(ctx context.Context, id domain.LicenseID) (*domain.Doctor, error)

	// ListPatients returns all registered patients in registration order.
	ListPatients(ctx context.Context) ([]*domain.Patient, error)

	// ListDoctors returns all registered doctors in registration order.
	ListDoctors(ctx context.Context) ([]*domain.Doctor, error)

	// ListAppointments returns all appointments in booking order.
	ListAppointments(ctx context.Context) ([]*domain.Appointment, error)

	// GetHistory returns the medical history of the patient with the given
	// national ID. The patient is resolved first, so an unknown ID surfaces
	// as store.ErrPatientNotFound.
	GetHistory(ctx context.Context, id domain.NationalID) (*domain.MedicalHistory, error)

	// ScheduleAppointment validates and books an appointment. The checks
	// run in a fixed order, each short-circuiting on first failure:
	// patient existence, doctor existence, date-time format, future
	// instant, weekday availability, specialty membership, slot conflict.
	// On success the appointment is recorded in the book and in the
	// patient's medical history.
	//
	// Returns:
	//   - store.ErrPatientNotFound / store.ErrDoctorNotFound for unknown IDs
	//   - ErrInvalidDateTime for a malformed date-time string
	//   - ErrPastDateTime for an instant not strictly in the future
	//   - ErrDoctorUnavailable when the doctor has no specialty that weekday
	//   - ErrSpecialtyNotOffered when the weekday is worked but not for the
	//     requested specialty (exact, case-sensitive name match)
	//   - ErrSlotTaken when the doctor already holds that exact instant
	ScheduleAppointment(
		ctx context.Context,
		patientID domain.NationalID,
		doctorID domain.LicenseID,
		dateTimeText string,
		specialtyName string,
	) (*domain.Appointment, error)

	// IssuePrescription issues a prescription for the given medications at
	// the current instant and records it in the patient's medical history.
	// The caller is responsible for rejecting an empty medication list
	// before calling; the domain constructor still guards against it.
	// Returns store.ErrPatientNotFound / store.ErrDoctorNotFound for
	// unknown IDs.
	IssuePrescription(
		ctx context.Context,
		patientID domain.NationalID,
		doctorID domain.LicenseID,
		medications []string,
	) (*domain.Prescription, error)
}

// ClinicServiceImpl implements the ClinicService interface.
type ClinicServiceImpl struct {
	patients     store.PatientStore
	doctors      store.DoctorStore
	appointments store.AppointmentStore
	histories    store.HistoryStore
	logger       *slog.Logger
}

// NewClinicService creates a new ClinicService.
func NewClinicService(
	patients store.PatientStore,
	doctors store.DoctorStore,
	appointments store.AppointmentStore,
	histories store.HistoryStore,
	logger *slog.Logger,
) ClinicService {
	return &ClinicServiceImpl{
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		histories:    histories,
		logger:       logger.With("component", "clinic_service"),
	}
}

// RegisterPatient registers a new patient together with their empty
// medical history. The two insertions happen back to back with no
// failure point between them, so a patient never exists without a
// history.
func (s *ClinicServiceImpl) RegisterPatient(ctx context.Context, patient *domain.Patient) error {
	if err := s.patients.Create(ctx, patient); err != nil {
		s.logger.Error("failed to register patient",
			"error", err,
			"national_id", patient.NationalID)
		return fmt.Errorf("failed to register patient: %w", err)
	}

	history, err := domain.NewMedicalHistory(patient)
	if err != nil {
		return fmt.Errorf("failed to create medical history: %w", err)
	}
	if err := s.histories.Create(ctx, history); err != nil {
		return fmt.Errorf("failed to create medical history: %w", err)
	}

	s.logger.Info("patient registered",
		"national_id", patient.NationalID,
		"name", patient.Name)

	return nil
}

// RegisterDoctor registers a new doctor.
func (s *ClinicServiceImpl) RegisterDoctor(ctx context.Context, doctor *domain.Doctor) error {
	if err := s.doctors.Create(ctx, doctor); err != nil {
		s.logger.Error("failed to register doctor",
			"error", err,
			"license_id", doctor.LicenseID)
		return fmt.Errorf("failed to register doctor: %w", err)
	}

	s.logger.Info("doctor registered",
		"license_id", doctor.LicenseID,
		"name", doctor.Name,
		"specialties", len(doctor.Specialties()))

	return nil
}

// AddDoctorSpecialty appends a specialty to a registered doctor.
func (s *ClinicServiceImpl) AddDoctorSpecialty(
	ctx context.Context,
	id domain.LicenseID,
	specialty *domain.Specialty,
) (*domain.Doctor, error) {
	doctor, err := s.doctors.GetByLicenseID(ctx, id)
	if err != nil {
		s.logger.Error("failed to resolve doctor",
			"error", err,
			"license_id", id)
		return nil, fmt.Errorf("failed to resolve doctor: %w", err)
	}

	doctor.AddSpecialty(specialty)

	s.logger.Info("specialty added",
		"license_id", id,
		"specialty", specialty.Name)

	return doctor, nil
}

// FindPatient retrieves a patient by national ID.
func (s *ClinicServiceImpl) FindPatient(
	ctx context.Context,
	id domain.NationalID,
) (*domain.Patient, error) {
	patient, err := s.patients.GetByNationalID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve patient: %w", err)
	}
	return patient, nil
}

// FindDoctor retrieves a doctor by license ID.
func (s *ClinicServiceImpl) FindDoctor(
	ctx context.Context,
	id domain.LicenseID,
) (*domain.Doctor, error) {
	doctor, err := s.doctors.GetByLicenseID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve doctor: %w", err)
	}
	return doctor, nil
}

// ListPatients returns all registered patients.
func (s *ClinicServiceImpl) ListPatients(ctx context.Context) ([]*domain.Patient, error) {
	return s.patients.List(ctx)
}

// ListDoctors returns all registered doctors.
func (s *ClinicServiceImpl) ListDoctors(ctx context.Context) ([]*domain.Doctor, error) {
	return s.doctors.List(ctx)
}

// ListAppointments returns all booked appointments.
func (s *ClinicServiceImpl) ListAppointments(ctx context.Context) ([]*domain.Appointment, error) {
	return s.appointments.List(ctx)
}

// GetHistory resolves the patient first so that an unknown national ID is
// reported as a missing patient, then returns the associated history.
func (s *ClinicServiceImpl) GetHistory(
	ctx context.Context,
	id domain.NationalID,
) (*domain.MedicalHistory, error) {
	if _, err := s.patients.GetByNationalID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to resolve patient: %w", err)
	}

	history, err := s.histories.GetByNationalID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve medical history: %w", err)
	}
	return history, nil
}

// ScheduleAppointment runs the scheduling rule chain in order: existence
// checks first, then date checks, then availability, then conflict. The
// ordering keeps error reporting unambiguous - a caller always learns
// about a missing entity before date or availability problems.
func (s *ClinicServiceImpl) ScheduleAppointment(
	ctx context.Context,
	patientID domain.NationalID,
	doctorID domain.LicenseID,
	dateTimeText string,
	specialtyName string,
) (*domain.Appointment, error) {
	patient, err := s.patients.GetByNationalID(ctx, patientID)
	if err != nil {
		s.logger.Debug("scheduling rejected: unknown patient", "national_id", patientID)
		return nil, fmt.Errorf("failed to resolve patient: %w", err)
	}

	doctor, err := s.doctors.GetByLicenseID(ctx, doctorID)
	if err != nil {
		s.logger.Debug("scheduling rejected: unknown doctor", "license_id", doctorID)
		return nil, fmt.Errorf("failed to resolve doctor: %w", err)
	}

	scheduledAt, err := parseDateTime(dateTimeText)
	if err != nil {
		s.logger.Debug("scheduling rejected: bad date-time", "input", dateTimeText)
		return nil, err
	}

	if !scheduledAt.After(time.Now()) {
		s.logger.Debug("scheduling rejected: past date-time", "scheduled_at", scheduledAt)
		return nil, fmt.Errorf("%w: %s", ErrPastDateTime, dateTimeText)
	}

	weekday := domain.WeekdayLabel(scheduledAt)

	offered := doctor.SpecialtiesOfferedOn(weekday)
	if len(offered) == 0 {
		s.logger.Debug("scheduling rejected: doctor unavailable",
			"license_id", doctorID,
			"weekday", weekday)
		return nil, fmt.Errorf("%w: %s does not attend on %s",
			ErrDoctorUnavailable, doctor.Name, weekday)
	}

	if !slices.Contains(offered, specialtyName) {
		s.logger.Debug("scheduling rejected: specialty not offered",
			"license_id", doctorID,
			"weekday", weekday,
			"specialty", specialtyName)
		return nil, fmt.Errorf("%w: %s does not offer %q on %s",
			ErrSpecialtyNotOffered, doctor.Name, specialtyName, weekday)
	}

	taken, err := s.appointments.ExistsForDoctorAt(ctx, doctorID, scheduledAt)
	if err != nil {
		return nil, fmt.Errorf("failed to check appointment conflicts: %w", err)
	}
	if taken {
		s.logger.Debug("scheduling rejected: slot taken",
			"license_id", doctorID,
			"scheduled_at", scheduledAt)
		return nil, fmt.Errorf("%w: %s at %s",
			ErrSlotTaken, doctor.Name, scheduledAt.Format(dateTimeLayout))
	}

	appointment, err := domain.NewAppointment(patient, doctor, scheduledAt, specialtyName)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if err := s.appointments.Append(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to record appointment: %w", err)
	}

	// The history exists for every registered patient, created in
	// RegisterPatient.
	history, err := s.histories.GetByNationalID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve medical history: %w", err)
	}
	history.AddAppointment(appointment)

	s.logger.Info("appointment scheduled",
		"appointment_id", appointment.ID(),
		"national_id", patientID,
		"license_id", doctorID,
		"scheduled_at", scheduledAt.Format(dateTimeLayout),
		"specialty", specialtyName)

	return appointment, nil
}

// IssuePrescription issues a prescription at the current instant and
// records it in the patient's medical history.
func (s *ClinicServiceImpl) IssuePrescription(
	ctx context.Context,
	patientID domain.NationalID,
	doctorID domain.LicenseID,
	medications []string,
) (*domain.Prescription, error) {
	patient, err := s.patients.GetByNationalID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve patient: %w", err)
	}

	doctor, err := s.doctors.GetByLicenseID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve doctor: %w", err)
	}

	prescription, err := domain.NewPrescription(patient, doctor, medications)
	if err != nil {
		return nil, fmt.Errorf("failed to create prescription: %w", err)
	}

	history, err := s.histories.GetByNationalID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve medical history: %w", err)
	}
	history.AddPrescription(prescription)

	s.logger.Info("prescription issued",
		"prescription_id", prescription.ID(),
		"national_id", patientID,
		"license_id", doctorID,
		"medications", len(medications))

	return prescription, nil
}

// parseDateTime parses the fixed "YYYY-MM-DD HH:MM" wire format. The
// length check rejects inputs with unpadded fields that time.Parse would
// otherwise accept.
func parseDateTime(text string) (time.Time, error) {
	if len(text) != len(dateTimeLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, text)
	}

	t, err := time.ParseInLocation(dateTimeLayout, text, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, text)
	}
	return t, nil
}
