package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewAppointment(t *testing.T) {
	t.Parallel()

	patient, _ := NewPatient("J. Doe", "111", "01/02/1990")
	doctor, _ := NewDoctor("Dr. X", "D1")
	scheduledAt := time.Date(2030, 1, 7, 10, 0, 0, 0, time.Local)

	appointment, err := NewAppointment(patient, doctor, scheduledAt, "Derma")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Accessors round-trip the constructor arguments untransformed.
	if appointment.ID() == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if appointment.Patient() != patient {
		t.Error("Expected the same patient reference back")
	}
	if appointment.Doctor() != doctor {
		t.Error("Expected the same doctor reference back")
	}
	if !appointment.ScheduledAt().Equal(scheduledAt) {
		t.Errorf("Expected scheduled time %v, got %v", scheduledAt, appointment.ScheduledAt())
	}
	if appointment.SpecialtyName() != "Derma" {
		t.Errorf("Expected specialty %q, got %q", "Derma", appointment.SpecialtyName())
	}
	if appointment.CreatedAt().IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test nil patient
	_, err = NewAppointment(nil, doctor, scheduledAt, "Derma")
	if err != ErrAppointmentPatientNil {
		t.Errorf("Expected error %v, got %v", ErrAppointmentPatientNil, err)
	}

	// Test nil doctor
	_, err = NewAppointment(patient, nil, scheduledAt, "Derma")
	if err != ErrAppointmentDoctorNil {
		t.Errorf("Expected error %v, got %v", ErrAppointmentDoctorNil, err)
	}

	// Test zero time
	_, err = NewAppointment(patient, doctor, time.Time{}, "Derma")
	if err != ErrAppointmentTimeZero {
		t.Errorf("Expected error %v, got %v", ErrAppointmentTimeZero, err)
	}

	// Test empty specialty
	_, err = NewAppointment(patient, doctor, scheduledAt, "")
	if err != ErrAppointmentSpecialtyEmpty {
		t.Errorf("Expected error %v, got %v", ErrAppointmentSpecialtyEmpty, err)
	}
}

func TestAppointmentString(t *testing.T) {
	t.Parallel()

	patient, _ := NewPatient("J. Doe", "111", "01/02/1990")
	doctor, _ := NewDoctor("Dr. X", "D1")
	scheduledAt := time.Date(2030, 1, 7, 10, 0, 0, 0, time.Local)

	appointment, err := NewAppointment(patient, doctor, scheduledAt, "Derma")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := "2030-01-07 10:00 - J. Doe with Dr. X (D1) for Derma"
	if got := appointment.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
