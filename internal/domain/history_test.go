package domain

import (
	"testing"
	"time"
)

func TestNewMedicalHistory(t *testing.T) {
	t.Parallel()

	patient, _ := NewPatient("J. Doe", "111", "01/02/1990")

	history, err := NewMedicalHistory(patient)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if history.Patient() != patient {
		t.Error("Expected the same patient reference back")
	}
	if len(history.Appointments()) != 0 {
		t.Errorf("Expected empty appointment list, got %d entries", len(history.Appointments()))
	}
	if len(history.Prescriptions()) != 0 {
		t.Errorf("Expected empty prescription list, got %d entries", len(history.Prescriptions()))
	}

	// Test nil patient
	_, err = NewMedicalHistory(nil)
	if err != ErrHistoryPatientNil {
		t.Errorf("Expected error %v, got %v", ErrHistoryPatientNil, err)
	}
}

func TestMedicalHistoryAppointmentOrdering(t *testing.T) {
	t.Parallel()

	patient, _ := NewPatient("J. Doe", "111", "01/02/1990")
	doctor, _ := NewDoctor("Dr. X", "D1")
	history, _ := NewMedicalHistory(patient)

	later, _ := NewAppointment(patient, doctor,
		time.Date(2030, 3, 1, 10, 0, 0, 0, time.Local), "Derma")
	earlier, _ := NewAppointment(patient, doctor,
		time.Date(2030, 1, 7, 10, 0, 0, 0, time.Local), "Derma")
	middle, _ := NewAppointment(patient, doctor,
		time.Date(2030, 2, 4, 10, 0, 0, 0, time.Local), "Derma")

	// Inserted out of chronological order on purpose.
	history.AddAppointment(later)
	history.AddAppointment(earlier)
	history.AddAppointment(middle)
	history.AddAppointment(nil) // ignored

	appointments := history.Appointments()
	if len(appointments) != 3 {
		t.Fatalf("Expected 3 appointments, got %d", len(appointments))
	}

	for i := 1; i < len(appointments); i++ {
		if appointments[i-1].ScheduledAt().After(appointments[i].ScheduledAt()) {
			t.Errorf("Appointments not in ascending order at index %d", i)
		}
	}
	if appointments[0] != earlier || appointments[2] != later {
		t.Error("Expected earliest appointment first and latest last")
	}
}

func TestMedicalHistoryPrescriptionOrdering(t *testing.T) {
	t.Parallel()

	patient, _ := NewPatient("J. Doe", "111", "01/02/1990")
	doctor, _ := NewDoctor("Dr. X", "D1")
	history, _ := NewMedicalHistory(patient)

	oldest, _ := NewPrescriptionAt(patient, doctor, []string{"A"},
		time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC))
	newest, _ := NewPrescriptionAt(patient, doctor, []string{"B"},
		time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC))
	middle, _ := NewPrescriptionAt(patient, doctor, []string{"C"},
		time.Date(2030, 2, 1, 9, 0, 0, 0, time.UTC))

	history.AddPrescription(oldest)
	history.AddPrescription(newest)
	history.AddPrescription(middle)

	prescriptions := history.Prescriptions()
	if len(prescriptions) != 3 {
		t.Fatalf("Expected 3 prescriptions, got %d", len(prescriptions))
	}

	// Most recent first.
	if prescriptions[0] != newest || prescriptions[2] != oldest {
		t.Error("Expected prescriptions in descending issue-time order")
	}
}

func TestMedicalHistoryAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	patient, _ := NewPatient("J. Doe", "111", "01/02/1990")
	doctor, _ := NewDoctor("Dr. X", "D1")
	history, _ := NewMedicalHistory(patient)

	appointment, _ := NewAppointment(patient, doctor,
		time.Date(2030, 1, 7, 10, 0, 0, 0, time.Local), "Derma")
	history.AddAppointment(appointment)

	appointments := history.Appointments()
	appointments[0] = nil

	if got := history.Appointments(); got[0] != appointment {
		t.Error("Mutating the returned slice must not affect the history")
	}
}
