package domain

import (
	"reflect"
	"testing"
)

func TestNewDoctor(t *testing.T) {
	t.Parallel()

	doctor, err := NewDoctor("Dr. X", "D1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if doctor.Name != "Dr. X" {
		t.Errorf("Expected name %q, got %q", "Dr. X", doctor.Name)
	}
	if doctor.LicenseID != LicenseID("D1") {
		t.Errorf("Expected license ID %q, got %q", "D1", doctor.LicenseID)
	}
	if len(doctor.Specialties()) != 0 {
		t.Errorf("Expected no specialties, got %d", len(doctor.Specialties()))
	}

	// Test empty name
	_, err = NewDoctor("", "D1")
	if err != ErrDoctorNameEmpty {
		t.Errorf("Expected error %v, got %v", ErrDoctorNameEmpty, err)
	}

	// Test empty license ID
	_, err = NewDoctor("Dr. X", "")
	if err != ErrEmptyLicenseID {
		t.Errorf("Expected error %v, got %v", ErrEmptyLicenseID, err)
	}
}

func TestDoctorAddSpecialty(t *testing.T) {
	t.Parallel()

	doctor, err := NewDoctor("Dr. X", "D1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cardiology, _ := NewSpecialty("Cardiology", []string{"monday"})
	pediatrics, _ := NewSpecialty("Pediatrics", []string{"tuesday"})

	doctor.AddSpecialty(cardiology)
	doctor.AddSpecialty(pediatrics)
	doctor.AddSpecialty(nil) // ignored

	specialties := doctor.Specialties()
	if len(specialties) != 2 {
		t.Fatalf("Expected 2 specialties, got %d", len(specialties))
	}
	if specialties[0].Name != "Cardiology" || specialties[1].Name != "Pediatrics" {
		t.Errorf("Expected insertion order preserved, got [%s, %s]",
			specialties[0].Name, specialties[1].Name)
	}
}

func TestDoctorSpecialtiesOfferedOn(t *testing.T) {
	t.Parallel()

	doctor, err := NewDoctor("Dr. X", "D1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cardiology, _ := NewSpecialty("Cardiology", []string{"Monday"})
	pediatrics, _ := NewSpecialty("Pediatrics", []string{"Monday"})
	dermatology, _ := NewSpecialty("Dermatology", []string{"friday"})

	doctor.AddSpecialty(cardiology)
	doctor.AddSpecialty(pediatrics)
	doctor.AddSpecialty(dermatology)

	// Every specialty active on the day is returned, in insertion order.
	want := []string{"Cardiology", "Pediatrics"}
	if got := doctor.SpecialtiesOfferedOn("Monday"); !reflect.DeepEqual(got, want) {
		t.Errorf("SpecialtiesOfferedOn(Monday) = %v, want %v", got, want)
	}

	// Day matching is case-insensitive.
	if got := doctor.SpecialtiesOfferedOn("FRIDAY"); !reflect.DeepEqual(got, []string{"Dermatology"}) {
		t.Errorf("SpecialtiesOfferedOn(FRIDAY) = %v, want [Dermatology]", got)
	}

	// No specialties on an uncovered day.
	if got := doctor.SpecialtiesOfferedOn("sunday"); len(got) != 0 {
		t.Errorf("SpecialtiesOfferedOn(sunday) = %v, want empty", got)
	}
}

func TestDoctorString(t *testing.T) {
	t.Parallel()

	doctor, err := NewDoctor("Dr. X", "D1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := "Doctor: Dr. X, license: D1, specialties: none"
	if got := doctor.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	cardiology, _ := NewSpecialty("Cardiology", []string{"monday"})
	doctor.AddSpecialty(cardiology)

	want = "Doctor: Dr. X, license: D1, specialties: [Cardiology (days: monday)]"
	if got := doctor.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
