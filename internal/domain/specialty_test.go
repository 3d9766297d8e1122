package domain

import (
	"reflect"
	"testing"
)

func TestNewSpecialty(t *testing.T) {
	t.Parallel()

	specialty, err := NewSpecialty("Cardiology", []string{"Monday", " wednesday ", "FRIDAY"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Days are lower-cased and trimmed, insertion order preserved
	want := []string{"monday", "wednesday", "friday"}
	if got := specialty.Days(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected days %v, got %v", want, got)
	}

	// Test empty name
	_, err = NewSpecialty("", []string{"monday"})
	if err != ErrSpecialtyNameEmpty {
		t.Errorf("Expected error %v, got %v", ErrSpecialtyNameEmpty, err)
	}
}

func TestSpecialtyOfferedOn(t *testing.T) {
	t.Parallel()

	specialty, err := NewSpecialty("Cardiology", []string{"monday", "friday"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cases := []struct {
		day  string
		want bool
	}{
		{"monday", true},
		{"Monday", true},
		{"MONDAY", true},
		{"friday", true},
		{"tuesday", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := specialty.OfferedOn(tc.day); got != tc.want {
			t.Errorf("OfferedOn(%q) = %v, want %v", tc.day, got, tc.want)
		}
	}
}

func TestSpecialtyDaysReturnsCopy(t *testing.T) {
	t.Parallel()

	specialty, err := NewSpecialty("Cardiology", []string{"monday"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	days := specialty.Days()
	days[0] = "sunday"

	if !specialty.OfferedOn("monday") {
		t.Error("Mutating the returned slice must not affect the specialty")
	}
}

func TestSpecialtyString(t *testing.T) {
	t.Parallel()

	specialty, err := NewSpecialty("Cardiology", []string{"Monday", "Friday"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := "Cardiology (days: monday, friday)"
	if got := specialty.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
