package domain

import (
	"errors"
	"fmt"
)

// Patient-specific validation errors
var (
	// ErrPatientNameEmpty is returned when a patient's name is empty.
	ErrPatientNameEmpty = errors.New("patient name cannot be empty")
)

// Patient represents a person registered with the clinic. It is a pure
// value object: once registered it is never mutated. The birth date is
// kept as the free-form string the patient supplied; it is not validated.
type Patient struct {
	Name       string     `json:"name"`
	NationalID NationalID `json:"national_id"`
	BirthDate  string     `json:"birth_date"`
}

// NewPatient creates a new Patient with the given name, national ID and
// birth date. Returns an error if validation fails.
func NewPatient(name string, nationalID NationalID, birthDate string) (*Patient, error) {
	patient := &Patient{
		Name:       name,
		NationalID: nationalID,
		BirthDate:  birthDate,
	}

	if err := patient.Validate(); err != nil {
		return nil, err
	}

	return patient, nil
}

// Validate checks if the Patient has valid data.
func (p *Patient) Validate() error {
	if p.Name == "" {
		return ErrPatientNameEmpty
	}

	return p.NationalID.Validate()
}

func (p *Patient) String() string {
	return fmt.Sprintf("%s, %s, %s", p.Name, p.NationalID, p.BirthDate)
}
