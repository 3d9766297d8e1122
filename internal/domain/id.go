package domain

import "errors"

// Identifier validation errors
var (
	// ErrEmptyNationalID is returned when a patient's national ID is empty.
	ErrEmptyNationalID = errors.New("national ID cannot be empty")

	// ErrEmptyLicenseID is returned when a doctor's license ID is empty.
	ErrEmptyLicenseID = errors.New("license ID cannot be empty")
)

// NationalID is the unique external identifier of a Patient (for example a
// government ID number). It is a distinct type so that a license number can
// never be passed where a national ID is expected.
type NationalID string

// Validate checks that the national ID is non-empty.
func (id NationalID) Validate() error {
	if id == "" {
		return ErrEmptyNationalID
	}
	return nil
}

func (id NationalID) String() string {
	return string(id)
}

// LicenseID is the unique external identifier of a Doctor (a medical
// license number).
type LicenseID string

// Validate checks that the license ID is non-empty.
func (id LicenseID) Validate() error {
	if id == "" {
		return ErrEmptyLicenseID
	}
	return nil
}

func (id LicenseID) String() string {
	return string(id)
}
