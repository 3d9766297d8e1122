package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (e.g., ErrPatientNotFound, ErrDoctorNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a patient with the same national ID).
	ErrDuplicate = errors.New("entity already exists")

	// Entity-specific "not found" errors

	// ErrPatientNotFound indicates that the requested patient does not exist.
	ErrPatientNotFound = fmt.Errorf("%w: patient", ErrNotFound)

	// ErrDoctorNotFound indicates that the requested doctor does not exist.
	ErrDoctorNotFound = fmt.Errorf("%w: doctor", ErrNotFound)

	// ErrHistoryNotFound indicates that the requested medical history does not exist.
	ErrHistoryNotFound = fmt.Errorf("%w: medical history", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrPatientExists indicates that a patient with the given national ID
	// is already registered.
	ErrPatientExists = fmt.Errorf("%w: national ID", ErrDuplicate)

	// ErrDoctorExists indicates that a doctor with the given license ID
	// is already registered.
	ErrDoctorExists = fmt.Errorf("%w: license ID", ErrDuplicate)

	// ErrHistoryExists indicates that a medical history already exists for
	// the given patient.
	ErrHistoryExists = fmt.Errorf("%w: medical history", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error,
// including the entity-specific variants.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error,
// including the entity-specific variants.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
