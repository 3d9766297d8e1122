// Package service provides the clinic's application-level operations:
// patient and doctor registration, appointment scheduling, prescription
// issuance and medical-history lookup.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These represent expected domain-level failures that callers check for with
// errors.Is(). Store-level failures (not found, duplicate) propagate from the
// store package wrapped with additional context.
var (
	// ErrInvalidDateTime indicates a date-time string that does not match
	// the required "YYYY-MM-DD HH:MM" format.
	ErrInvalidDateTime = errors.New("invalid date and time, use YYYY-MM-DD HH:MM")

	// ErrPastDateTime indicates an attempt to schedule an appointment at an
	// instant that is not strictly in the future.
	ErrPastDateTime = errors.New("cannot schedule an appointment in the past")

	// ErrDoctorUnavailable indicates that the doctor has no specialty
	// active on the requested weekday.
	ErrDoctorUnavailable = errors.New("doctor does not see patients on this weekday")

	// ErrSpecialtyNotOffered indicates that the doctor works on the
	// requested weekday but not in the requested specialty.
	ErrSpecialtyNotOffered = errors.New("doctor does not offer this specialty on this weekday")

	// ErrSlotTaken indicates that the doctor already holds an appointment
	// at the exact requested instant.
	ErrSlotTaken = errors.New("doctor already has an appointment at this time")
)
