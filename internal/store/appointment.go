package store

import (
	"context"
	"time"

	"github.com/medrano/clinic-registry/internal/domain"
)

// AppointmentStore defines the interface for the clinic's appointment book.
// Appointments are append-only; they are never updated or deleted.
type AppointmentStore interface {
	// Append records a new appointment at the end of the book.
	Append(ctx context.Context, appointment *domain.Appointment) error

	// List returns all appointments in the order they were booked.
	List(ctx context.Context) ([]*domain.Appointment, error)

	// ExistsForDoctorAt reports whether the doctor already holds an
	// appointment at exactly t, regardless of patient or specialty.
	ExistsForDoctorAt(ctx context.Context, id domain.LicenseID, t time.Time) (bool, error)
}
