package store

import (
	"context"

	"github.com/medrano/clinic-registry/internal/domain"
)

// DoctorStore defines the interface for doctor storage.
type DoctorStore interface {
	// Create saves a new doctor.
	// Returns ErrDoctorExists if the license ID is already registered.
	Create(ctx context.Context, doctor *domain.Doctor) error

	// GetByLicenseID retrieves a doctor by their license ID.
	// Returns ErrDoctorNotFound if the doctor does not exist.
	GetByLicenseID(ctx context.Context, id domain.LicenseID) (*domain.Doctor, error)

	// List returns all registered doctors in registration order.
	List(ctx context.Context) ([]*domain.Doctor, error)
}
