package store

import (
	"context"

	"github.com/medrano/clinic-registry/internal/domain"
)

// PatientStore defines the interface for patient storage.
type PatientStore interface {
	// Create saves a new patient.
	// Returns ErrPatientExists if the national ID is already registered.
	Create(ctx context.Context, patient *domain.Patient) error

	// GetByNationalID retrieves a patient by their national ID.
	// Returns ErrPatientNotFound if the patient does not exist.
	GetByNationalID(ctx context.Context, id domain.NationalID) (*domain.Patient, error)

	// List returns all registered patients in registration order.
	List(ctx context.Context) ([]*domain.Patient, error)
}
