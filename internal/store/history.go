package store

import (
	"context"

	"github.com/medrano/clinic-registry/internal/domain"
)

// HistoryStore defines the interface for medical history storage. The
// history map is kept in lock-step with the patient map: exactly one
// history exists per registered patient.
type HistoryStore interface {
	// Create saves a new, empty medical history for its owning patient.
	// Returns ErrHistoryExists if a history already exists for that patient.
	Create(ctx context.Context, history *domain.MedicalHistory) error

	// GetByNationalID retrieves the medical history of the patient with
	// the given national ID.
	// Returns ErrHistoryNotFound if no history exists for that patient.
	GetByNationalID(ctx context.Context, id domain.NationalID) (*domain.MedicalHistory, error)
}
