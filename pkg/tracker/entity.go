package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// StatusApplied is the state a new application starts in. Further
// states are free-form; the UI decides its own vocabulary.
const StatusApplied = "applied"

var ErrNotFound = errors.New("application not found")

// Application is one tracked job application.
type Application struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"-"`
	JobTitle    string     `json:"jobTitle"`
	Company     string     `json:"company"`
	Status      string     `json:"status"`
	DateApplied string     `json:"dateApplied"`
	ResumeID    *uuid.UUID `json:"resumeId,omitempty"`
	JobURL      string     `json:"jobUrl,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Repository is the persistence port. Every read and write is scoped
// to the owning user.
type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (Application, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Application, error)
	UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status string) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
