package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a stored resume does not exist or
// belongs to another user.
var ErrNotFound = errors.New("resume: not found")

// Stored is a saved resume that belongs to a user account.
type Stored struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Profile   Profile   `json:"profile"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Repository persists saved resumes. All reads and writes are scoped
// to the owning user.
type Repository interface {
	Create(ctx context.Context, r *Stored) error
	Update(ctx context.Context, r *Stored) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*Stored, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Stored, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
