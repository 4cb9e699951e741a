package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. FullName is optional.
type User struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
}
