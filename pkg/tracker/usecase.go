package tracker

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// UseCase covers the application tracking scenarios.
type UseCase interface {
	Create(ctx context.Context, a Application) (Application, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Application, error)
	UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status string) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, a Application) (Application, error) {
	a.JobTitle = strings.TrimSpace(a.JobTitle)
	a.Company = strings.TrimSpace(a.Company)
	if a.JobTitle == "" {
		return Application{}, ErrValidation("jobTitle is required")
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = StatusApplied
	}
	if a.DateApplied == "" {
		a.DateApplied = time.Now().Format(dateLayout)
	}
	a.CreatedAt = time.Now()
	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Application, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *service) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return ErrValidation("status is required")
	}
	return s.repo.UpdateStatus(ctx, ownerID, id, status)
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.Delete(ctx, ownerID, id)
}

// ErrValidation is a simple input validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
