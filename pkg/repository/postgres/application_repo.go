package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careeragentpro/backend/pkg/tracker"
)

// ApplicationRepository persists tracked job applications.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) (*ApplicationRepository, error) {
	r := &ApplicationRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ApplicationRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS applications (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	job_title TEXT NOT NULL,
	company TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'applied',
	date_applied TEXT NOT NULL DEFAULT '',
	resume_id UUID,
	job_url TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_applications_user ON applications(user_id);
`)
	return err
}

func (r *ApplicationRepository) Create(ctx context.Context, a tracker.Application) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO applications (id, user_id, job_title, company, status, date_applied, resume_id, job_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, a.ID, a.OwnerID, a.JobTitle, a.Company, a.Status, a.DateApplied, a.ResumeID, a.JobURL, a.CreatedAt)
	return err
}

func (r *ApplicationRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (tracker.Application, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, user_id, job_title, company, status, date_applied, resume_id, job_url, created_at
FROM applications WHERE id = $1 AND user_id = $2
`, id, ownerID)
	return scanApplication(row)
}

func (r *ApplicationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]tracker.Application, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, job_title, company, status, date_applied, resume_id, job_url, created_at
FROM applications WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []tracker.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE applications SET status = $1 WHERE id = $2 AND user_id = $3
`, status, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return tracker.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM applications WHERE id = $1 AND user_id = $2
`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return tracker.ErrNotFound
	}
	return nil
}

func scanApplication(row pgx.Row) (tracker.Application, error) {
	var a tracker.Application
	var created time.Time
	if err := row.Scan(&a.ID, &a.OwnerID, &a.JobTitle, &a.Company, &a.Status, &a.DateApplied, &a.ResumeID, &a.JobURL, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tracker.Application{}, tracker.ErrNotFound
		}
		return tracker.Application{}, err
	}
	a.CreatedAt = created.UTC()
	return a, nil
}
