package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careeragentpro/backend/pkg/resume"
)

// ResumeRepository stores saved resume documents with their structured
// profile as JSONB.
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) (*ResumeRepository, error) {
	r := &ResumeRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ResumeRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS resumes (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	title TEXT NOT NULL,
	profile JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_resumes_user ON resumes(user_id);
`)
	return err
}

func (r *ResumeRepository) Create(ctx context.Context, rs *resume.Stored) error {
	if rs.ID == uuid.Nil {
		rs.ID = uuid.New()
	}
	now := time.Now().UTC()
	if rs.CreatedAt.IsZero() {
		rs.CreatedAt = now
	}
	rs.UpdatedAt = now
	profile, err := json.Marshal(rs.Profile)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO resumes (id, user_id, title, profile, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, rs.ID, rs.UserID, rs.Title, profile, rs.CreatedAt, rs.UpdatedAt)
	return err
}

func (r *ResumeRepository) Update(ctx context.Context, rs *resume.Stored) error {
	rs.UpdatedAt = time.Now().UTC()
	profile, err := json.Marshal(rs.Profile)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
UPDATE resumes SET title = $1, profile = $2, updated_at = $3
WHERE id = $4 AND user_id = $5
`, rs.Title, profile, rs.UpdatedAt, rs.ID, rs.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func (r *ResumeRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*resume.Stored, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, user_id, title, profile, created_at, updated_at
FROM resumes WHERE id = $1 AND user_id = $2
`, id, userID)
	return scanStored(row)
}

func (r *ResumeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]resume.Stored, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, title, profile, created_at, updated_at
FROM resumes WHERE user_id = $1
ORDER BY updated_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []resume.Stored
	for rows.Next() {
		rs, err := scanStored(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *rs)
	}
	return res, nil
}

func (r *ResumeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM resumes WHERE id = $1 AND user_id = $2
`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func scanStored(row pgx.Row) (*resume.Stored, error) {
	var rs resume.Stored
	var profile []byte
	var created, updated time.Time
	if err := row.Scan(&rs.ID, &rs.UserID, &rs.Title, &profile, &created, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resume.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(profile, &rs.Profile); err != nil {
		return nil, err
	}
	rs.Profile.Normalize()
	rs.CreatedAt = created.UTC()
	rs.UpdatedAt = updated.UTC()
	return &rs, nil
}
