package job

import (
	"context"
	"time"

	"github.com/careeragentpro/backend/pkg/vault"
)

// Analyzed postings kept per user.
const maxHistory = 50

// History remembers which postings a user analyzed and which one they
// are currently tailoring a resume for.
type History struct {
	vault *vault.Vault
	ttl   time.Duration
}

// NewHistory stores analyzed postings for ttl; zero keeps them
// forever.
func NewHistory(v *vault.Vault, ttl time.Duration) *History {
	return &History{vault: v, ttl: ttl}
}

// Record appends the posting to the user's history and marks it as the
// current one. Storage failures are swallowed; history is a
// convenience, not a contract.
func (h *History) Record(ctx context.Context, userID string, p Posting) {
	v := h.vault.Scoped(userID)

	var jobs []Posting
	v.Get(ctx, vault.KeyAnalyzedJobs, &jobs)
	jobs = append(jobs, p)
	if len(jobs) > maxHistory {
		jobs = jobs[len(jobs)-maxHistory:]
	}
	v.Set(ctx, vault.KeyAnalyzedJobs, jobs, h.ttl)
	v.Set(ctx, vault.KeyCurrentJob, p, 0)
}

// Recent returns the user's analyzed postings, oldest first.
func (h *History) Recent(ctx context.Context, userID string) []Posting {
	var jobs []Posting
	h.vault.Scoped(userID).Get(ctx, vault.KeyAnalyzedJobs, &jobs)
	if jobs == nil {
		jobs = []Posting{}
	}
	return jobs
}

// Current returns the posting the user last analyzed.
func (h *History) Current(ctx context.Context, userID string) (Posting, bool) {
	var p Posting
	ok := h.vault.Scoped(userID).Get(ctx, vault.KeyCurrentJob, &p)
	return p, ok
}
