package llm

import (
	"context"
	"errors"
	"fmt"
)

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Generator is the provider-side contract: one completion against an
// explicitly chosen model. The fallback sequencer drives it.
type Generator interface {
	Generate(ctx context.Context, model, systemPrompt, userPrompt string) (string, error)
}

// Assistant answers a prompt and reports which model produced the
// answer. The fallback sequencer is the canonical implementation.
type Assistant interface {
	AskModel(ctx context.Context, systemPrompt, userPrompt string) (text string, model string, err error)
}

// ErrNotConfigured is returned before any network call when no API
// credential is present. It never triggers a fallback advance.
var ErrNotConfigured = errors.New("llm: api key is not configured")

// StatusError carries the HTTP status of a failed completion request so
// callers can distinguish transient backend failures from the rest.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm: http %d: %s", e.Code, e.Body)
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}
