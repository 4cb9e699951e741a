package fallback

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/careeragentpro/backend/pkg/llm"
)

// DefaultTriggers are the HTTP statuses that advance the sequence:
// payment required, rate limited, backend error.
var DefaultTriggers = []int{402, 429, 500}

// Sequencer tries an ordered list of models, advancing to the next one
// when an attempt fails with a trigger status or a transport error.
// Attempts are sequential, one call per model, no backoff, no jitter.
// It satisfies llm.ChatModel so callers cannot tell it from a single model.
type Sequencer struct {
	gen      llm.Generator
	models   []string
	triggers map[int]struct{}
	log      *zap.Logger
}

// New builds a Sequencer over models, tried in order. The same model may
// appear more than once; the list is used as given. Empty triggers fall
// back to DefaultTriggers.
func New(gen llm.Generator, models []string, triggers []int, log *zap.Logger) (*Sequencer, error) {
	if gen == nil {
		return nil, errors.New("fallback: generator is required")
	}
	if len(models) == 0 {
		return nil, errors.New("fallback: at least one model is required")
	}
	if len(triggers) == 0 {
		triggers = DefaultTriggers
	}
	if log == nil {
		log = zap.NewNop()
	}
	set := make(map[int]struct{}, len(triggers))
	for _, code := range triggers {
		set[code] = struct{}{}
	}
	return &Sequencer{gen: gen, models: models, triggers: set, log: log}, nil
}

// Models returns the configured order.
func (s *Sequencer) Models() []string { return append([]string(nil), s.models...) }

// Ask implements llm.ChatModel.
func (s *Sequencer) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	text, _, err := s.AskModel(ctx, systemPrompt, userPrompt)
	return text, err
}

// AskModel runs the sequence and also reports which model produced the
// answer. On exhaustion the last attempt's failure surfaces; a failure
// outside the trigger set propagates immediately without consuming the
// rest of the list.
func (s *Sequencer) AskModel(ctx context.Context, systemPrompt, userPrompt string) (string, string, error) {
	var lastErr error
	for i, model := range s.models {
		text, err := s.gen.Generate(ctx, model, systemPrompt, userPrompt)
		if err == nil {
			return text, model, nil
		}
		lastErr = err
		if !s.advances(err) || i == len(s.models)-1 {
			return "", "", lastErr
		}
		s.log.Warn("model attempt failed, advancing",
			zap.String("model", model),
			zap.String("next", s.models[i+1]),
			zap.Error(err))
	}
	return "", "", lastErr
}

// advances reports whether the failure moves the sequence forward: a
// trigger HTTP status, or a transport (network/timeout) error. A missing
// credential is a configuration error and never advances.
func (s *Sequencer) advances(err error) bool {
	if errors.Is(err, llm.ErrNotConfigured) {
		return false
	}
	if code := llm.StatusOf(err); code != 0 {
		_, ok := s.triggers[code]
		return ok
	}
	return true
}

// Describe is a short human-readable summary used in logs and health output.
func (s *Sequencer) Describe() string {
	return fmt.Sprintf("%d model(s), primary %s", len(s.models), s.models[0])
}
