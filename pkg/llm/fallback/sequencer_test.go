package fallback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/careeragentpro/backend/pkg/llm"
)

// scriptedGenerator returns one canned outcome per call, in order.
type scriptedGenerator struct {
	outcomes []outcome
	calls    []string
}

type outcome struct {
	text string
	err  error
}

func (g *scriptedGenerator) Generate(ctx context.Context, model, system, user string) (string, error) {
	g.calls = append(g.calls, model)
	if len(g.outcomes) == 0 {
		return "", errors.New("unexpected extra call")
	}
	out := g.outcomes[0]
	g.outcomes = g.outcomes[1:]
	return out.text, out.err
}

func status(code int) error { return &llm.StatusError{Code: code, Body: "x"} }

func TestSequencerAdvancesOnRateLimitThenSucceeds(t *testing.T) {
	gen := &scriptedGenerator{outcomes: []outcome{
		{err: status(429)},
		{err: status(429)},
		{text: "third time lucky"},
	}}
	s, err := New(gen, []string{"a", "b", "c"}, nil, zap.NewNop())
	require.NoError(t, err)

	text, model, err := s.AskModel(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "third time lucky", text)
	assert.Equal(t, "c", model)
	assert.Equal(t, []string{"a", "b", "c"}, gen.calls, "exactly three calls")
}

func TestSequencerExhaustionMakesExactlyNCalls(t *testing.T) {
	gen := &scriptedGenerator{outcomes: []outcome{
		{err: status(429)},
		{err: status(402)},
		{err: status(500)},
	}}
	s, err := New(gen, []string{"a", "b", "c"}, nil, zap.NewNop())
	require.NoError(t, err)

	_, err = s.Ask(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Equal(t, 500, llm.StatusOf(err), "last attempt's failure surfaces")
	assert.Len(t, gen.calls, 3)
}

func TestSequencerNonTriggerStatusPropagatesImmediately(t *testing.T) {
	gen := &scriptedGenerator{outcomes: []outcome{
		{err: status(401)},
	}}
	s, err := New(gen, []string{"a", "b", "c"}, nil, zap.NewNop())
	require.NoError(t, err)

	_, err = s.Ask(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Equal(t, 401, llm.StatusOf(err))
	assert.Len(t, gen.calls, 1, "401 is not a fallback trigger")
}

func TestSequencerNetworkErrorAdvances(t *testing.T) {
	gen := &scriptedGenerator{outcomes: []outcome{
		{err: errors.New("dial tcp: connection refused")},
		{text: "recovered"},
	}}
	s, err := New(gen, []string{"a", "b"}, nil, zap.NewNop())
	require.NoError(t, err)

	text, err := s.Ask(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Len(t, gen.calls, 2)
}

func TestSequencerMissingCredentialNeverAdvances(t *testing.T) {
	gen := &scriptedGenerator{outcomes: []outcome{
		{err: llm.ErrNotConfigured},
	}}
	s, err := New(gen, []string{"a", "b", "c"}, nil, zap.NewNop())
	require.NoError(t, err)

	_, err = s.Ask(context.Background(), "s", "u")
	require.ErrorIs(t, err, llm.ErrNotConfigured)
	assert.Len(t, gen.calls, 1)
}

func TestSequencerFirstSuccessMakesOneCall(t *testing.T) {
	gen := &scriptedGenerator{outcomes: []outcome{{text: "ok"}}}
	s, err := New(gen, []string{"a", "b"}, nil, zap.NewNop())
	require.NoError(t, err)

	text, err := s.Ask(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Len(t, gen.calls, 1)
}

func TestSequencerCustomTriggerSet(t *testing.T) {
	// 503 advances only when configured as a trigger.
	gen := &scriptedGenerator{outcomes: []outcome{
		{err: status(503)},
		{text: "ok"},
	}}
	s, err := New(gen, []string{"a", "b"}, []int{503}, zap.NewNop())
	require.NoError(t, err)

	text, err := s.Ask(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)

	gen2 := &scriptedGenerator{outcomes: []outcome{{err: status(503)}}}
	s2, err := New(gen2, []string{"a", "b"}, nil, zap.NewNop())
	require.NoError(t, err)
	_, err = s2.Ask(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Len(t, gen2.calls, 1)
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, []string{"a"}, nil, nil)
	assert.Error(t, err)

	_, err = New(&scriptedGenerator{}, nil, nil, nil)
	assert.Error(t, err)
}
