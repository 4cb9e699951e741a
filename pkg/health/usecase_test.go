package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (c stubChecker) Name() string                { return c.name }
func (c stubChecker) Check(context.Context) error { return c.err }

func TestReadyRequiresAllRequiredCheckers(t *testing.T) {
	down := errors.New("connection refused")

	svc := NewService("1.0.0", []Checker{stubChecker{name: "postgres"}}, nil)
	assert.NoError(t, svc.Ready(context.Background()))

	svc = NewService("1.0.0", []Checker{stubChecker{name: "postgres", err: down}}, nil)
	assert.ErrorIs(t, svc.Ready(context.Background()), down)
}

func TestReadyIgnoresOptionalCheckers(t *testing.T) {
	svc := NewService("1.0.0",
		[]Checker{stubChecker{name: "postgres"}},
		[]Checker{stubChecker{name: "ai_service", err: errors.New("not_configured")}})

	assert.NoError(t, svc.Ready(context.Background()))
}

func TestReportHealthy(t *testing.T) {
	svc := NewService("1.0.0",
		[]Checker{stubChecker{name: "postgres"}, stubChecker{name: "redis"}},
		[]Checker{stubChecker{name: "ai_service"}})

	rep := svc.Report(context.Background())

	assert.Equal(t, "healthy", rep.Status)
	assert.Equal(t, "CareerAgentPro", rep.Service)
	assert.Equal(t, "1.0.0", rep.Version)
	assert.Equal(t, "ok", rep.Checks["api"])
	assert.Equal(t, "ok", rep.Checks["postgres"])
	assert.Equal(t, "ok", rep.Checks["redis"])
	assert.Equal(t, "ok", rep.Checks["ai_service"])
	require.False(t, rep.Timestamp.IsZero())
}

func TestReportDegradedWhenAIUnconfigured(t *testing.T) {
	svc := NewService("1.0.0",
		[]Checker{stubChecker{name: "postgres"}},
		[]Checker{stubChecker{name: "ai_service", err: errors.New("not_configured")}})

	rep := svc.Report(context.Background())

	assert.Equal(t, "degraded", rep.Status)
	assert.Equal(t, "not_configured", rep.Checks["ai_service"])
}
