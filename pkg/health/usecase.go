package health

import (
	"context"
	"time"
)

const serviceName = "CareerAgentPro"

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Report is the detailed liveness payload.
type Report struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// UseCase describes liveness reporting and readiness verification.
type UseCase interface {
	// Ready fails when any required dependency is down.
	Ready(ctx context.Context) error
	// Report never fails; degraded dependencies show up in Checks.
	Report(ctx context.Context) Report
}

type service struct {
	version  string
	required []Checker
	optional []Checker
}

// NewService aggregates dependency checkers. Required checkers gate
// readiness; optional ones only appear in the report.
func NewService(version string, required, optional []Checker) UseCase {
	return &service{version: version, required: required, optional: optional}
}

func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.required {
		if err := ch.Check(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Report(ctx context.Context) Report {
	rep := Report{
		Status:    "healthy",
		Service:   serviceName,
		Version:   s.version,
		Timestamp: time.Now().UTC(),
		Checks:    map[string]string{"api": "ok"},
	}
	for _, ch := range s.required {
		s.record(ctx, &rep, ch)
	}
	for _, ch := range s.optional {
		s.record(ctx, &rep, ch)
	}
	return rep
}

func (s *service) record(ctx context.Context, rep *Report, ch Checker) {
	if err := ch.Check(ctx); err != nil {
		rep.Checks[ch.Name()] = err.Error()
		rep.Status = "degraded"
		return
	}
	rep.Checks[ch.Name()] = "ok"
}
