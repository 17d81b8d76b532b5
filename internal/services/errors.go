package services

import "fmt"

// Typed errors for the request pipeline. Handlers map these to HTTP statuses
// in one place; anything untyped becomes a generic 500.

type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type QuotaExceededError struct{ Message string }

func (e *QuotaExceededError) Error() string { return e.Message }

// UpstreamError is a provider failure tagged with the pipeline stage that hit
// it, so the response names both the stage and the upstream message.
type UpstreamError struct {
	Stage string // "metadata" | "transcript" | "summary"
	Err   error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("%s failed: %v", e.Stage, e.Err) }

func (e *UpstreamError) Unwrap() error { return e.Err }
