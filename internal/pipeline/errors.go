package pipeline

import (
	"fmt"
	"strings"
)

// ConfigurationError reports missing external-service credentials. Surfaced
// before any pipeline stage runs.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("pipeline: missing configuration for: %s", strings.Join(e.Missing, ", "))
}

// FetchError reports a failed or insufficient page fetch. Fatal for the
// request; no partial profile is ever returned.
type FetchError struct {
	Insufficient bool
	TextLength   int
	Err          error
}

func (e *FetchError) Error() string {
	if e.Insufficient {
		return fmt.Sprintf("pipeline: fetched text too short (%d chars)", e.TextLength)
	}
	return fmt.Sprintf("pipeline: fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// SynthesisError reports a failed model call or unusable synthesis output.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("pipeline: synthesis failed: %v", e.Err)
}

func (e *SynthesisError) Unwrap() error { return e.Err }

// FieldViolation names one field that failed validation and why.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries the complete set of field-level violations found
// in the synthesis output, never just the first.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("pipeline: validation failed with %d field violations", len(e.Violations))
}
