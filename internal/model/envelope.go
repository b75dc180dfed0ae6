package model

import "time"

// ErrorCode is the fixed set of machine-readable failure codes returned to
// callers.
type ErrorCode string

const (
	CodeInvalidURL             ErrorCode = "INVALID_URL"
	CodeInvalidURLFormat       ErrorCode = "INVALID_URL_FORMAT"
	CodeConfigurationError     ErrorCode = "CONFIGURATION_ERROR"
	CodeInsufficientContent    ErrorCode = "INSUFFICIENT_CONTENT"
	CodeScrapeFailed           ErrorCode = "SCRAPE_FAILED"
	CodeManualOverrideRequired ErrorCode = "MANUAL_OVERRIDE_REQUIRED"
	CodeExtractionFailed       ErrorCode = "EXTRACTION_FAILED"
	CodeInternalError          ErrorCode = "INTERNAL_ERROR"
)

// Extraction is the success envelope returned for a completed extraction.
type Extraction struct {
	Success      bool         `json:"success"`
	Profile      BrandProfile `json:"profile"`
	SourceURL    string       `json:"sourceUrl"`
	ExtractionID string       `json:"extractionId"`
	ExtractedAt  time.Time    `json:"extractedAt"`
	DataSources  []string     `json:"dataSources"`
}

// ErrorEnvelope is the failure envelope. Details carries the structured
// violation list for MANUAL_OVERRIDE_REQUIRED and is omitted otherwise.
type ErrorEnvelope struct {
	Success   bool      `json:"success"`
	ErrorCode ErrorCode `json:"errorCode"`
	Message   string    `json:"message"`
	Details   any       `json:"details,omitempty"`
}
