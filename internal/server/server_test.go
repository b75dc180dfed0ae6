package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taylored-ai/brand-dna-service/internal/model"
	"github.com/taylored-ai/brand-dna-service/internal/pipeline"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Run(ctx context.Context, rawURL string) (*model.Extraction, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Extraction), args.Error(1)
}

func postBrandDNA(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/brand-dna", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorEnvelope {
	t.Helper()
	var env model.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHealthEndpoint(t *testing.T) {
	srv := New(new(mockRunner))
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestExtractSuccess(t *testing.T) {
	runner := new(mockRunner)
	runner.On("Run", mock.Anything, "https://sheargenius.example").Return(&model.Extraction{
		Success:      true,
		SourceURL:    "https://sheargenius.example",
		ExtractionID: "abc-123",
		Profile:      model.BrandProfile{BusinessName: "Shear Genius"},
		DataSources:  []string{model.SourceSynthesis},
	}, nil)

	srv := New(runner)
	rec := postBrandDNA(t, srv, `{"url": "https://sheargenius.example"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var out model.Extraction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Equal(t, "Shear Genius", out.Profile.BusinessName)
	runner.AssertExpectations(t)
}

func TestExtractRequestValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode model.ErrorCode
	}{
		{"malformed json", `{not json`, model.CodeInvalidURL},
		{"missing url", `{}`, model.CodeInvalidURL},
		{"url not a string", `{"url": 42}`, model.CodeInvalidURL},
		{"empty url", `{"url": "  "}`, model.CodeInvalidURL},
		{"missing scheme", `{"url": "sheargenius.example"}`, model.CodeInvalidURLFormat},
		{"ftp scheme", `{"url": "ftp://sheargenius.example"}`, model.CodeInvalidURLFormat},
	}

	runner := new(mockRunner)
	srv := New(runner)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postBrandDNA(t, srv, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			env := decodeError(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantCode, env.ErrorCode)
		})
	}
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestExtractErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   model.ErrorCode
	}{
		{
			"missing configuration",
			&pipeline.ConfigurationError{Missing: []string{"anthropic key"}},
			http.StatusInternalServerError,
			model.CodeConfigurationError,
		},
		{
			"insufficient content",
			&pipeline.FetchError{Insufficient: true, TextLength: 12},
			http.StatusUnprocessableEntity,
			model.CodeInsufficientContent,
		},
		{
			"scrape failure",
			&pipeline.FetchError{Err: eris.New("connection refused")},
			http.StatusInternalServerError,
			model.CodeScrapeFailed,
		},
		{
			"synthesis failure",
			&pipeline.SynthesisError{Err: eris.New("overloaded")},
			http.StatusInternalServerError,
			model.CodeExtractionFailed,
		},
		{
			"unexpected error",
			eris.New("something odd"),
			http.StatusInternalServerError,
			model.CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := new(mockRunner)
			runner.On("Run", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := postBrandDNA(t, New(runner), `{"url": "https://example.com"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)

			env := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, env.ErrorCode)
			assert.False(t, env.Success)
			assert.Nil(t, env.Details)
		})
	}
}

func TestExtractValidationFailureCarriesViolations(t *testing.T) {
	runner := new(mockRunner)
	runner.On("Run", mock.Anything, mock.Anything).Return(nil, &pipeline.ValidationError{
		Violations: []pipeline.FieldViolation{
			{Field: "industry", Reason: "must be one of the allowed values"},
			{Field: "links.bookingUrl", Reason: "must be an absolute http(s) URL"},
		},
	})

	rec := postBrandDNA(t, New(runner), `{"url": "https://example.com"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	env := decodeError(t, rec)
	assert.Equal(t, model.CodeManualOverrideRequired, env.ErrorCode)

	details, ok := env.Details.(map[string]any)
	require.True(t, ok)
	violations, ok := details["violations"].([]any)
	require.True(t, ok)
	assert.Len(t, violations, 2)
}

func TestCORSPreflight(t *testing.T) {
	srv := New(new(mockRunner))
	req := httptest.NewRequest(http.MethodOptions, "/brand-dna", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
