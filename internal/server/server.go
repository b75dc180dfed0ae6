// Package server exposes the extraction pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/taylored-ai/brand-dna-service/internal/model"
	"github.com/taylored-ai/brand-dna-service/internal/pipeline"
)

// Runner runs one extraction. Satisfied by *pipeline.Pipeline.
type Runner interface {
	Run(ctx context.Context, rawURL string) (*model.Extraction, error)
}

// Server wires the extraction pipeline into an HTTP handler.
type Server struct {
	runner Runner
	router chi.Router
}

// New builds a Server around the given runner.
func New(runner Runner) *Server {
	s := &Server{runner: runner}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(3 * time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/brand-dna", s.handleExtract)

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// extractRequest accepts the url field as any type so a missing field and a
// non-string field can be told apart from a malformed one.
type extractRequest struct {
	URL any `json:"url"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeInvalidURL, "request body must be a JSON object with a url field", nil)
		return
	}

	rawURL, ok := req.URL.(string)
	if !ok || strings.TrimSpace(rawURL) == "" {
		writeError(w, http.StatusBadRequest, model.CodeInvalidURL, "url is required and must be a string", nil)
		return
	}
	rawURL = strings.TrimSpace(rawURL)
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		writeError(w, http.StatusBadRequest, model.CodeInvalidURLFormat, "url must start with http:// or https://", nil)
		return
	}

	result, err := s.runner.Run(r.Context(), rawURL)
	if err != nil {
		s.writePipelineError(w, rawURL, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// writePipelineError maps the pipeline error taxonomy onto status codes and
// error codes. Unknown errors never leak internals to the caller.
func (s *Server) writePipelineError(w http.ResponseWriter, rawURL string, err error) {
	log := zap.L().With(zap.String("url", rawURL))

	var confErr *pipeline.ConfigurationError
	var fetchErr *pipeline.FetchError
	var valErr *pipeline.ValidationError
	var synthErr *pipeline.SynthesisError

	switch {
	case errors.As(err, &confErr):
		log.Error("extraction rejected: missing configuration", zap.Strings("missing", confErr.Missing))
		writeError(w, http.StatusInternalServerError, model.CodeConfigurationError, "service is missing required configuration", nil)
	case errors.As(err, &fetchErr) && fetchErr.Insufficient:
		log.Warn("extraction rejected: insufficient content", zap.Int("text_length", fetchErr.TextLength))
		writeError(w, http.StatusUnprocessableEntity, model.CodeInsufficientContent, "the page did not contain enough text to extract a brand profile", nil)
	case errors.As(err, &fetchErr):
		log.Error("extraction failed: scrape error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, model.CodeScrapeFailed, "failed to fetch the page", nil)
	case errors.As(err, &valErr):
		log.Warn("extraction rejected: profile failed validation", zap.Int("violations", len(valErr.Violations)))
		writeError(w, http.StatusUnprocessableEntity, model.CodeManualOverrideRequired, "the extracted profile failed validation and requires manual review", map[string]any{
			"violations": valErr.Violations,
		})
	case errors.As(err, &synthErr):
		log.Error("extraction failed: synthesis error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, model.CodeExtractionFailed, "failed to synthesize a brand profile", nil)
	default:
		log.Error("extraction failed: unexpected error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, model.CodeInternalError, "an unexpected error occurred", nil)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, code model.ErrorCode, message string, details any) {
	writeJSON(w, status, model.ErrorEnvelope{
		Success:   false,
		ErrorCode: code,
		Message:   message,
		Details:   details,
	})
}
