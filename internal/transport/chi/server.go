// Package chi exposes the HTTP API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/resufit/resufit/internal/domain"
	analysisuc "github.com/resufit/resufit/internal/usecase/analysis"
	healthuc "github.com/resufit/resufit/internal/usecase/health"
	reportuc "github.com/resufit/resufit/internal/usecase/report"
)

// Error codes returned in the "code" field of error responses.
const (
	codeBadRequest         = "bad_request"
	codeValidationFailed   = "validation_failed"
	codeAnalysisNotFound   = "analysis_not_found"
	codeEmbeddingProvider  = "embedding_provider_error"
	codeScoringUnavailable = "scoring_unavailable"
	codeInternalError      = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server wires the usecases into HTTP handlers.
type Server struct {
	analyses      *analysisuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(analyses *analysisuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		analyses: analyses,
		health:   health,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrAnalysisNotFound, http.StatusNotFound, codeAnalysisNotFound),
		// Provider failures map to 502 even when wrapped by ErrScoringUnavailable.
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, codeEmbeddingProvider),
		sentinelHandler(domain.ErrScoringUnavailable, http.StatusServiceUnavailable, codeScoringUnavailable),
	}
	return s
}

// Routes mounts all API routes on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyses", s.CreateAnalysis)
		r.Get("/analyses", s.ListAnalyses)
		r.Get("/analyses/{id}", s.GetAnalysis)
		r.Delete("/analyses/{id}", s.DeleteAnalysis)
		r.Get("/analyses/{id}/report", s.GetAnalysisReport)
		r.Post("/match", s.Match)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// CreateAnalysisRequest is the body of POST /api/v1/analyses.
type CreateAnalysisRequest struct {
	CVFileName string `json:"cv_file_name"`
	CVText     string `json:"cv_text"`
	JobText    string `json:"job_text"`
}

// CreateAnalysis handles POST /api/v1/analyses.
func (s *Server) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req CreateAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	a, err := s.analyses.Analyze(r.Context(), req.CVFileName, req.CVText, req.JobText)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/analyses/"+a.ID)
	writeJSON(w, http.StatusCreated, a)
}

// ListAnalyses handles GET /api/v1/analyses.
func (s *Server) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	analyses, err := s.analyses.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": analyses, "total": len(analyses)})
}

// GetAnalysis handles GET /api/v1/analyses/{id}.
func (s *Server) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	a, err := s.analyses.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// DeleteAnalysis handles DELETE /api/v1/analyses/{id}.
func (s *Server) DeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if err := s.analyses.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetAnalysisReport handles GET /api/v1/analyses/{id}/report?format=.
func (s *Server) GetAnalysisReport(w http.ResponseWriter, r *http.Request) {
	format, err := reportuc.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	a, err := s.analyses.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	rendered, err := reportuc.Render(a.Feedback, format)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", reportuc.ContentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(rendered))
}

// MatchRequest is the body of POST /api/v1/match: pre-parsed structured
// inputs, scored without persistence.
type MatchRequest struct {
	Resume domain.ParsedResume `json:"resume"`
	Job    domain.ParsedJob    `json:"job"`
}

// Match handles POST /api/v1/match.
func (s *Server) Match(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	feedback, err := s.analyses.Match(r.Context(), req.Resume, req.Job)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, feedback)
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidInput,
		domain.ErrAnalysisNotFound,
		domain.ErrEmbeddingProviderError,
		domain.ErrScoringUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
