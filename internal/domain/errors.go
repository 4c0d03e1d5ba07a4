package domain

import "errors"

var (
	// ErrInvalidInput signals malformed input rejected at the boundary.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAnalysisNotFound signals a missing stored analysis.
	ErrAnalysisNotFound = errors.New("analysis not found")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrScoringUnavailable signals that scoring could not be completed for the
	// request. A partially scored report is never returned in its place.
	ErrScoringUnavailable = errors.New("scoring unavailable")
)
