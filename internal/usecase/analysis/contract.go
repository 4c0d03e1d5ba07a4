package analysis

import (
	"context"

	"github.com/resufit/resufit/internal/domain"
)

// Repository persists completed analyses.
type Repository interface {
	Save(ctx context.Context, a domain.Analysis) error
	Get(ctx context.Context, id string) (domain.Analysis, error)
	List(ctx context.Context) ([]domain.Analysis, error)
	Delete(ctx context.Context, id string) error
}

// Matcher scores a parsed résumé against a parsed job posting.
type Matcher interface {
	Evaluate(ctx context.Context, resume domain.ParsedResume, job domain.ParsedJob) (domain.MatchReport, error)
}

// FeedbackGenerator turns a match report into candidate-facing feedback.
type FeedbackGenerator interface {
	Generate(report domain.MatchReport) domain.FeedbackReport
}
