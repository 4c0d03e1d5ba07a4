// Package analysis orchestrates the full pipeline: parse, match, generate
// feedback, persist.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/resufit/resufit/internal/domain"
	"github.com/resufit/resufit/internal/metrics"
	"github.com/resufit/resufit/internal/parser"
)

// Service runs CV-to-job analyses.
type Service struct {
	repo     Repository
	matcher  Matcher
	feedback FeedbackGenerator
	logger   *zap.Logger
	now      func() time.Time
}

// New creates an analysis service.
func New(repo Repository, matcher Matcher, feedback FeedbackGenerator, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		matcher:  matcher,
		feedback: feedback,
		logger:   logger,
		now:      time.Now,
	}
}

// Analyze parses raw CV and job texts, scores the pair, and persists the
// resulting analysis under a fresh ID.
func (s *Service) Analyze(ctx context.Context, cvFileName, cvText, jobText string) (domain.Analysis, error) {
	if strings.TrimSpace(cvText) == "" {
		return domain.Analysis{}, fmt.Errorf("%w: cv text is empty", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(jobText) == "" {
		return domain.Analysis{}, fmt.Errorf("%w: job text is empty", domain.ErrInvalidInput)
	}

	resume := parser.ParseResume(cvText)
	job := parser.ParseJob(jobText)

	feedback, err := s.match(ctx, resume, job)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("error").Inc()
		return domain.Analysis{}, err
	}

	a := domain.Analysis{
		ID:           uuid.NewString(),
		CVFileName:   cvFileName,
		JobTitle:     feedback.JobTitle,
		OverallMatch: feedback.OverallMatch,
		Feedback:     feedback,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.Save(ctx, a); err != nil {
		metrics.AnalysesTotal.WithLabelValues("error").Inc()
		return domain.Analysis{}, fmt.Errorf("save analysis: %w", err)
	}

	metrics.AnalysesTotal.WithLabelValues("ok").Inc()
	metrics.MatchScore.Observe(a.OverallMatch)

	s.logger.Info("analysis completed",
		zap.String("id", a.ID),
		zap.String("job_title", a.JobTitle),
		zap.Float64("overall_match", a.OverallMatch),
	)

	return a, nil
}

// Match scores pre-parsed structured inputs without persisting anything.
func (s *Service) Match(ctx context.Context, resume domain.ParsedResume, job domain.ParsedJob) (domain.FeedbackReport, error) {
	if len(resume.Skills) == 0 && strings.TrimSpace(resume.Text) == "" {
		return domain.FeedbackReport{}, fmt.Errorf("%w: resume has no skills or text", domain.ErrInvalidInput)
	}
	if len(job.RequiredSkills) == 0 && strings.TrimSpace(job.Text) == "" {
		return domain.FeedbackReport{}, fmt.Errorf("%w: job has no required skills or text", domain.ErrInvalidInput)
	}
	return s.match(ctx, resume, job)
}

func (s *Service) match(ctx context.Context, resume domain.ParsedResume, job domain.ParsedJob) (domain.FeedbackReport, error) {
	report, err := s.matcher.Evaluate(ctx, resume, job)
	if err != nil {
		return domain.FeedbackReport{}, fmt.Errorf("evaluate match: %w", err)
	}
	return s.feedback.Generate(report), nil
}

// Get retrieves a stored analysis by ID.
func (s *Service) Get(ctx context.Context, id string) (domain.Analysis, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("get analysis %s: %w", id, err)
	}
	return a, nil
}

// List returns all stored analyses, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Analysis, error) {
	analyses, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	return analyses, nil
}

// Delete removes a stored analysis by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete analysis %s: %w", id, err)
	}
	return nil
}
