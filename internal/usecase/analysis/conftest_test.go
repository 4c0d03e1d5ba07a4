package analysis

import (
	"context"

	"github.com/resufit/resufit/internal/domain"
)

type mockRepository struct {
	saveFn   func(ctx context.Context, a domain.Analysis) error
	getFn    func(ctx context.Context, id string) (domain.Analysis, error)
	listFn   func(ctx context.Context) ([]domain.Analysis, error)
	deleteFn func(ctx context.Context, id string) error

	saved []domain.Analysis
}

func (m *mockRepository) Save(ctx context.Context, a domain.Analysis) error {
	m.saved = append(m.saved, a)
	if m.saveFn != nil {
		return m.saveFn(ctx, a)
	}
	return nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (domain.Analysis, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domain.Analysis{}, domain.ErrAnalysisNotFound
}

func (m *mockRepository) List(ctx context.Context) ([]domain.Analysis, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockMatcher struct {
	report domain.MatchReport
	err    error
	calls  int
}

func (m *mockMatcher) Evaluate(_ context.Context, _ domain.ParsedResume, _ domain.ParsedJob) (domain.MatchReport, error) {
	m.calls++
	if m.err != nil {
		return domain.MatchReport{}, m.err
	}
	return m.report, nil
}

type mockFeedback struct {
	report domain.FeedbackReport
}

func (m *mockFeedback) Generate(report domain.MatchReport) domain.FeedbackReport {
	if m.report.JobTitle != "" {
		return m.report
	}
	return domain.FeedbackReport{
		JobTitle:     report.JobTitle,
		OverallMatch: report.OverallMatch,
	}
}
