package chi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/resufit/resufit/internal/domain"
	analysisuc "github.com/resufit/resufit/internal/usecase/analysis"
	feedbackuc "github.com/resufit/resufit/internal/usecase/feedback"
	healthuc "github.com/resufit/resufit/internal/usecase/health"
)

type fakeRepo struct {
	analyses map[string]domain.Analysis
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{analyses: make(map[string]domain.Analysis)}
}

func (f *fakeRepo) Save(_ context.Context, a domain.Analysis) error {
	f.analyses[a.ID] = a
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (domain.Analysis, error) {
	a, ok := f.analyses[id]
	if !ok {
		return domain.Analysis{}, domain.ErrAnalysisNotFound
	}
	return a, nil
}

func (f *fakeRepo) List(_ context.Context) ([]domain.Analysis, error) {
	out := make([]domain.Analysis, 0, len(f.analyses))
	for _, a := range f.analyses {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.analyses[id]; !ok {
		return domain.ErrAnalysisNotFound
	}
	delete(f.analyses, id)
	return nil
}

type fakeMatcher struct {
	report domain.MatchReport
	err    error
}

func (f *fakeMatcher) Evaluate(_ context.Context, _ domain.ParsedResume, _ domain.ParsedJob) (domain.MatchReport, error) {
	if f.err != nil {
		return domain.MatchReport{}, f.err
	}
	return f.report, nil
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(_ context.Context) error { return f.err }

type testEnv struct {
	router  *chi.Mux
	repo    *fakeRepo
	matcher *fakeMatcher
	pinger  *fakePinger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		repo:    newFakeRepo(),
		matcher: &fakeMatcher{report: domain.MatchReport{JobTitle: "Engineer", OverallMatch: 85}},
		pinger:  &fakePinger{},
	}

	analyses := analysisuc.New(env.repo, env.matcher, feedbackuc.NewGenerator(), zap.NewNop())
	health := healthuc.New(env.pinger, nil)
	server := NewServer(analyses, health, zap.NewNop())

	env.router = chi.NewRouter()
	server.Routes(env.router)
	return env
}

func (e *testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}
