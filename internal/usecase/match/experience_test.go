package match

import (
	"context"
	"testing"

	"github.com/resufit/resufit/internal/domain"
)

func intPtr(n int) *int { return &n }

func TestExperienceMatch_NoRequirement(t *testing.T) {
	m := NewExperienceMatcher(newStubEmbedder(nil))

	job := domain.ParsedJob{}
	res, err := m.Match(context.Background(), intPtr(4), "built services", job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 1.0 {
		t.Errorf("expected score 1.0 with no requirement, got %v", res.Score)
	}
	if res.Gap != nil {
		t.Errorf("expected nil gap, got %v", *res.Gap)
	}
}

func TestExperienceMatch_Exceeds(t *testing.T) {
	m := NewExperienceMatcher(newStubEmbedder(nil))

	job := domain.ParsedJob{
		Experience:       domain.ExperienceRequirement{Years: intPtr(3), Level: "senior"},
		Responsibilities: []string{"build APIs"},
	}
	res, err := m.Match(context.Background(), intPtr(5), "built APIs for years", job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Years met, narrative embeds identically to responsibilities.
	if !approxEqual(res.Score, 1.0) {
		t.Errorf("expected score 1.0, got %v", res.Score)
	}
	if res.Gap == nil || *res.Gap != -2 {
		t.Fatalf("expected gap -2, got %v", res.Gap)
	}
	if res.RequiredLevel != "senior" {
		t.Errorf("expected level carried through, got %q", res.RequiredLevel)
	}
}

func TestExperienceMatch_Shortfall(t *testing.T) {
	embed := newStubEmbedder(map[string][]float32{
		"wrote reports":  {1, 0},
		"design systems": {0, 1},
	})
	m := NewExperienceMatcher(embed)

	job := domain.ParsedJob{
		Experience:       domain.ExperienceRequirement{Years: intPtr(6)},
		Responsibilities: []string{"design systems"},
	}
	res, err := m.Match(context.Background(), intPtr(3), "wrote reports", job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 0.6 * (3/6) + 0.4 * 0
	if !approxEqual(res.Score, 0.3) {
		t.Errorf("expected score 0.3, got %v", res.Score)
	}
	if res.Gap == nil || *res.Gap != 3 {
		t.Fatalf("expected gap 3, got %v", res.Gap)
	}
}

func TestExperienceMatch_UnknownCandidateYears(t *testing.T) {
	m := NewExperienceMatcher(newStubEmbedder(nil))

	job := domain.ParsedJob{
		Experience:       domain.ExperienceRequirement{Years: intPtr(5)},
		Responsibilities: []string{"ship features"},
	}
	res, err := m.Match(context.Background(), nil, "shipped features", job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Gap != nil {
		t.Errorf("gap must stay nil when candidate years are unknown, got %v", *res.Gap)
	}
	// Years component contributes 0, relevance is 1.0 with identical vectors.
	if !approxEqual(res.Score, 0.4) {
		t.Errorf("expected score 0.4, got %v", res.Score)
	}
}
