package match

import (
	"context"
	"testing"

	"github.com/resufit/resufit/internal/domain"
)

func TestEducationMatch_NoRequirements(t *testing.T) {
	m := NewEducationMatcher(newStubEmbedder(nil))

	res, err := m.Match(context.Background(), []string{"BSc in Physics"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 1.0 || !res.MeetsRequirement {
		t.Errorf("expected vacuous match, got %+v", res)
	}
	if res.CandidateLevel != nil || res.RequiredLevel != nil {
		t.Errorf("expected levels unset, got %+v", res)
	}
}

func TestEducationMatch_MissingEducationFloor(t *testing.T) {
	embed := newStubEmbedder(nil)
	m := NewEducationMatcher(embed)

	res, err := m.Match(context.Background(), nil, []string{"Master's degree required"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != missingEducationFloor {
		t.Errorf("expected floor score %v, got %v", missingEducationFloor, res.Score)
	}
	if res.MeetsRequirement {
		t.Error("missing education must not meet the requirement")
	}
	if res.RequiredLevel == nil || *res.RequiredLevel != domain.DegreeMaster {
		t.Errorf("expected required level master, got %v", res.RequiredLevel)
	}
	if embed.calls != 0 {
		t.Errorf("floor path must not embed, got %d calls", embed.calls)
	}
}

func TestEducationMatch_MeetsRequirement(t *testing.T) {
	m := NewEducationMatcher(newStubEmbedder(nil))

	res, err := m.Match(context.Background(),
		[]string{"PhD in Computer Science"}, []string{"Master's degree in a technical field"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.MeetsRequirement {
		t.Error("phd must satisfy a master requirement")
	}
	// Identical embeddings and no degree shortfall.
	if !approxEqual(res.Score, 1.0) {
		t.Errorf("expected score 1.0, got %v", res.Score)
	}
	if res.CandidateLevel == nil || *res.CandidateLevel != domain.DegreePhD {
		t.Errorf("expected candidate level phd, got %v", res.CandidateLevel)
	}
}

func TestEducationMatch_DegreeShortfall(t *testing.T) {
	embed := newStubEmbedder(map[string][]float32{
		"Bachelor of Arts": {1, 0},
		"Master's degree":  {0, 1},
	})
	m := NewEducationMatcher(embed)

	res, err := m.Match(context.Background(),
		[]string{"Bachelor of Arts"}, []string{"Master's degree"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.MeetsRequirement {
		t.Error("bachelor must not satisfy a master requirement")
	}
	// 0.5 * similarity(0) + 0.5 * (1/2)
	if !approxEqual(res.Score, 0.25) {
		t.Errorf("expected score 0.25, got %v", res.Score)
	}
}

func TestScanDegree(t *testing.T) {
	cases := []struct {
		text    string
		ordinal int
		keyword string
	}{
		{"Bachelor of Science in CS", 1, "bachelor"},
		{"BA in History", 1, "ba"},
		{"MBA from a business school", 2, "mba"},
		{"Master's degree preferred", 2, "master"},
		{"PhD in Mathematics", 3, "phd"},
		{"Ph.D. in Mathematics", 3, "ph.d"},
		{"Postgraduate studies in literature", 3, "postgraduate"},
		{"Doctorate in Philosophy", 3, "doctorate"},
		// Token boundaries: "ba" must not fire inside "rumba".
		{"rumba dancing diploma", 0, ""},
		{"no education mentioned", 0, ""},
	}
	for _, tc := range cases {
		ord, kw := scanDegree(tc.text)
		if ord != tc.ordinal || kw != tc.keyword {
			t.Errorf("scanDegree(%q) = (%d, %q), want (%d, %q)",
				tc.text, ord, kw, tc.ordinal, tc.keyword)
		}
	}
}
