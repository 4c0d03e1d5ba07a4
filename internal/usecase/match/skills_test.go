package match

import (
	"context"
	"testing"
)

func TestSkillMatch_NoRequirements(t *testing.T) {
	m := NewSkillMatcher(newStubEmbedder(nil))

	res, err := m.Match(context.Background(), []string{"python"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 1.0 {
		t.Errorf("expected score 1.0 with no requirements, got %v", res.Score)
	}
	if res.ExactMatches == nil || res.SemanticMatches == nil || res.MissingSkills == nil {
		t.Error("expected empty non-nil slices")
	}
}

func TestSkillMatch_ExactCaseInsensitive(t *testing.T) {
	m := NewSkillMatcher(newStubEmbedder(nil))

	res, err := m.Match(context.Background(), []string{"PYTHON", "Docker"}, []string{"python", "docker"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.ExactMatches) != 2 {
		t.Fatalf("expected 2 exact matches, got %v", res.ExactMatches)
	}
	// Exact matches keep the job posting's casing.
	if res.ExactMatches[0] != "python" {
		t.Errorf("expected job casing kept, got %q", res.ExactMatches[0])
	}
	if !approxEqual(res.Score, 0.7) {
		t.Errorf("expected score 0.7 for all-exact, got %v", res.Score)
	}
}

func TestSkillMatch_ExactAndMissing(t *testing.T) {
	embed := newStubEmbedder(map[string][]float32{
		"python": {1, 0},
		"django": {0, 1},
		"aws":    {0.7, 0.7}, // best cosine vs candidates ~0.707, below threshold
	})
	m := NewSkillMatcher(embed)

	res, err := m.Match(context.Background(), []string{"Python", "Django"}, []string{"python", "aws"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.ExactMatches) != 1 || res.ExactMatches[0] != "python" {
		t.Fatalf("expected python exact, got %v", res.ExactMatches)
	}
	if len(res.MissingSkills) != 1 || res.MissingSkills[0] != "aws" {
		t.Fatalf("expected aws missing, got %v", res.MissingSkills)
	}
	if len(res.SemanticMatches) != 0 {
		t.Fatalf("expected no semantic matches, got %v", res.SemanticMatches)
	}
	// (0.7*1 + 0.3*0) / 2
	if !approxEqual(res.Score, 0.35) {
		t.Errorf("expected score 0.35, got %v", res.Score)
	}
}

func TestSkillMatch_Semantic(t *testing.T) {
	embed := newStubEmbedder(map[string][]float32{
		"golang": {1, 0},
		"go":     {0.95, 0.05},
	})
	m := NewSkillMatcher(embed)

	res, err := m.Match(context.Background(), []string{"Golang"}, []string{"Go"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.SemanticMatches) != 1 {
		t.Fatalf("expected 1 semantic match, got %v", res.SemanticMatches)
	}
	sm := res.SemanticMatches[0]
	if sm.JobSkill != "Go" || sm.CandidateSkill != "Golang" {
		t.Errorf("unexpected match pair: %+v", sm)
	}
	if sm.Similarity <= SemanticThreshold {
		t.Errorf("expected similarity above threshold, got %v", sm.Similarity)
	}
	if len(res.MissingSkills) != 0 {
		t.Errorf("expected no missing skills, got %v", res.MissingSkills)
	}
	if res.Score <= 0.29 || res.Score > 0.3 {
		t.Errorf("expected score just under 0.3, got %v", res.Score)
	}
}

func TestSkillMatch_Partition(t *testing.T) {
	embed := newStubEmbedder(map[string][]float32{
		"react":      {1, 0},
		"vue":        {0.9, 0.1},
		"kubernetes": {0, 1},
	})
	m := NewSkillMatcher(embed)

	required := []string{"react", "vue", "kubernetes"}
	res, err := m.Match(context.Background(), []string{"React"}, required)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every required skill lands in exactly one bucket.
	total := len(res.ExactMatches) + len(res.SemanticMatches) + len(res.MissingSkills)
	if total != len(required) {
		t.Errorf("partition broken: %d exact + %d semantic + %d missing != %d required",
			len(res.ExactMatches), len(res.SemanticMatches), len(res.MissingSkills), len(required))
	}
}

func TestSkillMatch_NoCandidateSkills(t *testing.T) {
	m := NewSkillMatcher(newStubEmbedder(nil))

	res, err := m.Match(context.Background(), nil, []string{"python", "sql"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.MissingSkills) != 2 {
		t.Fatalf("expected all required skills missing, got %v", res.MissingSkills)
	}
	if res.Score != 0 {
		t.Errorf("expected score 0, got %v", res.Score)
	}
}

func TestSkillMatch_MoreExactThanRequired(t *testing.T) {
	// Candidate skills beyond the requirements never push the score past 1.
	m := NewSkillMatcher(newStubEmbedder(nil))

	res, err := m.Match(context.Background(),
		[]string{"python", "sql", "docker", "git"}, []string{"python"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score > 1.0 {
		t.Errorf("score must be capped at 1.0, got %v", res.Score)
	}
}
