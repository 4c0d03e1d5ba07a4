package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/resufit/resufit/internal/domain"
)

// SemanticThreshold is the minimum similarity for a candidate skill to count
// as a semantic match for a required skill.
const SemanticThreshold = 0.75

// Relative contribution of exact and semantic matches to the skill score.
// Exact matches count as full units so they always dominate ranking.
const (
	exactMatchWeight    = 0.7
	semanticMatchWeight = 0.3
)

// SkillMatcher compares a candidate skill set against a job's required skills.
type SkillMatcher struct {
	embed Embedder
}

// NewSkillMatcher creates a skill matcher.
func NewSkillMatcher(embed Embedder) *SkillMatcher {
	return &SkillMatcher{embed: embed}
}

// Match partitions requiredSkills into exact matches, semantic matches, and
// missing skills, and scores the partition. Every required skill lands in
// exactly one bucket.
func (m *SkillMatcher) Match(
	ctx context.Context, candidateSkills, requiredSkills []string,
) (domain.SkillMatchResult, error) {
	result := domain.SkillMatchResult{
		ExactMatches:    []string{},
		SemanticMatches: []domain.SemanticMatch{},
		MissingSkills:   []string{},
	}

	// No requirements: vacuous full match.
	if len(requiredSkills) == 0 {
		result.Score = 1.0
		return result, nil
	}

	candidateSet := make(map[string]struct{}, len(candidateSkills))
	for _, s := range candidateSkills {
		candidateSet[strings.ToLower(s)] = struct{}{}
	}

	var remaining []string
	for _, skill := range requiredSkills {
		if _, ok := candidateSet[strings.ToLower(skill)]; ok {
			result.ExactMatches = append(result.ExactMatches, skill)
		} else {
			remaining = append(remaining, skill)
		}
	}

	var semanticSum float64
	if len(remaining) > 0 && len(candidateSkills) > 0 {
		matches, missing, sum, err := m.matchSemantic(ctx, candidateSkills, remaining)
		if err != nil {
			return domain.SkillMatchResult{}, err
		}
		result.SemanticMatches = matches
		result.MissingSkills = missing
		semanticSum = sum
	} else {
		result.MissingSkills = append(result.MissingSkills, remaining...)
	}

	total := float64(len(requiredSkills))
	score := (exactMatchWeight*float64(len(result.ExactMatches)) + semanticMatchWeight*semanticSum) / total
	if score > 1.0 {
		score = 1.0
	}
	result.Score = score

	return result, nil
}

// matchSemantic finds, for each remaining required skill, the candidate skill
// with the highest embedding similarity. Skills whose best similarity does
// not exceed the threshold are missing. Returns the raw (unrounded)
// similarity sum used by the score.
func (m *SkillMatcher) matchSemantic(
	ctx context.Context, candidateSkills, remaining []string,
) ([]domain.SemanticMatch, []string, float64, error) {
	candidateVecs, err := embedAll(ctx, m.embed, lowered(candidateSkills))
	if err != nil {
		return nil, nil, 0, fmt.Errorf("embed candidate skills: %w", err)
	}
	remainingVecs, err := embedAll(ctx, m.embed, lowered(remaining))
	if err != nil {
		return nil, nil, 0, fmt.Errorf("embed required skills: %w", err)
	}

	matches := []domain.SemanticMatch{}
	missing := []string{}
	var sum float64

	for i, jobSkill := range remaining {
		best, bestIdx := bestSimilarity(remainingVecs[i], candidateVecs)
		if bestIdx >= 0 && best > SemanticThreshold {
			matches = append(matches, domain.SemanticMatch{
				JobSkill:       jobSkill,
				CandidateSkill: candidateSkills[bestIdx],
				Similarity:     round2(best),
			})
			sum += best
		} else {
			missing = append(missing, jobSkill)
		}
	}

	return matches, missing, sum, nil
}

// bestSimilarity is an explicit argmax over the candidate vectors, returning
// the winning clamped similarity and its index (-1 when there are none).
func bestSimilarity(target []float32, candidates [][]float32) (float64, int) {
	best, bestIdx := 0.0, -1
	for i, vec := range candidates {
		sim := domain.ClampSimilarity(domain.CosineSimilarity(target, vec))
		if bestIdx < 0 || sim > best {
			best, bestIdx = sim, i
		}
	}
	return best, bestIdx
}

func lowered(skills []string) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = strings.ToLower(s)
	}
	return out
}
