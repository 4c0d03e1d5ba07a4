package match

import (
	"context"
	"fmt"
	"strings"

	"github.com/resufit/resufit/internal/domain"
)

// Relative contribution of the years requirement and the narrative relevance
// to the experience score.
const (
	yearsWeight     = 0.6
	relevanceWeight = 0.4
)

// ExperienceMatcher compares required years and narrative relevance against
// the candidate's extracted experience.
type ExperienceMatcher struct {
	embed Embedder
}

// NewExperienceMatcher creates an experience matcher.
func NewExperienceMatcher(embed Embedder) *ExperienceMatcher {
	return &ExperienceMatcher{embed: embed}
}

// Match scores the candidate's experience against the job requirement.
// candidateYears nil means unknown: the years component is 0 and the gap
// stays nil (undeterminable, not zero).
func (m *ExperienceMatcher) Match(
	ctx context.Context, candidateYears *int, narrative string, job domain.ParsedJob,
) (domain.ExperienceMatchResult, error) {
	result := domain.ExperienceMatchResult{
		RequiredYears:  job.Experience.Years,
		CandidateYears: candidateYears,
		RequiredLevel:  job.Experience.Level,
	}

	// No stated requirement: vacuous match.
	if job.Experience.Years == nil {
		result.Score = 1.0
		return result, nil
	}
	required := *job.Experience.Years

	var yearsScore float64
	if candidateYears != nil {
		gap := required - *candidateYears
		result.Gap = &gap
		if *candidateYears >= required {
			yearsScore = 1.0
		} else {
			yearsScore = float64(*candidateYears) / float64(required)
		}
	}

	relevance, err := textSimilarity(ctx, m.embed, narrative, strings.Join(job.Responsibilities, " "))
	if err != nil {
		return domain.ExperienceMatchResult{}, fmt.Errorf("experience relevance: %w", err)
	}

	result.Score = yearsWeight*yearsScore + relevanceWeight*relevance
	return result, nil
}
