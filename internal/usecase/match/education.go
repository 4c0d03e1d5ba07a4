package match

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/resufit/resufit/internal/domain"
)

// Relative contribution of text similarity and degree-level comparison to the
// education score.
const (
	educationSimilarityWeight = 0.5
	degreeMatchWeight         = 0.5
)

// missingEducationFloor is the fixed score when requirements exist but the
// candidate lists no education at all. Not zero: missing data is plausible,
// not disqualifying.
const missingEducationFloor = 0.2

// degreeKeywords maps degree keywords to ordinal levels. Scanned in order;
// the highest ordinal wins, first keyword of that ordinal is kept for
// display. Matching is on token boundaries so "ba" never fires inside an
// unrelated word and "postgraduate" does not count as "graduate".
var degreeKeywords = []struct {
	keyword string
	ordinal int
	re      *regexp.Regexp
}{
	{keyword: "bachelor", ordinal: 1},
	{keyword: "bs", ordinal: 1},
	{keyword: "ba", ordinal: 1},
	{keyword: "undergraduate", ordinal: 1},
	{keyword: "master", ordinal: 2},
	{keyword: "ms", ordinal: 2},
	{keyword: "ma", ordinal: 2},
	{keyword: "mba", ordinal: 2},
	{keyword: "graduate", ordinal: 2},
	{keyword: "phd", ordinal: 3},
	{keyword: "ph.d", ordinal: 3},
	{keyword: "doctorate", ordinal: 3},
	{keyword: "doctoral", ordinal: 3},
	{keyword: "postgraduate", ordinal: 3},
}

func init() {
	for i := range degreeKeywords {
		degreeKeywords[i].re = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(degreeKeywords[i].keyword) + `\b`)
	}
}

// EducationMatcher compares candidate education statements against job
// education requirements.
type EducationMatcher struct {
	embed Embedder
}

// NewEducationMatcher creates an education matcher.
func NewEducationMatcher(embed Embedder) *EducationMatcher {
	return &EducationMatcher{embed: embed}
}

// Match scores the candidate's education against the job requirements.
func (m *EducationMatcher) Match(
	ctx context.Context, candidateStatements, jobRequirements []string,
) (domain.EducationMatchResult, error) {
	// No requirements: vacuous match, both levels unknown.
	if len(jobRequirements) == 0 {
		return domain.EducationMatchResult{Score: 1.0, MeetsRequirement: true}, nil
	}

	result := domain.EducationMatchResult{}

	jobText := strings.Join(jobRequirements, " ")
	jobOrdinal, jobKeyword := scanDegree(jobText)
	if level, ok := domain.DegreeFromOrdinal(jobOrdinal); ok {
		result.RequiredLevel = &level
		result.RequiredKeyword = jobKeyword
	}

	// Requirements exist but the résumé lists no education: fixed floor.
	if len(candidateStatements) == 0 {
		result.Score = missingEducationFloor
		return result, nil
	}

	candidateText := strings.Join(candidateStatements, " ")
	candidateOrdinal, candidateKeyword := scanDegree(candidateText)
	if level, ok := domain.DegreeFromOrdinal(candidateOrdinal); ok {
		result.CandidateLevel = &level
		result.CandidateKeyword = candidateKeyword
	}

	similarity, err := textSimilarity(ctx, m.embed, candidateText, jobText)
	if err != nil {
		return domain.EducationMatchResult{}, fmt.Errorf("education similarity: %w", err)
	}

	// No degree keyword in the requirement text means no signal to
	// penalize on.
	degreeMatch := 1.0
	if jobOrdinal > 0 && candidateOrdinal < jobOrdinal {
		degreeMatch = float64(candidateOrdinal) / float64(jobOrdinal)
	}

	result.MeetsRequirement = candidateOrdinal >= jobOrdinal
	result.Score = educationSimilarityWeight*similarity + degreeMatchWeight*degreeMatch
	return result, nil
}

// scanDegree returns the highest degree ordinal found in text and the keyword
// that produced it. Ordinal 0 means no degree keyword was found.
func scanDegree(text string) (int, string) {
	best, keyword := 0, ""
	for _, dk := range degreeKeywords {
		if dk.ordinal > best && dk.re.MatchString(text) {
			best, keyword = dk.ordinal, dk.keyword
		}
	}
	return best, keyword
}
