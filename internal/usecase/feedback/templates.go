package feedback

import (
	"strconv"

	"github.com/resufit/resufit/internal/domain"
)

// Category thresholds on the overall percentage.
const (
	highThreshold   = 80.0
	mediumThreshold = 60.0
)

// Thresholds for the recommendation rules.
const (
	generalAdviceBelow   = 70.0
	achievementsLowBound = 50.0
	achievementsUpBound  = 80.0
)

// maxListedMissingSkills caps how many missing skills a recommendation names.
const maxListedMissingSkills = 3

var summaryTemplates = map[domain.MatchCategory]string{
	domain.MatchHigh: "Your CV shows a strong match for this position! " +
		"You have %s%% compatibility with the job requirements.",
	domain.MatchMedium: "Your CV shows a moderate match for this position with %s%% compatibility. " +
		"With some targeted improvements, you could significantly increase your chances.",
	domain.MatchLow: "Your CV currently has %s%% compatibility with this position. " +
		"Consider the recommendations below to improve your match.",
}

// thresholdText is one row of a score-keyed template table: the first row
// whose min the score reaches wins. Tables keep the thresholds auditable in
// one place instead of spreading them over conditionals.
type thresholdText struct {
	min  float64
	text string
}

var skillsNarratives = []thresholdText{
	{min: highThreshold, text: "Your CV demonstrates strong alignment with the required skills for this position. " +
		"You match %d out of %d required skills (%s%%)."},
	{min: mediumThreshold, text: "Your CV shows good alignment with many of the required skills. " +
		"You match %d out of %d required skills (%s%%)."},
	{min: 0, text: "Your CV currently matches %d out of %d required skills (%s%%). " +
		"Adding the missing skills to your CV would significantly improve your match."},
}

var relevanceNarratives = []thresholdText{
	{min: highThreshold, text: "Your experience appears highly relevant to the job responsibilities."},
	{min: mediumThreshold, text: "Your experience appears moderately relevant to the job responsibilities."},
	{min: 0, text: "Your experience may not be closely aligned with the job responsibilities."},
}

// pickText selects the first row whose min the score reaches. Rows are
// ordered by descending min with a final min of 0.
func pickText(score float64, table []thresholdText) string {
	for _, row := range table {
		if score >= row.min {
			return row.text
		}
	}
	return table[len(table)-1].text
}

// matchCategory buckets the overall percentage with the fixed 80/60
// thresholds.
func matchCategory(overall float64) domain.MatchCategory {
	switch {
	case overall >= highThreshold:
		return domain.MatchHigh
	case overall >= mediumThreshold:
		return domain.MatchMedium
	default:
		return domain.MatchLow
	}
}

// formatPercent renders a percentage without trailing zeros (75.5, not 75.50).
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
