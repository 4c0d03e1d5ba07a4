// Package report renders a FeedbackReport into one of three external
// representations. Renderers are pure functions of the report: no score is
// recomputed here.
package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/resufit/resufit/internal/domain"
)

// Format selects the report representation.
type Format string

const (
	// FormatStructured is a lossless JSON serialization of the report.
	FormatStructured Format = "structured"
	// FormatText is a fixed-layout sectioned plain-text report.
	FormatText Format = "text"
	// FormatMarkup is a self-contained styled HTML document.
	FormatMarkup Format = "markup"
)

// ParseFormat validates a format string, defaulting to text when empty.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatStructured, FormatText, FormatMarkup:
		return Format(s), nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: unknown report format %q", domain.ErrInvalidInput, s)
	}
}

// Render serializes the report in the requested format.
func Render(fb domain.FeedbackReport, format Format) (string, error) {
	switch format {
	case FormatStructured:
		return renderStructured(fb)
	case FormatText:
		return renderText(fb), nil
	case FormatMarkup:
		return renderMarkup(fb), nil
	default:
		return "", fmt.Errorf("%w: unknown report format %q", domain.ErrInvalidInput, format)
	}
}

// ContentType returns the MIME type for a rendered format.
func ContentType(format Format) string {
	switch format {
	case FormatStructured:
		return "application/json"
	case FormatMarkup:
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func renderStructured(fb domain.FeedbackReport) (string, error) {
	data, err := json.MarshalIndent(fb, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal feedback report: %w", err)
	}
	return string(data), nil
}

// priorityOrder fixes the rendering order of recommendation groups. Within a
// group, creation order is preserved.
var priorityOrder = []domain.Priority{
	domain.PriorityHigh,
	domain.PriorityMedium,
	domain.PriorityLow,
}

// groupRecommendations buckets recommendations by priority without altering
// intra-group order.
func groupRecommendations(recs []domain.Recommendation) map[domain.Priority][]domain.Recommendation {
	groups := make(map[domain.Priority][]domain.Recommendation, len(priorityOrder))
	for _, rec := range recs {
		groups[rec.Priority] = append(groups[rec.Priority], rec)
	}
	return groups
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func renderText(fb domain.FeedbackReport) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)

	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "CV MATCH REPORT FOR: %s\n", fb.JobTitle)
	fmt.Fprintf(&b, "%s\n", rule)

	fmt.Fprintf(&b, "\nOVERALL MATCH: %s%% (%s)\n", formatPercent(fb.OverallMatch), fb.MatchCategory)
	fmt.Fprintf(&b, "\nSUMMARY:\n%s\n", fb.Summary)

	b.WriteString("\nDETAILED FEEDBACK:\n")

	skills := fb.Components.Skills
	fmt.Fprintf(&b, "\n1. SKILLS (Score: %s%%)\n   %s\n", formatPercent(skills.Score), skills.Feedback)
	if len(skills.ExactMatches) > 0 {
		b.WriteString("\n   Matched Skills:\n")
		for _, skill := range skills.ExactMatches {
			fmt.Fprintf(&b, "   - %s\n", skill)
		}
	}
	if len(skills.SemanticMatches) > 0 {
		b.WriteString("\n   Similar Skills:\n")
		for _, m := range skills.SemanticMatches {
			fmt.Fprintf(&b, "   - %s (similar to your skill: %s)\n", m.JobSkill, m.CandidateSkill)
		}
	}
	if len(skills.MissingSkills) > 0 {
		b.WriteString("\n   Missing Skills:\n")
		for _, skill := range skills.MissingSkills {
			fmt.Fprintf(&b, "   - %s\n", skill)
		}
	}

	experience := fb.Components.Experience
	fmt.Fprintf(&b, "\n2. EXPERIENCE (Score: %s%%)\n   %s\n", formatPercent(experience.Score), experience.Feedback)

	education := fb.Components.Education
	fmt.Fprintf(&b, "\n3. EDUCATION (Score: %s%%)\n   %s\n", formatPercent(education.Score), education.Feedback)

	b.WriteString("\nRECOMMENDATIONS:\n")
	groups := groupRecommendations(fb.Recommendations)
	for _, priority := range priorityOrder {
		group := groups[priority]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s PRIORITY:\n", strings.ToUpper(string(priority)))
		for i, rec := range group {
			fmt.Fprintf(&b, "   %d. %s\n", i+1, rec.Text)
		}
	}

	return b.String()
}
