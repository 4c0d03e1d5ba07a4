package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/resufit/resufit/internal/domain"
)

// markupStyle is inlined so the rendered document is self-contained: no
// external stylesheet or script references.
const markupStyle = `body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
h1 { color: #2c3e50; border-bottom: 2px solid #3498db; padding-bottom: 10px; }
h2 { color: #2c3e50; margin-top: 30px; }
.score { font-size: 24px; font-weight: bold; }
.high { color: #27ae60; }
.medium { color: #f39c12; }
.low { color: #e74c3c; }
.section { background-color: #f9f9f9; border-radius: 5px; padding: 15px; margin-bottom: 20px; }
.recommendation { background-color: #eaf2f8; border-left: 4px solid #3498db; padding: 10px 15px; margin-bottom: 10px; }
.missing-skill { color: #e74c3c; }
ul { padding-left: 20px; }`

// scoreClass maps a percentage to its style class with the same 80/60
// boundaries as the match category.
func scoreClass(score float64) string {
	switch {
	case score >= 80:
		return "high"
	case score >= 60:
		return "medium"
	default:
		return "low"
	}
}

func renderMarkup(fb domain.FeedbackReport) string {
	esc := html.EscapeString
	var b strings.Builder

	fmt.Fprintf(&b, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>CV Match Report: %s</title>
<style>
%s
</style>
</head>
<body>
`, esc(fb.JobTitle), markupStyle)

	fmt.Fprintf(&b, "<h1>CV Match Report for: %s</h1>\n", esc(fb.JobTitle))
	fmt.Fprintf(&b, `<div class="section">
<p>Overall Match: <span class="score %s">%s%%</span></p>
<p>%s</p>
</div>
`, scoreClass(fb.OverallMatch), formatPercent(fb.OverallMatch), esc(fb.Summary))

	writeSkillsSection(&b, fb.Components.Skills)

	experience := fb.Components.Experience
	fmt.Fprintf(&b, `<h2>Experience <span class="score %s">%s%%</span></h2>
<div class="section">
<p>%s</p>
</div>
`, scoreClass(experience.Score), formatPercent(experience.Score), esc(experience.Feedback))

	education := fb.Components.Education
	fmt.Fprintf(&b, `<h2>Education <span class="score %s">%s%%</span></h2>
<div class="section">
<p>%s</p>
</div>
`, scoreClass(education.Score), formatPercent(education.Score), esc(education.Feedback))

	b.WriteString("<h2>Recommendations</h2>\n")
	groups := groupRecommendations(fb.Recommendations)
	for _, priority := range priorityOrder {
		group := groups[priority]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "<h3>%s Priority</h3>\n", titleCase(string(priority)))
		for _, rec := range group {
			fmt.Fprintf(&b, "<div class=\"recommendation\">%s</div>\n", esc(rec.Text))
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeSkillsSection(b *strings.Builder, skills domain.SkillsFeedback) {
	esc := html.EscapeString

	fmt.Fprintf(b, `<h2>Skills <span class="score %s">%s%%</span></h2>
<div class="section">
<p>%s</p>
`, scoreClass(skills.Score), formatPercent(skills.Score), esc(skills.Feedback))

	if len(skills.ExactMatches) > 0 {
		b.WriteString("<h3>Matched Skills</h3>\n<ul>\n")
		for _, skill := range skills.ExactMatches {
			fmt.Fprintf(b, "<li>%s</li>\n", esc(skill))
		}
		b.WriteString("</ul>\n")
	}
	if len(skills.SemanticMatches) > 0 {
		b.WriteString("<h3>Similar Skills</h3>\n<ul>\n")
		for _, m := range skills.SemanticMatches {
			fmt.Fprintf(b, "<li>%s (similar to your skill: %s)</li>\n",
				esc(m.JobSkill), esc(m.CandidateSkill))
		}
		b.WriteString("</ul>\n")
	}
	if len(skills.MissingSkills) > 0 {
		b.WriteString("<h3>Missing Skills</h3>\n<ul>\n")
		for _, skill := range skills.MissingSkills {
			fmt.Fprintf(b, "<li class=\"missing-skill\">%s</li>\n", esc(skill))
		}
		b.WriteString("</ul>\n")
	}

	b.WriteString("</div>\n")
}

// titleCase uppercases the first byte only; priorities are ASCII.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
