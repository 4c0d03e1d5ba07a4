package parser

import (
	"regexp"
	"strings"

	"github.com/resufit/resufit/internal/domain"
)

var (
	titlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)job title:?\s*([^\n.]+)`),
		regexp.MustCompile(`(?i)position:?\s*([^\n.]+)`),
		regexp.MustCompile(`(?i)role:?\s*([^\n.]+)`),
		regexp.MustCompile(`(?i)we are looking for(?: an?| a)? ([^\n.]+)`),
		regexp.MustCompile(`(?i)hiring(?: an?| a)? ([^\n.]+)`),
	}

	jobYearPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*(?:years|yrs)(?:\s*of)?\s*experience`),
		regexp.MustCompile(`experience\s*(?:of)?\s*(\d+)\+?\s*(?:years|yrs)`),
		regexp.MustCompile(`(\d+)\+?\s*(?:years|yrs)(?:\s*of)?\s*(?:relevant|related)?\s*experience`),
		regexp.MustCompile(`minimum\s*(?:of)?\s*(\d+)\+?\s*(?:years|yrs)`),
	}

	bulletRe = regexp.MustCompile(`(?m)^\s*(?:[-•*]|\d+\.)\s*(.+)$`)
)

// ParseJob extracts structured requirements from a job posting. As with
// résumés, the raw text is retained for whole-document similarity.
func ParseJob(text string) domain.ParsedJob {
	return domain.ParsedJob{
		Title:                 extractJobTitle(text),
		RequiredSkills:        extractJobSkills(text),
		Experience:            extractExperience(text),
		EducationRequirements: extractEducationRequirements(text),
		Responsibilities:      extractResponsibilities(text),
		Text:                  text,
	}
}

// extractJobTitle tries the explicit labels first, then falls back to the
// first non-empty line when it is short enough to plausibly be a title.
func extractJobTitle(text string) string {
	for _, re := range titlePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) <= 60 {
			return line
		}
		break
	}
	return ""
}

// extractJobSkills unions the vocabulary hits over the whole posting with
// those in a dedicated skills section, keeping vocabulary order.
func extractJobSkills(text string) []string {
	skills := extractSkills(text, commonSkills)
	section := findSection(text, []string{
		"skills", "requirements", "qualifications", "what you need", "what we require",
	})
	if section == "" {
		return skills
	}
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		seen[s] = struct{}{}
	}
	for _, s := range extractSkills(section, commonSkills) {
		if _, ok := seen[s]; !ok {
			skills = append(skills, s)
		}
	}
	return skills
}

func extractExperience(text string) domain.ExperienceRequirement {
	req := domain.ExperienceRequirement{
		Years: maxYears(text, jobYearPatterns),
		Level: extractLevel(text),
	}
	for _, sentence := range splitSentences(text) {
		if strings.Contains(strings.ToLower(sentence), "experience") {
			req.Description = append(req.Description, sentence)
		}
	}
	return req
}

// extractLevel returns the most senior level keyword the posting mentions.
func extractLevel(text string) string {
	lower := strings.ToLower(text)
	best := ""
	bestRank := -1
	for level, rank := range experienceLevels {
		if containsSkill(lower, level) && rank > bestRank {
			best, bestRank = level, rank
		}
	}
	return best
}

// extractEducationRequirements prefers sentences from an education or
// qualifications section, falling back to the whole posting.
func extractEducationRequirements(text string) []string {
	section := findSection(text, []string{"education", "qualifications", "requirements"})
	if section != "" {
		if reqs := extractEducationSentences(section); len(reqs) > 0 {
			return reqs
		}
	}
	return extractEducationSentences(text)
}

// extractResponsibilities prefers bullets in a responsibilities section, then
// the section's sentences, then any sentence in the posting led by an action
// verb.
func extractResponsibilities(text string) []string {
	section := findSection(text, []string{
		"responsibilities", "duties", "what you'll do", "job description", "the role", "day to day",
	})

	if section != "" {
		out := []string{}
		for _, m := range bulletRe.FindAllStringSubmatch(section, -1) {
			out = append(out, strings.TrimSpace(m[1]))
		}
		if len(out) > 0 {
			return out
		}
		for _, sentence := range splitSentences(section) {
			if len(sentence) > 20 && sentence != strings.ToUpper(sentence) {
				out = append(out, sentence)
			}
		}
		if len(out) > 0 {
			return out
		}
	}

	out := []string{}
	for _, sentence := range splitSentences(text) {
		lower := strings.ToLower(sentence)
		for _, verb := range actionVerbs {
			if containsSkill(lower, verb) {
				out = append(out, sentence)
				break
			}
		}
	}
	return out
}
