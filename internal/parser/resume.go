package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/resufit/resufit/internal/domain"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`[+(]?[1-9][0-9 .\-()]{8,}[0-9]`)

	// Year-of-experience phrasings, checked in order; the largest count wins.
	cvYearPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*(?:years|yrs)(?:\s*of)?\s*experience`),
		regexp.MustCompile(`experience\s*(?:of)?\s*(\d+)\+?\s*(?:years|yrs)`),
		regexp.MustCompile(`(\d+)\+?\s*(?:years|yrs)(?:\s*of)?\s*(?:relevant|related)?\s*experience`),
		regexp.MustCompile(`(?:over|more than)\s*(\d+)\s*(?:years|yrs)`),
	}

	nameLineRe = regexp.MustCompile(`^[A-Z][a-zA-Z'.-]+(?:\s+[A-Z][a-zA-Z'.-]+){1,3}$`)
)

// ParseResume extracts structured fields from résumé text. The raw text is
// carried through because the matchers embed the whole document.
func ParseResume(text string) domain.ParsedResume {
	return domain.ParsedResume{
		Name:            extractName(text),
		Email:           emailRe.FindString(text),
		Phone:           extractPhone(text),
		Skills:          extractSkills(text, commonSkills),
		Education:       extractEducationSentences(text),
		ExperienceYears: maxYears(text, cvYearPatterns),
		Text:            text,
	}
}

// extractName takes the first line near the top of the document that looks
// like a person's name: two to four capitalized words, no digits or
// punctuation beyond what names carry.
func extractName(text string) string {
	head := text
	if len(head) > 500 {
		head = head[:500]
	}
	for _, line := range strings.Split(head, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.ContainsAny(line, "@0123456789") {
			continue
		}
		if nameLineRe.MatchString(line) {
			return line
		}
	}
	return ""
}

func extractPhone(text string) string {
	number := phoneRe.FindString(text)
	if number != "" && len(number) < 16 {
		return number
	}
	return ""
}

// extractEducationSentences keeps every sentence mentioning an education
// term, deduplicated, in document order.
func extractEducationSentences(text string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, sentence := range splitSentences(text) {
		lower := strings.ToLower(sentence)
		for _, term := range educationTerms {
			if !containsSkill(lower, term) {
				continue
			}
			if _, ok := seen[sentence]; !ok {
				seen[sentence] = struct{}{}
				out = append(out, sentence)
			}
			break
		}
	}
	return out
}

// maxYears scans all patterns and returns the largest year count mentioned,
// or nil when the text names none.
func maxYears(text string, patterns []*regexp.Regexp) *int {
	lower := strings.ToLower(text)
	var max *int
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			years, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if max == nil || years > *max {
				v := years
				max = &v
			}
		}
	}
	return max
}
