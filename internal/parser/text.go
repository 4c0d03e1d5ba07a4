package parser

import (
	"regexp"
	"strings"
)

var sentenceBoundary = regexp.MustCompile(`[.!?]\s+|\n{2,}`)

// splitSentences breaks text on sentence punctuation and blank lines. Crude
// next to a real tokenizer, but the downstream matching only needs sentence
// granularity, not linguistic accuracy.
func splitSentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// findSection returns the body of the first section whose header matches one
// of the given names. A section ends at a blank line or at the next line that
// starts with an uppercase letter.
func findSection(text string, headers []string) string {
	for _, header := range headers {
		re := regexp.MustCompile(`(?is)` + regexp.QuoteMeta(header) + `:?\s*\n(.*?)(\n\n|\n[A-Z]|\z)`)
		if m := re.FindStringSubmatch(text); m != nil {
			if body := strings.TrimSpace(m[1]); body != "" {
				return body
			}
		}
		re = regexp.MustCompile(`(?is)` + regexp.QuoteMeta(header) + `:?\s*(.*?)(\n\n|\z)`)
		if m := re.FindStringSubmatch(text); m != nil {
			if body := strings.TrimSpace(m[1]); body != "" {
				return body
			}
		}
	}
	return ""
}

// extractSkills collects vocabulary entries present in the text,
// case-insensitively, in vocabulary order.
func extractSkills(text string, vocab []string) []string {
	lower := strings.ToLower(text)
	found := []string{}
	for _, skill := range vocab {
		if containsSkill(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// containsSkill matches single-word skills on token boundaries so "go" does
// not fire inside "google". Multi-word and symbol-bearing skills (c++, ci/cd)
// fall back to substring matching.
func containsSkill(lowerText, skill string) bool {
	if strings.ContainsAny(skill, " +#./") {
		return strings.Contains(lowerText, skill)
	}
	idx := 0
	for {
		i := strings.Index(lowerText[idx:], skill)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(skill)
		if boundaryBefore(lowerText, start) && boundaryAfter(lowerText, end) {
			return true
		}
		idx = start + 1
	}
}

func boundaryBefore(s string, i int) bool {
	return i == 0 || !isWordByte(s[i-1])
}

func boundaryAfter(s string, i int) bool {
	return i >= len(s) || !isWordByte(s[i])
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}
