package domain

// ParsedResume is the structured view of a candidate résumé produced by the
// parsing boundary. Optional fields may be empty; empty collections are valid
// input, not an error. Immutable once built.
type ParsedResume struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// Skills is a set: duplicates carry no extra weight in matching.
	Skills []string `json:"skills"`
	// Education holds the résumé's education statements in document order.
	Education []string `json:"education"`
	// ExperienceYears is the extracted years of experience; nil when the
	// résumé never states it (unknown, not zero).
	ExperienceYears *int `json:"experience_years,omitempty"`
	// Text is the full résumé text, used for narrative relevance and
	// whole-document similarity.
	Text string `json:"text"`
}
