package domain

import "time"

// MatchCategory is the coarse bucket derived from the overall percentage.
type MatchCategory string

const (
	MatchHigh   MatchCategory = "high"
	MatchMedium MatchCategory = "medium"
	MatchLow    MatchCategory = "low"
)

// Priority orders recommendations for rendering.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is one actionable suggestion derived from the match.
type Recommendation struct {
	Category string   `json:"category"`
	Text     string   `json:"recommendation"`
	Priority Priority `json:"priority"`
}

// SkillsFeedback narrates the skills component.
type SkillsFeedback struct {
	Score           float64         `json:"score"`
	Feedback        string          `json:"feedback"`
	ExactMatches    []string        `json:"exact_matches"`
	SemanticMatches []SemanticMatch `json:"semantic_matches"`
	MissingSkills   []string        `json:"missing_skills"`
}

// ExperienceFeedback narrates the experience component.
type ExperienceFeedback struct {
	Score          float64 `json:"score"`
	Feedback       string  `json:"feedback"`
	RequiredYears  *int    `json:"required_years,omitempty"`
	CandidateYears *int    `json:"candidate_years,omitempty"`
	Gap            *int    `json:"gap,omitempty"`
}

// EducationFeedback narrates the education component.
type EducationFeedback struct {
	Score            float64      `json:"score"`
	Feedback         string       `json:"feedback"`
	RequiredDegree   *DegreeLevel `json:"required_degree,omitempty"`
	CandidateDegree  *DegreeLevel `json:"candidate_degree,omitempty"`
	MeetsRequirement bool         `json:"meets_requirement"`
}

// ComponentFeedback groups the per-component narratives.
type ComponentFeedback struct {
	Skills     SkillsFeedback     `json:"skills"`
	Experience ExperienceFeedback `json:"experience"`
	Education  EducationFeedback  `json:"education"`
}

// FeedbackReport is derived 1:1 from a MatchReport. It is fully
// JSON-representable so it survives storage and HTTP round trips unchanged.
type FeedbackReport struct {
	JobTitle        string            `json:"job_title"`
	OverallMatch    float64           `json:"overall_match"`
	MatchCategory   MatchCategory     `json:"match_category"`
	Summary         string            `json:"summary"`
	Components      ComponentFeedback `json:"component_feedback"`
	Recommendations []Recommendation  `json:"recommendations"`
	Details         MatchReport       `json:"match_details"`
}

// Analysis is one persisted scoring run.
type Analysis struct {
	ID           string         `json:"id"`
	CVFileName   string         `json:"cv_filename,omitempty"`
	JobTitle     string         `json:"job_title"`
	OverallMatch float64        `json:"match_percentage"`
	Feedback     FeedbackReport `json:"feedback_report"`
	CreatedAt    time.Time      `json:"created_at"`
}
