package domain

// DegreeLevel is the coarse education level used to compare candidate and
// job requirements.
type DegreeLevel string

const (
	DegreeBachelor DegreeLevel = "bachelor"
	DegreeMaster   DegreeLevel = "master"
	DegreePhD      DegreeLevel = "phd"
)

// Ordinal returns the rank used for level comparison: bachelor=1, master=2,
// phd=3, 0 for unknown values.
func (d DegreeLevel) Ordinal() int {
	switch d {
	case DegreeBachelor:
		return 1
	case DegreeMaster:
		return 2
	case DegreePhD:
		return 3
	default:
		return 0
	}
}

// DegreeFromOrdinal maps a rank back to its level. ok is false for ranks
// outside 1..3.
func DegreeFromOrdinal(n int) (DegreeLevel, bool) {
	switch n {
	case 1:
		return DegreeBachelor, true
	case 2:
		return DegreeMaster, true
	case 3:
		return DegreePhD, true
	default:
		return "", false
	}
}

// SemanticMatch records a required skill covered by a semantically close
// candidate skill rather than an exact one.
type SemanticMatch struct {
	JobSkill       string `json:"job_skill"`
	CandidateSkill string `json:"candidate_skill"`
	// Similarity is the clamped cosine similarity, rounded to 2 decimals
	// for display.
	Similarity float64 `json:"similarity"`
}

// SkillMatchResult partitions the job's required skills: every required skill
// lands in exactly one of ExactMatches, SemanticMatches (as JobSkill), or
// MissingSkills. Skill strings keep the job posting's casing.
type SkillMatchResult struct {
	ExactMatches    []string        `json:"exact_matches"`
	SemanticMatches []SemanticMatch `json:"semantic_matches"`
	MissingSkills   []string        `json:"missing_skills"`
	// Score is in [0, 1].
	Score float64 `json:"score"`
}

// ExperienceMatchResult compares required against extracted candidate years.
type ExperienceMatchResult struct {
	RequiredYears  *int   `json:"required_years,omitempty"`
	CandidateYears *int   `json:"candidate_years,omitempty"`
	RequiredLevel  string `json:"required_level,omitempty"`
	// Gap is required minus candidate years; nil when either side is
	// unknown (undeterminable, not zero). Gap <= 0 means the requirement
	// is met or exceeded.
	Gap   *int    `json:"gap,omitempty"`
	Score float64 `json:"score"`
}

// EducationMatchResult compares degree levels and education text closeness.
type EducationMatchResult struct {
	CandidateLevel *DegreeLevel `json:"candidate_degree_level,omitempty"`
	RequiredLevel  *DegreeLevel `json:"required_degree_level,omitempty"`
	// CandidateKeyword and RequiredKeyword are the keywords that produced
	// the levels, kept for display.
	CandidateKeyword string  `json:"candidate_degree_keyword,omitempty"`
	RequiredKeyword  string  `json:"required_degree_keyword,omitempty"`
	MeetsRequirement bool    `json:"meets_requirement"`
	Score            float64 `json:"score"`
}

// SkillsComponent is the skills signal inside a MatchReport. Score is a
// percentage in [0, 100].
type SkillsComponent struct {
	Score  float64          `json:"score"`
	Weight float64          `json:"weight"`
	Detail SkillMatchResult `json:"detail"`
}

// ExperienceComponent is the experience signal inside a MatchReport.
type ExperienceComponent struct {
	Score  float64               `json:"score"`
	Weight float64               `json:"weight"`
	Detail ExperienceMatchResult `json:"detail"`
}

// EducationComponent is the education signal inside a MatchReport.
type EducationComponent struct {
	Score  float64              `json:"score"`
	Weight float64              `json:"weight"`
	Detail EducationMatchResult `json:"detail"`
}

// SimilarityComponent is the whole-document semantic similarity signal.
type SimilarityComponent struct {
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// MatchComponents groups the four weighted signals of a match.
type MatchComponents struct {
	Skills            SkillsComponent     `json:"skills"`
	Experience        ExperienceComponent `json:"experience"`
	Education         EducationComponent  `json:"education"`
	OverallSimilarity SimilarityComponent `json:"overall_similarity"`
}

// MatchReport is the aggregated result for one (résumé, job) pair. Created in
// a single computation step and never mutated afterwards.
type MatchReport struct {
	JobTitle     string          `json:"job_title,omitempty"`
	OverallMatch float64         `json:"overall_match"`
	Components   MatchComponents `json:"components"`
}
