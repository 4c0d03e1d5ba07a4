package domain

// ExperienceRequirement describes the experience a job posting asks for.
type ExperienceRequirement struct {
	// Years is nil when the posting states no explicit requirement.
	Years *int `json:"years,omitempty"`
	// Level is the seniority keyword found in the posting ("senior", "lead"...).
	Level string `json:"level,omitempty"`
	// Description holds the posting sentences that mention experience.
	Description []string `json:"description,omitempty"`
}

// ParsedJob is the structured view of a job posting. Immutable once built.
type ParsedJob struct {
	Title                 string                `json:"job_title,omitempty"`
	RequiredSkills        []string              `json:"required_skills"`
	Experience            ExperienceRequirement `json:"experience_requirements"`
	EducationRequirements []string              `json:"education_requirements"`
	Responsibilities      []string              `json:"responsibilities"`
	Text                  string                `json:"text"`
}
