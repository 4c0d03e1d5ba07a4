package feedback

import (
	"fmt"
	"strings"

	"github.com/resufit/resufit/internal/domain"
)

// defaultJobTitle labels reports for postings where no title was extracted.
const defaultJobTitle = "This position"

// Generator converts a MatchReport into a FeedbackReport: category, summary,
// per-component narratives, and prioritized recommendations. Deterministic,
// no randomness, no recomputation of scores.
type Generator struct{}

// NewGenerator creates a feedback generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate derives the feedback report for a match report.
func (g *Generator) Generate(report domain.MatchReport) domain.FeedbackReport {
	jobTitle := report.JobTitle
	if jobTitle == "" {
		jobTitle = defaultJobTitle
	}

	category := matchCategory(report.OverallMatch)

	return domain.FeedbackReport{
		JobTitle:      jobTitle,
		OverallMatch:  report.OverallMatch,
		MatchCategory: category,
		Summary:       fmt.Sprintf(summaryTemplates[category], formatPercent(report.OverallMatch)),
		Components: domain.ComponentFeedback{
			Skills:     skillsFeedback(report.Components.Skills),
			Experience: experienceFeedback(report.Components.Experience),
			Education:  educationFeedback(report.Components.Education),
		},
		Recommendations: recommendations(report),
		Details:         report,
	}
}

func skillsFeedback(c domain.SkillsComponent) domain.SkillsFeedback {
	detail := c.Detail
	totalRequired := len(detail.ExactMatches) + len(detail.SemanticMatches) + len(detail.MissingSkills)
	totalMatched := len(detail.ExactMatches) + len(detail.SemanticMatches)

	var text string
	if totalRequired == 0 {
		text = "No specific skills were identified in the job description."
	} else {
		text = fmt.Sprintf(pickText(c.Score, skillsNarratives),
			totalMatched, totalRequired, formatPercent(c.Score))
	}

	return domain.SkillsFeedback{
		Score:           c.Score,
		Feedback:        text,
		ExactMatches:    presentSkills(detail.ExactMatches),
		SemanticMatches: detail.SemanticMatches,
		MissingSkills:   presentSkills(detail.MissingSkills),
	}
}

func experienceFeedback(c domain.ExperienceComponent) domain.ExperienceFeedback {
	detail := c.Detail

	var text string
	switch {
	case detail.RequiredYears == nil:
		text = "No specific experience requirements were identified in the job description."
	case detail.CandidateYears == nil:
		text = fmt.Sprintf("The job requires %d years of experience, but we couldn't identify "+
			"your years of experience from your CV. Consider clearly stating your years of experience.",
			*detail.RequiredYears)
	case *detail.Gap <= 0:
		text = fmt.Sprintf("Your experience (%d years) meets or exceeds the required "+
			"experience (%d years) for this position.",
			*detail.CandidateYears, *detail.RequiredYears)
	default:
		text = fmt.Sprintf("The job requires %d years of experience, but your CV indicates "+
			"%d years. There's a gap of %d years.",
			*detail.RequiredYears, *detail.CandidateYears, *detail.Gap)
	}

	text += " " + pickText(c.Score, relevanceNarratives)

	return domain.ExperienceFeedback{
		Score:          c.Score,
		Feedback:       text,
		RequiredYears:  detail.RequiredYears,
		CandidateYears: detail.CandidateYears,
		Gap:            detail.Gap,
	}
}

func educationFeedback(c domain.EducationComponent) domain.EducationFeedback {
	detail := c.Detail

	var text string
	switch {
	case detail.RequiredLevel == nil:
		text = "No specific education requirements were identified in the job description."
	case detail.CandidateLevel == nil:
		text = fmt.Sprintf("The job requires a %s degree, but we couldn't identify your "+
			"education level from your CV. Consider clearly stating your education.",
			*detail.RequiredLevel)
	case detail.MeetsRequirement:
		text = fmt.Sprintf("Your education (%s) meets or exceeds the required education (%s) "+
			"for this position.", *detail.CandidateLevel, *detail.RequiredLevel)
	default:
		text = fmt.Sprintf("The job requires a %s degree, but your CV indicates a %s degree. "+
			"Consider highlighting any additional qualifications or relevant experience to compensate.",
			*detail.RequiredLevel, *detail.CandidateLevel)
	}

	return domain.EducationFeedback{
		Score:            c.Score,
		Feedback:         text,
		RequiredDegree:   detail.RequiredLevel,
		CandidateDegree:  detail.CandidateLevel,
		MeetsRequirement: detail.MeetsRequirement,
	}
}

// recommendations evaluates the rules independently, in a fixed order, each
// contributing zero or one entry. The list is never empty: a "well matched"
// entry closes the gap when nothing else fired. Downstream rendering groups
// by priority without reordering within a group.
func recommendations(report domain.MatchReport) []domain.Recommendation {
	recs := []domain.Recommendation{}

	if missing := presentSkills(report.Components.Skills.Detail.MissingSkills); len(missing) > 0 {
		var text string
		if len(missing) <= maxListedMissingSkills {
			text = fmt.Sprintf("Add the following skills to your CV: %s.", strings.Join(missing, ", "))
		} else {
			text = fmt.Sprintf("Add key missing skills to your CV, especially: %s.",
				strings.Join(missing[:maxListedMissingSkills], ", "))
		}
		recs = append(recs, domain.Recommendation{
			Category: "skills",
			Text:     text,
			Priority: domain.PriorityHigh,
		})
	}

	experience := report.Components.Experience.Detail
	if experience.Gap != nil && *experience.Gap > 0 {
		recs = append(recs, domain.Recommendation{
			Category: "experience",
			Text: fmt.Sprintf("Highlight any additional experience that might not be clearly "+
				"stated in your CV. The job requires %d years of experience.", *experience.RequiredYears),
			Priority: domain.PriorityMedium,
		})
	}

	education := report.Components.Education.Detail
	if !education.MeetsRequirement && education.RequiredLevel != nil {
		recs = append(recs, domain.Recommendation{
			Category: "education",
			Text: fmt.Sprintf("Emphasize any additional certifications, training, or relevant "+
				"projects that compensate for the difference between your education level and "+
				"the required %s degree.", *education.RequiredLevel),
			Priority: domain.PriorityMedium,
		})
	}

	if report.OverallMatch < generalAdviceBelow {
		recs = append(recs, domain.Recommendation{
			Category: "keywords",
			Text: "Optimize your CV with keywords from the job description, especially in " +
				"your summary and work experience sections.",
			Priority: domain.PriorityHigh,
		})
		recs = append(recs, domain.Recommendation{
			Category: "tailoring",
			Text: "Tailor your CV to highlight experiences and achievements most relevant " +
				"to this specific position.",
			Priority: domain.PriorityMedium,
		})
	}

	if report.OverallMatch >= achievementsLowBound && report.OverallMatch < achievementsUpBound {
		recs = append(recs, domain.Recommendation{
			Category: "achievements",
			Text: "Add more quantifiable achievements to your work experience to demonstrate " +
				"impact (e.g., 'Increased sales by 20%' rather than 'Responsible for sales').",
			Priority: domain.PriorityMedium,
		})
	}

	if len(recs) == 0 {
		recs = append(recs, domain.Recommendation{
			Category: "general",
			Text: "Your CV is well-matched to this position. Consider adding more specific " +
				"achievements and metrics to strengthen your application further.",
			Priority: domain.PriorityLow,
		})
	}

	return recs
}

// presentSkills is the presentation-side cleanup of a skill list: duplicates
// removed case-insensitively, first-seen casing kept, order preserved.
func presentSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := []string{}
	for _, s := range skills {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
