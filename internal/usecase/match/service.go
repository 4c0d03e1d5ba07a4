package match

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/resufit/resufit/internal/domain"
)

// Service scores a (résumé, job) pair across the skill, experience, and
// education matchers plus whole-document similarity, then aggregates the four
// signals into one report. Stateless: every call is independently
// reproducible given the same inputs and embedding outputs.
type Service struct {
	embed      Embedder
	skills     *SkillMatcher
	experience *ExperienceMatcher
	education  *EducationMatcher
	logger     *zap.Logger
}

// New creates a match service.
func New(embed Embedder, logger *zap.Logger) *Service {
	return &Service{
		embed:      embed,
		skills:     NewSkillMatcher(embed),
		experience: NewExperienceMatcher(embed),
		education:  NewEducationMatcher(embed),
		logger:     logger,
	}
}

// Evaluate runs the four signals concurrently and joins them before
// aggregation. Any embedding failure aborts the whole request as
// ErrScoringUnavailable: a report with silently zeroed semantic components
// would misrepresent the candidate.
func (s *Service) Evaluate(
	ctx context.Context, resume domain.ParsedResume, job domain.ParsedJob,
) (domain.MatchReport, error) {
	var (
		skillResult      domain.SkillMatchResult
		experienceResult domain.ExperienceMatchResult
		educationResult  domain.EducationMatchResult
		overallSim       float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		skillResult, err = s.skills.Match(gctx, resume.Skills, job.RequiredSkills)
		return err
	})
	g.Go(func() error {
		var err error
		experienceResult, err = s.experience.Match(gctx, resume.ExperienceYears, resume.Text, job)
		return err
	})
	g.Go(func() error {
		var err error
		educationResult, err = s.education.Match(gctx, resume.Education, job.EducationRequirements)
		return err
	})
	g.Go(func() error {
		var err error
		overallSim, err = textSimilarity(gctx, s.embed, resume.Text, job.Text)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.MatchReport{}, fmt.Errorf("%w: %w", domain.ErrScoringUnavailable, err)
	}

	report := domain.MatchReport{
		JobTitle: job.Title,
		OverallMatch: Aggregate(
			skillResult.Score, experienceResult.Score, educationResult.Score, overallSim,
		),
		Components: domain.MatchComponents{
			Skills: domain.SkillsComponent{
				Score:  round2(100 * skillResult.Score),
				Weight: SkillsWeight,
				Detail: skillResult,
			},
			Experience: domain.ExperienceComponent{
				Score:  round2(100 * experienceResult.Score),
				Weight: ExperienceWeight,
				Detail: experienceResult,
			},
			Education: domain.EducationComponent{
				Score:  round2(100 * educationResult.Score),
				Weight: EducationWeight,
				Detail: educationResult,
			},
			OverallSimilarity: domain.SimilarityComponent{
				Score:  round2(100 * overallSim),
				Weight: SimilarityWeight,
			},
		},
	}

	s.logger.Debug("match evaluated",
		zap.String("job_title", job.Title),
		zap.Float64("overall_match", report.OverallMatch),
		zap.Int("required_skills", len(job.RequiredSkills)),
		zap.Int("missing_skills", len(skillResult.MissingSkills)),
	)

	return report, nil
}
