package match

// Fixed component weights for the overall score. They sum to 1.0 by
// construction.
const (
	SkillsWeight     = 0.35
	ExperienceWeight = 0.30
	EducationWeight  = 0.20
	SimilarityWeight = 0.15
)

// Aggregate combines the four component scores (each in [0, 1]) into the
// overall percentage in [0, 100], rounded to 2 decimals. A fixed linear
// combination: the result does not depend on evaluation order.
func Aggregate(skills, experience, education, similarity float64) float64 {
	weighted := SkillsWeight*skills +
		ExperienceWeight*experience +
		EducationWeight*education +
		SimilarityWeight*similarity
	return round2(100 * weighted)
}
