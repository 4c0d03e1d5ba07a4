// Package parser extracts structured résumé and job-posting data from plain
// text with keyword vocabularies and regular expressions. Extraction is best
// effort: a field the text does not yield stays zero rather than failing the
// parse.
package parser

// commonSkills is the default skill vocabulary shared by both parsers.
// Multi-word entries are matched as substrings of the lowercased text.
var commonSkills = []string{
	"python", "java", "javascript", "typescript", "go", "html", "css",
	"sql", "nosql", "react", "angular", "vue", "node", "express",
	"django", "flask", "spring", "aws", "azure", "gcp", "docker",
	"kubernetes", "terraform", "devops", "ci/cd", "machine learning",
	"deep learning", "data science", "artificial intelligence", "nlp",
	"natural language processing", "computer vision", "tensorflow",
	"pytorch", "keras", "scikit-learn", "pandas", "numpy", "tableau",
	"power bi", "git", "github", "gitlab", "agile", "scrum", "kanban",
	"rest api", "graphql", "grpc", "microservices", "serverless",
	"linux", "unix", "android", "ios", "swift", "kotlin", "flutter",
	"react native", "c", "c++", "c#", ".net", "ruby", "rails", "php",
	"laravel", "postgresql", "mysql", "mongodb", "redis", "kafka",
	"rabbitmq", "elasticsearch", "figma", "sketch", "ui/ux",
	"user experience", "responsive design", "web design",
}

// educationTerms flag sentences that describe an education requirement or
// qualification.
var educationTerms = []string{
	"bachelor", "master", "phd", "doctorate", "degree", "bs", "ba",
	"ms", "ma", "mba", "btech", "mtech", "b.tech", "m.tech", "diploma",
	"certification", "certificate", "graduate", "undergraduate",
	"postgraduate", "university", "college",
}

// experienceLevels orders seniority keywords by implied years. When a posting
// names several, the highest value wins.
var experienceLevels = map[string]int{
	"entry level": 0,
	"junior":      1,
	"mid-level":   3,
	"mid level":   3,
	"senior":      5,
	"staff":       6,
	"lead":        7,
	"principal":   8,
	"manager":     5,
	"director":    8,
	"head":        8,
	"chief":       10,
	"vp":          10,
	"executive":   10,
}

// actionVerbs mark sentences that likely describe responsibilities when a
// posting has no dedicated section.
var actionVerbs = []string{
	"develop", "create", "design", "implement", "manage", "lead",
	"coordinate", "analyze", "build", "maintain", "support", "test",
	"troubleshoot", "resolve", "improve", "optimize", "collaborate",
	"communicate", "present", "report", "research", "identify",
}
