package parser

import (
	"strings"
	"testing"
)

const samplePosting = `Job Title: Backend Engineer

We are building payments infrastructure.

Requirements:
Minimum of 4 years experience with backend systems.
Master's degree in Computer Science or related field.
Experience with Python, Docker and Kubernetes.

Responsibilities:
- Design and build APIs
- Maintain CI/CD pipelines
- Collaborate with product teams

This is a senior opening on a distributed team.
`

func TestParseJob(t *testing.T) {
	job := ParseJob(samplePosting)

	if job.Title != "Backend Engineer" {
		t.Errorf("expected title Backend Engineer, got %q", job.Title)
	}
	if job.Experience.Years == nil || *job.Experience.Years != 4 {
		t.Errorf("expected 4 years required, got %v", job.Experience.Years)
	}
	if job.Experience.Level != "senior" {
		t.Errorf("expected senior level, got %q", job.Experience.Level)
	}
	if job.Text != samplePosting {
		t.Error("raw text must be carried through")
	}

	wantSkills := []string{"python", "docker", "kubernetes", "ci/cd"}
	if len(job.RequiredSkills) != len(wantSkills) {
		t.Fatalf("expected skills %v, got %v", wantSkills, job.RequiredSkills)
	}
	for i := range wantSkills {
		if job.RequiredSkills[i] != wantSkills[i] {
			t.Errorf("skill %d: expected %q, got %q", i, wantSkills[i], job.RequiredSkills[i])
		}
	}

	if len(job.EducationRequirements) != 1 {
		t.Fatalf("expected 1 education requirement, got %v", job.EducationRequirements)
	}
	if !strings.Contains(job.EducationRequirements[0], "Master's degree") {
		t.Errorf("unexpected education requirement: %q", job.EducationRequirements[0])
	}

	wantResp := []string{
		"Design and build APIs",
		"Maintain CI/CD pipelines",
		"Collaborate with product teams",
	}
	if len(job.Responsibilities) != len(wantResp) {
		t.Fatalf("expected responsibilities %v, got %v", wantResp, job.Responsibilities)
	}
	for i := range wantResp {
		if job.Responsibilities[i] != wantResp[i] {
			t.Errorf("responsibility %d: expected %q, got %q", i, wantResp[i], job.Responsibilities[i])
		}
	}
}

func TestExtractJobTitle_FirstLineFallback(t *testing.T) {
	title := extractJobTitle("Backend Engineer\nAcme Corp is expanding its platform team.\n")
	if title != "Backend Engineer" {
		t.Errorf("expected first-line fallback, got %q", title)
	}
}

func TestExtractJobTitle_LongFirstLineRejected(t *testing.T) {
	long := strings.Repeat("word ", 20)
	if title := extractJobTitle(long + "\nsecond line\n"); title != "" {
		t.Errorf("expected no title from a long first line, got %q", title)
	}
}

func TestExtractLevel_MostSeniorWins(t *testing.T) {
	level := extractLevel("We need a senior engineer reporting to the lead architect.")
	if level != "lead" {
		t.Errorf("expected lead to outrank senior, got %q", level)
	}
}

func TestExtractResponsibilities_ActionVerbFallback(t *testing.T) {
	text := "You will develop integrations for our partners. Salary is competitive."
	resp := extractResponsibilities(text)
	if len(resp) != 1 {
		t.Fatalf("expected 1 responsibility, got %v", resp)
	}
	if !strings.Contains(resp[0], "develop integrations") {
		t.Errorf("unexpected responsibility: %q", resp[0])
	}
}

func TestContainsSkill_TokenBoundaries(t *testing.T) {
	cases := []struct {
		text  string
		skill string
		want  bool
	}{
		{"we write go services", "go", true},
		{"search on google daily", "go", false},
		{"modern c++ codebase", "c++", true},
		{"classic code", "c", false},
		{"ci/cd pipeline work", "ci/cd", true},
	}
	for _, tc := range cases {
		if got := containsSkill(tc.text, tc.skill); got != tc.want {
			t.Errorf("containsSkill(%q, %q) = %v, want %v", tc.text, tc.skill, got, tc.want)
		}
	}
}

func TestFindSection(t *testing.T) {
	text := "Intro line.\n\nRequirements:\nfour years of go\nmore lines here\n\nOutro."
	section := findSection(text, []string{"requirements"})
	if !strings.Contains(section, "four years of go") {
		t.Errorf("expected section body, got %q", section)
	}
}
