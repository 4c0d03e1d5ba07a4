package report

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/resufit/resufit/internal/domain"
)

func sampleFeedback() domain.FeedbackReport {
	return domain.FeedbackReport{
		JobTitle:      "Backend Engineer",
		OverallMatch:  72.5,
		MatchCategory: domain.MatchMedium,
		Summary:       "Your CV shows a moderate match for this position with 72.5% compatibility.",
		Components: domain.ComponentFeedback{
			Skills: domain.SkillsFeedback{
				Score:        65,
				Feedback:     "You match 2 out of 3 required skills (65%).",
				ExactMatches: []string{"python"},
				SemanticMatches: []domain.SemanticMatch{
					{JobSkill: "Go", CandidateSkill: "Golang", Similarity: 0.91},
				},
				MissingSkills: []string{"aws"},
			},
			Experience: domain.ExperienceFeedback{
				Score:    80,
				Feedback: "Your experience meets the requirement.",
			},
			Education: domain.EducationFeedback{
				Score:    100,
				Feedback: "Your education meets the requirement.",
			},
		},
		Recommendations: []domain.Recommendation{
			{Category: "skills", Text: "Add the following skills to your CV: aws.", Priority: domain.PriorityHigh},
			{Category: "tailoring", Text: "Tailor your CV to the position.", Priority: domain.PriorityMedium},
			{Category: "general", Text: "Keep it concise.", Priority: domain.PriorityLow},
		},
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"structured", FormatStructured, false},
		{"text", FormatText, false},
		{"markup", FormatMarkup, false},
		{"", FormatText, false},
		{"pdf", "", true},
		{"TEXT", "", true},
	}
	for _, tc := range cases {
		got, err := ParseFormat(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q): expected error", tc.in)
			} else if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("ParseFormat(%q): expected ErrInvalidInput, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRenderStructured_RoundTrip(t *testing.T) {
	fb := sampleFeedback()

	out, err := Render(fb, FormatStructured)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded domain.FeedbackReport
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.JobTitle != fb.JobTitle {
		t.Errorf("job title lost: got %q", decoded.JobTitle)
	}
	if decoded.OverallMatch != fb.OverallMatch {
		t.Errorf("overall match lost: got %v", decoded.OverallMatch)
	}
	if len(decoded.Recommendations) != len(fb.Recommendations) {
		t.Errorf("recommendations lost: got %d", len(decoded.Recommendations))
	}
	if decoded.Components.Skills.SemanticMatches[0].CandidateSkill != "Golang" {
		t.Error("semantic match lost in round trip")
	}
}

func TestRenderText_Layout(t *testing.T) {
	out, err := Render(sampleFeedback(), FormatText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"CV MATCH REPORT FOR: Backend Engineer",
		"OVERALL MATCH: 72.5% (medium)",
		"SUMMARY:",
		"1. SKILLS (Score: 65%)",
		"2. EXPERIENCE (Score: 80%)",
		"3. EDUCATION (Score: 100%)",
		"Matched Skills:",
		"- Go (similar to your skill: Golang)",
		"Missing Skills:",
		"HIGH PRIORITY:",
		"MEDIUM PRIORITY:",
		"LOW PRIORITY:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q", want)
		}
	}

	// Numbering restarts inside each priority group.
	if !strings.Contains(out, "HIGH PRIORITY:\n   1. Add the following skills") {
		t.Error("high group numbering wrong")
	}
	if !strings.Contains(out, "MEDIUM PRIORITY:\n   1. Tailor your CV") {
		t.Error("medium group must restart numbering at 1")
	}
}

func TestRenderText_SkipsEmptySkillLists(t *testing.T) {
	fb := sampleFeedback()
	fb.Components.Skills.ExactMatches = nil
	fb.Components.Skills.SemanticMatches = nil
	fb.Components.Skills.MissingSkills = nil

	out, err := Render(fb, FormatText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, header := range []string{"Matched Skills:", "Similar Skills:", "Missing Skills:"} {
		if strings.Contains(out, header) {
			t.Errorf("empty list header %q must be omitted", header)
		}
	}
}

func TestRenderMarkup(t *testing.T) {
	out, err := Render(sampleFeedback(), FormatMarkup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<h1>CV Match Report for: Backend Engineer</h1>",
		`<span class="score medium">72.5%</span>`,
		`<span class="score high">80%</span>`,
		`<li class="missing-skill">aws</li>`,
		"<h3>High Priority</h3>",
		"<h3>Low Priority</h3>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markup report missing %q", want)
		}
	}
}

func TestRenderMarkup_EscapesInput(t *testing.T) {
	fb := sampleFeedback()
	fb.JobTitle = `<script>alert("x")</script>`

	out, err := Render(fb, FormatMarkup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Error("job title must be escaped")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("expected escaped title in output")
	}
}

func TestScoreClass(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, "high"},
		{80, "high"},
		{79.9, "medium"},
		{60, "medium"},
		{59.9, "low"},
		{0, "low"},
	}
	for _, tc := range cases {
		if got := scoreClass(tc.score); got != tc.want {
			t.Errorf("scoreClass(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestContentType(t *testing.T) {
	if got := ContentType(FormatStructured); got != "application/json" {
		t.Errorf("structured: got %q", got)
	}
	if got := ContentType(FormatMarkup); got != "text/html; charset=utf-8" {
		t.Errorf("markup: got %q", got)
	}
	if got := ContentType(FormatText); got != "text/plain; charset=utf-8" {
		t.Errorf("text: got %q", got)
	}
}
