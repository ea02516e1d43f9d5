package parser

import (
	"reflect"
	"strings"
	"testing"

	"resume-matcher/resume/model"
)

const sampleResume = `John Doe
john.doe@example.com | (415) 555-0100
linkedin.com/in/johndoe | github.com/johndoe

Summary
Seasoned software engineer focused on backend systems and developer tooling.

Skills: JavaScript, React, Node.js

Experience
Software Engineer - Acme Corp
2020 - Present
• Built scalable APIs

Education
Bachelor of Science in Computer Science, 2018 GPA: 3.8
Stanford University

Projects
Portfolio Website: Built with React and hosted on AWS
`

func TestParseSampleResume(t *testing.T) {
	parsed := Parse(sampleResume, DefaultLimits())

	for _, skill := range []string{"JavaScript", "React", "Node.js"} {
		if !containsSkill(parsed.Skills, skill) {
			t.Fatalf("expected skill %q in %v", skill, parsed.Skills)
		}
	}

	wantExperience := model.Experience{
		Role:        "Software Engineer",
		Company:     "Acme Corp",
		Duration:    "2020 - Present",
		Description: []string{"Built scalable APIs"},
	}
	if len(parsed.Experience) != 1 || !reflect.DeepEqual(parsed.Experience[0], wantExperience) {
		t.Fatalf("expected experience %+v, got %+v", wantExperience, parsed.Experience)
	}

	if len(parsed.Education) != 1 {
		t.Fatalf("expected 1 education entry, got %+v", parsed.Education)
	}
	edu := parsed.Education[0]
	if edu.Year != "2018" || edu.GPA != "3.8" || edu.Institution != "Stanford University" {
		t.Fatalf("unexpected education entry: %+v", edu)
	}

	if parsed.Contact.Email != "john.doe@example.com" {
		t.Fatalf("unexpected email: %q", parsed.Contact.Email)
	}
	if !strings.Contains(parsed.Contact.Phone, "415") || !strings.Contains(parsed.Contact.Phone, "555") {
		t.Fatalf("unexpected phone: %q", parsed.Contact.Phone)
	}
	if parsed.Contact.LinkedIn != "https://linkedin.com/in/johndoe" {
		t.Fatalf("unexpected linkedin: %q", parsed.Contact.LinkedIn)
	}
	if parsed.Contact.GitHub != "https://github.com/johndoe" {
		t.Fatalf("unexpected github: %q", parsed.Contact.GitHub)
	}

	if parsed.Summary == "" || !strings.HasPrefix(parsed.Summary, "Seasoned software engineer") {
		t.Fatalf("unexpected summary: %q", parsed.Summary)
	}

	if len(parsed.Projects) != 1 || parsed.Projects[0].Name != "Portfolio Website" {
		t.Fatalf("unexpected projects: %+v", parsed.Projects)
	}
	if parsed.Projects[0].Description != "Built with React and hosted on AWS" {
		t.Fatalf("unexpected project description: %q", parsed.Projects[0].Description)
	}

	if parsed.RawText != sampleResume {
		t.Fatal("expected raw text to be carried on the parsed resume")
	}
}

func TestParseIsIdempotent(t *testing.T) {
	first := Parse(sampleResume, DefaultLimits())
	second := Parse(sampleResume, DefaultLimits())

	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical results for identical input")
	}
}

func TestParseEmptyText(t *testing.T) {
	parsed := Parse("", DefaultLimits())

	if len(parsed.Skills) != 0 || len(parsed.Experience) != 0 || len(parsed.Education) != 0 || len(parsed.Projects) != 0 {
		t.Fatalf("expected empty collections, got %+v", parsed)
	}
	if parsed.Summary != "" {
		t.Fatalf("expected empty summary, got %q", parsed.Summary)
	}
	if parsed.Contact != (model.Contact{}) {
		t.Fatalf("expected empty contact, got %+v", parsed.Contact)
	}
}

func TestExtractExperienceCapped(t *testing.T) {
	var b strings.Builder
	b.WriteString("Experience\n")
	for i := 0; i < 8; i++ {
		b.WriteString("Engineer - Company\n2019 - 2020\n")
	}

	got := ExtractExperience(b.String(), 5)
	if len(got) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(got))
	}
}

func TestExtractExperienceSkipsDurationOnlyStart(t *testing.T) {
	text := "Experience\n2018 - 2019\nEngineer - Initech\n"

	got := ExtractExperience(text, 5)
	if len(got) != 1 || got[0].Company != "Initech" {
		t.Fatalf("unexpected entries: %+v", got)
	}
	if got[0].Duration != "" {
		t.Fatalf("duration line before first entry should be dropped, got %q", got[0].Duration)
	}
}

func TestExtractSummaryParagraphFallback(t *testing.T) {
	paragraph := "Experienced backend developer who has designed and operated distributed systems at scale for over a decade, with a focus on reliability."
	text := "John Doe\n\n" + paragraph + "\n\nShort closing."

	if got := ExtractSummary(text, 500); got != paragraph {
		t.Fatalf("expected fallback paragraph, got %q", got)
	}
}

func TestExtractSummaryNoSectionNoParagraph(t *testing.T) {
	if got := ExtractSummary("Short text.\n\nAnother tiny bit.", 500); got != "" {
		t.Fatalf("expected empty summary, got %q", got)
	}
}

func TestExtractSummaryTruncated(t *testing.T) {
	text := "Summary\n" + strings.Repeat("word ", 200)

	if got := ExtractSummary(text, 500); len(got) > 500 {
		t.Fatalf("expected summary capped at 500 chars, got %d", len(got))
	}
}

func TestExtractContactAbsentFields(t *testing.T) {
	got := ExtractContact("no contact details here")
	if got != (model.Contact{}) {
		t.Fatalf("expected empty contact, got %+v", got)
	}
}

func TestExtractProjectsBulletTitles(t *testing.T) {
	text := strings.Join([]string{
		"Projects",
		"• Chat App",
		"Realtime chat application using WebSockets",
	}, "\n")

	got := ExtractProjects(text, 5)
	if len(got) != 1 {
		t.Fatalf("expected 1 project, got %+v", got)
	}
	if got[0].Name != "Chat App" || got[0].Description != "Realtime chat application using WebSockets" {
		t.Fatalf("unexpected project: %+v", got[0])
	}
}

func containsSkill(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
