package match

import (
	"strings"

	"resume-matcher/resume/model"
	"resume-matcher/resume/skills"
)

const (
	minSummaryLen      = 50
	maxSuggestedSkills = 5
)

// Suggest evaluates independent improvement rules against the resume and
// job text. Any subset may fire; the result may be empty but never an
// error.
func Suggest(parsed model.ParsedResume, jobText string) []model.Suggestion {
	suggestions := make([]model.Suggestion, 0, 4)

	if missing := missingSkills(parsed, jobText); len(missing) > 0 {
		if len(missing) > maxSuggestedSkills {
			missing = missing[:maxSuggestedSkills]
		}
		suggestions = append(suggestions, model.Suggestion{
			Type:     model.SuggestionSkills,
			Priority: model.PriorityHigh,
			Message:  "Consider adding these skills from the job posting: " + strings.Join(missing, ", "),
		})
	}

	if len(strings.TrimSpace(parsed.Summary)) < minSummaryLen {
		suggestions = append(suggestions, model.Suggestion{
			Type:     model.SuggestionSummary,
			Priority: model.PriorityMedium,
			Message:  "Add a professional summary of at least 50 characters to introduce your background.",
		})
	}

	if parsed.Contact.Email == "" {
		suggestions = append(suggestions, model.Suggestion{
			Type:     model.SuggestionContact,
			Priority: model.PriorityHigh,
			Message:  "Add an email address so recruiters can reach you.",
		})
	}

	if len(parsed.Experience) > 0 && allDescriptionsEmpty(parsed.Experience) {
		suggestions = append(suggestions, model.Suggestion{
			Type:     model.SuggestionExperience,
			Priority: model.PriorityHigh,
			Message:  "Describe your work experience with bullet points that highlight accomplishments.",
		})
	}

	return suggestions
}

func missingSkills(parsed model.ParsedResume, jobText string) []string {
	have := make(map[string]bool, len(parsed.Skills))
	for _, skill := range parsed.Skills {
		have[strings.ToLower(skill)] = true
	}
	var missing []string
	for _, skill := range skills.Extract(jobText, skills.DefaultLimit) {
		if !have[strings.ToLower(skill)] {
			missing = append(missing, skill)
		}
	}
	return missing
}

func allDescriptionsEmpty(entries []model.Experience) bool {
	for _, entry := range entries {
		if len(entry.Description) > 0 {
			return false
		}
	}
	return true
}
