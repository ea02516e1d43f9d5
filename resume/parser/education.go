package parser

import (
	"regexp"
	"strings"

	"resume-matcher/resume/model"
)

var educationKeywords = []string{
	"education", "academic", "qualification", "degree",
	"university", "college",
}

var (
	degreePattern = regexp.MustCompile(`(?i)\b(?:bachelor|master|phd|ph\.d|doctorate|diploma|certificate|b\.?s\.?|m\.?s\.?|b\.?a\.?|m\.?a\.?|b\.?tech|m\.?tech)\b`)
	yearPattern   = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	gpaPattern    = regexp.MustCompile(`(?i)\bgpa\s*[:\-]?\s*([0-9]+(?:\.[0-9]+)?)`)
)

const minInstitutionLen = 5

// ExtractEducation pulls education entries from the education section.
// Entries are uncapped; a resume listing many credentials keeps them all.
func ExtractEducation(text string) []model.Education {
	section, ok := FindSection(text, educationKeywords)
	if !ok {
		return nil
	}

	return collectEntries(section, 0,
		func(line string) (model.Education, bool) {
			if !degreePattern.MatchString(line) {
				return model.Education{}, false
			}
			entry := model.Education{Degree: line}
			if year := yearPattern.FindString(line); year != "" {
				entry.Year = year
			}
			if m := gpaPattern.FindStringSubmatch(line); m != nil {
				entry.GPA = m[1]
			}
			return entry, true
		},
		func(entry *model.Education, line string) {
			if entry.Institution != "" {
				return
			}
			if len(line) > minInstitutionLen && !yearPattern.MatchString(line) {
				entry.Institution = strings.TrimSpace(line)
			}
		})
}
