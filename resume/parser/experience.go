package parser

import (
	"regexp"
	"strings"

	"resume-matcher/resume/model"
)

var experienceKeywords = []string{
	"experience", "work experience", "employment",
	"professional experience", "work history", "career",
}

var (
	roleCompanyPattern = regexp.MustCompile(`^(.+?)\s+[-–—|@]\s+(.+)$`)
	durationPattern    = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\s*(?:[-–—]|to)\s*(?:(?:19|20)\d{2}|present|current)\b|\b(?:present|current)\b`)
)

const minDescriptionLen = 20

// ExtractExperience pulls work-history entries from the experience
// section, capped at limit.
func ExtractExperience(text string, limit int) []model.Experience {
	section, ok := FindSection(text, experienceKeywords)
	if !ok {
		return nil
	}

	return collectEntries(section, limit,
		func(line string) (model.Experience, bool) {
			if durationPattern.MatchString(line) {
				return model.Experience{}, false
			}
			m := roleCompanyPattern.FindStringSubmatch(line)
			if m == nil {
				return model.Experience{}, false
			}
			return model.Experience{
				Role:    strings.TrimSpace(m[1]),
				Company: strings.TrimSpace(m[2]),
			}, true
		},
		func(entry *model.Experience, line string) {
			if durationPattern.MatchString(line) && entry.Duration == "" {
				entry.Duration = line
				return
			}
			if stripped, bullet := stripBullet(line); bullet || len(line) > minDescriptionLen {
				entry.Description = append(entry.Description, stripped)
			}
		})
}
