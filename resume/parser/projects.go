package parser

import (
	"regexp"
	"strings"

	"resume-matcher/resume/model"
)

var projectKeywords = []string{
	"projects", "personal projects", "side projects", "portfolio",
}

var (
	bulletTitlePattern = regexp.MustCompile(`^[•\-*·]\s*[A-Z]`)
	colonTitlePattern  = regexp.MustCompile(`^[A-Z][A-Za-z0-9 .+#/\-]*:`)
)

const minProjectLineLen = 10

// ExtractProjects pulls project entries from the projects section,
// capped at limit.
func ExtractProjects(text string, limit int) []model.Project {
	section, ok := FindSection(text, projectKeywords)
	if !ok {
		return nil
	}

	return collectEntries(section, limit,
		func(line string) (model.Project, bool) {
			if !bulletTitlePattern.MatchString(line) && !colonTitlePattern.MatchString(line) {
				return model.Project{}, false
			}
			stripped, _ := stripBullet(line)
			name, description := stripped, ""
			if idx := strings.Index(stripped, ":"); idx >= 0 {
				name = strings.TrimSpace(stripped[:idx])
				description = strings.TrimSpace(stripped[idx+1:])
			}
			return model.Project{Name: name, Description: description}, true
		},
		func(entry *model.Project, line string) {
			if len(line) <= minProjectLineLen {
				return
			}
			if entry.Description == "" {
				entry.Description = line
				return
			}
			entry.Description += " " + line
		})
}
