package parser

import "strings"

// Lines shorter than this may act as section headers; longer lines are
// assumed to be prose even when they contain a section keyword.
const maxHeaderLen = 50

// majorSectionKeywords terminate any section regardless of which section
// is being extracted.
var majorSectionKeywords = []string{
	"experience", "education", "skills", "projects", "certifications",
	"awards", "publications", "references", "interests", "hobbies",
}

// FindSection returns the lines strictly between the first header line
// containing one of startKeywords and the next major section header. The
// second return value is false when no start header exists.
func FindSection(text string, startKeywords []string) (string, bool) {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if isHeaderLine(line, startKeywords) {
			start = i
			break
		}
	}
	if start == -1 {
		return "", false
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if isHeaderLine(lines[i], majorSectionKeywords) {
			end = i
			break
		}
	}

	return strings.Join(lines[start+1:end], "\n"), true
}

func isHeaderLine(line string, keywords []string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(line))
	if trimmed == "" || len(trimmed) >= maxHeaderLen {
		return false
	}
	for _, keyword := range keywords {
		if strings.Contains(trimmed, keyword) {
			return true
		}
	}
	return false
}
