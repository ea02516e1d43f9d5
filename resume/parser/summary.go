package parser

import (
	"regexp"
	"strings"
)

var summaryKeywords = []string{
	"summary", "objective", "profile", "about", "overview", "introduction",
}

var paragraphSplitter = regexp.MustCompile(`\n\s*\n`)

const (
	summaryMaxLines         = 5
	fallbackParagraphMinLen = 100
	fallbackParagraphMaxLen = 500
)

// ExtractSummary returns the profile summary: the first lines of the
// summary section, or, failing that, the first paragraph sized like a
// summary blurb. maxLen bounds the returned string.
func ExtractSummary(text string, maxLen int) string {
	if section, ok := FindSection(text, summaryKeywords); ok {
		var kept []string
		for _, raw := range strings.Split(section, "\n") {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			kept = append(kept, line)
			if len(kept) == summaryMaxLines {
				break
			}
		}
		return truncate(strings.Join(kept, " "), maxLen)
	}

	for _, raw := range paragraphSplitter.Split(text, -1) {
		paragraph := strings.TrimSpace(raw)
		if len(paragraph) >= fallbackParagraphMinLen && len(paragraph) < fallbackParagraphMaxLen {
			return paragraph
		}
	}
	return ""
}

func truncate(s string, maxLen int) string {
	if maxLen > 0 && len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}
