// Package skills recognizes technology and skill mentions in free-form
// resume and job-posting text. Extraction is heuristic pattern matching
// over an alias-normalized vocabulary, not semantic understanding.
package skills

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultLimit is the default cap on extracted skills per document.
const DefaultLimit = 20

const (
	minTokenLen = 2
	maxTokenLen = 29
)

// Header patterns whose line remainder is treated as a skill list.
var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*(?:technical\s+)?(?:skills?|technologies|tech\s+stack|tools)\s*[:\-]\s*(.+)$`),
	regexp.MustCompile(`(?i)\b(?:proficient\s+in|proficiency\s+in|experience\s+with|experienced\s+in|expertise\s+in|familiar\s+with|worked\s+with)\s+(.+)$`),
}

var candidateSplitter = regexp.MustCompile(`[,;|•·]+`)

// Normalize resolves a candidate token to its canonical display form.
// Tokens without an alias entry pass through trimmed.
func Normalize(token string) string {
	trimmed := strings.TrimSpace(token)
	if canonical, ok := aliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// IsValidCandidate reports whether a token plausibly names a skill:
// bounded length, at least one letter, not purely numeric, and not
// generic resume vocabulary.
func IsValidCandidate(token string) bool {
	trimmed := strings.TrimSpace(token)
	if len(trimmed) < minTokenLen || len(trimmed) > maxTokenLen {
		return false
	}
	hasLetter := false
	digitsOnly := true
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if !unicode.IsDigit(r) {
			digitsOnly = false
		}
	}
	if !hasLetter || digitsOnly {
		return false
	}
	return !stoplist[strings.ToLower(trimmed)]
}

// Extract returns up to limit canonical skills found in text, direct
// vocabulary matches first, then header-pattern candidates, deduplicated
// case-insensitively in insertion order. A non-positive limit falls back
// to DefaultLimit.
func Extract(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	found := make([]string, 0, limit)
	seen := make(map[string]bool, limit)

	add := func(skill string) {
		key := strings.ToLower(skill)
		if skill == "" || seen[key] {
			return
		}
		seen[key] = true
		found = append(found, skill)
	}

	lower := strings.ToLower(text)
	for _, skill := range vocabulary {
		if containsToken(lower, strings.ToLower(skill)) {
			add(skill)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		for _, pattern := range headerPatterns {
			m := pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			for _, raw := range candidateSplitter.Split(m[1], -1) {
				candidate := strings.Trim(strings.TrimSpace(raw), ".-*")
				if IsValidCandidate(candidate) {
					add(Normalize(candidate))
				}
			}
		}
	}

	if len(found) > limit {
		found = found[:limit]
	}
	return found
}

// containsToken matches needle in haystack on rough word boundaries so
// short vocabulary entries like "go" do not fire inside unrelated words.
// Both arguments must already be lowercased.
func containsToken(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(needle)
		if boundaryAt(haystack, idx-1) && boundaryAt(haystack, end) {
			return true
		}
		start = idx + 1
	}
}

func boundaryAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	return !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9')
}
