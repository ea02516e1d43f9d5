// Package parser turns unstructured resume text into a typed
// model.ParsedResume. All extractors are total over string input: an
// absent section yields an empty value, never an error, so a sparse or
// malformed document still parses.
package parser

import (
	"resume-matcher/resume/model"
	"resume-matcher/resume/skills"
)

// Limits carries the extraction caps. The zero value of any field falls
// back to its default, so callers can override selectively.
type Limits struct {
	MaxSkills     int
	MaxExperience int
	MaxProjects   int
	MaxSummaryLen int
}

// DefaultLimits returns the standard extraction caps.
func DefaultLimits() Limits {
	return Limits{
		MaxSkills:     skills.DefaultLimit,
		MaxExperience: 5,
		MaxProjects:   5,
		MaxSummaryLen: 500,
	}
}

func (l Limits) withDefaults() Limits {
	defaults := DefaultLimits()
	if l.MaxSkills <= 0 {
		l.MaxSkills = defaults.MaxSkills
	}
	if l.MaxExperience <= 0 {
		l.MaxExperience = defaults.MaxExperience
	}
	if l.MaxProjects <= 0 {
		l.MaxProjects = defaults.MaxProjects
	}
	if l.MaxSummaryLen <= 0 {
		l.MaxSummaryLen = defaults.MaxSummaryLen
	}
	return l
}

// Parse runs every extractor over the raw text and assembles the
// result. Parsing is pure and deterministic: identical input yields an
// identical ParsedResume.
func Parse(text string, limits Limits) model.ParsedResume {
	limits = limits.withDefaults()
	return model.ParsedResume{
		Skills:     skills.Extract(text, limits.MaxSkills),
		Experience: ExtractExperience(text, limits.MaxExperience),
		Education:  ExtractEducation(text),
		Summary:    ExtractSummary(text, limits.MaxSummaryLen),
		Contact:    ExtractContact(text),
		Projects:   ExtractProjects(text, limits.MaxProjects),
		RawText:    text,
	}
}
