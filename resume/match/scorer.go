// Package match scores a parsed resume against a job posting and derives
// rule-based improvement suggestions. Both operations are pure, so one
// resume can be ranked against many job texts concurrently.
package match

import (
	"math"
	"strings"

	"resume-matcher/resume/model"
	"resume-matcher/resume/skills"
)

const (
	skillWeight      = 0.7
	similarityWeight = 0.3

	// Cap on derived matching/missing skill lists.
	maxDerivedSkills = 10
)

// Match scores parsed against jobText and reports which job skills the
// resume covers. The score is an integer in [0,100]; empty resume text
// or empty job text scores 0 deterministically.
func Match(parsed model.ParsedResume, jobText string) model.MatchResult {
	result := model.MatchResult{
		MatchingSkills: []string{},
		MissingSkills:  []string{},
	}
	if strings.TrimSpace(parsed.RawText) == "" || strings.TrimSpace(jobText) == "" {
		return result
	}

	jobSkills := skills.Extract(jobText, skills.DefaultLimit)
	have := make(map[string]bool, len(parsed.Skills))
	for _, skill := range parsed.Skills {
		have[strings.ToLower(skill)] = true
	}
	for _, skill := range jobSkills {
		if have[strings.ToLower(skill)] {
			result.MatchingSkills = append(result.MatchingSkills, skill)
		} else {
			result.MissingSkills = append(result.MissingSkills, skill)
		}
	}

	skillScore := 0.0
	if len(jobSkills) > 0 {
		skillScore = 100 * float64(len(result.MatchingSkills)) / float64(len(jobSkills))
	}
	textSimilarity := jaccardSimilarity(parsed.RawText, jobText)

	result.Score = clampScore(int(math.Round(skillScore*skillWeight + textSimilarity*similarityWeight)))
	if len(result.MatchingSkills) > maxDerivedSkills {
		result.MatchingSkills = result.MatchingSkills[:maxDerivedSkills]
	}
	if len(result.MissingSkills) > maxDerivedSkills {
		result.MissingSkills = result.MissingSkills[:maxDerivedSkills]
	}
	return result
}

// Score is a convenience wrapper returning only the compatibility score.
func Score(parsed model.ParsedResume, jobText string) int {
	return Match(parsed, jobText).Score
}

// jaccardSimilarity computes 100 * |A∩B| / |A∪B| over the stop-word
// filtered word sets of the two texts. Words are not stemmed.
func jaccardSimilarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)

	intersection := 0
	union := len(setB)
	for word := range setA {
		if setB[word] {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return 100 * float64(intersection) / float64(union)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
