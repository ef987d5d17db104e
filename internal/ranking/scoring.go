// Package ranking scores jobs against a candidate's skills and orders them for recommendation.
package ranking

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/jonathan/smartjob/internal/skills"
	"github.com/jonathan/smartjob/internal/types"
)

// Scoring constants
const (
	requirementMatchPoints = 1.0
	keywordBonusPoints     = 0.5

	// minKeywordLength keeps very short skills from matching inside unrelated
	// words. It is measured in UTF-16 code units.
	minKeywordLength = 3
)

// Breakdown explains how a job's score was assembled.
type Breakdown struct {
	RequirementOverlap float64  `json:"requirementOverlap"`
	KeywordBonus       float64  `json:"keywordBonus"`
	MatchedSkills      []string `json:"matchedSkills"`
	KeywordHits        []string `json:"keywordHits"`
	Notes              string   `json:"notes"`
}

// Total returns the job's relevance score.
func (b Breakdown) Total() float64 {
	return b.RequirementOverlap + b.KeywordBonus
}

// Score computes the relevance of a job for the given candidate skills.
//
// Each candidate skill earns one point when it and some required skill
// contain one another as a substring (in either direction), and half a point
// when it is at least three characters long and appears in the job's title
// or description. The result is never negative.
func Score(candidateSkills []string, job types.JobPosting) float64 {
	return Explain(candidateSkills, job).Total()
}

// Explain scores a job like Score and records which skills contributed.
func Explain(candidateSkills []string, job types.JobPosting) Breakdown {
	required := skills.Lower(job.RequiredSkills)
	text := strings.ToLower(job.Title + " " + job.Description)

	b := Breakdown{
		MatchedSkills: []string{},
		KeywordHits:   []string{},
	}
	for _, skill := range candidateSkills {
		s := strings.ToLower(skill)
		if s == "" {
			continue
		}
		if overlapsAny(s, required) {
			b.RequirementOverlap += requirementMatchPoints
			b.MatchedSkills = append(b.MatchedSkills, skill)
		}
		if utf16Len(s) >= minKeywordLength && strings.Contains(text, s) {
			b.KeywordBonus += keywordBonusPoints
			b.KeywordHits = append(b.KeywordHits, skill)
		}
	}
	b.Notes = generateNotes(b, len(required))
	return b
}

// utf16Len counts s in UTF-16 code units, so characters outside the BMP
// count twice.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// overlapsAny reports whether s and any required skill contain one another.
func overlapsAny(s string, required []string) bool {
	for _, js := range required {
		if strings.Contains(js, s) || strings.Contains(s, js) {
			return true
		}
	}
	return false
}

// generateNotes creates a brief explanation of the score.
func generateNotes(b Breakdown, requiredCount int) string {
	var parts []string

	switch n := len(b.MatchedSkills); {
	case n == 0:
		parts = append(parts, "No required skill matches")
	case requiredCount > 0 && n >= requiredCount:
		parts = append(parts, fmt.Sprintf("Covers all required skills (%s)", strings.Join(b.MatchedSkills, ", ")))
	default:
		parts = append(parts, fmt.Sprintf("Matches %d required skill(s) (%s)", n, strings.Join(b.MatchedSkills, ", ")))
	}

	if len(b.KeywordHits) > 0 {
		parts = append(parts, fmt.Sprintf("Mentioned in posting: %s", strings.Join(b.KeywordHits, ", ")))
	}

	return strings.Join(parts, ". ")
}
