package ranking

import (
	"slices"
	"sort"

	"github.com/jonathan/smartjob/internal/types"
)

// Scored pairs an item with its relevance score.
type Scored[T any] struct {
	Item  T       `json:"item"`
	Score float64 `json:"score"`
}

// RankScored orders items by score, highest first. Items with equal scores
// keep their input order. The input slice is not modified.
func RankScored[T any](items []Scored[T]) []Scored[T] {
	ranked := slices.Clone(items)
	if ranked == nil {
		ranked = []Scored[T]{}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Rank orders items by score like RankScored and drops the scores.
func Rank[T any](items []Scored[T]) []T {
	ranked := RankScored(items)
	out := make([]T, len(ranked))
	for i, s := range ranked {
		out[i] = s.Item
	}
	return out
}

// TopN returns the first n items. Negative n is treated as zero and n larger
// than the list returns the whole list.
func TopN[T any](items []T, n int) []T {
	n = max(0, min(n, len(items)))
	return slices.Clone(items[:n])
}

// RecommendScored scores every job for the candidate, drops jobs that score
// zero, and returns the best n with their scores.
func RecommendScored(candidateSkills []string, jobs []types.JobPosting, n int) []Scored[types.JobPosting] {
	if len(candidateSkills) == 0 {
		return []Scored[types.JobPosting]{}
	}

	scored := make([]Scored[types.JobPosting], 0, len(jobs))
	for _, job := range jobs {
		score := Score(candidateSkills, job)
		if score <= 0 {
			continue
		}
		scored = append(scored, Scored[types.JobPosting]{Item: job, Score: score})
	}

	return TopN(RankScored(scored), n)
}

// Recommend returns the best n jobs for the candidate's skills, most relevant first.
func Recommend(candidateSkills []string, jobs []types.JobPosting, n int) []types.JobPosting {
	recommended := RecommendScored(candidateSkills, jobs, n)
	out := make([]types.JobPosting, len(recommended))
	for i, r := range recommended {
		out[i] = r.Item
	}
	return out
}
