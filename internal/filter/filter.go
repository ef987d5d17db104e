// Package filter narrows job and applicant lists by keyword and skill criteria.
package filter

import (
	"strings"

	"github.com/jonathan/smartjob/internal/skills"
	"github.com/jonathan/smartjob/internal/textmatch"
	"github.com/jonathan/smartjob/internal/types"
)

// Jobs returns the jobs matching the criteria, in their original order.
// The keyword is searched in title, company, type, location and description.
// When skills are given, a job must require at least one of them exactly
// (ignoring case).
func Jobs(jobs []types.JobPosting, c types.FilterCriteria) []types.JobPosting {
	return apply(jobs, c, types.JobPosting.SearchableFields, func(j types.JobPosting) []string {
		return j.RequiredSkills
	})
}

// Applicants returns the applicants matching the criteria, in their original order.
// The keyword is searched in the student's name, email, resume URL and
// portfolio URL; skills are matched against the student's profile skills.
func Applicants(applicants []types.Applicant, c types.FilterCriteria) []types.Applicant {
	return apply(applicants, c, types.Applicant.SearchableFields, types.Applicant.Skills)
}

func apply[T any](items []T, c types.FilterCriteria, fields, itemSkills func(T) []string) []T {
	if c.IsEmpty() {
		return append(make([]T, 0, len(items)), items...)
	}
	wanted := skillSet(c.Skills)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !textmatch.Matches(fields(item), c.Keyword) {
			continue
		}
		if len(wanted) > 0 && !hasAny(itemSkills(item), wanted) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// skillSet returns the lower-cased criteria skills, or nil when none are given.
func skillSet(criteria []string) map[string]struct{} {
	tokens := skills.Normalize(criteria)
	if len(tokens) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(tokens))
	for _, s := range tokens {
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}

func hasAny(itemSkills []string, wanted map[string]struct{}) bool {
	for _, s := range itemSkills {
		if _, ok := wanted[strings.ToLower(s)]; ok {
			return true
		}
	}
	return false
}
