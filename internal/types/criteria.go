package types

import "strings"

// FilterCriteria narrows a list of jobs or applicants without re-ranking it.
// An empty Keyword and empty Skills match everything.
type FilterCriteria struct {
	Keyword string   `json:"keyword,omitempty"`
	Skills  []string `json:"skills,omitempty"`
}

// IsEmpty reports whether the criteria match every item.
func (c FilterCriteria) IsEmpty() bool {
	return len(c.Skills) == 0 && strings.TrimSpace(c.Keyword) == ""
}
