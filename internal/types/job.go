// Package types provides the records shared by the recommendation core, the board service and its transports.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"time"
)

// JobStatus is the moderation state of a job posting.
type JobStatus string

const (
	JobStatusApproved JobStatus = "approved"
	JobStatusRejected JobStatus = "rejected"
	JobStatusPending  JobStatus = "pending"
)

// ParseJobStatus converts a raw string into a JobStatus.
func ParseJobStatus(s string) (JobStatus, error) {
	switch JobStatus(s) {
	case JobStatusApproved, JobStatusRejected, JobStatusPending:
		return JobStatus(s), nil
	default:
		return "", fmt.Errorf("unknown job status: %q", s)
	}
}

// JobPosting is a job or internship listed on the board.
// Field names follow the stored record layout so exported collections load unchanged.
type JobPosting struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"ownerId,omitempty"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Type           string     `json:"type"`
	Location       string     `json:"location"`
	RequiredSkills []string   `json:"requiredSkills"`
	Description    string     `json:"description"`
	Status         JobStatus  `json:"status"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
}

// SearchableFields returns the text fields matched by keyword search, in display order.
func (j JobPosting) SearchableFields() []string {
	return []string{j.Title, j.Company, j.Type, j.Location, j.Description}
}

// IsApproved reports whether the job is visible to students.
func (j JobPosting) IsApproved() bool {
	return j.Status == JobStatusApproved
}

// JobInput is the payload a recruiter submits to post a job.
// RequiredSkills is free-form text and is tokenized on submit.
type JobInput struct {
	Title          string `json:"title" validate:"required"`
	Type           string `json:"type" validate:"required"`
	Location       string `json:"location" validate:"required"`
	RequiredSkills string `json:"requiredSkills"`
	Description    string `json:"description"`
}

// JobQuery narrows a job listing. Zero values mean "any".
type JobQuery struct {
	Status  JobStatus
	OwnerID string
}

// Matches reports whether the job satisfies the query.
func (q JobQuery) Matches(j JobPosting) bool {
	if q.Status != "" && j.Status != q.Status {
		return false
	}
	if q.OwnerID != "" && j.OwnerID != q.OwnerID {
		return false
	}
	return true
}
