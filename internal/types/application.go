package types

import "time"

// Application records a student applying to a job.
type Application struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	JobID       string    `json:"jobId"`
	AppliedAt   time.Time `json:"appliedAt"`
	Shortlisted bool      `json:"shortlisted"`
}

// Applicant pairs an application with the student who submitted it.
type Applicant struct {
	Application Application `json:"application"`
	Student     User        `json:"student"`
}

// SearchableFields returns the student's fields matched by keyword search.
func (a Applicant) SearchableFields() []string {
	return a.Student.SearchableFields()
}

// Skills returns the student's profile skills.
func (a Applicant) Skills() []string {
	return a.Student.Skills
}

// ApplicationView joins an application with its job for a student's history.
type ApplicationView struct {
	Application Application `json:"application"`
	Job         JobPosting  `json:"job"`
}
