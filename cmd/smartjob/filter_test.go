package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/smartjob/internal/types"
)

func TestFilterJobsCommand(t *testing.T) {
	jobs := writeTemp(t, "jobs.json", sampleJobsJSON)

	stdout, _, err := runCLI(t, "filter-jobs", "--jobs", jobs, "--keyword", "INTERN")
	require.NoError(t, err)

	out := decodeJSON[struct {
		Jobs  []types.JobPosting `json:"jobs"`
		Count int                `json:"count"`
	}](t, stdout)
	require.Equal(t, 2, out.Count)
	assert.Equal(t, "job_frontend_intern", out.Jobs[0].ID)
	assert.Equal(t, "job_ml_intern", out.Jobs[1].ID)

	stdout, stderr, err := runCLI(t, "filter-jobs", "--jobs", jobs, "--skills", "mongodb, sql", "-v")
	require.NoError(t, err)
	out = decodeJSON[struct {
		Jobs  []types.JobPosting `json:"jobs"`
		Count int                `json:"count"`
	}](t, stdout)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "job_backend_developer", out.Jobs[0].ID)
	assert.Contains(t, stderr, "Kept 1 of 3 jobs")
}

func TestFilterApplicantsCommand(t *testing.T) {
	applicants := writeTemp(t, "applicants.json", `[
		{"application": {"id": "a1", "userId": "u1", "jobId": "j1"},
		 "student": {"id": "u1", "name": "Ada Lovelace", "email": "ada@example.com", "skills": ["Python"]}},
		{"application": {"id": "a2", "userId": "u2", "jobId": "j1"},
		 "student": {"id": "u2", "name": "Grace Hopper", "email": "grace@example.com",
		             "portfolioUrl": "https://grace.dev", "skills": ["COBOL"]}}
	]`)

	stdout, _, err := runCLI(t, "filter-applicants", "--applicants", applicants, "--keyword", "grace.dev")
	require.NoError(t, err)

	out := decodeJSON[struct {
		Applicants []types.Applicant `json:"applicants"`
		Count      int               `json:"count"`
	}](t, stdout)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "u2", out.Applicants[0].Student.ID)

	// Flags from the previous run must not leak into this one.
	stdout, _, err = runCLI(t, "filter-applicants", "--applicants", applicants)
	require.NoError(t, err)
	out = decodeJSON[struct {
		Applicants []types.Applicant `json:"applicants"`
		Count      int               `json:"count"`
	}](t, stdout)
	assert.Equal(t, 2, out.Count)
}

func TestFilterApplicantsCommand_Invalid(t *testing.T) {
	applicants := writeTemp(t, "applicants.json", `[{"application": {"id": "a1"}}]`)

	_, _, err := runCLI(t, "filter-applicants", "--applicants", applicants)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid applicants file")
}
