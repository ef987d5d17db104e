package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/smartjob/internal/server"
)

func recommendedIDs(out server.RecommendResponse) []string {
	ids := make([]string, 0, len(out.Recommendations))
	for _, r := range out.Recommendations {
		ids = append(ids, r.Item.ID)
	}
	return ids
}

func TestRecommendCommand(t *testing.T) {
	jobs := writeTemp(t, "jobs.json", sampleJobsJSON)

	tests := []struct {
		name    string
		args    []string
		wantIDs []string
	}{
		{
			name:    "ranks by score",
			args:    []string{"--skills", "python, pandas, rest"},
			wantIDs: []string{"job_ml_intern", "job_backend_developer"},
		},
		{
			name:    "approved only",
			args:    []string{"--skills", "python, pandas, rest", "--approved-only"},
			wantIDs: []string{"job_ml_intern"},
		},
		{
			name:    "limit",
			args:    []string{"--skills", "python, pandas, rest", "-n", "1"},
			wantIDs: []string{"job_ml_intern"},
		},
		{
			name:    "no matches",
			args:    []string{"--skills", "cobol"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"recommend", "--jobs", jobs}, tt.args...)
			stdout, _, err := runCLI(t, args...)
			require.NoError(t, err)

			out := decodeJSON[server.RecommendResponse](t, stdout)
			assert.Equal(t, tt.wantIDs, recommendedIDs(out))
			assert.Equal(t, len(tt.wantIDs), out.Count)
		})
	}
}

func TestRecommendCommand_Verbose(t *testing.T) {
	jobs := writeTemp(t, "jobs.json", sampleJobsJSON)

	stdout, stderr, err := runCLI(t, "recommend", "--jobs", jobs, "--skills", "react", "--verbose")
	require.NoError(t, err)

	assert.Contains(t, stderr, "CANDIDATE SKILLS")
	assert.Contains(t, stderr, "#1  Frontend Intern @ PixelWorks")
	assert.NotContains(t, stdout, "CANDIDATE SKILLS")
}

func TestRecommendCommand_NegativeLimit(t *testing.T) {
	jobs := writeTemp(t, "jobs.json", sampleJobsJSON)

	_, _, err := runCLI(t, "recommend", "--jobs", jobs, "--skills", "react", "-n", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestRecommendCommand_InvalidJobs(t *testing.T) {
	jobs := writeTemp(t, "jobs.json", `[{"id": "j1", "title": "Dev", "requiredSkills": [], "status": "archived"}]`)

	_, _, err := runCLI(t, "recommend", "--jobs", jobs, "--skills", "react")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid jobs file")
}
