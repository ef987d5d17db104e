package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const sampleJobsJSON = `[
  {"id": "job_frontend_intern", "title": "Frontend Intern", "company": "PixelWorks", "type": "Internship",
   "location": "Remote", "requiredSkills": ["JavaScript", "HTML", "CSS", "React"],
   "description": "Work with the UI team to build components.", "status": "approved"},
  {"id": "job_backend_developer", "title": "Backend Developer", "company": "DataForge", "type": "Full-time",
   "location": "Hybrid - Lagos", "requiredSkills": ["Node.js", "Express", "MongoDB", "REST"],
   "description": "Build APIs and services at scale.", "status": "pending"},
  {"id": "job_ml_intern", "title": "ML Intern", "company": "InsightAI", "type": "Internship",
   "location": "Remote", "requiredSkills": ["Python", "Pandas", "Machine Learning"],
   "description": "Assist with data pipelines and model training.", "status": "approved"}
]`

// runCLI executes the root command in-process and returns stdout and stderr.
// Flags are reset first because cobra binds them to package variables.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func decodeJSON[T any](t *testing.T, data string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(data), &v), data)
	return v
}
