package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/smartjob/internal/ranking"
	"github.com/jonathan/smartjob/internal/schemas"
	"github.com/jonathan/smartjob/internal/server"
	"github.com/jonathan/smartjob/internal/skills"
	"github.com/jonathan/smartjob/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one job against a candidate's skills",
	RunE:  runScore,
}

var (
	scoreSkills string
	scoreJob    string
	scoreOutput string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreSkills, "skills", "s", "", "Candidate skills, e.g. \"React, Node.js\" (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to a job JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	markRequired(scoreCmd, "skills", "job")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	var job types.JobPosting
	if err := readSnapshot(cmd, schemas.Job, scoreJob, &job); err != nil {
		return err
	}

	b := ranking.Explain(skills.Tokenize(scoreSkills), job)
	return writeOutput(cmd, scoreOutput, server.ScoreResponse{Score: b.Total(), Breakdown: b})
}
