package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/smartjob/internal/board"
	"github.com/jonathan/smartjob/internal/observability"
	"github.com/jonathan/smartjob/internal/ranking"
	"github.com/jonathan/smartjob/internal/schemas"
	"github.com/jonathan/smartjob/internal/server"
	"github.com/jonathan/smartjob/internal/skills"
	"github.com/jonathan/smartjob/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank jobs for a candidate's skills",
	Long:  "Scores every job in a jobs file against the candidate's skills, drops jobs that do not match at all, and prints the best matches first.",
	RunE:  runRecommend,
}

var (
	recommendSkills       string
	recommendJobs         string
	recommendN            int
	recommendApprovedOnly bool
	recommendOutput       string
	recommendVerbose      bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendSkills, "skills", "s", "", "Candidate skills, e.g. \"Python, Pandas\" (required)")
	recommendCmd.Flags().StringVarP(&recommendJobs, "jobs", "j", "", "Path to a jobs JSON file (required)")
	recommendCmd.Flags().IntVarP(&recommendN, "limit", "n", board.DefaultRecommendLimit, "Maximum number of jobs to return")
	recommendCmd.Flags().BoolVar(&recommendApprovedOnly, "approved-only", false, "Ignore jobs that are not approved")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Explain each recommendation on stderr")
	markRequired(recommendCmd, "skills", "jobs")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	if recommendN < 0 {
		return fmt.Errorf("--limit must not be negative, got %d", recommendN)
	}

	var jobs []types.JobPosting
	if err := readSnapshot(cmd, schemas.Jobs, recommendJobs, &jobs); err != nil {
		return err
	}
	if recommendApprovedOnly {
		approved := make([]types.JobPosting, 0, len(jobs))
		for _, j := range jobs {
			if j.IsApproved() {
				approved = append(approved, j)
			}
		}
		jobs = approved
	}

	candidate := skills.Tokenize(recommendSkills)
	recs := ranking.RecommendScored(candidate, jobs, recommendN)

	if recommendVerbose {
		p := observability.NewPrinter(cmd.ErrOrStderr())
		p.PrintCandidate(candidate)
		p.PrintRecommendations(candidate, recs)
	}

	return writeOutput(cmd, recommendOutput, server.RecommendResponse{Recommendations: recs, Count: len(recs)})
}
