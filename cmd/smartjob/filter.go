package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/smartjob/internal/filter"
	"github.com/jonathan/smartjob/internal/observability"
	"github.com/jonathan/smartjob/internal/schemas"
	"github.com/jonathan/smartjob/internal/skills"
	"github.com/jonathan/smartjob/internal/types"
)

var filterJobsCmd = &cobra.Command{
	Use:   "filter-jobs",
	Short: "Filter jobs by keyword and required skills",
	RunE:  runFilterJobs,
}

var filterApplicantsCmd = &cobra.Command{
	Use:   "filter-applicants",
	Short: "Filter applicants by keyword and profile skills",
	RunE:  runFilterApplicants,
}

var (
	filterJobsPath       string
	filterApplicantsPath string
	filterKeyword        string
	filterSkills         string
	filterOutput         string
	filterVerbose        bool
)

func init() {
	filterJobsCmd.Flags().StringVarP(&filterJobsPath, "jobs", "j", "", "Path to a jobs JSON file (required)")
	filterApplicantsCmd.Flags().StringVarP(&filterApplicantsPath, "applicants", "a", "", "Path to an applicants JSON file (required)")

	for _, c := range []*cobra.Command{filterJobsCmd, filterApplicantsCmd} {
		c.Flags().StringVarP(&filterKeyword, "keyword", "k", "", "Case-insensitive text to search for")
		c.Flags().StringVarP(&filterSkills, "skills", "s", "", "Keep items with at least one of these skills")
		c.Flags().StringVarP(&filterOutput, "out", "o", "", "Path to output JSON file (default stdout)")
		c.Flags().BoolVarP(&filterVerbose, "verbose", "v", false, "Print a filter summary on stderr")
		rootCmd.AddCommand(c)
	}
	markRequired(filterJobsCmd, "jobs")
	markRequired(filterApplicantsCmd, "applicants")
}

func filterCriteria() types.FilterCriteria {
	return types.FilterCriteria{Keyword: filterKeyword, Skills: skills.Tokenize(filterSkills)}
}

func runFilterJobs(cmd *cobra.Command, _ []string) error {
	var jobs []types.JobPosting
	if err := readSnapshot(cmd, schemas.Jobs, filterJobsPath, &jobs); err != nil {
		return err
	}

	criteria := filterCriteria()
	kept := filter.Jobs(jobs, criteria)
	if filterVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintFilterSummary("jobs", criteria, len(kept), len(jobs))
	}
	return writeOutput(cmd, filterOutput, map[string]any{"jobs": kept, "count": len(kept)})
}

func runFilterApplicants(cmd *cobra.Command, _ []string) error {
	var applicants []types.Applicant
	if err := readSnapshot(cmd, schemas.Applicants, filterApplicantsPath, &applicants); err != nil {
		return err
	}

	criteria := filterCriteria()
	kept := filter.Applicants(applicants, criteria)
	if filterVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintFilterSummary("applicants", criteria, len(kept), len(applicants))
	}
	return writeOutput(cmd, filterOutput, map[string]any{"applicants": kept, "count": len(kept)})
}
