package mcp

import (
	"context"
	"errors"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonathan/smartjob/internal/filter"
	"github.com/jonathan/smartjob/internal/logging"
	"github.com/jonathan/smartjob/internal/ranking"
	"github.com/jonathan/smartjob/internal/skills"
	"github.com/jonathan/smartjob/internal/types"
)

const (
	defaultRecommendN = 6
	maxRecommendN     = 100
)

type TokenizeInput struct {
	Input string `json:"input" jsonschema:"Free-form skill text, comma or whitespace separated"`
}

type TokenizeOutput struct {
	Skills []string `json:"skills" jsonschema:"Canonical de-duplicated skill tokens"`
}

type ScoreInput struct {
	Skills []string `json:"skills" jsonschema:"Candidate skills"`
	Job    JobArg   `json:"job" jsonschema:"Job to score"`
}

type ScoreOutput struct {
	Score              float64  `json:"score" jsonschema:"Relevance score, higher is better"`
	RequirementOverlap float64  `json:"requirementOverlap"`
	KeywordBonus       float64  `json:"keywordBonus"`
	MatchedSkills      []string `json:"matchedSkills"`
	KeywordHits        []string `json:"keywordHits"`
	Notes              string   `json:"notes"`
}

type RecommendInput struct {
	Skills       []string `json:"skills" jsonschema:"Candidate skills"`
	Jobs         []JobArg `json:"jobs" jsonschema:"Jobs to rank"`
	N            int      `json:"n,omitempty" jsonschema:"How many jobs to return (default 6, max 100)"`
	ApprovedOnly bool     `json:"approvedOnly,omitempty" jsonschema:"Ignore jobs whose status is not approved"`
}

type ScoredJob struct {
	Job   JobArg  `json:"job"`
	Score float64 `json:"score"`
}

type RecommendOutput struct {
	Recommendations []ScoredJob `json:"recommendations"`
	Count           int         `json:"count"`
}

type FilterJobsInput struct {
	Jobs    []JobArg `json:"jobs" jsonschema:"Jobs to filter"`
	Keyword string   `json:"keyword,omitempty" jsonschema:"Case-insensitive text to find in title, company, type, location or description"`
	Skills  []string `json:"skills,omitempty" jsonschema:"Keep jobs requiring at least one of these skills"`
}

type FilterJobsOutput struct {
	Jobs  []JobArg `json:"jobs"`
	Count int      `json:"count"`
}

type FilterApplicantsInput struct {
	Applicants []ApplicantArg `json:"applicants" jsonschema:"Applicants to filter"`
	Keyword    string         `json:"keyword,omitempty" jsonschema:"Case-insensitive text to find in name, email, resume or portfolio URL"`
	Skills     []string       `json:"skills,omitempty" jsonschema:"Keep applicants with at least one of these skills"`
}

type FilterApplicantsOutput struct {
	Applicants []ApplicantArg `json:"applicants"`
	Count      int            `json:"count"`
}

// RegisterTools adds the read-only recommendation and filter tools to server.
func RegisterTools(server *sdkmcp.Server, log *logging.Logger) {
	readOnly := &sdkmcp.ToolAnnotations{ReadOnlyHint: true}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "tokenize_skills",
		Description: "Split free-form skill text into a canonical list of distinct skills (max 30).",
		Annotations: readOnly,
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in TokenizeInput) (*sdkmcp.CallToolResult, TokenizeOutput, error) {
		return nil, TokenizeOutput{Skills: nonNil(skills.Tokenize(in.Input))}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "score_job",
		Description: "Score how well a job matches a candidate's skills and explain the score.",
		Annotations: readOnly,
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in ScoreInput) (*sdkmcp.CallToolResult, ScoreOutput, error) {
		b := ranking.Explain(in.Skills, in.Job.posting())
		return nil, ScoreOutput{
			Score:              b.Total(),
			RequirementOverlap: b.RequirementOverlap,
			KeywordBonus:       b.KeywordBonus,
			MatchedSkills:      nonNil(b.MatchedSkills),
			KeywordHits:        nonNil(b.KeywordHits),
			Notes:              b.Notes,
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "recommend_jobs",
		Description: "Rank jobs for a candidate's skills, best first, dropping jobs that do not match at all.",
		Annotations: readOnly,
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in RecommendInput) (*sdkmcp.CallToolResult, RecommendOutput, error) {
		if in.N < 0 || in.N > maxRecommendN {
			return nil, RecommendOutput{}, errors.New("n must be between 0 and 100")
		}
		n := in.N
		if n == 0 {
			n = defaultRecommendN
		}

		jobs := postings(in.Jobs)
		if in.ApprovedOnly {
			kept := jobs[:0]
			for _, j := range jobs {
				if j.IsApproved() {
					kept = append(kept, j)
				}
			}
			jobs = kept
		}

		recs := ranking.RecommendScored(in.Skills, jobs, n)
		out := RecommendOutput{Recommendations: make([]ScoredJob, len(recs)), Count: len(recs)}
		for i, r := range recs {
			out.Recommendations[i] = ScoredJob{Job: jobArg(r.Item), Score: r.Score}
		}
		log.Debug("recommend_jobs", "jobs", len(in.Jobs), "returned", out.Count)
		return nil, out, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "filter_jobs",
		Description: "Filter jobs by keyword and required skills, keeping their order.",
		Annotations: readOnly,
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in FilterJobsInput) (*sdkmcp.CallToolResult, FilterJobsOutput, error) {
		kept := filter.Jobs(postings(in.Jobs), types.FilterCriteria{Keyword: in.Keyword, Skills: in.Skills})
		out := FilterJobsOutput{Jobs: make([]JobArg, len(kept)), Count: len(kept)}
		for i, j := range kept {
			out.Jobs[i] = jobArg(j)
		}
		return nil, out, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "filter_applicants",
		Description: "Filter applicants by keyword and profile skills, keeping their order.",
		Annotations: readOnly,
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in FilterApplicantsInput) (*sdkmcp.CallToolResult, FilterApplicantsOutput, error) {
		applicants := make([]types.Applicant, len(in.Applicants))
		for i, a := range in.Applicants {
			applicants[i] = a.applicant()
		}
		kept := filter.Applicants(applicants, types.FilterCriteria{Keyword: in.Keyword, Skills: in.Skills})
		out := FilterApplicantsOutput{Applicants: make([]ApplicantArg, len(kept)), Count: len(kept)}
		for i, a := range kept {
			out.Applicants[i] = applicantArg(a)
		}
		return nil, out, nil
	})
}
