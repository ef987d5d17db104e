package types

// TokenizeRequest is the body of a tokenize call.
type TokenizeRequest struct {
	Input string `json:"input"`
}

// TokenizeResponse holds the canonical token list.
type TokenizeResponse struct {
	Skills []string `json:"skills"`
}

// ScoreRequest scores one job for a candidate.
type ScoreRequest struct {
	Skills []string   `json:"skills"`
	Job    JobPosting `json:"job"`
}

// RecommendRequest ranks a snapshot of jobs for a candidate.
// N <= 0 means the server's default.
type RecommendRequest struct {
	Skills       []string     `json:"skills"`
	Jobs         []JobPosting `json:"jobs"`
	N            int          `json:"n,omitempty" validate:"gte=0,lte=100"`
	ApprovedOnly bool         `json:"approvedOnly,omitempty"`
}

// FilterJobsRequest filters a snapshot of jobs.
type FilterJobsRequest struct {
	Jobs     []JobPosting   `json:"jobs"`
	Criteria FilterCriteria `json:"criteria"`
}

// FilterApplicantsRequest filters a snapshot of applicants.
type FilterApplicantsRequest struct {
	Applicants []Applicant    `json:"applicants"`
	Criteria   FilterCriteria `json:"criteria"`
}
