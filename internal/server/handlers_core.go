package server

import (
	"net/http"

	"github.com/jonathan/smartjob/internal/filter"
	"github.com/jonathan/smartjob/internal/ranking"
	"github.com/jonathan/smartjob/internal/skills"
	"github.com/jonathan/smartjob/internal/types"
)

// ScoreResponse is the body returned by POST /score.
type ScoreResponse struct {
	Score     float64           `json:"score"`
	Breakdown ranking.Breakdown `json:"breakdown"`
}

// RecommendResponse is the body returned by recommendation endpoints.
type RecommendResponse struct {
	Recommendations []ranking.Scored[types.JobPosting] `json:"recommendations"`
	Count           int                                `json:"count"`
}

func (s *Server) handleTokenize(w http.ResponseWriter, r *http.Request) {
	var req types.TokenizeRequest
	if err := s.decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.TokenizeResponse{Skills: skills.Tokenize(req.Input)})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := s.decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	b := ranking.Explain(req.Skills, req.Job)
	s.jsonResponse(w, http.StatusOK, ScoreResponse{Score: b.Total(), Breakdown: b})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendRequest
	if err := s.decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	jobs := req.Jobs
	if req.ApprovedOnly {
		jobs = approvedOnly(jobs)
	}
	n := req.N
	if n <= 0 {
		n = s.recommendLimit
	}

	recs := ranking.RecommendScored(req.Skills, jobs, n)
	s.jsonResponse(w, http.StatusOK, RecommendResponse{Recommendations: recs, Count: len(recs)})
}

func (s *Server) handleFilterJobs(w http.ResponseWriter, r *http.Request) {
	var req types.FilterJobsRequest
	if err := s.decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": filter.Jobs(req.Jobs, req.Criteria)})
}

func (s *Server) handleFilterApplicants(w http.ResponseWriter, r *http.Request) {
	var req types.FilterApplicantsRequest
	if err := s.decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"applicants": filter.Applicants(req.Applicants, req.Criteria)})
}

func approvedOnly(jobs []types.JobPosting) []types.JobPosting {
	out := make([]types.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if j.IsApproved() {
			out = append(out, j)
		}
	}
	return out
}

// criteriaFromQuery reads ?keyword= and a comma-separated ?skills= list.
func criteriaFromQuery(r *http.Request) types.FilterCriteria {
	q := r.URL.Query()
	return types.FilterCriteria{
		Keyword: q.Get("keyword"),
		Skills:  skills.Tokenize(q.Get("skills")),
	}
}
