package server

import (
	"net/http"

	"github.com/jonathan/smartjob/internal/server/middleware"
	"github.com/jonathan/smartjob/internal/types"
)

// ListJobsResponse wraps a list of job postings.
type ListJobsResponse struct {
	Jobs  []types.JobPosting `json:"jobs"`
	Count int                `json:"count"`
}

// handleListJobs lists approved jobs narrowed by ?keyword= and ?skills=.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.board.SearchJobs(r.Context(), criteriaFromQuery(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ListJobsResponse{Jobs: jobs, Count: len(jobs)})
}

// handleGetJob returns one job. Unapproved jobs are only visible to their
// owner and administrators.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSession(r)

	job, err := s.board.GetJob(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !job.IsApproved() && sess.Role != types.RoleAdmin && job.OwnerID != sess.UserID {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleCreateJob posts a job for the authenticated recruiter.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSession(r)

	var input types.JobInput
	if err := s.decodeJSON(r, &input); err != nil {
		s.writeError(w, err)
		return
	}

	job, err := s.board.AddJob(r.Context(), sess.UserID, input)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, job)
}

// handleMyJobs lists the recruiter's own postings in every status.
func (s *Server) handleMyJobs(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSession(r)

	jobs, err := s.board.ListJobs(r.Context(), types.JobQuery{OwnerID: sess.UserID})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ListJobsResponse{Jobs: jobs, Count: len(jobs)})
}

// handleDeleteJob deletes a job and its applications.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSession(r)

	if err := s.board.DeleteJob(r.Context(), sess.UserID, r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleJobApplicants lists a job's applicants, optionally filtered.
func (s *Server) handleJobApplicants(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSession(r)

	applicants, err := s.board.FilterApplicants(r.Context(), sess.UserID, r.PathValue("id"), criteriaFromQuery(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"applicants": applicants, "count": len(applicants)})
}

// handleToggleShortlist flips the shortlist flag on an application.
func (s *Server) handleToggleShortlist(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSession(r)

	app, err := s.board.ToggleShortlist(r.Context(), sess.UserID, r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, app)
}
