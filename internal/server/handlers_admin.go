package server

import (
	"net/http"

	"github.com/jonathan/smartjob/internal/types"
)

func (s *Server) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.board.ListUsers(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"users": users, "count": len(users)})
}

func (s *Server) handleAdminToggleUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.board.ToggleUserActive(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}

func (s *Server) handleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.board.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAdminListJobs lists every job, optionally narrowed by ?status=.
func (s *Server) handleAdminListJobs(w http.ResponseWriter, r *http.Request) {
	var q types.JobQuery
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := types.ParseJobStatus(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		q.Status = status
	}

	jobs, err := s.board.ListJobs(r.Context(), q)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ListJobsResponse{Jobs: jobs, Count: len(jobs)})
}

func (s *Server) handleAdminApproveJob(w http.ResponseWriter, r *http.Request) {
	s.setJobStatus(w, r, types.JobStatusApproved)
}

func (s *Server) handleAdminRejectJob(w http.ResponseWriter, r *http.Request) {
	s.setJobStatus(w, r, types.JobStatusRejected)
}

func (s *Server) setJobStatus(w http.ResponseWriter, r *http.Request, status types.JobStatus) {
	job, err := s.board.SetJobStatus(r.Context(), r.PathValue("id"), status)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleAdminAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := s.board.Analytics(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, analytics)
}
