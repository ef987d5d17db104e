package server

import (
	"net/http"

	"github.com/jonathan/smartjob/internal/types"
)

// handleSignup registers a student or recruiter and returns a session token.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req types.SignupRequest
	if err := s.decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	user, err := s.board.Signup(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.issueToken(w, http.StatusCreated, *user)
}

// handleLogin checks credentials for the requested role and returns a session token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := s.decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	user, err := s.board.Login(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.issueToken(w, http.StatusOK, *user)
}

func (s *Server) issueToken(w http.ResponseWriter, status int, user types.User) {
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.log.Error("failed to generate token", "user_id", user.ID, "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	s.jsonResponse(w, status, types.LoginResponse{User: user, Token: token})
}
