package server

import (
	"net/http"
	"strconv"

	"github.com/jonathan/smartjob/internal/server/middleware"
	"github.com/jonathan/smartjob/internal/types"
)

const maxRecommendations = 50

// parseQueryInt reads a non-negative integer query parameter, capped at maxValue when maxValue > 0.
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSession(r)

	user, err := s.board.CurrentUser(r.Context(), sess.UserID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSession(r)

	var update types.ProfileUpdate
	if err := s.decodeJSON(r, &update); err != nil {
		s.writeError(w, err)
		return
	}

	user, err := s.board.UpdateProfile(r.Context(), sess.UserID, update)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, user)
}

// handleMyRecommendations ranks approved jobs against the student's profile skills.
func (s *Server) handleMyRecommendations(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSession(r)
	n := parseQueryInt(r, "n", s.recommendLimit, maxRecommendations)

	recs, err := s.board.Recommendations(r.Context(), sess.UserID, n)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, RecommendResponse{Recommendations: recs, Count: len(recs)})
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSession(r)

	app, err := s.board.Apply(r.Context(), sess.UserID, r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, app)
}

func (s *Server) handleMyApplications(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSession(r)

	views, err := s.board.MyApplications(r.Context(), sess.UserID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"applications": views, "count": len(views)})
}
