package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/smartjob/internal/board"
	"github.com/jonathan/smartjob/internal/logging"
	"github.com/jonathan/smartjob/internal/server/middleware"
	"github.com/jonathan/smartjob/internal/server/ratelimit"
	"github.com/jonathan/smartjob/internal/types"
)

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	board          *board.Service
	jwtService     *JWTService
	rateLimiter    *ratelimit.Limiter
	validator      *validator.Validate
	log            *logging.Logger
	recommendLimit int
}

// Config holds server configuration
type Config struct {
	Port           int
	StaticDir      string
	RecommendLimit int
	RateLimit      *ratelimit.Config
	// MCPHandler, when set, is mounted at /mcp.
	MCPHandler http.Handler
}

// New creates a new server instance
func New(cfg Config, svc *board.Service, jwtService *JWTService, log *logging.Logger) *Server {
	s := &Server{
		board:          svc,
		jwtService:     jwtService,
		rateLimiter:    ratelimit.NewLimiter(cfg.RateLimit),
		validator:      validator.New(),
		log:            log.With("component", "http"),
		recommendLimit: cfg.RecommendLimit,
	}
	if s.recommendLimit <= 0 {
		s.recommendLimit = board.DefaultRecommendLimit
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes(cfg)))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) routes(cfg Config) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/signup", s.handleSignup)
	mux.HandleFunc("POST /auth/login", s.handleLogin)

	// Stateless core over request snapshots
	mux.HandleFunc("POST /tokenize", s.handleTokenize)
	mux.HandleFunc("POST /score", s.handleScore)
	mux.HandleFunc("POST /recommend", s.handleRecommend)
	mux.HandleFunc("POST /filter/jobs", s.handleFilterJobs)
	mux.HandleFunc("POST /filter/applicants", s.handleFilterApplicants)

	anyone := s.authed()
	student := s.authed(types.RoleStudent)
	recruiter := s.authed(types.RoleRecruiter)
	owner := s.authed(types.RoleRecruiter, types.RoleAdmin)
	admin := s.authed(types.RoleAdmin)

	mux.Handle("GET /me", anyone(s.handleMe))
	mux.Handle("PUT /me/profile", anyone(s.handleUpdateProfile))
	mux.Handle("GET /jobs", anyone(s.handleListJobs))
	mux.Handle("GET /jobs/{id}", anyone(s.handleGetJob))

	mux.Handle("GET /me/recommendations", student(s.handleMyRecommendations))
	mux.Handle("POST /jobs/{id}/apply", student(s.handleApply))
	mux.Handle("GET /me/applications", student(s.handleMyApplications))

	mux.Handle("POST /jobs", recruiter(s.handleCreateJob))
	mux.Handle("GET /me/jobs", recruiter(s.handleMyJobs))
	mux.Handle("DELETE /jobs/{id}", owner(s.handleDeleteJob))
	mux.Handle("GET /jobs/{id}/applicants", recruiter(s.handleJobApplicants))
	mux.Handle("POST /applications/{id}/shortlist", recruiter(s.handleToggleShortlist))

	mux.Handle("GET /admin/users", admin(s.handleAdminListUsers))
	mux.Handle("POST /admin/users/{id}/toggle", admin(s.handleAdminToggleUser))
	mux.Handle("DELETE /admin/users/{id}", admin(s.handleAdminDeleteUser))
	mux.Handle("GET /admin/jobs", admin(s.handleAdminListJobs))
	mux.Handle("POST /admin/jobs/{id}/approve", admin(s.handleAdminApproveJob))
	mux.Handle("POST /admin/jobs/{id}/reject", admin(s.handleAdminRejectJob))
	mux.Handle("GET /admin/analytics", admin(s.handleAdminAnalytics))

	if cfg.MCPHandler != nil {
		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
			mux.Handle(method+" /mcp", cfg.MCPHandler)
		}
	}
	if cfg.StaticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return mux
}

// authed wraps handlers with token validation, an optional role check and
// an active-account check, so deactivation takes effect on live tokens.
func (s *Server) authed(roles ...types.Role) func(http.HandlerFunc) http.Handler {
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	role := middleware.RequireRole(roles...)
	return func(h http.HandlerFunc) http.Handler {
		return auth(role(s.requireActive(h)))
	}
}

func (s *Server) requireActive(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := middleware.GetSession(r)
		if err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		user, err := s.board.CurrentUser(r.Context(), sess.UserID)
		if err != nil {
			if board.KindOf(err) == board.KindNotFound {
				s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			s.writeError(w, err)
			return
		}
		if !user.Active {
			s.errorResponse(w, http.StatusForbidden, board.MsgAccountDeactivated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	serveErr := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		s.rateLimiter.Stop()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-stop:
	}
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.rateLimiter.Stop()

	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Mcp-Session-Id")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush keeps streaming responses (MCP) working through the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"remote", r.RemoteAddr,
			"duration", time.Since(start),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Warn("failed to encode JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps a service error to its status and logs server-side failures.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		var be *board.Error
		if errors.As(err, &be) {
			s.log.Error("request failed", "error", err, "stack", string(be.StackTrace()))
		} else {
			s.log.Error("request failed", "error", err)
		}
	}
	s.errorResponse(w, status, publicMessage(err))
}

// decodeJSON reads the body into dst and runs struct validation.
func (s *Server) decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	if err := s.validator.Struct(dst); err != nil {
		return extractValidationError(err)
	}
	return nil
}

// extractValidationError reports the first failed field.
func extractValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ErrValidation{Field: verrs[0].Field(), Message: verrs[0].Tag()}
	}
	return &ErrValidation{Field: "body", Message: "invalid request"}
}

// extractClientID uses the IP from RemoteAddr. X-Forwarded-For is ignored
// because it is client-controlled without a trusted proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
	}

	s.log.Warn("rate limit exceeded", "limit", info.Limit, "remaining", info.Remaining)
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
