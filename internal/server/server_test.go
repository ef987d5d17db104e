package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/smartjob/internal/board"
	"github.com/jonathan/smartjob/internal/config"
	"github.com/jonathan/smartjob/internal/logging"
	"github.com/jonathan/smartjob/internal/server/ratelimit"
	"github.com/jonathan/smartjob/internal/store"
	"github.com/jonathan/smartjob/internal/types"
)

type testServer struct {
	*Server
	handler http.Handler
}

func newTestServer(t *testing.T, opts ...func(*Config)) *testServer {
	t.Helper()
	authCfg := &config.AuthConfig{BcryptCost: 4, JWTSecret: testJWTSecret, ExpirationHours: 1}
	svc := board.New(store.NewMemory(), authCfg, logging.Nop())
	_, err := svc.Seed(context.Background(), true)
	require.NoError(t, err)

	cfg := Config{Port: 0, RateLimit: &ratelimit.Config{Enabled: false}}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := New(cfg, svc, NewJWTService(authCfg), logging.Nop())
	t.Cleanup(s.rateLimiter.Stop)
	return &testServer{Server: s, handler: s.Handler()}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (ts *testServer) signup(t *testing.T, req types.SignupRequest) types.LoginResponse {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/auth/signup", "", req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody[types.LoginResponse](t, w)
}

func (ts *testServer) student(t *testing.T, email string) types.LoginResponse {
	return ts.signup(t, types.SignupRequest{Role: types.RoleStudent, Name: "Student", Email: email, Password: "password123"})
}

func (ts *testServer) recruiter(t *testing.T, email string) types.LoginResponse {
	return ts.signup(t, types.SignupRequest{Role: types.RoleRecruiter, Company: "Globex", Email: email, Password: "password123"})
}

func (ts *testServer) admin(t *testing.T) string {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/auth/login", "", types.LoginRequest{
		Email: board.AdminEmail, Password: board.AdminPassword, Role: types.RoleAdmin,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeBody[types.LoginResponse](t, w).Token
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	ts.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSignupAndLogin(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.student(t, "asha@example.com")
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, types.RoleStudent, resp.User.Role)
	assert.NotContains(t, resp.User.PasswordHash, "$2")

	w := ts.do(t, http.MethodGet, "/me", resp.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "asha@example.com", decodeBody[types.User](t, w).Email)

	t.Run("duplicate email", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/auth/signup", "", types.SignupRequest{
			Role: types.RoleStudent, Name: "Other", Email: "ASHA@example.com", Password: "password123",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"Email already registered"}`, w.Body.String())
	})

	t.Run("invalid email", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/auth/signup", "", types.SignupRequest{
			Role: types.RoleStudent, Name: "X", Email: "not-an-email", Password: "password123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation error: Email - email")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		ts.handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/auth/login", "", types.LoginRequest{
			Email: "asha@example.com", Password: "nope-nope", Role: types.RoleStudent,
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
	})
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/me", "/jobs", "/admin/users", "/me/applications"} {
		w := ts.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	st := ts.student(t, "asha@example.com")
	w := ts.do(t, http.MethodGet, "/admin/users", st.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.do(t, http.MethodPost, "/jobs", st.Token, types.JobInput{Title: "X", Type: "Y", Location: "Z"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCoreEndpoints(t *testing.T) {
	ts := newTestServer(t)
	jobs := board.SampleJobs(time.Now())

	t.Run("tokenize", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/tokenize", "", types.TokenizeRequest{Input: "Go, go, SQL"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"Go", "SQL"}, decodeBody[types.TokenizeResponse](t, w).Skills)
	})

	t.Run("score", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/score", "", types.ScoreRequest{Skills: []string{"JavaScript", "React"}, Job: jobs[0]})
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[ScoreResponse](t, w)
		assert.InDelta(t, 2.0, resp.Score, 1e-9)
		assert.Equal(t, []string{"JavaScript", "React"}, resp.Breakdown.MatchedSkills)
	})

	t.Run("recommend", func(t *testing.T) {
		pending := jobs[2]
		pending.Status = types.JobStatusPending
		snapshot := []types.JobPosting{jobs[0], jobs[1], pending}

		w := ts.do(t, http.MethodPost, "/recommend", "", types.RecommendRequest{
			Skills: []string{"Python", "JavaScript"}, Jobs: snapshot, ApprovedOnly: true,
		})
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[RecommendResponse](t, w)
		require.Equal(t, 1, resp.Count)
		assert.Equal(t, jobs[0].ID, resp.Recommendations[0].Item.ID)
	})

	t.Run("recommend rejects huge n", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/recommend", "", types.RecommendRequest{Skills: []string{"Go"}, N: 1000})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("filter jobs", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/filter/jobs", "", types.FilterJobsRequest{
			Jobs: jobs, Criteria: types.FilterCriteria{Keyword: "remote", Skills: []string{"pandas"}},
		})
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[map[string][]types.JobPosting](t, w)
		require.Len(t, resp["jobs"], 1)
		assert.Equal(t, "ML Intern", resp["jobs"][0].Title)
	})

	t.Run("filter applicants", func(t *testing.T) {
		applicants := []types.Applicant{
			{Student: types.User{ID: "a", Name: "Asha", Skills: []string{"Go"}}},
			{Student: types.User{ID: "b", Name: "Ravi", Skills: []string{"Python"}}},
		}
		w := ts.do(t, http.MethodPost, "/filter/applicants", "", types.FilterApplicantsRequest{
			Applicants: applicants, Criteria: types.FilterCriteria{Skills: []string{"go"}},
		})
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[map[string][]types.Applicant](t, w)
		require.Len(t, resp["applicants"], 1)
		assert.Equal(t, "a", resp["applicants"][0].Student.ID)
	})
}

func TestStudentFlow(t *testing.T) {
	ts := newTestServer(t)
	st := ts.student(t, "asha@example.com")

	w := ts.do(t, http.MethodPut, "/me/profile", st.Token, types.ProfileUpdate{Name: "Asha", Skills: "Python, Pandas"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"Python", "Pandas"}, decodeBody[types.User](t, w).Skills)

	w = ts.do(t, http.MethodGet, "/me/recommendations?n=1", st.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	recs := decodeBody[RecommendResponse](t, w)
	require.Equal(t, 1, recs.Count)
	assert.Equal(t, "job_ml_intern", recs.Recommendations[0].Item.ID)

	w = ts.do(t, http.MethodGet, "/jobs?keyword=intern&skills=react", st.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody[ListJobsResponse](t, w)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "job_frontend_intern", list.Jobs[0].ID)

	w = ts.do(t, http.MethodPost, "/jobs/job_ml_intern/apply", st.Token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = ts.do(t, http.MethodPost, "/jobs/job_ml_intern/apply", st.Token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"Already applied to this job"}`, w.Body.String())

	w = ts.do(t, http.MethodGet, "/me/applications", st.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"ML Intern"`)

	w = ts.do(t, http.MethodGet, "/jobs/missing", st.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecruiterFlow(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.recruiter(t, "hr@globex.com")
	st := ts.student(t, "asha@example.com")

	w := ts.do(t, http.MethodPost, "/jobs", rec.Token, types.JobInput{
		Title: "Go Developer", Type: "Full-time", Location: "Remote", RequiredSkills: "Go, SQL",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	job := decodeBody[types.JobPosting](t, w)
	assert.Equal(t, "Globex", job.Company)

	w = ts.do(t, http.MethodPost, "/jobs", rec.Token, types.JobInput{Type: "Full-time", Location: "Remote"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodGet, "/me/jobs", rec.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decodeBody[ListJobsResponse](t, w).Count)

	_ = ts.do(t, http.MethodPut, "/me/profile", st.Token, types.ProfileUpdate{Name: "Asha", Skills: "Go"})
	w = ts.do(t, http.MethodPost, "/jobs/"+job.ID+"/apply", st.Token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	app := decodeBody[types.Application](t, w)

	w = ts.do(t, http.MethodGet, "/jobs/"+job.ID+"/applicants?skills=go", rec.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)

	w = ts.do(t, http.MethodGet, "/jobs/"+job.ID+"/applicants?keyword=nobody", rec.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)

	w = ts.do(t, http.MethodPost, "/applications/"+app.ID+"/shortlist", rec.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeBody[types.Application](t, w).Shortlisted)

	other := ts.recruiter(t, "hr@initech.com")
	w = ts.do(t, http.MethodDelete, "/jobs/"+job.ID, other.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.do(t, http.MethodDelete, "/jobs/"+job.ID, rec.Token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(t, http.MethodGet, "/me/applications", st.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestAdminFlow(t *testing.T) {
	ts := newTestServer(t)
	adminToken := ts.admin(t)
	st := ts.student(t, "asha@example.com")

	w := ts.do(t, http.MethodGet, "/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)

	w = ts.do(t, http.MethodPost, "/admin/jobs/job_ml_intern/reject", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, types.JobStatusRejected, decodeBody[types.JobPosting](t, w).Status)

	w = ts.do(t, http.MethodGet, "/admin/jobs?status=rejected", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decodeBody[ListJobsResponse](t, w).Count)

	w = ts.do(t, http.MethodGet, "/admin/jobs?status=bogus", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodGet, "/jobs/job_ml_intern", st.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "students cannot see rejected jobs")

	w = ts.do(t, http.MethodPost, "/admin/jobs/job_ml_intern/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/admin/analytics", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	analytics := decodeBody[types.Analytics](t, w)
	assert.Equal(t, 1, analytics.Students)
	assert.Equal(t, 3, analytics.JobsApproved)

	w = ts.do(t, http.MethodPost, "/admin/users/"+st.User.ID+"/toggle", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decodeBody[types.User](t, w).Active)

	w = ts.do(t, http.MethodGet, "/me", st.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code, "deactivated accounts lose access with live tokens")

	w = ts.do(t, http.MethodDelete, "/admin/users/"+st.User.ID, adminToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(t, http.MethodGet, "/me", st.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimitResponse(t *testing.T) {
	ts := newTestServer(t, func(c *Config) {
		c.RateLimit = &ratelimit.Config{
			Enabled:       true,
			DefaultLimit:  1000,
			DefaultWindow: time.Minute,
			EndpointConfigs: []ratelimit.EndpointConfig{
				{Path: "/tokenize", Method: http.MethodPost, Limit: 2, Window: time.Hour, Burst: 2},
			},
		}
	})

	for i := 0; i < 2; i++ {
		w := ts.do(t, http.MethodPost, "/tokenize", "", types.TokenizeRequest{Input: "go"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := ts.do(t, http.MethodPost, "/tokenize", "", types.TokenizeRequest{Input: "go"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")

	w = ts.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaticFilesAndCORS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>SmartJob</h1>"), 0o644))
	ts := newTestServer(t, func(c *Config) { c.StaticDir = dir })

	w := ts.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SmartJob")

	w = ts.do(t, http.MethodOptions, "/jobs", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestExtractClientID(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.1.2.3:5555"
	assert.Equal(t, "10.1.2.3", ts.extractClientID(req))

	req.RemoteAddr = "garbage"
	assert.Equal(t, "garbage", ts.extractClientID(req))
}
