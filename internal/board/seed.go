package board

import (
	"context"
	"time"

	"github.com/jonathan/smartjob/internal/types"
)

// Default administrator account created on an empty board.
const (
	AdminEmail    = "admin@smartjob.local"
	AdminPassword = "admin123"
	AdminName     = "Administrator"
)

// SeedResult reports what Seed created.
type SeedResult struct {
	AdminCreated bool `json:"adminCreated"`
	JobsCreated  int  `json:"jobsCreated"`
}

// SampleJobs returns the demo postings loaded into an empty board.
func SampleJobs(now time.Time) []types.JobPosting {
	created := now.UTC()
	return []types.JobPosting{
		{
			ID:             "job_frontend_intern",
			Title:          "Frontend Intern",
			Company:        "PixelWorks",
			Type:           "Internship",
			Location:       "Remote",
			RequiredSkills: []string{"JavaScript", "HTML", "CSS", "React"},
			Description:    "Work with the UI team to build components.",
			Status:         types.JobStatusApproved,
			CreatedAt:      &created,
		},
		{
			ID:             "job_backend_developer",
			Title:          "Backend Developer",
			Company:        "DataForge",
			Type:           "Full-time",
			Location:       "Hybrid - Lagos",
			RequiredSkills: []string{"Node.js", "Express", "MongoDB", "REST"},
			Description:    "Build APIs and services at scale.",
			Status:         types.JobStatusApproved,
			CreatedAt:      &created,
		},
		{
			ID:             "job_ml_intern",
			Title:          "ML Intern",
			Company:        "InsightAI",
			Type:           "Internship",
			Location:       "Remote",
			RequiredSkills: []string{"Python", "Pandas", "Machine Learning"},
			Description:    "Assist with data pipelines and model training.",
			Status:         types.JobStatusApproved,
			CreatedAt:      &created,
		},
	}
}

// Seed creates the default administrator when no admin exists, and the
// sample jobs when withSampleJobs is set and the board has no jobs.
// Running it again is a no-op.
func (s *Service) Seed(ctx context.Context, withSampleJobs bool) (SeedResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result SeedResult

	users, err := s.loadUsers(ctx)
	if err != nil {
		return result, err
	}
	hasAdmin := false
	for _, u := range users {
		if u.Role == types.RoleAdmin {
			hasAdmin = true
			break
		}
	}
	if !hasAdmin {
		hash, err := s.hasher.HashPassword(AdminPassword)
		if err != nil {
			return result, Internal("failed to hash admin password", err)
		}
		users = append(users, types.User{
			ID:           s.newID(),
			Role:         types.RoleAdmin,
			Name:         AdminName,
			Email:        AdminEmail,
			PasswordHash: hash,
			Active:       true,
		})
		if err := s.saveUsers(ctx, users); err != nil {
			return result, err
		}
		result.AdminCreated = true
		s.log.Info("seeded administrator account", "email", AdminEmail)
	}

	if !withSampleJobs {
		return result, nil
	}

	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return result, err
	}
	if len(jobs) == 0 {
		jobs = SampleJobs(s.now())
		if err := s.saveJobs(ctx, jobs); err != nil {
			return result, err
		}
		result.JobsCreated = len(jobs)
		s.log.Info("seeded sample jobs", "count", len(jobs))
	}

	return result, nil
}
