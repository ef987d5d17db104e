package board

import (
	"context"

	"github.com/jonathan/smartjob/internal/filter"
	"github.com/jonathan/smartjob/internal/skills"
	"github.com/jonathan/smartjob/internal/types"
)

const fallbackCompany = "Company"

// ListJobs returns the jobs matching q, newest postings first.
func (s *Service) ListJobs(ctx context.Context, q types.JobQuery) ([]types.JobPosting, error) {
	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if q.Matches(j) {
			out = append(out, j)
		}
	}
	return out, nil
}

// GetJob returns a single job.
func (s *Service) GetJob(ctx context.Context, jobID string) (*types.JobPosting, error) {
	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return nil, err
	}
	idx := findJob(jobs, jobID)
	if idx < 0 {
		return nil, NotFound("job not found")
	}
	job := jobs[idx]
	return &job, nil
}

// SearchJobs narrows the approved jobs by keyword and skills, keeping their order.
func (s *Service) SearchJobs(ctx context.Context, criteria types.FilterCriteria) ([]types.JobPosting, error) {
	jobs, err := s.ListJobs(ctx, types.JobQuery{Status: types.JobStatusApproved})
	if err != nil {
		return nil, err
	}
	return filter.Jobs(jobs, criteria), nil
}

// AddJob posts a job on behalf of a recruiter. New postings are approved
// immediately and listed first.
func (s *Service) AddJob(ctx context.Context, ownerID string, input types.JobInput) (*types.JobPosting, error) {
	if err := s.checkStruct(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	idx := findUser(users, ownerID)
	if idx < 0 {
		return nil, NotFound("user not found")
	}
	owner := users[idx]
	if owner.Role != types.RoleRecruiter {
		return nil, Forbidden("only recruiters can post jobs")
	}

	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return nil, err
	}

	company := owner.DisplayName()
	if company == "" {
		company = fallbackCompany
	}
	created := s.now().UTC()
	job := types.JobPosting{
		ID:             s.newID(),
		OwnerID:        owner.ID,
		Title:          input.Title,
		Company:        company,
		Type:           input.Type,
		Location:       input.Location,
		RequiredSkills: skills.Tokenize(input.RequiredSkills),
		Description:    input.Description,
		Status:         types.JobStatusApproved,
		CreatedAt:      &created,
	}

	jobs = append([]types.JobPosting{job}, jobs...)
	if err := s.saveJobs(ctx, jobs); err != nil {
		return nil, err
	}

	s.log.Info("job posted", "job_id", job.ID, "owner_id", owner.ID)
	return &job, nil
}

// DeleteJob removes a job and every application to it. Recruiters can only
// delete their own postings; administrators can delete any.
func (s *Service) DeleteJob(ctx context.Context, actorID, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.authorizeJob(ctx, actorID, jobID)
	if err != nil {
		return err
	}
	apps, err := s.loadApplications(ctx)
	if err != nil {
		return err
	}

	remaining := jobs[:0]
	for _, j := range jobs {
		if j.ID != jobID {
			remaining = append(remaining, j)
		}
	}
	keptApps := apps[:0]
	for _, a := range apps {
		if a.JobID != jobID {
			keptApps = append(keptApps, a)
		}
	}

	// Applications are written first. Readers skip applications whose job is missing.
	if err := s.saveApplications(ctx, keptApps); err != nil {
		return err
	}
	if err := s.saveJobs(ctx, remaining); err != nil {
		return err
	}

	s.log.Info("job deleted", "job_id", jobID, "actor_id", actorID)
	return nil
}

// SetJobStatus moderates a job.
func (s *Service) SetJobStatus(ctx context.Context, jobID string, status types.JobStatus) (*types.JobPosting, error) {
	if _, err := types.ParseJobStatus(string(status)); err != nil {
		return nil, InvalidInput(err.Error(), nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return nil, err
	}
	idx := findJob(jobs, jobID)
	if idx < 0 {
		return nil, NotFound("job not found")
	}

	jobs[idx].Status = status
	if err := s.saveJobs(ctx, jobs); err != nil {
		return nil, err
	}

	s.log.Info("job status changed", "job_id", jobID, "status", status)
	job := jobs[idx]
	return &job, nil
}

// authorizeJob loads the jobs and checks that actorID may manage jobID.
// Callers must hold s.mu when they go on to write.
func (s *Service) authorizeJob(ctx context.Context, actorID, jobID string) ([]types.JobPosting, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	actorIdx := findUser(users, actorID)
	if actorIdx < 0 {
		return nil, Unauthorized("unknown user")
	}

	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return nil, err
	}
	idx := findJob(jobs, jobID)
	if idx < 0 {
		return nil, NotFound("job not found")
	}

	actor := users[actorIdx]
	if actor.Role != types.RoleAdmin && jobs[idx].OwnerID != actor.ID {
		return nil, Forbidden("not allowed to manage this job")
	}
	return jobs, nil
}
