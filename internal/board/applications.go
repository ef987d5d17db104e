package board

import (
	"context"

	"github.com/jonathan/smartjob/internal/filter"
	"github.com/jonathan/smartjob/internal/ranking"
	"github.com/jonathan/smartjob/internal/types"
)

// Apply records a student's application to an approved job.
func (s *Service) Apply(ctx context.Context, userID, jobID string) (*types.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	uidx := findUser(users, userID)
	if uidx < 0 {
		return nil, NotFound("user not found")
	}
	if users[uidx].Role != types.RoleStudent {
		return nil, Forbidden("only students can apply")
	}

	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return nil, err
	}
	jidx := findJob(jobs, jobID)
	if jidx < 0 {
		return nil, NotFound("job not found")
	}
	if !jobs[jidx].IsApproved() {
		return nil, InvalidInput("job is not open for applications", nil)
	}

	apps, err := s.loadApplications(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range apps {
		if a.UserID == userID && a.JobID == jobID {
			return nil, Conflict(MsgAlreadyApplied)
		}
	}

	app := types.Application{
		ID:        s.newID(),
		UserID:    userID,
		JobID:     jobID,
		AppliedAt: s.now().UTC(),
	}
	apps = append(apps, app)
	if err := s.saveApplications(ctx, apps); err != nil {
		return nil, err
	}

	s.log.Info("application submitted", "application_id", app.ID, "job_id", jobID, "user_id", userID)
	return &app, nil
}

// MyApplications returns a student's applications joined with their jobs.
// Applications whose job no longer exists are skipped.
func (s *Service) MyApplications(ctx context.Context, userID string) ([]types.ApplicationView, error) {
	apps, err := s.loadApplications(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := s.loadJobs(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]types.JobPosting, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}

	views := make([]types.ApplicationView, 0)
	for _, a := range apps {
		if a.UserID != userID {
			continue
		}
		job, ok := byID[a.JobID]
		if !ok {
			continue
		}
		views = append(views, types.ApplicationView{Application: a, Job: job})
	}
	return views, nil
}

// Applicants lists the students who applied to a job the actor manages,
// in application order.
func (s *Service) Applicants(ctx context.Context, actorID, jobID string) ([]types.Applicant, error) {
	if _, err := s.authorizeJob(ctx, actorID, jobID); err != nil {
		return nil, err
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	apps, err := s.loadApplications(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]types.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	applicants := make([]types.Applicant, 0)
	for _, a := range apps {
		if a.JobID != jobID {
			continue
		}
		student, ok := byID[a.UserID]
		if !ok || student.Role != types.RoleStudent {
			continue
		}
		applicants = append(applicants, types.Applicant{Application: a, Student: student.Public()})
	}
	return applicants, nil
}

// FilterApplicants narrows a job's applicants by keyword and skills.
func (s *Service) FilterApplicants(ctx context.Context, actorID, jobID string, criteria types.FilterCriteria) ([]types.Applicant, error) {
	applicants, err := s.Applicants(ctx, actorID, jobID)
	if err != nil {
		return nil, err
	}
	return filter.Applicants(applicants, criteria), nil
}

// ToggleShortlist flips an application's shortlist flag. When the flag turns
// on, the student is notified; a failed notification does not undo the change.
func (s *Service) ToggleShortlist(ctx context.Context, actorID, applicationID string) (*types.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.loadApplications(ctx)
	if err != nil {
		return nil, err
	}
	idx := findApplication(apps, applicationID)
	if idx < 0 {
		return nil, NotFound("application not found")
	}
	if _, err := s.authorizeJob(ctx, actorID, apps[idx].JobID); err != nil {
		return nil, err
	}

	apps[idx].Shortlisted = !apps[idx].Shortlisted
	if err := s.saveApplications(ctx, apps); err != nil {
		return nil, err
	}
	app := apps[idx]

	if app.Shortlisted {
		s.notifyShortlisted(ctx, app)
	}
	return &app, nil
}

func (s *Service) notifyShortlisted(ctx context.Context, app types.Application) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		s.log.Warn("shortlist notification skipped", "application_id", app.ID, "error", err)
		return
	}
	idx := findUser(users, app.UserID)
	if idx < 0 {
		return
	}

	msg := Email{To: users[idx].Email, Subject: shortlistSubject, Body: shortlistBody}
	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.log.Warn("shortlist notification failed", "application_id", app.ID, "error", err)
	}
}

// Recommendations returns the approved jobs that best match the user's
// profile skills. n <= 0 uses the service default.
func (s *Service) Recommendations(ctx context.Context, userID string, n int) ([]ranking.Scored[types.JobPosting], error) {
	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	jobs, err := s.ListJobs(ctx, types.JobQuery{Status: types.JobStatusApproved})
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = s.recommendLimit
	}
	return ranking.RecommendScored(user.Skills, jobs, n), nil
}
