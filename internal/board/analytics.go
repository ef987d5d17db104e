package board

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/smartjob/internal/types"
)

const chartBars = 6

// Analytics summarizes users, jobs and applications for the admin panel.
func (s *Service) Analytics(ctx context.Context) (*types.Analytics, error) {
	var (
		users []types.User
		jobs  []types.JobPosting
		apps  []types.Application
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.loadUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		jobs, err = s.loadJobs(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		apps, err = s.loadApplications(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summarize(users, jobs, apps), nil
}

func summarize(users []types.User, jobs []types.JobPosting, apps []types.Application) *types.Analytics {
	a := &types.Analytics{Applications: len(apps)}

	for _, u := range users {
		switch u.Role {
		case types.RoleStudent:
			a.Students++
		case types.RoleRecruiter:
			a.Recruiters++
		}
	}
	for _, j := range jobs {
		if j.IsApproved() {
			a.JobsApproved++
		} else {
			a.JobsPending++
		}
	}
	for _, app := range apps {
		if app.Shortlisted {
			a.Shortlisted++
		}
	}

	a.ApplicationsPerJob = applicationsPerJob(jobs, apps)
	return a
}

// applicationsPerJob counts applications per job in first-seen order, then
// keeps the busiest jobs. Ties keep first-seen order.
func applicationsPerJob(jobs []types.JobPosting, apps []types.Application) []types.JobCount {
	titles := make(map[string]string, len(jobs))
	for _, j := range jobs {
		titles[j.ID] = j.Title
	}

	counts := make([]types.JobCount, 0)
	index := make(map[string]int)
	for _, app := range apps {
		i, ok := index[app.JobID]
		if !ok {
			label := titles[app.JobID]
			if label == "" {
				label = "Job"
			}
			i = len(counts)
			index[app.JobID] = i
			counts = append(counts, types.JobCount{JobID: app.JobID, Label: label})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > chartBars {
		counts = counts[:chartBars]
	}
	return counts
}
