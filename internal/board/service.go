// Package board implements the job board: accounts, job postings,
// applications, moderation and analytics on top of a key-value store.
package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/smartjob/internal/logging"
	"github.com/jonathan/smartjob/internal/store"
	"github.com/jonathan/smartjob/internal/types"
)

// DefaultRecommendLimit is how many recommendations a student sees when no limit is given.
const DefaultRecommendLimit = 6

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	HashPassword(pw string) (string, error)
	VerifyPassword(pw, storedHash string) bool
}

// Service is the board's business logic. It is safe for concurrent use;
// mutations are serialized so read-modify-write cycles on a collection
// never interleave.
type Service struct {
	store    store.Store
	hasher   PasswordHasher
	notifier Notifier
	log      *logging.Logger
	validate *validator.Validate

	now            func() time.Time
	newID          func() string
	recommendLimit int

	mu sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithNotifier replaces the default logging notifier.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithClock overrides time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides record ID generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// WithRecommendLimit sets the default number of recommendations.
func WithRecommendLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.recommendLimit = n
		}
	}
}

// New creates a Service backed by st.
func New(st store.Store, hasher PasswordHasher, log *logging.Logger, opts ...Option) *Service {
	s := &Service{
		store:          st,
		hasher:         hasher,
		log:            log.With("component", "board"),
		validate:       validator.New(),
		now:            time.Now,
		newID:          uuid.NewString,
		recommendLimit: DefaultRecommendLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = NewLogNotifier(s.log)
	}
	return s
}

func (s *Service) loadUsers(ctx context.Context) ([]types.User, error) {
	users, err := store.LoadJSON[types.User](ctx, s.store, store.KeyUsers)
	if err != nil {
		return nil, Internal("failed to load users", err)
	}
	return users, nil
}

func (s *Service) saveUsers(ctx context.Context, users []types.User) error {
	if err := store.SaveJSON(ctx, s.store, store.KeyUsers, users); err != nil {
		return Internal("failed to save users", err)
	}
	return nil
}

func (s *Service) loadJobs(ctx context.Context) ([]types.JobPosting, error) {
	jobs, err := store.LoadJSON[types.JobPosting](ctx, s.store, store.KeyJobs)
	if err != nil {
		return nil, Internal("failed to load jobs", err)
	}
	return jobs, nil
}

func (s *Service) saveJobs(ctx context.Context, jobs []types.JobPosting) error {
	if err := store.SaveJSON(ctx, s.store, store.KeyJobs, jobs); err != nil {
		return Internal("failed to save jobs", err)
	}
	return nil
}

func (s *Service) loadApplications(ctx context.Context) ([]types.Application, error) {
	apps, err := store.LoadJSON[types.Application](ctx, s.store, store.KeyApplications)
	if err != nil {
		return nil, Internal("failed to load applications", err)
	}
	return apps, nil
}

func (s *Service) saveApplications(ctx context.Context, apps []types.Application) error {
	if err := store.SaveJSON(ctx, s.store, store.KeyApplications, apps); err != nil {
		return Internal("failed to save applications", err)
	}
	return nil
}

// checkStruct runs struct validation and converts the first failure into an InvalidInput error.
func (s *Service) checkStruct(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return InvalidInput(fmt.Sprintf("validation error: %s - %s", verrs[0].Field(), verrs[0].Tag()), nil)
	}
	return InvalidInput("validation error: invalid request", err)
}

func findUser(users []types.User, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}

func findUserByEmail(users []types.User, email string) int {
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return i
		}
	}
	return -1
}

func findJob(jobs []types.JobPosting, id string) int {
	for i := range jobs {
		if jobs[i].ID == id {
			return i
		}
	}
	return -1
}

func findApplication(apps []types.Application, id string) int {
	for i := range apps {
		if apps[i].ID == id {
			return i
		}
	}
	return -1
}
