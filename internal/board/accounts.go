package board

import (
	"context"
	"strings"

	"github.com/jonathan/smartjob/internal/skills"
	"github.com/jonathan/smartjob/internal/types"
)

// Signup registers a student or recruiter. Emails are unique regardless of case.
func (s *Service) Signup(ctx context.Context, req types.SignupRequest) (*types.User, error) {
	if err := s.checkStruct(req); err != nil {
		return nil, err
	}

	hash, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, Internal("failed to hash password", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	if findUserByEmail(users, req.Email) >= 0 {
		return nil, Conflict(MsgEmailRegistered)
	}

	user := types.User{
		ID:           s.newID(),
		Role:         req.Role,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Active:       true,
	}
	if req.Role == types.RoleRecruiter {
		user.Company = strings.TrimSpace(req.Company)
	}
	user.Name = strings.TrimSpace(req.Name)

	users = append(users, user)
	if err := s.saveUsers(ctx, users); err != nil {
		return nil, err
	}

	s.log.Info("user signed up", "user_id", user.ID, "role", user.Role)
	public := user.Public()
	return &public, nil
}

// Login checks credentials for the requested role.
func (s *Service) Login(ctx context.Context, req types.LoginRequest) (*types.User, error) {
	if err := s.checkStruct(req); err != nil {
		return nil, err
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	var found *types.User
	for i := range users {
		u := &users[i]
		if !strings.EqualFold(u.Email, req.Email) || u.Role != req.Role {
			continue
		}
		if s.hasher.VerifyPassword(req.Password, u.PasswordHash) {
			found = u
			break
		}
	}
	if found == nil {
		return nil, Unauthorized(MsgInvalidCredentials)
	}
	if !found.Active {
		return nil, Forbidden(MsgAccountDeactivated)
	}

	public := found.Public()
	return &public, nil
}

// CurrentUser returns the account with the given ID.
func (s *Service) CurrentUser(ctx context.Context, userID string) (*types.User, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	idx := findUser(users, userID)
	if idx < 0 {
		return nil, NotFound("user not found")
	}
	public := users[idx].Public()
	return &public, nil
}

// UpdateProfile saves the editable profile fields. The skills text is tokenized.
func (s *Service) UpdateProfile(ctx context.Context, userID string, update types.ProfileUpdate) (*types.User, error) {
	if err := s.checkStruct(update); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	idx := findUser(users, userID)
	if idx < 0 {
		return nil, NotFound("user not found")
	}

	u := &users[idx]
	u.Name = update.Name
	u.ResumeURL = update.ResumeURL
	u.PortfolioURL = update.PortfolioURL
	u.Skills = skills.Tokenize(update.Skills)

	if err := s.saveUsers(ctx, users); err != nil {
		return nil, err
	}
	public := u.Public()
	return &public, nil
}

// ListUsers returns every student and recruiter account. Administrators are not listed.
func (s *Service) ListUsers(ctx context.Context) ([]types.User, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]types.User, 0, len(users))
	for _, u := range users {
		if u.Role == types.RoleAdmin {
			continue
		}
		out = append(out, u.Public())
	}
	return out, nil
}

// ToggleUserActive flips a student or recruiter between active and deactivated.
func (s *Service) ToggleUserActive(ctx context.Context, userID string) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	idx := findUser(users, userID)
	if idx < 0 {
		return nil, NotFound("user not found")
	}
	if users[idx].Role == types.RoleAdmin {
		return nil, Forbidden("administrator accounts cannot be modified")
	}

	users[idx].Active = !users[idx].Active
	if err := s.saveUsers(ctx, users); err != nil {
		return nil, err
	}

	s.log.Info("user active flag changed", "user_id", userID, "active", users[idx].Active)
	public := users[idx].Public()
	return &public, nil
}

// DeleteUser removes a student or recruiter. Their jobs and applications are kept.
func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return err
	}
	idx := findUser(users, userID)
	if idx < 0 {
		return NotFound("user not found")
	}
	if users[idx].Role == types.RoleAdmin {
		return Forbidden("administrator accounts cannot be deleted")
	}

	users = append(users[:idx], users[idx+1:]...)
	if err := s.saveUsers(ctx, users); err != nil {
		return err
	}
	s.log.Info("user deleted", "user_id", userID)
	return nil
}
