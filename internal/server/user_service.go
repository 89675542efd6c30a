package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/brandcraft/internal/config"
	"github.com/jonathan/brandcraft/internal/db"
	"github.com/jonathan/brandcraft/internal/types"
)

// UserService provides business logic for user authentication operations
type UserService struct {
	db             DBClient
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(db DBClient, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             db,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new regular account and its admin log entry atomically
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*db.User, error) {
	exists, err := s.db.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	taken, err := s.db.CheckUsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if taken {
		return nil, &ErrUsernameTaken{Username: req.Username}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	entry := db.AuditEntry{
		Action:  db.ActionUserRegistered,
		Details: fmt.Sprintf("User %s registered", req.Username),
	}
	user, err := s.db.CreateUserAudited(ctx, req.Username, req.Email, passwordHash, db.RoleUser, entry)
	switch {
	case errors.Is(err, db.ErrDuplicateEmail):
		// Lost a race with a concurrent registration.
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	case errors.Is(err, db.ErrDuplicateUsername):
		return nil, &ErrUsernameTaken{Username: req.Username}
	case err != nil:
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user by email and password
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*db.User, error) {
	user, err := s.db.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, db.ErrNotFound) {
		// Security: Always return generic error if user not found or password wrong
		return nil, &ErrInvalidCredentials{}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !s.passwordConfig.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}
	if !user.IsActive {
		return nil, &ErrAccountSuspended{}
	}

	return user, nil
}

// EnsureAdmin creates an administrator account, or promotes and resets the password of the
// account already registered under email. It reports whether a new account was created.
func (s *UserService) EnsureAdmin(ctx context.Context, username, email, password string) (*db.User, bool, error) {
	passwordHash, err := s.passwordConfig.HashPassword(password)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.db.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, db.ErrNotFound):
		entry := db.AuditEntry{Action: db.ActionAdminCreated, Details: fmt.Sprintf("Admin %s created", username)}
		user, err = s.db.CreateUserAudited(ctx, username, email, passwordHash, db.RoleAdmin, entry)
		if err != nil {
			return nil, false, fmt.Errorf("failed to create admin: %w", err)
		}
		return user, true, nil
	case err != nil:
		return nil, false, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := s.db.UpdateUserCredentials(ctx, user.ID, passwordHash, db.RoleAdmin); err != nil {
		return nil, false, fmt.Errorf("failed to promote user: %w", err)
	}
	details := fmt.Sprintf("User %s promoted to admin", user.Username)
	if _, err := s.db.AddAdminLog(ctx, db.ActionAdminCreated, details, uuid.NullUUID{}); err != nil {
		return nil, false, fmt.Errorf("failed to log admin promotion: %w", err)
	}

	user, err = s.db.GetUser(ctx, user.ID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to reload user: %w", err)
	}
	return user, false, nil
}
