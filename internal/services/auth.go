// Package services contains the application services of the diary:
// authentication with the session pointer, the diary entry workflow, and
// UI settings.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/okataev/deardiary/internal/common"
	"github.com/okataev/deardiary/internal/models"
	"github.com/okataev/deardiary/internal/repositories/kv"
	"github.com/okataev/deardiary/internal/repositories/users"
)

// Session identifies the active user. It is an explicit value handed to
// callers rather than ambient global state; the persisted copy lives
// under kv.KeyCurrent so a session survives restarts.
type Session struct {
	Username string
}

// AuthService defines registration, login, password reset and session
// resolution.
//
// Contract:
//   - Register validates its inputs, then delegates to the user directory.
//   - Login verifies credentials and persists the session pointer.
//   - ResetPassword overwrites the password of an existing user.
//   - Logout clears the session pointer.
//   - Current resolves the pointer to a full user record.
//   - Resume is Current minus the error when no session exists.
//
// All failures are validation-class sentinels from internal/common,
// matched with errors.Is.
type AuthService interface {
	Register(ctx context.Context, username, password, confirm, fullName string) error
	Login(ctx context.Context, username, password string) (*Session, error)
	ResetPassword(ctx context.Context, username, newPassword, confirm string) error
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.User, error)
	Resume(ctx context.Context) (*Session, error)
}

type authService struct {
	directory users.Directory
	store     kv.Repository
}

// NewAuthService constructs an AuthService bound to the given directory
// and persisted store.
func NewAuthService(directory users.Directory, store kv.Repository) AuthService {
	return &authService{directory: directory, store: store}
}

func (a *authService) Register(ctx context.Context, username, password, confirm, fullName string) error {
	if username == "" || password == "" || confirm == "" {
		return common.ErrMissingFields
	}
	if password != confirm {
		return common.ErrPasswordMismatch
	}
	return a.directory.Register(ctx, username, password, fullName)
}

func (a *authService) Login(ctx context.Context, username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, common.ErrMissingFields
	}

	user, err := a.directory.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrUserNotFound
	}
	if user.Password != password {
		return nil, common.ErrWrongPassword
	}

	// The session records the username as registered, not as typed.
	if err := a.store.Set(ctx, kv.KeyCurrent, user.Username); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return &Session{Username: user.Username}, nil
}

func (a *authService) ResetPassword(ctx context.Context, username, newPassword, confirm string) error {
	if username == "" || newPassword == "" || confirm == "" {
		return common.ErrMissingFields
	}
	if newPassword != confirm {
		return common.ErrPasswordMismatch
	}
	return a.directory.UpdatePassword(ctx, username, newPassword)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Delete(ctx, kv.KeyCurrent)
}

func (a *authService) Current(ctx context.Context) (*models.User, error) {
	username, ok, err := a.store.Get(ctx, kv.KeyCurrent)
	if err != nil {
		return nil, err
	}
	if !ok || username == "" {
		return nil, common.ErrNoSession
	}

	user, err := a.directory.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// The pointed-to user vanished from the store. Callers redirect
		// to the login flow instead of crashing.
		return nil, common.ErrUserNotFound
	}
	return user, nil
}

func (a *authService) Resume(ctx context.Context) (*Session, error) {
	user, err := a.Current(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoSession) {
			return nil, nil
		}
		return nil, err
	}
	return &Session{Username: user.Username}, nil
}
