package cli

import (
	"context"
	"errors"

	"github.com/okataev/deardiary/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the registration fields and attempts to create a
// new account via the AuthService. On success the user is told to log in;
// nothing is persisted about the session yet.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name (optional)", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, username, password, confirm, fullName); err != nil {
		a.report(ctx, "registration failed", err)
		return err
	}

	printlnFn("Registered successfully! You can log in now.")
	return nil
}

// Login prompts for credentials, authenticates, and on success starts the
// diary session for the user.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	if _, err := a.auth.Login(ctx, username, password); err != nil {
		a.report(ctx, "login failed", err)
		return err
	}

	user, err := a.auth.Current(ctx)
	if err != nil {
		a.report(ctx, "login failed", err)
		return err
	}

	a.startSession(user)
	return nil
}

// Forgot runs the password-reset flow: username plus a new password typed
// twice.
func (a *App) Forgot(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	newPass, err := getPassword(a.out, "Enter new password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.out, "Confirm new password")
	if err != nil {
		return err
	}

	if err := a.auth.ResetPassword(ctx, username, newPass, confirm); err != nil {
		a.report(ctx, "password reset failed", err)
		return err
	}

	printlnFn("Password updated successfully!")
	return nil
}

// Logout clears the persisted session pointer and drops the in-memory
// session state, returning the user to the login prompt.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.report(ctx, "logout failed", err)
		return err
	}
	a.endSession()
	printlnFn("Logged out.")
	return nil
}

// report surfaces a failure to the user. Validation errors read well on
// their own; anything else is logged with context and shown generically.
func (a *App) report(ctx context.Context, action string, err error) {
	switch {
	case errors.Is(err, common.ErrEmptyText),
		errors.Is(err, common.ErrDuplicateUser),
		errors.Is(err, common.ErrUserNotFound),
		errors.Is(err, common.ErrWrongPassword),
		errors.Is(err, common.ErrPasswordMismatch),
		errors.Is(err, common.ErrMissingFields),
		errors.Is(err, common.ErrNoSession),
		errors.Is(err, common.ErrNothingToExport):
		printlnFn(upperFirst(err.Error()))
	default:
		a.log.Error(ctx, action, "err", err)
		printlnFn("Something went wrong, see the log for details.")
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	return string(r)
}
