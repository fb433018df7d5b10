package services

import (
	"context"

	"github.com/okataev/deardiary/internal/repositories/kv"
)

// SettingsService reads and toggles UI settings kept in the persisted
// store. Currently that is only the dark-theme flag.
type SettingsService interface {
	DarkTheme(ctx context.Context) (bool, error)
	ToggleTheme(ctx context.Context) (bool, error)
}

type settingsService struct {
	store kv.Repository
}

func NewSettingsService(store kv.Repository) SettingsService {
	return &settingsService{store: store}
}

// DarkTheme reports whether the dark theme is on. An absent flag means off.
func (s *settingsService) DarkTheme(ctx context.Context) (bool, error) {
	v, ok, err := s.store.Get(ctx, kv.KeyTheme)
	if err != nil {
		return false, err
	}
	return ok && v == "1", nil
}

// ToggleTheme flips the flag and returns the new state.
func (s *settingsService) ToggleTheme(ctx context.Context) (bool, error) {
	dark, err := s.DarkTheme(ctx)
	if err != nil {
		return false, err
	}

	next := "1"
	if dark {
		next = "0"
	}
	if err := s.store.Set(ctx, kv.KeyTheme, next); err != nil {
		return false, err
	}
	return !dark, nil
}
