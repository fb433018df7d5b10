package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/okataev/deardiary/internal/common"
	"github.com/okataev/deardiary/internal/datex"
	"github.com/okataev/deardiary/internal/diary"
	"github.com/okataev/deardiary/internal/export"
	"github.com/okataev/deardiary/internal/models"
	"github.com/okataev/deardiary/internal/repositories/users"
)

// DiaryService runs the entry workflow for one logged-in user. Every
// completed mutation is flushed through the user directory into the
// persisted store before the method returns, so the store always reflects
// the last mutation by the time anything re-renders.
type DiaryService interface {
	Username() string
	Entries() []models.Entry
	Search(q string) []models.Entry

	// Save creates a new entry, or commits the pending edit when one was
	// started. It reports whether a new entry was created. The text must
	// be non-blank; a blank dateInput means "now", otherwise YYYY-MM-DD.
	Save(ctx context.Context, title, text, mood, dateInput string) (created bool, err error)

	// StartEdit captures the entry as the pending edit target and returns
	// its editable field values. ok is false for an unknown id.
	StartEdit(id string) (diary.Draft, bool)
	CancelEdit()
	Editing() bool

	// Delete removes the entry after the confirmation collaborator says
	// yes. It reports whether anything was removed; "no" is a no-op.
	Delete(ctx context.Context, id string, confirm func() bool) (bool, error)

	// Export serializes the full collection to a text blob plus a
	// suggested filename.
	Export() (blob string, filename string, err error)
}

type diaryService struct {
	username  string
	col       *diary.Collection
	directory users.Directory
}

// NewDiaryService binds a service to the given user's entry collection.
func NewDiaryService(user *models.User, directory users.Directory) DiaryService {
	return &diaryService{
		username:  user.Username,
		col:       diary.NewCollection(user.Entries),
		directory: directory,
	}
}

func (s *diaryService) Username() string {
	return s.username
}

func (s *diaryService) Entries() []models.Entry {
	return s.col.Entries()
}

func (s *diaryService) Search(q string) []models.Entry {
	return s.col.Search(q)
}

// flush writes the working copy back through the directory. There is no
// dirty staging layer: the full entry list replaces the stored one.
func (s *diaryService) flush(ctx context.Context) error {
	if err := s.directory.UpsertEntries(ctx, s.username, s.col.Entries()); err != nil {
		return fmt.Errorf("failed to flush entries: %w", err)
	}
	return nil
}

func (s *diaryService) Save(ctx context.Context, title, text, mood, dateInput string) (bool, error) {
	title = strings.TrimSpace(title)
	text = strings.TrimSpace(text)

	// Validation happens strictly before any mutation.
	if text == "" {
		return false, common.ErrEmptyText
	}

	var date string
	if strings.TrimSpace(dateInput) == "" {
		date = datex.Now()
	} else {
		d, err := datex.FromInput(strings.TrimSpace(dateInput))
		if err != nil {
			return false, err
		}
		date = d
	}

	created := false
	if _, editing := s.col.Editing(); editing {
		if _, ok := s.col.CommitEdit(title, text, mood, date); !ok {
			return false, fmt.Errorf("pending edit target no longer exists")
		}
	} else {
		s.col.InsertFront(models.Entry{
			ID:    models.NewEntryID(),
			Title: title,
			Text:  text,
			Mood:  mood,
			Date:  date,
		})
		created = true
	}

	if err := s.flush(ctx); err != nil {
		return created, err
	}
	return created, nil
}

func (s *diaryService) StartEdit(id string) (diary.Draft, bool) {
	return s.col.StartEdit(id)
}

func (s *diaryService) CancelEdit() {
	s.col.CancelEdit()
}

func (s *diaryService) Editing() bool {
	_, editing := s.col.Editing()
	return editing
}

func (s *diaryService) Delete(ctx context.Context, id string, confirm func() bool) (bool, error) {
	if !confirm() {
		return false, nil
	}
	if !s.col.Remove(id) {
		return false, nil
	}
	if err := s.flush(ctx); err != nil {
		return true, err
	}
	return true, nil
}

func (s *diaryService) Export() (string, string, error) {
	blob, err := export.Build(s.username, s.col.Entries())
	if err != nil {
		return "", "", err
	}
	return blob, export.Filename(s.username), nil
}
