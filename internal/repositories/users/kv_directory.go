package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/okataev/deardiary/internal/common"
	"github.com/okataev/deardiary/internal/dbx"
	"github.com/okataev/deardiary/internal/models"
	"github.com/okataev/deardiary/internal/repositories/kv"
)

// KVDirectory implements Directory on top of the persisted key-value
// store. The whole directory is one JSON array under kv.KeyUsers and is
// re-serialized in full on every mutation. Each mutation runs its
// read-modify-write cycle inside a single transaction, so the store only
// ever holds a fully applied directory.
type KVDirectory struct {
	db *sql.DB
}

// NewKVDirectory returns a Directory backed by the given database.
func NewKVDirectory(db *sql.DB) *KVDirectory {
	return &KVDirectory{db: db}
}

// load reads and decodes the user list through store. A missing key or
// unparsable content loads as an empty directory rather than an error.
// Entries persisted without an ID (e.g. written by an older version) get
// one assigned so edit/delete targeting stays stable.
func (d *KVDirectory) load(ctx context.Context, store kv.Repository) ([]models.User, error) {
	raw, ok, err := store.Get(ctx, kv.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to load user directory: %w", err)
	}
	if !ok {
		return []models.User{}, nil
	}

	var list []models.User
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []models.User{}, nil
	}

	for i := range list {
		for j := range list[i].Entries {
			if list[i].Entries[j].ID == "" {
				list[i].Entries[j].ID = models.NewEntryID()
			}
		}
	}
	return list, nil
}

func (d *KVDirectory) save(ctx context.Context, store kv.Repository, list []models.User) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode user directory: %w", err)
	}
	if err := store.Set(ctx, kv.KeyUsers, string(data)); err != nil {
		return fmt.Errorf("failed to save user directory: %w", err)
	}
	return nil
}

// indexOf matches name case-insensitively against the list. -1 when absent.
func indexOf(list []models.User, name string) int {
	for i := range list {
		if strings.EqualFold(list[i].Username, name) {
			return i
		}
	}
	return -1
}

func (d *KVDirectory) FindByUsername(ctx context.Context, name string) (*models.User, error) {
	if name == "" {
		return nil, nil
	}
	list, err := d.load(ctx, kv.NewSQLiteRepository(d.db))
	if err != nil {
		return nil, err
	}
	if i := indexOf(list, name); i >= 0 {
		u := list[i]
		return &u, nil
	}
	return nil, nil
}

func (d *KVDirectory) Register(ctx context.Context, username, password, fullName string) error {
	if fullName == "" {
		fullName = username
	}

	return dbx.WithTx(ctx, d.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := kv.NewSQLiteRepository(tx)

		list, err := d.load(ctx, store)
		if err != nil {
			return err
		}
		if indexOf(list, username) >= 0 {
			return common.ErrDuplicateUser
		}

		list = append(list, models.User{
			Username: username,
			Password: password,
			FullName: fullName,
			Entries:  []models.Entry{},
		})
		return d.save(ctx, store, list)
	})
}

func (d *KVDirectory) UpdatePassword(ctx context.Context, username, newPassword string) error {
	return dbx.WithTx(ctx, d.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := kv.NewSQLiteRepository(tx)

		list, err := d.load(ctx, store)
		if err != nil {
			return err
		}
		i := indexOf(list, username)
		if i < 0 {
			return common.ErrUserNotFound
		}

		list[i].Password = newPassword
		return d.save(ctx, store, list)
	})
}

func (d *KVDirectory) UpsertEntries(ctx context.Context, username string, entries []models.Entry) error {
	return dbx.WithTx(ctx, d.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := kv.NewSQLiteRepository(tx)

		list, err := d.load(ctx, store)
		if err != nil {
			return err
		}
		for i := range list {
			if list[i].Username == username {
				list[i].Entries = entries
				return d.save(ctx, store, list)
			}
		}
		return common.ErrUserNotFound
	})
}
