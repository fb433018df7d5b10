package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/okataev/deardiary/internal/common"
	"github.com/okataev/deardiary/internal/repositories/kv"
	"github.com/okataev/deardiary/internal/repositories/users"
)

func setupServices(t *testing.T, name string) (AuthService, users.Directory, kv.Repository) {
	t.Helper()
	db, err := sql.Open("sqlite3", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS settings (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
DELETE FROM settings;
`)
	require.NoError(t, err)

	store := kv.NewSQLiteRepository(db)
	dir := users.NewKVDirectory(db)
	return NewAuthService(dir, store), dir, store
}

func TestRegister_Validation(t *testing.T) {
	auth, _, _ := setupServices(t, "authval")
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		confirm  string
		wantErr  error
	}{
		{"missing username", "", "pw", "pw", common.ErrMissingFields},
		{"missing password", "alice", "", "pw", common.ErrMissingFields},
		{"missing confirm", "alice", "pw", "", common.ErrMissingFields},
		{"mismatch", "alice", "pw1", "pw2", common.ErrPasswordMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := auth.Register(ctx, tc.username, tc.password, tc.confirm, "")
			require.True(t, errors.Is(err, tc.wantErr))
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	auth, _, _ := setupServices(t, "authdup")
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, "alice", "pw1", "pw1", ""))

	err := auth.Register(ctx, "Alice", "pw2", "pw2", "")
	require.True(t, errors.Is(err, common.ErrDuplicateUser))
}

func TestLogin_SetsSession(t *testing.T) {
	auth, _, store := setupServices(t, "authlogin")
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, "alice", "pw1", "pw1", ""))

	// Login is case-insensitive but the session records the registered name.
	sess, err := auth.Login(ctx, "ALICE", "pw1")
	require.NoError(t, err)
	require.Equal(t, "alice", sess.Username)

	v, ok, err := store.Get(ctx, kv.KeyCurrent)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "alice", v)
}

func TestLogin_Failures(t *testing.T) {
	auth, _, _ := setupServices(t, "authfail")
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, "alice", "pw1", "pw1", ""))

	_, err := auth.Login(ctx, "", "pw1")
	require.True(t, errors.Is(err, common.ErrMissingFields))

	_, err = auth.Login(ctx, "nobody", "pw1")
	require.True(t, errors.Is(err, common.ErrUserNotFound))

	_, err = auth.Login(ctx, "alice", "wrong")
	require.True(t, errors.Is(err, common.ErrWrongPassword))
}

func TestResetPassword(t *testing.T) {
	auth, _, _ := setupServices(t, "authreset")
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, "alice", "old", "old", ""))

	err := auth.ResetPassword(ctx, "alice", "new", "different")
	require.True(t, errors.Is(err, common.ErrPasswordMismatch))

	err = auth.ResetPassword(ctx, "nobody", "new", "new")
	require.True(t, errors.Is(err, common.ErrUserNotFound))

	require.NoError(t, auth.ResetPassword(ctx, "alice", "new", "new"))

	_, err = auth.Login(ctx, "alice", "old")
	require.True(t, errors.Is(err, common.ErrWrongPassword))

	_, err = auth.Login(ctx, "alice", "new")
	require.NoError(t, err)
}

func TestCurrent(t *testing.T) {
	auth, _, store := setupServices(t, "authcur")
	ctx := context.Background()

	_, err := auth.Current(ctx)
	require.True(t, errors.Is(err, common.ErrNoSession))

	require.NoError(t, auth.Register(ctx, "alice", "pw1", "pw1", "Alice"))
	_, err = auth.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	u, err := auth.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.Equal(t, "Alice", u.FullName)

	// A session pointing at a vanished user resolves to ErrUserNotFound,
	// not a crash.
	require.NoError(t, store.Set(ctx, kv.KeyUsers, "[]"))
	_, err = auth.Current(ctx)
	require.True(t, errors.Is(err, common.ErrUserNotFound))
}

func TestLogout_ClearsSession(t *testing.T) {
	auth, _, _ := setupServices(t, "authout")
	ctx := context.Background()

	require.NoError(t, auth.Register(ctx, "alice", "pw1", "pw1", ""))
	_, err := auth.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx))

	_, err = auth.Current(ctx)
	require.True(t, errors.Is(err, common.ErrNoSession))
}

func TestResume(t *testing.T) {
	auth, _, _ := setupServices(t, "authresume")
	ctx := context.Background()

	sess, err := auth.Resume(ctx)
	require.NoError(t, err)
	require.Nil(t, sess, "no persisted session resumes to nil, not an error")

	require.NoError(t, auth.Register(ctx, "alice", "pw1", "pw1", ""))
	_, err = auth.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	sess, err = auth.Resume(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	require.Equal(t, "alice", sess.Username)
}
