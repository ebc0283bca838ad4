package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentinhoapp/dentinho/internal/client/models"
	"github.com/dentinhoapp/dentinho/internal/client/storage"
	"github.com/dentinhoapp/dentinho/internal/common"
	"github.com/dentinhoapp/dentinho/internal/logging"

	_ "modernc.org/sqlite"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupAccountsDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE prefs (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	require.NoError(t, err)
	return db
}

func newAccounts(t *testing.T) (*Accounts, storage.Store) {
	t.Helper()
	db := setupAccountsDB(t)
	return NewAccounts(db, testLogger()), storage.NewSQLiteStore(db)
}

func TestRegister_ThenLoginSucceeds(t *testing.T) {
	a, _ := newAccounts(t)
	ctx := context.Background()

	s, err := a.Register(ctx, "Ana@Example.com", "Ana", "secret1", "secret1")
	require.NoError(t, err)
	require.Equal(t, "ana@example.com", s.Email)

	got, err := a.Login(ctx, "ana@example.com", "secret1", false)
	require.NoError(t, err)
	require.Equal(t, "ana@example.com", got.Email)
	require.Equal(t, "Ana", got.Username)
}

func TestRegister_Validation(t *testing.T) {
	a, _ := newAccounts(t)
	ctx := context.Background()

	tests := []struct {
		name                              string
		email, user, password, confirm    string
		want                              error
	}{
		{"invalid email", "not-an-email", "x", "secret1", "secret1", common.ErrInvalidEmail},
		{"email with spaces", "a b@c.com", "x", "secret1", "secret1", common.ErrInvalidEmail},
		{"short password", "a@b.com", "x", "12345", "12345", common.ErrWeakPassword},
		{"mismatch", "a@b.com", "x", "secret1", "secret2", common.ErrPasswordMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Register(ctx, tt.email, tt.user, tt.password, tt.confirm)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegister_DuplicateNormalizedEmail(t *testing.T) {
	a, _ := newAccounts(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "Foo@Bar.com", "foo", "secret1", "secret1")
	require.NoError(t, err)

	_, err = a.Register(ctx, "foo@bar.com", "other", "secret2", "secret2")
	require.ErrorIs(t, err, common.ErrUserExists)
}

func TestLogin_Failures(t *testing.T) {
	a, store := newAccounts(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "ana@example.com", "Ana", "secret1", "secret1")
	require.NoError(t, err)
	require.NoError(t, a.Logout(ctx))

	_, err = a.Login(ctx, "", "secret1", false)
	require.ErrorIs(t, err, common.ErrMissingFields)

	_, err = a.Login(ctx, "nobody@example.com", "secret1", false)
	require.ErrorIs(t, err, common.ErrUserNotFound)

	_, err = a.Login(ctx, "ana@example.com", "WRONG", false)
	require.ErrorIs(t, err, common.ErrWrongPassword)

	// a failed login must not set the session pointer
	_, found, err := store.Get(ctx, models.KeySession)
	require.NoError(t, err)
	require.False(t, found)
}

func TestLogin_PasswordComparisonIsCaseSensitive(t *testing.T) {
	a, _ := newAccounts(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "ana@example.com", "Ana", "Secret1", "Secret1")
	require.NoError(t, err)

	_, err = a.Login(ctx, "ana@example.com", "secret1", false)
	require.ErrorIs(t, err, common.ErrWrongPassword)
}

func TestLogin_RememberMeWritesAndClearsSlot(t *testing.T) {
	a, _ := newAccounts(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "ana@example.com", "Ana", "secret1", "secret1")
	require.NoError(t, err)

	_, err = a.Login(ctx, "ana@example.com", "secret1", true)
	require.NoError(t, err)

	email, password, ok, err := a.LoadRemembered(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", email)
	assert.Equal(t, "secret1", password)

	// logging in without the flag clears both halves
	_, err = a.Login(ctx, "ana@example.com", "secret1", false)
	require.NoError(t, err)

	_, _, ok, err = a.LoadRemembered(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLoadRemembered_HalfSlotIsNotOk(t *testing.T) {
	a, store := newAccounts(t)
	ctx := context.Background()

	// should not happen by construction; simulate external tampering
	require.NoError(t, store.Set(ctx, models.KeyRememberEmail, "ana@example.com"))

	_, _, ok, err := a.LoadRemembered(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCurrentSession_AndLogout(t *testing.T) {
	a, _ := newAccounts(t)
	ctx := context.Background()

	_, err := a.CurrentSession(ctx)
	require.ErrorIs(t, err, common.ErrNotLoggedIn)

	_, err = a.Register(ctx, "ana@example.com", "Ana", "secret1", "secret1")
	require.NoError(t, err)

	s, err := a.CurrentSession(ctx)
	require.NoError(t, err)
	require.Equal(t, "ana@example.com", s.Email)
	require.Equal(t, "Ana", s.Username)

	require.NoError(t, a.Logout(ctx))

	_, err = a.CurrentSession(ctx)
	require.ErrorIs(t, err, common.ErrNotLoggedIn)
}

func TestLogin_CorruptUserRecordBehavesAsAbsent(t *testing.T) {
	a, store := newAccounts(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, models.UserKey("ana@example.com"), `{"email": broken`))

	_, err := a.Login(ctx, "ana@example.com", "secret1", false)
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func strPtr(s string) *string { return &s }

func TestUpdateProfile_Username(t *testing.T) {
	a, _ := newAccounts(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "ana@example.com", "Ana", "secret1", "secret1")
	require.NoError(t, err)

	err = a.UpdateProfile(ctx, "ana@example.com", ProfileUpdate{Username: strPtr("")})
	require.ErrorIs(t, err, common.ErrEmptyUsername)

	err = a.UpdateProfile(ctx, "ana@example.com", ProfileUpdate{Username: strPtr("Ana Clara")})
	require.NoError(t, err)

	s, err := a.CurrentSession(ctx)
	require.NoError(t, err)
	require.Equal(t, "Ana Clara", s.Username)
}

func TestUpdateProfile_Password(t *testing.T) {
	a, _ := newAccounts(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "ana@example.com", "Ana", "secret1", "secret1")
	require.NoError(t, err)

	err = a.UpdateProfile(ctx, "ana@example.com", ProfileUpdate{Password: strPtr("short"), Confirm: strPtr("short")})
	require.ErrorIs(t, err, common.ErrWeakPassword)

	err = a.UpdateProfile(ctx, "ana@example.com", ProfileUpdate{Password: strPtr("newsecret"), Confirm: strPtr("other")})
	require.ErrorIs(t, err, common.ErrPasswordMismatch)

	err = a.UpdateProfile(ctx, "ana@example.com", ProfileUpdate{Password: strPtr("newsecret"), Confirm: strPtr("")})
	require.ErrorIs(t, err, common.ErrMissingFields)

	err = a.UpdateProfile(ctx, "ana@example.com", ProfileUpdate{Password: strPtr("newsecret"), Confirm: strPtr("newsecret")})
	require.NoError(t, err)

	_, err = a.Login(ctx, "ana@example.com", "newsecret", false)
	require.NoError(t, err)

	err = a.UpdateProfile(ctx, "ghost@example.com", ProfileUpdate{Username: strPtr("x")})
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestProfileImage_SetAndGet(t *testing.T) {
	a, _ := newAccounts(t)
	ctx := context.Background()

	_, found, err := a.ProfileImage(ctx, "ana@example.com")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, a.SetProfileImage(ctx, "ana@example.com", "users/2025/5/9/abc"))

	ref, found, err := a.ProfileImage(ctx, "ana@example.com")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "users/2025/5/9/abc", ref)
}
