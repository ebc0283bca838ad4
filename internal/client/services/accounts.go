// Package services contains the application services of the Super Dentinho
// client. This file defines the credential manager: registration, login,
// the remember-me slot, the session pointer and profile updates.
package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"

	"github.com/dentinhoapp/dentinho/internal/client/models"
	"github.com/dentinhoapp/dentinho/internal/client/storage"
	"github.com/dentinhoapp/dentinho/internal/common"
	"github.com/dentinhoapp/dentinho/internal/dbx"
	"github.com/dentinhoapp/dentinho/internal/logging"
)

// emailPattern matches the address shape the registration screen accepts.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLen = 6

// Session identifies the logged-in user. It is returned by Login/Register
// and re-read by CurrentSession; nothing holds it as process-wide state.
type Session struct {
	Email    string
	Username string
}

// ProfileUpdate carries the optional profile fields to merge into the user
// record. Nil fields are left untouched.
type ProfileUpdate struct {
	Username *string
	Password *string
	Confirm  *string
}

// Accounts registers, authenticates and remembers users against the local
// persisted store.
type Accounts struct {
	db    *sql.DB
	store storage.Store
	log   logging.Logger
}

// NewAccounts constructs an Accounts manager over the given local database.
func NewAccounts(db *sql.DB, log logging.Logger) *Accounts {
	return &Accounts{db: db, store: storage.NewSQLiteStore(db), log: log}
}

// getUser loads and decodes the record for a normalized email. A corrupt
// stored value is treated as absent (and logged), per the recovery policy.
func (a *Accounts) getUser(ctx context.Context, email string) (*models.UserRecord, bool, error) {
	value, found, err := a.store.Get(ctx, models.UserKey(email))
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	u, err := models.DecodeUser(value)
	if err != nil {
		if errors.Is(err, common.ErrCorruptRecord) {
			a.log.Warn(ctx, "corrupt user record treated as absent", "key", models.UserKey(email))
			return nil, false, nil
		}
		return nil, false, err
	}
	return u, true, nil
}

func (a *Accounts) putUser(ctx context.Context, u *models.UserRecord) error {
	value, err := models.EncodeUser(u)
	if err != nil {
		return err
	}
	return a.store.Set(ctx, models.UserKey(u.Email), value)
}

// Register validates the input and creates a new account. On success the
// session pointer is set to the new user; the caller decides whether to
// enter the main area (the registration screen returns to login instead).
func (a *Accounts) Register(ctx context.Context, email, username, password, confirm string) (*Session, error) {
	if !emailPattern.MatchString(email) {
		return nil, common.ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return nil, common.ErrWeakPassword
	}
	if password != confirm {
		return nil, common.ErrPasswordMismatch
	}

	normalized := models.NormalizeEmail(email)

	if _, found, err := a.getUser(ctx, normalized); err != nil {
		return nil, err
	} else if found {
		return nil, common.ErrUserExists
	}

	u := &models.UserRecord{Email: normalized, Username: username, Password: password}
	if err := a.putUser(ctx, u); err != nil {
		return nil, err
	}
	if err := a.store.Set(ctx, models.KeySession, normalized); err != nil {
		return nil, err
	}

	a.log.Info(ctx, "user registered", "email", normalized)
	return &Session{Email: normalized, Username: username}, nil
}

// Login authenticates email/password against the stored record. On success
// it sets the session pointer and writes or clears the remember-me slot;
// on failure the session pointer is left untouched.
func (a *Accounts) Login(ctx context.Context, email, password string, rememberMe bool) (*Session, error) {
	if email == "" || password == "" {
		return nil, common.ErrMissingFields
	}

	normalized := models.NormalizeEmail(email)

	u, found, err := a.getUser(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, common.ErrUserNotFound
	}
	if u.Password != password {
		return nil, common.ErrWrongPassword
	}

	if err := a.store.Set(ctx, models.KeySession, normalized); err != nil {
		return nil, err
	}

	// The two remember keys must stay in lockstep: written together when
	// the box is checked, cleared together when it is not.
	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		slot := storage.NewSQLiteStore(tx)
		if rememberMe {
			if err := slot.Set(ctx, models.KeyRememberEmail, normalized); err != nil {
				return err
			}
			return slot.Set(ctx, models.KeyRememberSenha, password)
		}
		if err := slot.Delete(ctx, models.KeyRememberEmail); err != nil {
			return err
		}
		return slot.Delete(ctx, models.KeyRememberSenha)
	})
	if err != nil {
		return nil, err
	}

	a.log.Info(ctx, "user logged in", "email", normalized, "remember", rememberMe)
	return &Session{Email: normalized, Username: u.Username}, nil
}

// Logout clears the session pointer. The confirmation dialog happens at the
// screen layer; by the time this runs the user has already said yes.
func (a *Accounts) Logout(ctx context.Context) error {
	return a.store.Delete(ctx, models.KeySession)
}

// LoadRemembered returns the remember-me slot for prefilling the login
// form. ok is true only when both halves of the slot are present. It does
// not authenticate.
func (a *Accounts) LoadRemembered(ctx context.Context) (email, password string, ok bool, err error) {
	email, foundEmail, err := a.store.Get(ctx, models.KeyRememberEmail)
	if err != nil {
		return "", "", false, err
	}
	password, foundSenha, err := a.store.Get(ctx, models.KeyRememberSenha)
	if err != nil {
		return "", "", false, err
	}
	if !foundEmail || !foundSenha {
		return "", "", false, nil
	}
	return email, password, true, nil
}

// CurrentSession re-reads the persisted session pointer and resolves it to
// a Session. Returns common.ErrNotLoggedIn when no pointer is set.
func (a *Accounts) CurrentSession(ctx context.Context) (*Session, error) {
	email, found, err := a.store.Get(ctx, models.KeySession)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, common.ErrNotLoggedIn
	}

	s := &Session{Email: email}
	if u, ok, err := a.getUser(ctx, email); err != nil {
		return nil, err
	} else if ok {
		s.Username = u.Username
	}
	return s, nil
}

// UpdateProfile merges the supplied fields into the user record
// (read-modify-write, last writer wins). Password changes revalidate under
// the registration rules.
func (a *Accounts) UpdateProfile(ctx context.Context, email string, update ProfileUpdate) error {
	if update.Username != nil && *update.Username == "" {
		return common.ErrEmptyUsername
	}
	if update.Password != nil {
		confirm := ""
		if update.Confirm != nil {
			confirm = *update.Confirm
		}
		if *update.Password == "" || confirm == "" {
			return common.ErrMissingFields
		}
		if len(*update.Password) < minPasswordLen {
			return common.ErrWeakPassword
		}
		if *update.Password != confirm {
			return common.ErrPasswordMismatch
		}
	}

	u, found, err := a.getUser(ctx, email)
	if err != nil {
		return err
	}
	if !found {
		return common.ErrUserNotFound
	}

	if update.Username != nil {
		u.Username = *update.Username
	}
	if update.Password != nil {
		u.Password = *update.Password
	}

	return a.putUser(ctx, u)
}

// SetProfileImage stores the opaque image reference for email.
func (a *Accounts) SetProfileImage(ctx context.Context, email, ref string) error {
	return a.store.Set(ctx, models.UserImageKey(email), ref)
}

// ProfileImage returns the stored image reference, if any.
func (a *Accounts) ProfileImage(ctx context.Context, email string) (string, bool, error) {
	return a.store.Get(ctx, models.UserImageKey(email))
}
