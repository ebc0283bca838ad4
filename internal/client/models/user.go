// Package models defines the records the client persists locally and the
// entities it fetches from the remote services, together with the codec
// that converts records to and from the store's string values.
package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dentinhoapp/dentinho/internal/common"
)

// Store keys. The session pointer, the remember-me slot and the alarm list
// each occupy a fixed key; user records live under a per-user key built by
// UserKey.
const (
	KeySession       = "email"
	KeyRememberEmail = "remember:email"
	KeyRememberSenha = "remember:senha"
	KeyAlarms        = "alarmes"
)

// UserRecord is the authoritative account record.
//
// The password is kept in plain text for parity with the stored data this
// app inherits. See DESIGN.md before reusing this scheme anywhere else.
type UserRecord struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"senha"`
}

// NormalizeEmail lower-cases and trims an address. The normalized form is
// the uniqueness key for accounts.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserKey returns the store key holding the record for email.
func UserKey(email string) string {
	return "user:" + NormalizeEmail(email)
}

// UserImageKey returns the store key holding the opaque profile-image
// reference for email.
func UserImageKey(email string) string {
	return UserKey(email) + ":image"
}

// EncodeUser serializes a user record to its store value.
func EncodeUser(u *UserRecord) (string, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return "", fmt.Errorf("failed to encode user record: %w", err)
	}
	return string(b), nil
}

// DecodeUser parses a store value into a user record. A malformed value
// yields common.ErrCorruptRecord so callers can tell "corrupt" apart from
// "absent" (absence is signaled by the store itself).
func DecodeUser(value string) (*UserRecord, error) {
	var u UserRecord
	if err := json.Unmarshal([]byte(value), &u); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCorruptRecord, err)
	}
	return &u, nil
}
