// Package common defines shared sentinel errors used across client and
// server layers of Super Dentinho. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Storage/repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrCorruptRecord = errors.New("corrupt record")

	// Credential-flow errors.
	ErrMissingFields    = errors.New("missing fields")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrWeakPassword     = errors.New("weak password")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrWrongPassword    = errors.New("wrong password")
	ErrEmptyUsername    = errors.New("empty username")
	ErrNotLoggedIn      = errors.New("not logged in")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
