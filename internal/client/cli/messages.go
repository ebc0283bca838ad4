package cli

import (
	"errors"

	"github.com/dentinhoapp/dentinho/internal/client/remote"
	"github.com/dentinhoapp/dentinho/internal/common"
)

// errorMessage maps service errors to the short alerts shown to the user.
// Unknown errors fall through with their own text.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrMissingFields):
		return "All fields are required."
	case errors.Is(err, common.ErrInvalidEmail):
		return "Invalid e-mail address."
	case errors.Is(err, common.ErrWeakPassword):
		return "Password must be at least 6 characters."
	case errors.Is(err, common.ErrPasswordMismatch):
		return "Passwords do not match."
	case errors.Is(err, common.ErrUserExists):
		return "A user with this e-mail already exists."
	case errors.Is(err, common.ErrUserNotFound):
		return "User not found."
	case errors.Is(err, common.ErrWrongPassword):
		return "Wrong password."
	case errors.Is(err, common.ErrEmptyUsername):
		return "Name cannot be empty."
	case errors.Is(err, common.ErrNotLoggedIn):
		return "You are not logged in."
	case errors.Is(err, common.ErrUnauthorized):
		return "Not authorized. Sign in again."
	case errors.Is(err, common.ErrNotFound):
		return "Not found."
	case errors.Is(err, remote.ErrUnavailable):
		return "Service unavailable, try again later."
	default:
		return err.Error()
	}
}
