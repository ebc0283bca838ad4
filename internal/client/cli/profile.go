package cli

import (
	"context"
	"os"

	"github.com/dentinhoapp/dentinho/internal/client/services"
	"github.com/dentinhoapp/dentinho/internal/common"
)

// Profile shows the logged-in user's data and offers to change the name,
// the password or the profile photo.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.printf("You are not logged in.")
		return common.ErrNotLoggedIn
	}
	email := a.session.Email

	a.printf("E-mail: %s", email)
	a.printf("Name:   %s", a.session.Username)
	if ref, ok, err := a.accounts.ProfileImage(ctx, email); err == nil && ok {
		url, err := a.images.ResolveURL(ctx, ref)
		if err != nil {
			url = ref
		}
		a.printf("Photo:  %s", url)
	}

	action, err := GetSimpleText(a.reader, "Edit (name/password/photo) or Enter to go back", a.out)
	if err != nil {
		return err
	}

	switch action {
	case "":
		return nil

	case "name":
		name, err := GetSimpleText(a.reader, "New name", a.out)
		if err != nil {
			return err
		}
		if err := a.accounts.UpdateProfile(ctx, email, services.ProfileUpdate{Username: &name}); err != nil {
			a.printf("%s", errorMessage(err))
			return err
		}
		a.session.Username = name
		a.printf("Name updated.")

	case "password":
		password, err := GetPassword("New password: ", a.out)
		if err != nil {
			return err
		}
		confirm, err := GetPassword("Confirm password: ", a.out)
		if err != nil {
			return err
		}
		update := services.ProfileUpdate{Password: &password, Confirm: &confirm}
		if err := a.accounts.UpdateProfile(ctx, email, update); err != nil {
			a.printf("%s", errorMessage(err))
			return err
		}
		a.printf("Password updated.")

	case "photo":
		path, err := GetSimpleText(a.reader, "Path to image file", a.out)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			a.printf("Cannot read %s: %s", path, err)
			return nil
		}
		key, err := a.images.Upload(ctx, data)
		if err != nil {
			a.printf("%s", errorMessage(err))
			return err
		}
		if err := a.accounts.SetProfileImage(ctx, email, key); err != nil {
			a.printf("%s", errorMessage(err))
			return err
		}
		a.printf("Photo updated.")

	default:
		a.printf("Unknown choice: %s", action)
	}

	return nil
}
