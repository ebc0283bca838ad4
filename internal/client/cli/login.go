package cli

import (
	"context"
	"strings"
)

// Login runs the sign-in dialog. When the remember-me slot is filled, the
// saved e-mail is offered as the default and an empty password reuses the
// saved one, mirroring the prefilled login form of the mobile app.
func (a *App) Login(ctx context.Context) error {
	savedEmail, savedPassword, remembered, err := a.accounts.LoadRemembered(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to load remembered credentials", "error", err)
		remembered = false
	}

	emailPrompt := "Enter e-mail"
	if remembered {
		emailPrompt = "Enter e-mail [" + savedEmail + "]"
	}
	email, err := GetSimpleText(a.reader, emailPrompt, a.out)
	if err != nil {
		return err
	}
	if email == "" && remembered {
		email = savedEmail
	}

	passwordPrompt := "Enter password: "
	if remembered {
		passwordPrompt = "Enter password (empty keeps the saved one): "
	}
	password, err := GetPassword(passwordPrompt, a.out)
	if err != nil {
		return err
	}
	if password == "" && remembered {
		password = savedPassword
	}

	answer, err := GetSimpleText(a.reader, "Remember me? (y/n)", a.out)
	if err != nil {
		return err
	}
	rememberMe := strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")

	session, err := a.accounts.Login(ctx, email, password, rememberMe)
	if err != nil {
		a.printf("%s", errorMessage(err))
		return err
	}

	a.session = session
	a.printf("Welcome, %s!", session.Username)
	return nil
}

// Logout asks for confirmation, then clears the session pointer and the
// in-memory session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.printf("You are not logged in.")
		return nil
	}

	if !a.confirm.Confirm("Sign out?") {
		return nil
	}

	if err := a.accounts.Logout(ctx); err != nil {
		a.printf("%s", errorMessage(err))
		return err
	}

	a.session = nil
	a.printf("Signed out.")
	return nil
}
