package cli

import "context"

// Register runs the account creation dialog and signs the new user in.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter e-mail", a.out)
	if err != nil {
		return err
	}

	username, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter password: ", a.out)
	if err != nil {
		return err
	}

	confirm, err := GetPassword("Confirm password: ", a.out)
	if err != nil {
		return err
	}

	session, err := a.accounts.Register(ctx, email, username, password, confirm)
	if err != nil {
		a.printf("%s", errorMessage(err))
		return err
	}

	a.session = session
	a.printf("Account created. Welcome, %s!", session.Username)
	return nil
}
