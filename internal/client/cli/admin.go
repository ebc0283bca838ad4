package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dentinhoapp/dentinho/internal/common"
)

// Admin signs in to the advice service's admin area and runs a small
// management loop over the advice entries.
func (a *App) Admin(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.printf("You are not logged in.")
		return common.ErrNotLoggedIn
	}

	username, err := GetSimpleText(a.reader, "Admin username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Admin password: ", a.out)
	if err != nil {
		return err
	}

	if err := a.advice.AdminLogin(ctx, username, password); err != nil {
		a.printf("%s", errorMessage(err))
		return err
	}
	a.printf("Admin signed in.")

	for {
		action, err := GetSimpleText(a.reader, "Admin action (list/add/edit/delete/back)", a.out)
		if err != nil {
			return err
		}

		switch action {
		case "back", "":
			return nil
		case "list":
			a.adminList(ctx)
		case "add":
			a.adminAdd(ctx)
		case "edit":
			a.adminEdit(ctx)
		case "delete":
			a.adminDelete(ctx)
		default:
			a.printf("Unknown action: %s", action)
		}
	}
}

func (a *App) adminList(ctx context.Context) {
	entries, err := a.advice.List(ctx)
	if err != nil {
		a.printf("%s", errorMessage(err))
		return
	}
	if len(entries) == 0 {
		a.printf("No advice entries.")
		return
	}
	for _, e := range entries {
		a.printf("  %d [%s] %s", e.ID, e.Category, e.Advice)
	}
}

func (a *App) adminAdd(ctx context.Context) {
	category, text, ok := a.readAdviceFields()
	if !ok {
		return
	}
	if err := a.advice.Create(ctx, category, text); err != nil {
		a.printf("%s", errorMessage(err))
		return
	}
	a.printf("Advice created.")
}

func (a *App) adminEdit(ctx context.Context) {
	id, ok := a.readAdviceID()
	if !ok {
		return
	}
	category, text, ok := a.readAdviceFields()
	if !ok {
		return
	}
	if err := a.advice.Update(ctx, id, category, text); err != nil {
		a.printf("%s", errorMessage(err))
		return
	}
	a.printf("Advice updated.")
}

func (a *App) adminDelete(ctx context.Context) {
	id, ok := a.readAdviceID()
	if !ok {
		return
	}
	if !a.confirm.Confirm("Delete advice " + strconv.FormatInt(id, 10) + "?") {
		return
	}
	if err := a.advice.Delete(ctx, id); err != nil {
		a.printf("%s", errorMessage(err))
		return
	}
	a.printf("Advice deleted.")
}

func (a *App) readAdviceID() (int64, bool) {
	answer, err := GetSimpleText(a.reader, "Advice id", a.out)
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		a.printf("The id must be a number.")
		return 0, false
	}
	return id, true
}

func (a *App) readAdviceFields() (category, text string, ok bool) {
	category, err := GetSimpleText(a.reader, "Category (toothCare/goodHabits/dentalFloss/toothache)", a.out)
	if err != nil {
		return "", "", false
	}
	text, err = GetMultiline(a.reader, "Advice text", a.out)
	if err != nil {
		return "", "", false
	}
	if strings.TrimSpace(category) == "" || strings.TrimSpace(text) == "" {
		a.printf("Category and text are required.")
		return "", "", false
	}
	return category, text, true
}
