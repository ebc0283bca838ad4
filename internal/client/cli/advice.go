package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/dentinhoapp/dentinho/internal/client/models"
	"github.com/dentinhoapp/dentinho/internal/common"
)

// Advice lets the user pick a category and shows one piece of advice for it.
func (a *App) Advice(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.printf("You are not logged in.")
		return common.ErrNotLoggedIn
	}

	a.printf("Categories:")
	for i, c := range models.AdviceCategories {
		a.printf("  %d. %s", i+1, c.Label)
	}

	answer, err := GetSimpleText(a.reader, "Pick a category (number)", a.out)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(models.AdviceCategories) {
		a.printf("Pick a number between 1 and %d.", len(models.AdviceCategories))
		return nil
	}
	category := models.AdviceCategories[n-1]

	advice, err := a.advice.Get(ctx, category.Key)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			a.printf("No advice for %s yet.", category.Label)
			return nil
		}
		a.printf("%s", errorMessage(err))
		return err
	}

	a.printf("%s: %s", category.Label, advice)
	return nil
}
