package cli

import (
	"context"
	"strconv"

	"github.com/dentinhoapp/dentinho/internal/client/services"
	"github.com/dentinhoapp/dentinho/internal/common"
)

// Quiz fetches the question list and walks the user through it, one
// question at a time, printing the score at the end.
func (a *App) Quiz(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.printf("You are not logged in.")
		return common.ErrNotLoggedIn
	}

	questions, err := a.quiz.Questions(ctx)
	if err != nil {
		a.printf("%s", errorMessage(err))
		return err
	}
	if len(questions) == 0 {
		a.printf("No questions available.")
		return nil
	}

	session := services.NewQuizSession(questions)
	number := 0

	for {
		q, ok := session.Current()
		if !ok {
			break
		}
		number++

		a.printf("Question %d: %s", number, q.Question)
		for i, opt := range q.Options {
			a.printf("  %d. %s", i+1, opt)
		}

		answer, err := GetSimpleText(a.reader, "Your answer (number)", a.out)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(q.Options) {
			a.printf("Pick a number between 1 and %d.", len(q.Options))
			continue
		}

		if session.Answer(q.Options[n-1]) {
			a.printf("Correct!")
		} else {
			a.printf("Wrong. The right answer was: %s", q.CorrectAnswer)
		}
	}

	correct, total := session.Score()
	a.printf("You got %d out of %d.", correct, total)
	return nil
}
