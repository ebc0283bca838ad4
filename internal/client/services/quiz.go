package services

import "github.com/dentinhoapp/dentinho/internal/client/models"

// QuizSession walks a fetched question list one question at a time and
// keeps the running score. Scoring is local; the quiz service only supplies
// the questions.
type QuizSession struct {
	questions []models.QuizQuestion
	index     int
	score     int
}

// NewQuizSession starts a session over the given questions.
func NewQuizSession(questions []models.QuizQuestion) *QuizSession {
	return &QuizSession{questions: questions}
}

// Current returns the question awaiting an answer. ok is false once the
// session is finished (or the list was empty to begin with).
func (q *QuizSession) Current() (models.QuizQuestion, bool) {
	if q.index >= len(q.questions) {
		return models.QuizQuestion{}, false
	}
	return q.questions[q.index], true
}

// Answer submits an option for the current question, scores it by exact
// match against the correct answer and advances. It reports whether the
// answer was correct; answering a finished session is always false.
func (q *QuizSession) Answer(option string) bool {
	current, ok := q.Current()
	if !ok {
		return false
	}
	q.index++
	if option == current.CorrectAnswer {
		q.score++
		return true
	}
	return false
}

// Finished reports whether every question has been answered.
func (q *QuizSession) Finished() bool {
	return q.index >= len(q.questions)
}

// Score returns the hits so far and the total question count, for the
// "you got X of N" closing message.
func (q *QuizSession) Score() (correct, total int) {
	return q.score, len(q.questions)
}
