package models

// Question is one row of the quiz questions table. Options are stored as a
// JSON array in the database and decoded by the repository.
type Question struct {
	ID            int64    `json:"-"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}
