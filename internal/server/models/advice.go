package models

// Advice is one row of the advice table. Category is one of the four fixed
// keys the client offers (toothCare, goodHabits, dentalFloss, toothache).
type Advice struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Advice   string `json:"advice"`
}
