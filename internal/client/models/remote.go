package models

// Advice is one entry of the advice service. Categories are fixed:
// toothCare, goodHabits, dentalFloss, toothache.
type Advice struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Advice   string `json:"advice"`
}

// AdviceCategories lists the categories the help screen offers, in display
// order, with their pt-BR labels.
var AdviceCategories = []struct {
	Key   string
	Label string
}{
	{"toothCare", "Escovação"},
	{"goodHabits", "Bons Hábitos"},
	{"dentalFloss", "Fio Dental"},
	{"toothache", "Dor de Dente"},
}

// QuizQuestion is one question of the quiz service.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// TimeOfDay is the payload of the time service.
type TimeOfDay struct {
	Hour    int `json:"hour"`
	Minute  int `json:"minute"`
	Seconds int `json:"seconds"`
}
