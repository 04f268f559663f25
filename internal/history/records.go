package history

import "time"

// CategoryScore counts answers for one category.
type CategoryScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

type CategoryTally map[string]CategoryScore

func (t CategoryTally) Clone() CategoryTally {
	out := make(CategoryTally, len(t))
	for category, score := range t {
		out[category] = score
	}
	return out
}

// QuizAttempt is one finished quiz play-through. JSON names match the
// layout written by earlier releases so their history still decodes.
type QuizAttempt struct {
	ID             string        `json:"id,omitempty"`
	Timestamp      time.Time     `json:"date"`
	Score          int           `json:"score"`
	TotalQuestions int           `json:"totalQuestions"`
	Percentage     int           `json:"percentage"`
	Answers        []bool        `json:"answers"`
	CategoryScores CategoryTally `json:"categoryScores"`
}

// HangmanRecord is one finished hangman round.
type HangmanRecord struct {
	ID              string    `json:"id,omitempty"`
	Timestamp       time.Time `json:"date"`
	Won             bool      `json:"won"`
	Word            string    `json:"word"`
	Category        string    `json:"category"`
	WrongGuessCount int       `json:"wrongGuesses"`
	ScoreDelta      int       `json:"score"`
}
