package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
)

var ErrInvalidBank = errors.New("invalid question bank")

// bankEntry accepts both the native layout (options plus correct_index) and
// OpenTriviaDB exports (correct_answer plus incorrect_answers).
type bankEntry struct {
	ID               string   `json:"id"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	Options          []string `json:"options"`
	CorrectIndex     *int     `json:"correct_index"`
	Explanation      string   `json:"explanation"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type bankFile struct {
	Questions []bankEntry `json:"questions"`
	Results   []bankEntry `json:"results"`
}

func LoadBankFile(path string) (*Bank, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	bank, err := LoadBank(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bank, nil
}

func LoadBank(r io.Reader) (*Bank, error) {
	var payload bankFile
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBank, err)
	}

	entries := payload.Questions
	if len(entries) == 0 {
		entries = payload.Results
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInvalidBank)
	}

	questions := make([]Question, 0, len(entries))
	for idx, entry := range entries {
		question, err := entry.toQuestion()
		if err != nil {
			return nil, wrapInvalid(idx, err)
		}
		questions = append(questions, question)
	}
	return NewBank(questions)
}

func (e bankEntry) toQuestion() (Question, error) {
	question := Question{
		ID:          strings.TrimSpace(e.ID),
		Category:    html.UnescapeString(strings.TrimSpace(e.Category)),
		Prompt:      html.UnescapeString(strings.TrimSpace(e.Question)),
		Explanation: html.UnescapeString(strings.TrimSpace(e.Explanation)),
	}

	switch {
	case len(e.Options) > 0:
		if e.CorrectIndex == nil {
			return Question{}, errors.New("missing correct_index")
		}
		question.CorrectIndex = *e.CorrectIndex
		for _, option := range e.Options {
			question.Options = append(question.Options, html.UnescapeString(option))
		}
	case e.CorrectAnswer != "":
		question.CorrectIndex = 0
		question.Options = append(question.Options, html.UnescapeString(e.CorrectAnswer))
		for _, incorrect := range e.IncorrectAnswers {
			question.Options = append(question.Options, html.UnescapeString(incorrect))
		}
	default:
		return Question{}, errors.New("no options")
	}

	return question, nil
}

func validateQuestion(question Question) error {
	if strings.TrimSpace(question.Prompt) == "" {
		return errors.New("empty prompt")
	}
	if len(question.Options) != OptionCount {
		return fmt.Errorf("expected %d options, got %d", OptionCount, len(question.Options))
	}
	if question.CorrectIndex < 0 || question.CorrectIndex >= len(question.Options) {
		return fmt.Errorf("correct index %d out of range", question.CorrectIndex)
	}
	return nil
}

func wrapInvalid(idx int, err error) error {
	return fmt.Errorf("%w: question %d: %v", ErrInvalidBank, idx+1, err)
}
