package quiz

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

type Question struct {
	ID           string
	Category     string
	Prompt       string
	Options      []string
	CorrectIndex int
	Explanation  string
}

type Option struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

const OptionCount = 4

// Bank is an ordered, read-only set of questions.
type Bank struct {
	questions []Question
}

// NewBank copies questions into a bank. Questions without an ID get one
// derived from their prompt and options.
func NewBank(questions []Question) (*Bank, error) {
	out := make([]Question, 0, len(questions))
	for idx, question := range questions {
		if err := validateQuestion(question); err != nil {
			return nil, wrapInvalid(idx, err)
		}
		question.Options = append([]string(nil), question.Options...)
		if question.ID == "" {
			question.ID = MakeQuestionID(question)
		}
		out = append(out, question)
	}
	return &Bank{questions: out}, nil
}

func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.questions)
}

// At returns the question at idx, or false when idx is out of range.
func (b *Bank) At(idx int) (Question, bool) {
	if idx < 0 || idx >= b.Len() {
		return Question{}, false
	}
	question := b.questions[idx]
	question.Options = append([]string(nil), question.Options...)
	return question, true
}

func (b *Bank) Questions() []Question {
	out := make([]Question, 0, b.Len())
	for idx := 0; idx < b.Len(); idx++ {
		question, _ := b.At(idx)
		out = append(out, question)
	}
	return out
}

// Categories lists categories in order of first appearance.
func (b *Bank) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for idx := 0; idx < b.Len(); idx++ {
		category := b.questions[idx].Category
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}
	return categories
}

func MakeQuestionID(question Question) string {
	var keyBuilder strings.Builder
	keyBuilder.WriteString(question.Prompt)
	for _, option := range question.Options {
		keyBuilder.WriteString("|")
		keyBuilder.WriteString(option)
	}

	hash := sha1.Sum([]byte(keyBuilder.String()))
	return "q_" + hex.EncodeToString(hash[:6])
}

func NormalizeLetter(answer string) string {
	letter := strings.ToUpper(strings.TrimSpace(answer))
	if len(letter) != 1 {
		return ""
	}
	return letter
}
