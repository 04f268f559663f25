package hangman

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"eduquiz/internal/history"
)

const (
	MaxWrongGuesses = 6
	WinScore        = 10

	Blank = '_'
)

var (
	ErrEmptyWord        = errors.New("word has no letters")
	ErrNotOver          = errors.New("round is not over")
	ErrAlreadyCommitted = errors.New("round already committed")
	ErrNoRecorder       = errors.New("no round recorder configured")
)

type State int

const (
	Playing State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

type LetterState int

const (
	Unguessed LetterState = iota
	Correct
	Wrong
)

type Word struct {
	Text     string
	Hint     string
	Category string
}

// RoundRecorder persists finished rounds. *history.Archive implements it.
type RoundRecorder interface {
	AppendHangmanRecord(ctx context.Context, record history.HangmanRecord) (history.HangmanRecord, error)
}

type Session struct {
	recorder RoundRecorder
	now      func() time.Time

	word      Word
	letters   []rune
	revealed  []rune
	guessed   map[rune]bool
	wrong     int
	over      bool
	won       bool
	committed bool
}

func NewSession(recorder RoundRecorder) *Session {
	return &Session{
		recorder: recorder,
		now:      time.Now,
		guessed:  make(map[rune]bool),
	}
}

// Start begins a round on word. Letters are compared upper-cased; any
// non-letter in the word is shown from the start since it cannot be guessed.
func (s *Session) Start(word Word) error {
	letters := []rune(strings.ToUpper(strings.TrimSpace(word.Text)))
	revealed := make([]rune, len(letters))
	hasLetter := false
	for idx, r := range letters {
		if unicode.IsLetter(r) {
			revealed[idx] = Blank
			hasLetter = true
			continue
		}
		revealed[idx] = r
	}
	if !hasLetter {
		return ErrEmptyWord
	}

	word.Text = string(letters)
	s.word = word
	s.letters = letters
	s.revealed = revealed
	s.guessed = make(map[rune]bool)
	s.wrong = 0
	s.over = false
	s.won = false
	s.committed = false
	return nil
}

// Guess applies one letter and reports whether it changed the round. Guesses
// before Start, after the round ends, of non-letters, or of letters already
// tried are ignored.
func (s *Session) Guess(letter rune) bool {
	letter = unicode.ToUpper(letter)
	if s.letters == nil || s.over || !unicode.IsLetter(letter) || s.guessed[letter] {
		return false
	}
	s.guessed[letter] = true

	hit := false
	for idx, r := range s.letters {
		if r == letter {
			s.revealed[idx] = r
			hit = true
		}
	}

	if hit {
		if !s.hasBlanks() {
			s.won = true
			s.over = true
		}
		return true
	}

	s.wrong++
	if s.wrong == MaxWrongGuesses {
		s.over = true
		copy(s.revealed, s.letters)
	}
	return true
}

func (s *Session) LetterState(letter rune) LetterState {
	letter = unicode.ToUpper(letter)
	if !s.guessed[letter] {
		return Unguessed
	}
	for _, r := range s.letters {
		if r == letter {
			return Correct
		}
	}
	return Wrong
}

func (s *Session) State() State {
	switch {
	case s.won:
		return Won
	case s.over:
		return Lost
	default:
		return Playing
	}
}

func (s *Session) Word() Word { return s.word }

func (s *Session) WrongGuesses() int { return s.wrong }

func (s *Session) RemainingGuesses() int { return MaxWrongGuesses - s.wrong }

// Revealed returns the word with Blank in every unrevealed position.
func (s *Session) Revealed() string {
	return string(s.revealed)
}

// Masked returns Revealed with a space between positions, for display.
func (s *Session) Masked() string {
	parts := make([]string, len(s.revealed))
	for idx, r := range s.revealed {
		parts[idx] = string(r)
	}
	return strings.Join(parts, " ")
}

// GuessedLetters returns the letters tried so far in alphabetical order.
func (s *Session) GuessedLetters() []rune {
	letters := make([]rune, 0, len(s.guessed))
	for letter := range s.guessed {
		letters = append(letters, letter)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

func (s *Session) Committed() bool {
	return s.committed
}

// Commit appends the finished round to the recorder once per round.
func (s *Session) Commit(ctx context.Context) (history.HangmanRecord, error) {
	if s.committed {
		return history.HangmanRecord{}, ErrAlreadyCommitted
	}
	if !s.over {
		return history.HangmanRecord{}, ErrNotOver
	}
	if s.recorder == nil {
		return history.HangmanRecord{}, ErrNoRecorder
	}

	record := history.HangmanRecord{
		Timestamp:       s.now().UTC(),
		Won:             s.won,
		Word:            s.word.Text,
		Category:        s.word.Category,
		WrongGuessCount: s.wrong,
	}
	if s.won {
		record.ScoreDelta = WinScore
	}

	saved, err := s.recorder.AppendHangmanRecord(ctx, record)
	if err != nil {
		return history.HangmanRecord{}, fmt.Errorf("failed to commit hangman round: %w", err)
	}
	s.committed = true
	return saved, nil
}

func (s *Session) hasBlanks() bool {
	for idx, r := range s.revealed {
		if r == Blank && unicode.IsLetter(s.letters[idx]) {
			return true
		}
	}
	return false
}
