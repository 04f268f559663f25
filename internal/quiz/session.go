package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eduquiz/internal/history"
	"eduquiz/internal/stats"
)

var (
	ErrNotFinished      = errors.New("quiz is not finished")
	ErrAlreadyCommitted = errors.New("quiz attempt already committed")
	ErrNoRecorder       = errors.New("no attempt recorder configured")
)

// AttemptRecorder persists finished attempts. *history.Archive implements it.
type AttemptRecorder interface {
	AppendQuizAttempt(ctx context.Context, attempt history.QuizAttempt) (history.QuizAttempt, error)
}

// Session walks one play-through of a bank. Callers record exactly one
// answer per question before calling Advance; the session does not detect
// a second RecordAnswer for the same position.
type Session struct {
	bank     *Bank
	recorder AttemptRecorder
	now      func() time.Time

	index     int
	score     int
	answers   []bool
	tally     history.CategoryTally
	committed bool
}

func NewSession(bank *Bank, recorder AttemptRecorder) *Session {
	if bank == nil {
		bank = &Bank{}
	}
	return &Session{
		bank:     bank,
		recorder: recorder,
		now:      time.Now,
		tally:    make(history.CategoryTally),
	}
}

func (s *Session) CurrentQuestion() (Question, bool) {
	return s.bank.At(s.index)
}

// RecordAnswer is a no-op once the bank is exhausted.
func (s *Session) RecordAnswer(isCorrect bool) {
	question, ok := s.CurrentQuestion()
	if !ok {
		return
	}

	s.answers = append(s.answers, isCorrect)
	score := s.tally[question.Category]
	score.Total++
	if isCorrect {
		s.score++
		score.Correct++
	}
	s.tally[question.Category] = score
}

// Answer records whether selected matches the current question's correct
// option index and reports the result.
func (s *Session) Answer(selected int) bool {
	question, ok := s.CurrentQuestion()
	if !ok {
		return false
	}
	isCorrect := selected == question.CorrectIndex
	s.RecordAnswer(isCorrect)
	return isCorrect
}

// Advance moves to the next question and reports whether one exists. The
// index stops one past the last question.
func (s *Session) Advance() bool {
	if s.index < s.bank.Len() {
		s.index++
	}
	return s.index < s.bank.Len()
}

func (s *Session) Percentage() int {
	return stats.Percent(s.score, s.bank.Len())
}

func (s *Session) Reset() {
	s.index = 0
	s.score = 0
	s.answers = nil
	s.tally = make(history.CategoryTally)
	s.committed = false
}

func (s *Session) Score() int { return s.score }

func (s *Session) Index() int { return s.index }

func (s *Session) Total() int { return s.bank.Len() }

func (s *Session) Answers() []bool {
	return append([]bool{}, s.answers...)
}

func (s *Session) CategoryTally() history.CategoryTally {
	return s.tally.Clone()
}

// Finished reports whether every question has been answered or the index
// has moved past the bank.
func (s *Session) Finished() bool {
	return s.index >= s.bank.Len() || len(s.answers) >= s.bank.Len()
}

func (s *Session) Committed() bool {
	return s.committed
}

// Snapshot builds the attempt record for the current state without
// persisting it.
func (s *Session) Snapshot() history.QuizAttempt {
	return history.QuizAttempt{
		Timestamp:      s.now().UTC(),
		Score:          s.score,
		TotalQuestions: s.bank.Len(),
		Percentage:     s.Percentage(),
		Answers:        s.Answers(),
		CategoryScores: s.CategoryTally(),
	}
}

// Commit appends the finished attempt to the recorder once per play-through.
// A failed append leaves the session uncommitted so it can be retried.
func (s *Session) Commit(ctx context.Context) (history.QuizAttempt, error) {
	if s.committed {
		return history.QuizAttempt{}, ErrAlreadyCommitted
	}
	if !s.Finished() {
		return history.QuizAttempt{}, ErrNotFinished
	}
	if s.recorder == nil {
		return history.QuizAttempt{}, ErrNoRecorder
	}

	saved, err := s.recorder.AppendQuizAttempt(ctx, s.Snapshot())
	if err != nil {
		return history.QuizAttempt{}, fmt.Errorf("failed to commit quiz attempt: %w", err)
	}
	s.committed = true
	return saved, nil
}
