package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"eduquiz/internal/history"
)

type fakeRecorder struct {
	saved []history.QuizAttempt
	err   error
	calls int
}

func (f *fakeRecorder) AppendQuizAttempt(_ context.Context, attempt history.QuizAttempt) (history.QuizAttempt, error) {
	f.calls++
	if f.err != nil {
		return history.QuizAttempt{}, f.err
	}
	attempt.ID = "attempt-1"
	f.saved = append(f.saved, attempt)
	return attempt, nil
}

func testQuestion(category string, correct int) Question {
	return Question{
		Category:     category,
		Prompt:       "Prompt for " + category,
		Options:      []string{"A", "B", "C", "D"},
		CorrectIndex: correct,
	}
}

func newTestBank(t *testing.T, questions ...Question) *Bank {
	t.Helper()
	bank, err := NewBank(questions)
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}
	return bank
}

func TestSessionTwoQuestionExample(t *testing.T) {
	bank := newTestBank(t, testQuestion("Ethics", 0), testQuestion("Privacy", 1))
	recorder := &fakeRecorder{}
	session := NewSession(bank, recorder)
	fixed := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	session.now = func() time.Time { return fixed }

	if session.Answer(1) {
		t.Fatalf("expected first answer to be wrong")
	}
	if !session.Advance() {
		t.Fatalf("expected a second question")
	}
	if !session.Answer(1) {
		t.Fatalf("expected second answer to be correct")
	}

	if session.Score() != 1 || session.Percentage() != 50 {
		t.Fatalf("score/percentage = %d/%d, want 1/50", session.Score(), session.Percentage())
	}
	answers := session.Answers()
	if len(answers) != 2 || answers[0] || !answers[1] {
		t.Fatalf("unexpected answers: %v", answers)
	}

	attempt, err := session.Commit(context.Background())
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if attempt.ID != "attempt-1" || !attempt.Timestamp.Equal(fixed) {
		t.Fatalf("unexpected committed attempt: %+v", attempt)
	}
	if attempt.Score != 1 || attempt.TotalQuestions != 2 || attempt.Percentage != 50 {
		t.Fatalf("unexpected attempt totals: %+v", attempt)
	}
	if attempt.CategoryScores["Ethics"] != (history.CategoryScore{Correct: 0, Total: 1}) {
		t.Fatalf("unexpected Ethics tally: %+v", attempt.CategoryScores["Ethics"])
	}
	if attempt.CategoryScores["Privacy"] != (history.CategoryScore{Correct: 1, Total: 1}) {
		t.Fatalf("unexpected Privacy tally: %+v", attempt.CategoryScores["Privacy"])
	}
}

func TestSessionFullTraversalInvariants(t *testing.T) {
	bank := DefaultBank()
	session := NewSession(bank, nil)

	for idx := 0; ; idx++ {
		if _, ok := session.CurrentQuestion(); !ok {
			t.Fatalf("expected a question at index %d", idx)
		}
		session.RecordAnswer(idx%3 == 0)
		if len(session.Answers()) != session.Index()+1 {
			t.Fatalf("answers length %d out of step with index %d", len(session.Answers()), session.Index())
		}
		if !session.Advance() {
			break
		}
	}

	wrong := 0
	for _, answer := range session.Answers() {
		if !answer {
			wrong++
		}
	}
	if session.Score()+wrong != bank.Len() {
		t.Fatalf("score %d + wrong %d != %d", session.Score(), wrong, bank.Len())
	}

	total := 0
	for _, score := range session.CategoryTally() {
		total += score.Total
	}
	if total != bank.Len() {
		t.Fatalf("tally totals %d != %d", total, bank.Len())
	}
	if !session.Finished() {
		t.Fatalf("expected session to be finished")
	}
	if _, ok := session.CurrentQuestion(); ok {
		t.Fatalf("expected no current question after the last advance")
	}
}

func TestSessionPercentageIsMonotonic(t *testing.T) {
	bank := DefaultBank()
	session := NewSession(bank, nil)

	previous := session.Percentage()
	for {
		session.RecordAnswer(true)
		current := session.Percentage()
		if current < previous || current < 0 || current > 100 {
			t.Fatalf("percentage went from %d to %d", previous, current)
		}
		previous = current
		if !session.Advance() {
			break
		}
	}
	if previous != 100 {
		t.Fatalf("expected 100 after all correct answers, got %d", previous)
	}
}

func TestSessionOutOfRangeOperationsAreNoOps(t *testing.T) {
	session := NewSession(newTestBank(t, testQuestion("Ethics", 0)), nil)
	session.RecordAnswer(true)
	if session.Advance() {
		t.Fatalf("expected no next question")
	}
	if session.Advance() {
		t.Fatalf("expected no next question on repeated advance")
	}
	if session.Index() != 1 {
		t.Fatalf("index should stop one past the bank, got %d", session.Index())
	}

	session.RecordAnswer(true)
	if session.Answer(0) {
		t.Fatalf("Answer past the end must report false")
	}
	if session.Score() != 1 || len(session.Answers()) != 1 {
		t.Fatalf("operations past the end changed state: score=%d answers=%v", session.Score(), session.Answers())
	}
}

func TestSessionEmptyBank(t *testing.T) {
	session := NewSession(nil, &fakeRecorder{})
	if session.Percentage() != 0 {
		t.Fatalf("expected 0%% for an empty bank")
	}
	if _, ok := session.CurrentQuestion(); ok {
		t.Fatalf("expected no question in an empty bank")
	}
	if session.Advance() {
		t.Fatalf("expected no next question in an empty bank")
	}
}

func TestSessionCommitGuards(t *testing.T) {
	ctx := context.Background()
	recorder := &fakeRecorder{}
	session := NewSession(newTestBank(t, testQuestion("Ethics", 0), testQuestion("Ethics", 2)), recorder)

	session.Answer(0)
	if _, err := session.Commit(ctx); !errors.Is(err, ErrNotFinished) {
		t.Fatalf("expected ErrNotFinished, got %v", err)
	}

	session.Advance()
	session.Answer(2)
	if _, err := session.Commit(ctx); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if _, err := session.Commit(ctx); !errors.Is(err, ErrAlreadyCommitted) {
		t.Fatalf("expected ErrAlreadyCommitted, got %v", err)
	}
	if recorder.calls != 1 {
		t.Fatalf("expected exactly one append, got %d", recorder.calls)
	}

	session.Reset()
	if session.Committed() || session.Index() != 0 || session.Score() != 0 || len(session.Answers()) != 0 || len(session.CategoryTally()) != 0 {
		t.Fatalf("Reset did not clear the session")
	}
	session.Answer(0)
	session.Advance()
	session.Answer(0)
	if _, err := session.Commit(ctx); err != nil {
		t.Fatalf("Commit after Reset failed: %v", err)
	}
	if recorder.calls != 2 || recorder.saved[1].Score != 1 {
		t.Fatalf("unexpected second attempt: calls=%d saved=%+v", recorder.calls, recorder.saved)
	}
}

func TestSessionCommitFailureCanBeRetried(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("store offline")
	recorder := &fakeRecorder{err: boom}
	session := NewSession(newTestBank(t, testQuestion("Ethics", 0)), recorder)
	session.Answer(0)

	if _, err := session.Commit(ctx); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped recorder error, got %v", err)
	}
	if session.Committed() {
		t.Fatalf("failed commit must not mark the session committed")
	}

	recorder.err = nil
	if _, err := session.Commit(ctx); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
}

func TestSessionCommitWithoutRecorder(t *testing.T) {
	session := NewSession(newTestBank(t, testQuestion("Ethics", 0)), nil)
	session.Answer(0)
	if _, err := session.Commit(context.Background()); !errors.Is(err, ErrNoRecorder) {
		t.Fatalf("expected ErrNoRecorder, got %v", err)
	}
}

func TestSessionAccessorsReturnCopies(t *testing.T) {
	session := NewSession(newTestBank(t, testQuestion("Ethics", 0)), nil)
	session.Answer(0)

	answers := session.Answers()
	answers[0] = false
	tally := session.CategoryTally()
	tally["Ethics"] = history.CategoryScore{}

	if !session.Answers()[0] || session.CategoryTally()["Ethics"].Total != 1 {
		t.Fatalf("accessors exposed internal state")
	}
}
