package cli

import (
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"eduquiz/internal/hangman"
	"eduquiz/internal/history"
	"eduquiz/internal/identity"
	"eduquiz/internal/kvstore"
	"eduquiz/internal/quiz"
)

const testSeed = 3

type testEnv struct {
	app     App
	archive *history.Archive
	store   *kvstore.MemoryStore
}

func newTestEnv(t *testing.T, name string, questions ...quiz.Question) testEnv {
	t.Helper()
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	manager, err := identity.NewManager(ctx, store)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if name != "" {
		if _, err := manager.SetName(ctx, name); err != nil {
			t.Fatalf("SetName failed: %v", err)
		}
	}

	if len(questions) == 0 {
		questions = []quiz.Question{testQuestion("Ethics", 0)}
	}
	bank, err := quiz.NewBank(questions)
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}

	archive := history.NewArchive(store)
	return testEnv{
		app: App{
			Archive:  archive,
			Identity: manager,
			Bank:     bank,
			Words:    hangman.WordBank{{Text: "VPN", Hint: "Rede privada virtual", Category: "Segurança"}},
			Rand:     rand.New(rand.NewSource(testSeed)),
			Timeout:  time.Second,
		},
		archive: archive,
		store:   store,
	}
}

func testQuestion(category string, correct int) quiz.Question {
	return quiz.Question{
		Category:     category,
		Prompt:       "Which one in " + category + "?",
		Options:      []string{"first", "second", "third", "fourth"},
		CorrectIndex: correct,
		Explanation:  "Because " + category + ".",
	}
}

// answerLetters replays the option shuffles Run will make with the same seed.
func answerLetters(t *testing.T, bank *quiz.Bank, correct []bool) []string {
	t.Helper()
	rng := rand.New(rand.NewSource(testSeed))
	letters := make([]string, 0, len(correct))
	for idx, wantCorrect := range correct {
		question, ok := bank.At(idx)
		if !ok {
			t.Fatalf("no question at %d", idx)
		}
		shuffled := quiz.ShuffleOptions(question, rng)
		choice := shuffled.CorrectChoice
		if !wantCorrect {
			choice = (choice + 1) % len(shuffled.Choices)
		}
		letters = append(letters, shuffled.Choices[choice].Letter)
	}
	return letters
}

func runScript(t *testing.T, app App, script string) string {
	t.Helper()
	var out bytes.Buffer
	if err := Run(context.Background(), strings.NewReader(script), &out, app); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return out.String()
}

func TestRunAsksForNameAndCommitsQuiz(t *testing.T) {
	env := newTestEnv(t, "", testQuestion("Ethics", 0), testQuestion("Privacy", 2))
	letters := answerLetters(t, env.app.Bank, []bool{true, false})

	script := "Ana\nquiz\n" + letters[0] + "\n" + strings.ToLower(letters[1]) + "\nstats\nexit\n"
	output := runScript(t, env.app, script)

	for _, want := range []string{
		"Welcome, Ana!",
		"Correct!",
		"Wrong. Correct answer was third",
		"Because Ethics.",
		"Final score: 1/2 (50%)",
		"Statistics for Ana",
		"Quizzes taken: 1",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q:\n%s", want, output)
		}
	}

	attempts, err := env.archive.QuizAttempts(context.Background())
	if err != nil {
		t.Fatalf("QuizAttempts failed: %v", err)
	}
	if len(attempts) != 1 || attempts[0].Percentage != 50 {
		t.Fatalf("unexpected attempts: %+v", attempts)
	}
	if name, _, _ := env.store.Get(context.Background(), identity.NameKey); name != "Ana" {
		t.Fatalf("expected name to be stored, got %q", name)
	}
}

func TestRunBlankNameUsesDefault(t *testing.T) {
	env := newTestEnv(t, "")
	output := runScript(t, env.app, "\nexit\n")
	if !strings.Contains(output, "Welcome, "+identity.DefaultName+"!") {
		t.Fatalf("expected default name greeting:\n%s", output)
	}
}

func TestRunSkipsQuestionAfterInvalidInput(t *testing.T) {
	env := newTestEnv(t, "Ana")
	output := runScript(t, env.app, "quiz\nz\n9\nab\nexit\n")

	if got := strings.Count(output, "Invalid input. Please enter a letter A-D."); got != 2 {
		t.Fatalf("expected 2 retry prompts, got %d:\n%s", got, output)
	}
	if !strings.Contains(output, "Skipping. Correct answer was first") {
		t.Fatalf("expected skip message:\n%s", output)
	}

	attempts, _ := env.archive.QuizAttempts(context.Background())
	if len(attempts) != 1 || attempts[0].Score != 0 || len(attempts[0].Answers) != 1 {
		t.Fatalf("skipped question should count as wrong: %+v", attempts)
	}
}

func TestRunPlaysHangman(t *testing.T) {
	env := newTestEnv(t, "Ana")
	output := runScript(t, env.app, "hangman\n1\nv\nV\nx\np\nn\nexit\n")

	for _, want := range []string{
		"Hint: Rede privada virtual",
		"_ _ _",
		"Please enter a single letter.",
		"You already tried V.",
		"Tried: V X",
		"You won! The word was VPN.",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q:\n%s", want, output)
		}
	}

	records, _ := env.archive.HangmanRecords(context.Background())
	if len(records) != 1 || !records[0].Won || records[0].WrongGuessCount != 1 || records[0].ScoreDelta != hangman.WinScore {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestRunLosesHangman(t *testing.T) {
	env := newTestEnv(t, "Ana")
	output := runScript(t, env.app, "hangman\na\nb\nc\nd\ne\nf\nexit\n")

	if !strings.Contains(output, "You lost. The word was VPN.") {
		t.Fatalf("expected loss message:\n%s", output)
	}
	records, _ := env.archive.HangmanRecords(context.Background())
	if len(records) != 1 || records[0].Won || records[0].WrongGuessCount != hangman.MaxWrongGuesses {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestRunInputClosedMidQuizSavesNothing(t *testing.T) {
	env := newTestEnv(t, "Ana")
	output := runScript(t, env.app, "quiz\n")

	if !strings.Contains(output, "Bye!") {
		t.Fatalf("expected goodbye on closed input:\n%s", output)
	}
	attempts, _ := env.archive.QuizAttempts(context.Background())
	if len(attempts) != 0 {
		t.Fatalf("abandoned quiz must not be saved, got %d attempts", len(attempts))
	}
}

func TestRunClearHistoryNeedsConfirmation(t *testing.T) {
	env := newTestEnv(t, "Ana")
	ctx := context.Background()
	if _, err := env.archive.AppendQuizAttempt(ctx, history.QuizAttempt{Percentage: 70}); err != nil {
		t.Fatalf("AppendQuizAttempt failed: %v", err)
	}
	if _, err := env.archive.AppendHangmanRecord(ctx, history.HangmanRecord{Won: true}); err != nil {
		t.Fatalf("AppendHangmanRecord failed: %v", err)
	}

	output := runScript(t, env.app, "clear quiz\nno\nclear quiz\nyes\nexit\n")
	if !strings.Contains(output, "Nothing deleted.") || !strings.Contains(output, "Quiz history cleared.") {
		t.Fatalf("unexpected clear output:\n%s", output)
	}

	attempts, _ := env.archive.QuizAttempts(ctx)
	records, _ := env.archive.HangmanRecords(ctx)
	if len(attempts) != 0 || len(records) != 1 {
		t.Fatalf("expected only quiz history cleared, got attempts=%d records=%d", len(attempts), len(records))
	}
}

func TestRunSwitchUserKeepsHistory(t *testing.T) {
	env := newTestEnv(t, "Ana")
	ctx := context.Background()
	if _, err := env.archive.AppendQuizAttempt(ctx, history.QuizAttempt{Percentage: 90}); err != nil {
		t.Fatalf("AppendQuizAttempt failed: %v", err)
	}

	output := runScript(t, env.app, "user\nBruno\nstats\nexit\n")
	if !strings.Contains(output, "Now playing as Bruno.") || !strings.Contains(output, "Statistics for Bruno") {
		t.Fatalf("unexpected output:\n%s", output)
	}
	if !strings.Contains(output, "Quizzes taken: 1") {
		t.Fatalf("history should survive a name change:\n%s", output)
	}
}

func TestRunHistoryAndUnknownCommand(t *testing.T) {
	env := newTestEnv(t, "Ana")
	output := runScript(t, env.app, "dance\nhistory\nhelp\nquit\n")

	if !strings.Contains(output, `Unknown command "dance"`) {
		t.Fatalf("expected unknown command message:\n%s", output)
	}
	if strings.Count(output, "none yet") != 2 {
		t.Fatalf("expected empty history listing:\n%s", output)
	}
	if strings.Count(output, "Commands:") != 2 {
		t.Fatalf("expected help twice:\n%s", output)
	}
}
