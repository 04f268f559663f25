package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"eduquiz/internal/config"
	"eduquiz/internal/hangman"
	"eduquiz/internal/history"
	"eduquiz/internal/identity"
	"eduquiz/internal/quiz"
)

const (
	maxAttempts  = 3
	historyLimit = 10
	timeLayout   = "02/01/2006 15:04"
)

var errInputClosed = errors.New("input closed")

// App wires the session engines to one reader/writer pair.
type App struct {
	Archive  *history.Archive
	Identity *identity.Manager
	Bank     *quiz.Bank
	Words    hangman.WordBank
	Rand     *rand.Rand
	Timeout  time.Duration
}

type console struct {
	app    App
	reader *bufio.Reader
	out    io.Writer
}

func Run(ctx context.Context, in io.Reader, out io.Writer, app App) error {
	c := &console{
		app:    app,
		reader: bufio.NewReader(in),
		out:    out,
	}

	err := c.run(ctx)
	if errors.Is(err, errInputClosed) {
		fmt.Fprintln(out, "\nBye!")
		return nil
	}
	return err
}

func (c *console) run(ctx context.Context) error {
	if !c.app.Identity.HasName() {
		if err := c.askName(ctx, "What's your name? "); err != nil {
			return err
		}
	}

	fmt.Fprintf(c.out, "Welcome, %s!\n", c.app.Identity.Name())
	c.printHelp()

	for {
		fmt.Fprint(c.out, "\n> ")
		line, err := c.readLine()
		if err != nil {
			return err
		}

		command := strings.Join(strings.Fields(strings.ToLower(line)), " ")
		config.VerboseLog("cli: command %q", command)

		switch command {
		case "":
			continue
		case "quiz":
			err = c.runQuiz(ctx)
		case "hangman":
			err = c.runHangman(ctx)
		case "stats":
			err = c.printStats(ctx)
		case "history":
			err = c.printHistory(ctx)
		case "clear quiz":
			err = c.clearHistory(ctx, "quiz", c.app.Archive.ClearQuizAttempts)
		case "clear hangman":
			err = c.clearHistory(ctx, "hangman", c.app.Archive.ClearHangmanRecords)
		case "user":
			err = c.askName(ctx, "New name: ")
			if err == nil {
				fmt.Fprintf(c.out, "Now playing as %s.\n", c.app.Identity.Name())
			}
		case "help":
			c.printHelp()
		case "exit", "quit":
			fmt.Fprintln(c.out, "Bye!")
			return nil
		default:
			fmt.Fprintf(c.out, "Unknown command %q. Type help for the list of commands.\n", command)
		}

		if err != nil {
			if errors.Is(err, errInputClosed) {
				return err
			}
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
}

func (c *console) printHelp() {
	fmt.Fprintln(c.out, "\nCommands:")
	fmt.Fprintln(c.out, "  quiz           answer the question bank")
	fmt.Fprintln(c.out, "  hangman        play one round of hangman")
	fmt.Fprintln(c.out, "  stats          show your statistics")
	fmt.Fprintln(c.out, "  history        list recent quizzes and games")
	fmt.Fprintln(c.out, "  clear quiz     delete quiz history")
	fmt.Fprintln(c.out, "  clear hangman  delete hangman history")
	fmt.Fprintln(c.out, "  user           change your name")
	fmt.Fprintln(c.out, "  exit           leave")
}

func (c *console) askName(ctx context.Context, prompt string) error {
	fmt.Fprint(c.out, prompt)
	name, err := c.readLine()
	if err != nil {
		return err
	}

	opCtx, cancel := c.storeContext(ctx)
	defer cancel()
	_, err = c.app.Identity.SetName(opCtx, name)
	return err
}

func (c *console) runQuiz(ctx context.Context) error {
	session := quiz.NewSession(c.app.Bank, c.app.Archive)

	for {
		question, ok := session.CurrentQuestion()
		if !ok {
			break
		}

		shuffled := quiz.ShuffleOptions(question, c.app.Rand)
		printQuestion(c.out, session.Index()+1, session.Total(), shuffled)

		chosenIndex, ok, err := getAnswer(c.reader, c.out, len(shuffled.Choices))
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out)

		correctText := optionTextForIndex(shuffled.Choices, shuffled.CorrectChoice)
		switch {
		case !ok:
			session.RecordAnswer(false)
			fmt.Fprintf(c.out, "Skipping. Correct answer was %s\n", correctText)
		case shuffled.IsCorrect(chosenIndex):
			session.RecordAnswer(true)
			fmt.Fprintln(c.out, "Correct!")
		default:
			session.RecordAnswer(false)
			fmt.Fprintf(c.out, "Wrong. Correct answer was %s\n", correctText)
		}
		if question.Explanation != "" {
			fmt.Fprintln(c.out, question.Explanation)
		}

		session.Advance()
	}

	fmt.Fprintf(c.out, "\nFinal score: %d/%d (%d%%)\n", session.Score(), session.Total(), session.Percentage())
	fmt.Fprintf(c.out, "Performance: %s\n", performanceLabel(session.Percentage()))

	opCtx, cancel := c.storeContext(ctx)
	defer cancel()
	if _, err := session.Commit(opCtx); err != nil {
		return err
	}
	return nil
}

func (c *console) runHangman(ctx context.Context) error {
	word, ok := c.app.Words.Pick(c.app.Rand)
	if !ok {
		return errors.New("no hangman words configured")
	}

	session := hangman.NewSession(c.app.Archive)
	if err := session.Start(word); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "\nCategory: %s\nHint: %s\n", word.Category, word.Hint)

	for session.State() == hangman.Playing {
		fmt.Fprintf(c.out, "\n%s\n", session.Masked())
		fmt.Fprintf(c.out, "Wrong guesses: %d/%d", session.WrongGuesses(), hangman.MaxWrongGuesses)
		if guessed := session.GuessedLetters(); len(guessed) > 0 {
			fmt.Fprintf(c.out, "  Tried: %s", spaced(guessed))
		}
		fmt.Fprint(c.out, "\nGuess a letter: ")

		line, err := c.readLine()
		if err != nil {
			return err
		}
		letter, ok := parseLetter(line)
		if !ok {
			fmt.Fprintln(c.out, "Please enter a single letter.")
			continue
		}
		if !session.Guess(letter) {
			fmt.Fprintf(c.out, "You already tried %c.\n", unicode.ToUpper(letter))
		}
	}

	if session.State() == hangman.Won {
		fmt.Fprintf(c.out, "\nYou won! The word was %s. +%d points\n", session.Revealed(), hangman.WinScore)
	} else {
		fmt.Fprintf(c.out, "\nYou lost. The word was %s.\n", session.Revealed())
	}

	opCtx, cancel := c.storeContext(ctx)
	defer cancel()
	if _, err := session.Commit(opCtx); err != nil {
		return err
	}
	return nil
}

func (c *console) clearHistory(ctx context.Context, label string, clear func(context.Context) error) error {
	fmt.Fprintf(c.out, "Delete all %s history? This cannot be undone. Type yes to confirm: ", label)
	line, err := c.readLine()
	if err != nil {
		return err
	}
	if strings.ToLower(strings.TrimSpace(line)) != "yes" {
		fmt.Fprintln(c.out, "Nothing deleted.")
		return nil
	}

	opCtx, cancel := c.storeContext(ctx)
	defer cancel()
	if err := clear(opCtx); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s history cleared.\n", strings.ToUpper(label[:1])+label[1:])
	return nil
}

func (c *console) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if line != "" && errors.Is(err, io.EOF) {
			return strings.TrimSpace(line), nil
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(line), nil
}

func (c *console) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.app.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.app.Timeout)
}

func printQuestion(out io.Writer, number, total int, question quiz.ShuffledQuestion) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Q%d/%d [%s]: %s\n\n", number, total, question.Category, question.Prompt)
	for _, option := range question.Choices {
		fmt.Fprintf(out, "%s. %s\n", option.Letter, option.Text)
	}
	fmt.Fprintln(out)
}

func getAnswer(reader *bufio.Reader, out io.Writer, optionCount int) (int, bool, error) {
	if optionCount < 1 {
		return -1, false, nil
	}

	maxLetter := byte('A' + optionCount - 1)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		userAnswer, err := reader.ReadString('\n')
		if err != nil && (userAnswer == "" || !errors.Is(err, io.EOF)) {
			return -1, false, errInputClosed
		}

		if letter := quiz.NormalizeLetter(userAnswer); letter != "" {
			if letter[0] >= 'A' && letter[0] <= maxLetter {
				return int(letter[0] - 'A'), true, nil
			}
		}

		if attempt < maxAttempts {
			fmt.Fprintf(out, "\nInvalid input. Please enter a letter A-%c.\n", maxLetter)
		}
	}

	return -1, false, nil
}

func optionTextForIndex(options []quiz.Option, index int) string {
	if index < 0 || index >= len(options) {
		return ""
	}
	return options[index].Text
}

func parseLetter(line string) (rune, bool) {
	if utf8.RuneCountInString(line) != 1 {
		return 0, false
	}
	letter, _ := utf8.DecodeRuneInString(line)
	return letter, unicode.IsLetter(letter)
}

func spaced(letters []rune) string {
	parts := make([]string, len(letters))
	for idx, letter := range letters {
		parts[idx] = string(letter)
	}
	return strings.Join(parts, " ")
}
