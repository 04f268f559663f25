package cli

import (
	"context"
	"fmt"

	"eduquiz/internal/stats"
)

func (c *console) printStats(ctx context.Context) error {
	opCtx, cancel := c.storeContext(ctx)
	defer cancel()

	attempts, err := c.app.Archive.QuizAttempts(opCtx)
	if err != nil {
		return err
	}
	records, err := c.app.Archive.HangmanRecords(opCtx)
	if err != nil {
		return err
	}

	summary := stats.Summarize(c.app.Identity.Name(), attempts)
	fmt.Fprintf(c.out, "\nStatistics for %s\n", summary.UserName)
	fmt.Fprintf(c.out, "Quizzes taken: %d\n", summary.TotalAttempts)
	if summary.TotalAttempts > 0 {
		fmt.Fprintf(c.out, "Average: %d%%  Best: %d%%  Worst: %d%%\n",
			summary.AveragePercentage, summary.BestPercentage, summary.WorstPercentage)
		fmt.Fprintf(c.out, "Trend: %s\n", trendLabel(stats.Trend(attempts), len(attempts)))
	}

	if rows := stats.SortedCategories(stats.Categories(attempts)); len(rows) > 0 {
		fmt.Fprintln(c.out, "\nBy category:")
		for _, row := range rows {
			fmt.Fprintf(c.out, "  %-45s %3d%% (%d/%d) %s\n",
				row.Category, row.Percentage, row.Correct, row.Total, stats.CategoryTier(row.Percentage))
		}
	}

	game := stats.Hangman(records)
	fmt.Fprintln(c.out, "\nHangman:")
	fmt.Fprintf(c.out, "  Played: %d  Won: %d  Lost: %d  Win rate: %d%%\n",
		game.GamesPlayed, game.GamesWon, game.GamesLost, game.WinRatePercent)
	fmt.Fprintf(c.out, "  Score: %d  Current streak: %d  Best streak: %d\n",
		game.TotalScore, game.CurrentStreak, game.BestStreak)
	return nil
}

func (c *console) printHistory(ctx context.Context) error {
	opCtx, cancel := c.storeContext(ctx)
	defer cancel()

	attempts, err := c.app.Archive.QuizAttempts(opCtx)
	if err != nil {
		return err
	}
	records, err := c.app.Archive.HangmanRecords(opCtx)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "\nRecent quizzes:")
	if len(attempts) == 0 {
		fmt.Fprintln(c.out, "  none yet")
	}
	for _, attempt := range stats.Recent(attempts, historyLimit) {
		fmt.Fprintf(c.out, "  %s  %d/%d  %d%%\n",
			attempt.Timestamp.Local().Format(timeLayout), attempt.Score, attempt.TotalQuestions, attempt.Percentage)
	}

	fmt.Fprintln(c.out, "\nRecent hangman games:")
	if len(records) == 0 {
		fmt.Fprintln(c.out, "  none yet")
	}
	for _, record := range stats.Recent(records, historyLimit) {
		result := "lost"
		if record.Won {
			result = "won"
		}
		fmt.Fprintf(c.out, "  %s  %-16s %-4s %d wrong\n",
			record.Timestamp.Local().Format(timeLayout), record.Word, result, record.WrongGuessCount)
	}
	return nil
}

func performanceLabel(percentage int) string {
	switch stats.PerformanceTier(percentage) {
	case stats.TierExcellent:
		return "excellent"
	case stats.TierGood:
		return "good"
	case stats.TierFair:
		return "fair"
	default:
		return "keep practicing"
	}
}

func trendLabel(trend stats.TrendDirection, attempts int) string {
	if attempts < 2 {
		return "take another quiz to see a trend"
	}
	switch trend {
	case stats.TrendUp:
		return "improving"
	case stats.TrendDown:
		return "dropping"
	default:
		return "steady"
	}
}
