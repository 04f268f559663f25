package stats

import (
	"math"

	"eduquiz/internal/history"
)

type UserStatistics struct {
	UserName          string
	Attempts          []history.QuizAttempt
	TotalAttempts     int
	AveragePercentage int
	BestPercentage    int
	WorstPercentage   int
}

type CategoryStatistics struct {
	Correct    int
	Total      int
	Percentage int
}

type HangmanStatistics struct {
	GamesPlayed    int
	GamesWon       int
	GamesLost      int
	TotalScore     int
	WinRatePercent int
	BestStreak     int
	CurrentStreak  int
}

// Percent returns round(100*part/whole), or 0 when whole is not positive.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}

// Summarize aggregates quiz attempts for the named user. The attempts slice
// is copied, never modified.
func Summarize(userName string, attempts []history.QuizAttempt) UserStatistics {
	summary := UserStatistics{
		UserName:      userName,
		Attempts:      append([]history.QuizAttempt{}, attempts...),
		TotalAttempts: len(attempts),
	}
	if len(attempts) == 0 {
		return summary
	}

	sum := 0
	best, worst := attempts[0].Percentage, attempts[0].Percentage
	for _, attempt := range attempts {
		sum += attempt.Percentage
		if attempt.Percentage > best {
			best = attempt.Percentage
		}
		if attempt.Percentage < worst {
			worst = attempt.Percentage
		}
	}

	summary.AveragePercentage = int(math.Round(float64(sum) / float64(len(attempts))))
	summary.BestPercentage = best
	summary.WorstPercentage = worst
	return summary
}

// Categories sums the per-category tallies of every attempt.
func Categories(attempts []history.QuizAttempt) map[string]CategoryStatistics {
	result := make(map[string]CategoryStatistics)
	for _, attempt := range attempts {
		for category, score := range attempt.CategoryScores {
			current := result[category]
			current.Correct += score.Correct
			current.Total += score.Total
			result[category] = current
		}
	}

	for category, current := range result {
		current.Percentage = Percent(current.Correct, current.Total)
		result[category] = current
	}
	return result
}

// Hangman aggregates hangman records ordered oldest first.
func Hangman(records []history.HangmanRecord) HangmanStatistics {
	summary := HangmanStatistics{GamesPlayed: len(records)}

	run := 0
	for _, record := range records {
		summary.TotalScore += record.ScoreDelta
		if !record.Won {
			summary.GamesLost++
			run = 0
			continue
		}
		summary.GamesWon++
		run++
		if run > summary.BestStreak {
			summary.BestStreak = run
		}
	}

	for idx := len(records) - 1; idx >= 0 && records[idx].Won; idx-- {
		summary.CurrentStreak++
	}

	summary.WinRatePercent = Percent(summary.GamesWon, summary.GamesPlayed)
	return summary
}
