package stats

import "eduquiz/internal/history"

type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendFlat TrendDirection = "flat"

	trendWindow    = 5
	trendThreshold = 5.0
)

// Trend compares the mean percentage of the earlier and later halves of the
// last five attempts. The earlier half takes the middle attempt when the
// window is odd.
func Trend(attempts []history.QuizAttempt) TrendDirection {
	if len(attempts) < 2 {
		return TrendFlat
	}

	recent := attempts
	if len(recent) > trendWindow {
		recent = recent[len(recent)-trendWindow:]
	}

	split := (len(recent) + 1) / 2
	earlier := meanPercentage(recent[:split])
	later := meanPercentage(recent[split:])

	switch {
	case later > earlier+trendThreshold:
		return TrendUp
	case later < earlier-trendThreshold:
		return TrendDown
	default:
		return TrendFlat
	}
}

func meanPercentage(attempts []history.QuizAttempt) float64 {
	if len(attempts) == 0 {
		return 0
	}
	sum := 0
	for _, attempt := range attempts {
		sum += attempt.Percentage
	}
	return float64(sum) / float64(len(attempts))
}
