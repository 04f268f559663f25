package stats

import "sort"

type Tier string

const (
	TierExcellent     Tier = "excellent"
	TierGood          Tier = "good"
	TierFair          Tier = "fair"
	TierNeedsPractice Tier = "needs-practice"

	TierStrong     Tier = "strong"
	TierSolid      Tier = "solid"
	TierDeveloping Tier = "developing"
	TierWeak       Tier = "weak"
)

// PerformanceTier grades a whole-quiz percentage.
func PerformanceTier(percentage int) Tier {
	switch {
	case percentage >= 90:
		return TierExcellent
	case percentage >= 70:
		return TierGood
	case percentage >= 50:
		return TierFair
	default:
		return TierNeedsPractice
	}
}

// CategoryTier grades a per-category percentage.
func CategoryTier(percentage int) Tier {
	switch {
	case percentage >= 80:
		return TierStrong
	case percentage >= 60:
		return TierSolid
	case percentage >= 40:
		return TierDeveloping
	default:
		return TierWeak
	}
}

// Recent returns up to n items newest first. n <= 0 returns every item.
func Recent[T any](items []T, n int) []T {
	if n <= 0 || n > len(items) {
		n = len(items)
	}
	out := make([]T, 0, n)
	for idx := len(items) - 1; idx >= 0 && len(out) < n; idx-- {
		out = append(out, items[idx])
	}
	return out
}

type CategoryRow struct {
	Category string
	CategoryStatistics
}

// SortedCategories orders category statistics by percentage descending,
// then by name.
func SortedCategories(categories map[string]CategoryStatistics) []CategoryRow {
	rows := make([]CategoryRow, 0, len(categories))
	for category, statistics := range categories {
		rows = append(rows, CategoryRow{Category: category, CategoryStatistics: statistics})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Percentage != rows[j].Percentage {
			return rows[i].Percentage > rows[j].Percentage
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}
