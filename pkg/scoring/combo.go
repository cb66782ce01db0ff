package scoring

import "sort"

// TopCombination returns the limit highest-scoring dishes by match score,
// descending. The sort is stable: dishes with equal match scores keep
// their catalog order. A limit <= 0 means DefaultComboSize; a limit above
// the catalog size returns every dish.
//
// dailyCalorieLimit does not constrain the result; selection is a plain
// sort. The parameter survives from a calorie-budget selector that was
// never built, and callers pass DefaultDailyCalorieLimit by convention.
func (a *Analyzer) TopCombination(limit int, dailyCalorieLimit float64) []DishScore {
	_ = dailyCalorieLimit

	if limit <= 0 {
		limit = DefaultComboSize
	}

	sorted := make([]DishScore, len(a.scores))
	copy(sorted, a.scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MatchScore > sorted[j].MatchScore
	})

	if limit > len(sorted) {
		limit = len(sorted)
	}
	return sorted[:limit]
}
