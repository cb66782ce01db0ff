package scoring

import (
	"fmt"
	"sort"
)

// CategorySummary groups dishes by category and reports the arithmetic
// mean match score and popularity per category. Categories are sorted
// alphabetically so the summary is deterministic. An empty catalog has no
// means to report and fails.
func (a *Analyzer) CategorySummary() ([]CategoryStats, error) {
	if len(a.scores) == 0 {
		return nil, fmt.Errorf("category summary undefined for an empty catalog")
	}

	type accum struct {
		count    int
		matchSum float64
		popSum   float64
	}
	byCategory := make(map[string]*accum)
	for _, s := range a.scores {
		acc, ok := byCategory[s.Category]
		if !ok {
			acc = &accum{}
			byCategory[s.Category] = acc
		}
		acc.count++
		acc.matchSum += s.MatchScore
		acc.popSum += s.PopularityScore
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	out := make([]CategoryStats, 0, len(categories))
	for _, c := range categories {
		acc := byCategory[c]
		out = append(out, CategoryStats{
			Category:      c,
			DishCount:     acc.count,
			AvgMatchScore: acc.matchSum / float64(acc.count),
			AvgPopularity: acc.popSum / float64(acc.count),
		})
	}
	return out, nil
}
