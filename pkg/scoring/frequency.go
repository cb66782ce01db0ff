package scoring

import "sort"

// IngredientFrequency counts how often each distinct ingredient name
// appears across all dishes. Names are counted per occurrence, not
// deduplicated per dish. The result is sorted by count descending; ties
// keep first-appearance order, so the ranking is deterministic.
func (a *Analyzer) IngredientFrequency() []IngredientCount {
	counts := make(map[string]int)
	var order []string

	for _, d := range a.catalog.Dishes {
		for _, ing := range d.Ingredients {
			if _, seen := counts[ing.Name]; !seen {
				order = append(order, ing.Name)
			}
			counts[ing.Name]++
		}
	}

	out := make([]IngredientCount, 0, len(order))
	for _, name := range order {
		out = append(out, IngredientCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
