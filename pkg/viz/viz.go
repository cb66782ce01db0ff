// Package viz prepares scatter-plot data from a scored catalog. It is a
// pure transformation: ingredient occurrences are aggregated into one
// point per distinct name, dishes map to one point each, and nothing here
// renders or mutates the catalog.
package viz

import (
	"fmt"

	"github.com/mealscope/mealscope/pkg/menu"
	"github.com/mealscope/mealscope/pkg/scoring"
)

// Mode selects how ingredient points are sized.
type Mode string

const (
	// ModeAverage gives every ingredient point the same symbol size.
	ModeAverage Mode = "average"
	// ModeFrequency scales each ingredient point by its occurrence count.
	ModeFrequency Mode = "frequency"
)

// ParseMode validates a mode string from a flag or config value.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAverage, ModeFrequency:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown aggregation mode %q (want average or frequency)", s)
}

const (
	dishSymbolSize       = 60
	averageSymbolSize    = 35
	frequencySymbolBase  = 30
	frequencySymbolScale = 8
)

// IngredientPoint is one aggregated ingredient: the mean nutrition index
// over its occurrences against the mean popularity of the dishes it
// appears in.
type IngredientPoint struct {
	Name           string
	MeanIndex      float64
	MeanPopularity float64
	Frequency      int
	SymbolSize     float64
}

// DishPoint is one dish, plotted directly with no aggregation.
type DishPoint struct {
	Name       string
	Index      float64
	Popularity float64
	SymbolSize float64
}

// Data holds the two scatter series in render order.
type Data struct {
	Mode        Mode
	Ingredients []IngredientPoint
	Dishes      []DishPoint
}

// Build aggregates cat's ingredient occurrences and a's dish scores into
// scatter series. Each occurrence is scored by the nutrition index over
// the ingredient's own fields using a's index weights; occurrences sharing
// a name are averaged, in first-appearance order. Callers resolve
// main-ingredient placeholders first so occurrences aggregate under their
// concrete names; Build never resolves or mutates.
func Build(cat menu.Catalog, a *scoring.Analyzer, mode Mode) Data {
	type accum struct {
		indexSum float64
		popSum   float64
		count    int
	}
	byName := make(map[string]*accum)
	var order []string

	weights := a.Weights().Index
	for _, d := range cat.Dishes {
		for _, ing := range d.Ingredients {
			acc, ok := byName[ing.Name]
			if !ok {
				acc = &accum{}
				byName[ing.Name] = acc
				order = append(order, ing.Name)
			}
			acc.indexSum += scoring.NutritionIndex(ing.Nutrition, weights)
			acc.popSum += d.PopularityScore
			acc.count++
		}
	}

	data := Data{
		Mode:        mode,
		Ingredients: make([]IngredientPoint, 0, len(order)),
		Dishes:      make([]DishPoint, 0, a.DishCount()),
	}

	for _, name := range order {
		acc := byName[name]
		p := IngredientPoint{
			Name:           name,
			MeanIndex:      acc.indexSum / float64(acc.count),
			MeanPopularity: acc.popSum / float64(acc.count),
			Frequency:      acc.count,
			SymbolSize:     averageSymbolSize,
		}
		if mode == ModeFrequency {
			p.SymbolSize = frequencySymbolBase + float64(acc.count)*frequencySymbolScale
		}
		data.Ingredients = append(data.Ingredients, p)
	}

	for _, s := range a.Scores() {
		data.Dishes = append(data.Dishes, DishPoint{
			Name:       s.Name,
			Index:      s.NutritionScore,
			Popularity: s.PopularityScore,
			SymbolSize: dishSymbolSize,
		})
	}

	return data
}
