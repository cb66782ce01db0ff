package scoring

import (
	"github.com/mealscope/mealscope/pkg/menu"
)

// Analyzer owns a catalog and the per-dish scores derived from it. All
// derived values are computed once at construction and cached; rebuilding
// the analyzer is the only way to recompute them.
type Analyzer struct {
	catalog menu.Catalog
	weights Weights
	scores  []DishScore
}

// New builds an analyzer over the catalog. Zero-value weights mean
// Defaults(). An empty catalog is accepted; the operations that are
// undefined on empty input report errors individually.
func New(catalog menu.Catalog, weights Weights) *Analyzer {
	if weights == (Weights{}) {
		weights = Defaults()
	}

	a := &Analyzer{
		catalog: catalog,
		weights: weights,
		scores:  make([]DishScore, 0, len(catalog.Dishes)),
	}

	for _, d := range catalog.Dishes {
		index := NutritionIndex(d.TotalNutrition, weights.Index)
		normPop := d.PopularityScore / weights.Match.PopularityScale
		a.scores = append(a.scores, DishScore{
			Name:                 d.Name,
			Category:             d.Category,
			PopularityScore:      d.PopularityScore,
			CDNDI:                index,
			NutritionScore:       index,
			NormalizedPopularity: normPop,
			MatchScore: weights.Match.Nutrition*(index/weights.Match.NutritionScale) +
				weights.Match.Popularity*normPop,
		})
	}

	return a
}

// Scores returns the cached per-dish scores in catalog order.
func (a *Analyzer) Scores() []DishScore {
	return a.scores
}

// Catalog returns the catalog the analyzer was built over.
func (a *Analyzer) Catalog() menu.Catalog {
	return a.catalog
}

// Weights returns the effective weights, defaults included.
func (a *Analyzer) Weights() Weights {
	return a.weights
}

// DishCount returns the number of scored dishes.
func (a *Analyzer) DishCount() int {
	return len(a.scores)
}
