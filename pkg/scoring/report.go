package scoring

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BuildReport assembles the complete analysis result: correlation with its
// interpretation band, every dish ranked by match score, category means,
// and the full ingredient frequency ranking. It fails when the catalog is
// too small for a defined correlation.
func (a *Analyzer) BuildReport() (*Report, error) {
	correlation, err := a.Correlation()
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}

	categories, err := a.CategorySummary()
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}

	return &Report{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		DishCount:   len(a.scores),
		Correlation: correlation,
		Band:        InterpretCorrelation(correlation),
		Ranking:     a.TopCombination(len(a.scores), DefaultDailyCalorieLimit),
		Categories:  categories,
		Ingredients: a.IngredientFrequency(),
	}, nil
}
