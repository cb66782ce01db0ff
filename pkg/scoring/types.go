// Package scoring implements the MealScope dish scoring pipeline.
// It derives a nutrition index and a popularity-weighted match score for
// every dish in a catalog, and aggregates them into rankings, category
// summaries, ingredient frequencies, and a correlation analysis.
package scoring

import "time"

// DishScore carries one dish's identity plus all derived values. Scores
// are computed once at analyzer construction and never recomputed.
type DishScore struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	PopularityScore float64 `json:"popularity_score"`

	// CDNDI is the nutrition quality index of the dish's total nutrition.
	// NutritionScore is its alias and always equals CDNDI; both are kept
	// because downstream consumers read either.
	CDNDI                float64 `json:"cd_ndi"`
	NutritionScore       float64 `json:"nutrition_score"`
	NormalizedPopularity float64 `json:"normalized_popularity"`
	MatchScore           float64 `json:"match_score"`
}

// IngredientCount is one entry of the ingredient frequency ranking.
type IngredientCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryStats summarizes all dishes sharing a category.
type CategoryStats struct {
	Category      string  `json:"category"`
	DishCount     int     `json:"dish_count"`
	AvgMatchScore float64 `json:"avg_match_score"`
	AvgPopularity float64 `json:"avg_popularity"`
}

// CorrelationBand classifies a correlation coefficient into the three
// interpretation bands used by the analysis report.
type CorrelationBand string

const (
	BandDivergence CorrelationBand = "DIVERGENCE"
	BandPositive   CorrelationBand = "POSITIVE"
	BandWeak       CorrelationBand = "WEAK"
)

// InterpretCorrelation maps a coefficient to its band: below -0.3 is
// divergence, above 0.3 is positive, anything else is weak.
func InterpretCorrelation(r float64) CorrelationBand {
	switch {
	case r < -0.3:
		return BandDivergence
	case r > 0.3:
		return BandPositive
	default:
		return BandWeak
	}
}

// Analysis returns the report's finding line for the band.
func (b CorrelationBand) Analysis() string {
	switch b {
	case BandDivergence:
		return "存在明显的营养-喜爱度背离现象"
	case BandPositive:
		return "营养与喜爱度呈现正相关"
	default:
		return "营养与喜爱度关联性较弱"
	}
}

// Suggestion returns the report's recommendation line for the band. The
// weak band carries no lamp emoji, matching the report format this tool
// replaced.
func (b CorrelationBand) Suggestion() string {
	switch b {
	case BandDivergence:
		return "💡💡 建议: 需要重点改进高营养菜品的口味吸引力"
	case BandPositive:
		return "💡💡 建议: 当前菜品设计较为合理，可继续优化"
	default:
		return "建议: 需要系统性优化菜品设计"
	}
}

// Report is the complete output of analyzing a catalog. Ranking and
// Ingredients carry every entry; display surfaces truncate (the terminal
// report shows the first 5 dishes and 10 ingredients).
// Immutable once assembled.
type Report struct {
	ID          string            `json:"id"`
	GeneratedAt time.Time         `json:"generated_at"`
	DishCount   int               `json:"dish_count"`
	Correlation float64           `json:"correlation"`
	Band        CorrelationBand   `json:"band"`
	Ranking     []DishScore       `json:"ranking"`
	Categories  []CategoryStats   `json:"categories"`
	Ingredients []IngredientCount `json:"ingredients"`
}
