package scoring

// IndexWeights holds the CD-NDI coefficients. Protein and DietaryFiber
// contribute to the gain term, the other three to the loss term.
type IndexWeights struct {
	Protein      float64
	DietaryFiber float64
	SaturatedFat float64
	Sodium       float64
	AddedSugar   float64
}

// MatchWeights blends the nutrition index with popularity. The scales
// normalize each input before weighting: index/NutritionScale and
// popularity/PopularityScale.
type MatchWeights struct {
	Nutrition       float64
	Popularity      float64
	NutritionScale  float64
	PopularityScale float64
}

// Weights is the full coefficient set for an Analyzer. The zero value is
// treated as Defaults() by New.
type Weights struct {
	Index IndexWeights
	Match MatchWeights
}
