package scoring

// DefaultComboSize is the number of dishes returned by TopCombination when
// no limit is given.
const DefaultComboSize = 5

// DefaultDailyCalorieLimit is the conventional calorie budget accepted by
// TopCombination. It does not affect selection.
const DefaultDailyCalorieLimit = 2000

// Defaults returns the standard scoring weights.
func Defaults() Weights {
	return Weights{
		Index: IndexWeights{
			Protein:      2.5,
			DietaryFiber: 1.8,
			SaturatedFat: 3.5,
			Sodium:       0.01,
			AddedSugar:   2.5,
		},
		Match: MatchWeights{
			Nutrition:       0.6,
			Popularity:      0.4,
			NutritionScale:  100,
			PopularityScale: 10,
		},
	}
}
