package scoring

import "github.com/mealscope/mealscope/pkg/menu"

// NutritionIndex computes the CD-NDI nutrition quality index for one set of
// nutrition facts:
//
//	(protein*2.5 + dietaryFiber*1.8) - (saturatedFat*3.5 + sodium*0.01 + addedSugar*2.5)
//
// with the coefficients taken from w. The same formula applies to a dish's
// total nutrition and to a single ingredient. Results are not clamped;
// negative values are meaningful and indicate nutritionally unfavorable
// records.
func NutritionIndex(n menu.NutritionFacts, w IndexWeights) float64 {
	gain := n.Protein*w.Protein + n.DietaryFiber*w.DietaryFiber
	loss := n.SaturatedFat*w.SaturatedFat + n.Sodium*w.Sodium + n.AddedSugar*w.AddedSugar
	return gain - loss
}
