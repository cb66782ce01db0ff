package scoring

import (
	"fmt"
	"math"
)

// Correlation computes the Pearson correlation coefficient between the
// per-dish nutrition scores and popularity scores. It fails on catalogs
// with fewer than two dishes and when either sequence has zero variance,
// since the coefficient is undefined in both cases. The result is clamped
// to [-1, 1] against floating-point drift.
func (a *Analyzer) Correlation() (float64, error) {
	n := len(a.scores)
	if n < 2 {
		return 0, fmt.Errorf("correlation requires at least 2 dishes, have %d", n)
	}

	var sumX, sumY, sumXY, sumXX, sumYY float64
	for _, s := range a.scores {
		x := s.NutritionScore
		y := s.PopularityScore
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
		sumYY += y * y
	}

	fn := float64(n)
	den := math.Sqrt((fn*sumXX - sumX*sumX) * (fn*sumYY - sumY*sumY))
	if den == 0 {
		return 0, fmt.Errorf("correlation undefined: zero variance in nutrition or popularity scores")
	}

	r := (fn*sumXY - sumX*sumY) / den
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r, nil
}
