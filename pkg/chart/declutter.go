package chart

import (
	"math"
	"unicode/utf8"

	"github.com/mealscope/mealscope/pkg/viz"
)

// Label extents are estimated in data space as fractions of the plotted
// range: each rune costs labelCharRatio of the x range, one line costs
// labelLineRatio of the y range.
const (
	labelCharRatio = 0.022
	labelLineRatio = 0.05
)

type labelBox struct {
	x0, x1, y0, y1 float64
}

func (b labelBox) intersects(o labelBox) bool {
	return b.x0 < o.x1 && o.x0 < b.x1 && b.y0 < o.y1 && o.y0 < b.y1
}

type labelVisibility struct {
	dishes      []bool
	ingredients []bool
}

// declutter decides which point labels stay visible. Labels are placed
// greedily: dishes first, then ingredients, each series in input order,
// and a label whose estimated box overlaps an already-placed one is
// hidden. The pass is pure and order-stable, so the same data always
// renders the same chart.
func declutter(data viz.Data) labelVisibility {
	vis := labelVisibility{
		dishes:      make([]bool, len(data.Dishes)),
		ingredients: make([]bool, len(data.Ingredients)),
	}
	if len(data.Dishes)+len(data.Ingredients) == 0 {
		return vis
	}

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	expand := func(x, y float64) {
		xMin = math.Min(xMin, x)
		xMax = math.Max(xMax, x)
		yMin = math.Min(yMin, y)
		yMax = math.Max(yMax, y)
	}
	for _, p := range data.Dishes {
		expand(p.Index, p.Popularity)
	}
	for _, p := range data.Ingredients {
		expand(p.MeanIndex, p.MeanPopularity)
	}

	xRange := xMax - xMin
	if xRange == 0 {
		xRange = 1
	}
	yRange := yMax - yMin
	if yRange == 0 {
		yRange = 1
	}

	charW := xRange * labelCharRatio
	lineH := yRange * labelLineRatio

	// Labels render to the right of their point.
	box := func(name string, x, y float64) labelBox {
		w := float64(utf8.RuneCountInString(name)) * charW
		return labelBox{x0: x, x1: x + w, y0: y - lineH/2, y1: y + lineH/2}
	}

	var placed []labelBox
	place := func(b labelBox) bool {
		for _, p := range placed {
			if b.intersects(p) {
				return false
			}
		}
		placed = append(placed, b)
		return true
	}

	for i, p := range data.Dishes {
		vis.dishes[i] = place(box(p.Name, p.Index, p.Popularity))
	}
	for i, p := range data.Ingredients {
		vis.ingredients[i] = place(box(p.Name, p.MeanIndex, p.MeanPopularity))
	}
	return vis
}
