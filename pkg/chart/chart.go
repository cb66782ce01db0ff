// Package chart renders the match-analysis scatter as a self-contained
// HTML page via ECharts. Ingredient and dish points arrive pre-aggregated
// from pkg/viz; the only logic here is styling and label decluttering.
package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mealscope/mealscope/pkg/viz"
)

// DefaultTitle is the chart and page title.
const DefaultTitle = "好感度与健康度匹配分析"

const (
	xAxisName = "健康值 (CD-NDI)"
	yAxisName = "喜爱度"

	ingredientSeriesName     = "原材料"
	ingredientSeriesFreqName = "原材料（点大小=使用频率）"
	dishSeriesName           = "菜品"
)

// Options control page-level presentation. Zero values mean defaults.
type Options struct {
	Title  string
	Width  string
	Height string
}

// Renderer writes scatter charts for visualization data.
type Renderer struct {
	opts Options
}

// NewRenderer fills defaults and returns a renderer.
func NewRenderer(o Options) *Renderer {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Width == "" {
		o.Width = "1400px"
	}
	if o.Height == "" {
		o.Height = "800px"
	}
	return &Renderer{opts: o}
}

// Render writes a complete HTML page with one scatter chart to w.
// Ingredients plot limegreen with darkgreen labels, dishes royalblue with
// bold navy labels; overlapping labels are hidden by the declutter pass,
// dish labels winning over ingredient labels. Each group is emitted as a
// labeled and an unlabeled series under one shared name, so the legend
// shows a single entry per group and toggling it hides both halves.
func (r *Renderer) Render(w io.Writer, data viz.Data) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: r.opts.Title,
			Width:     r.opts.Width,
			Height:    r.opts.Height,
		}),
		charts.WithTitleOpts(opts.Title{Title: r.opts.Title}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      xAxisName,
			Type:      "value",
			Scale:     opts.Bool(true),
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      yAxisName,
			Type:      "value",
			Scale:     opts.Bool(true),
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)

	vis := declutter(data)

	ingredientName := ingredientSeriesName
	if data.Mode == viz.ModeFrequency {
		ingredientName = ingredientSeriesFreqName
	}
	ingredientStyle := charts.WithItemStyleOpts(opts.ItemStyle{Color: "limegreen", Opacity: 0.7})
	ingredientLabel := opts.Label{
		Formatter: "{b}",
		Position:  "right",
		Color:     "darkgreen",
		FontSize:  8,
	}

	labeled, unlabeled := ingredientItems(data.Ingredients, vis.ingredients)
	addSplitSeries(scatter, ingredientName, labeled, unlabeled, ingredientStyle, ingredientLabel)

	dishStyle := charts.WithItemStyleOpts(opts.ItemStyle{Color: "royalblue", Opacity: 0.8})
	dishLabel := opts.Label{
		Formatter:  "{b}",
		Position:   "right",
		Color:      "navy",
		FontWeight: "bold",
		FontSize:   9,
	}

	labeled, unlabeled = dishItems(data.Dishes, vis.dishes)
	addSplitSeries(scatter, dishSeriesName, labeled, unlabeled, dishStyle, dishLabel)

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

func addSplitSeries(scatter *charts.Scatter, name string, labeled, unlabeled []opts.ScatterData, style charts.SeriesOpts, label opts.Label) {
	shown := label
	shown.Show = opts.Bool(true)
	scatter.AddSeries(name, labeled, style, charts.WithLabelOpts(shown))

	if len(unlabeled) > 0 {
		hidden := label
		hidden.Show = opts.Bool(false)
		scatter.AddSeries(name, unlabeled, style, charts.WithLabelOpts(hidden))
	}
}

func ingredientItems(points []viz.IngredientPoint, visible []bool) (labeled, unlabeled []opts.ScatterData) {
	for i, p := range points {
		d := opts.ScatterData{
			Name:       p.Name,
			Value:      []float64{p.MeanIndex, p.MeanPopularity},
			SymbolSize: p.SymbolSize,
		}
		if visible[i] {
			labeled = append(labeled, d)
		} else {
			unlabeled = append(unlabeled, d)
		}
	}
	return labeled, unlabeled
}

func dishItems(points []viz.DishPoint, visible []bool) (labeled, unlabeled []opts.ScatterData) {
	for i, p := range points {
		d := opts.ScatterData{
			Name:       p.Name,
			Value:      []float64{p.Index, p.Popularity},
			SymbolSize: p.SymbolSize,
		}
		if visible[i] {
			labeled = append(labeled, d)
		} else {
			unlabeled = append(unlabeled, d)
		}
	}
	return labeled, unlabeled
}
