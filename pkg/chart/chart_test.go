package chart_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mealscope/mealscope/pkg/chart"
	"github.com/mealscope/mealscope/pkg/viz"
)

func sampleData(mode viz.Mode) viz.Data {
	return viz.Data{
		Mode: mode,
		Ingredients: []viz.IngredientPoint{
			{Name: "猪肉", MeanIndex: 30, MeanPopularity: 8, Frequency: 2, SymbolSize: 46},
			{Name: "青菜", MeanIndex: 10, MeanPopularity: 6, Frequency: 1, SymbolSize: 38},
		},
		Dishes: []viz.DishPoint{
			{Name: "红烧肉", Index: -45, Popularity: 8.5, SymbolSize: 60},
			{Name: "清炒时蔬", Index: 9, Popularity: 6.1, SymbolSize: 60},
		},
	}
}

func TestRender_PageContents(t *testing.T) {
	var buf bytes.Buffer
	r := chart.NewRenderer(chart.Options{})
	if err := r.Render(&buf, sampleData(viz.ModeAverage)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		chart.DefaultTitle,
		"原材料",
		"菜品",
		"健康值 (CD-NDI)",
		"喜爱度",
		"红烧肉",
		"猪肉",
		"limegreen",
		"royalblue",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestRender_FrequencyLegend(t *testing.T) {
	var buf bytes.Buffer
	r := chart.NewRenderer(chart.Options{})
	if err := r.Render(&buf, sampleData(viz.ModeFrequency)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "原材料（点大小=使用频率）") {
		t.Error("frequency mode should rename the ingredient series")
	}
}

func TestRender_CustomTitle(t *testing.T) {
	var buf bytes.Buffer
	r := chart.NewRenderer(chart.Options{Title: "食堂配餐分析"})
	if err := r.Render(&buf, sampleData(viz.ModeAverage)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "食堂配餐分析") {
		t.Error("custom title missing from page")
	}
}

func TestRender_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	r := chart.NewRenderer(chart.Options{})
	if err := r.Render(&buf, viz.Data{Mode: viz.ModeAverage}); err != nil {
		t.Fatalf("empty data should still render: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected page output for empty data")
	}
}
