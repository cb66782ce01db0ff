package surface_test

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mealscope/mealscope/pkg/scoring"
	"github.com/mealscope/mealscope/pkg/surface"
)

func sampleReport() *scoring.Report {
	return &scoring.Report{
		ID:          "3d9c8a74-5cf2-4af0-9d61-7f25f1a0b834",
		GeneratedAt: time.Date(2025, 4, 12, 9, 30, 0, 0, time.UTC),
		DishCount:   6,
		Correlation: -0.45,
		Band:        scoring.InterpretCorrelation(-0.45),
		Ranking: []scoring.DishScore{
			{Name: "清蒸鲈鱼", Category: "水产类", PopularityScore: 7.9, CDNDI: 67, NutritionScore: 67, NormalizedPopularity: 0.79, MatchScore: 0.718},
			{Name: "宫保鸡丁", Category: "鸡肉类", PopularityScore: 9.2, CDNDI: 23.8, NutritionScore: 23.8, NormalizedPopularity: 0.92, MatchScore: 0.511},
			{Name: "麻婆豆腐", Category: "豆制品类", PopularityScore: 8.8, CDNDI: 18.7, NutritionScore: 18.7, NormalizedPopularity: 0.88, MatchScore: 0.464},
			{Name: "烤肉拌饭", Category: "风味快餐", PopularityScore: 9, CDNDI: 10.1, NutritionScore: 10.1, NormalizedPopularity: 0.9, MatchScore: 0.421},
			{Name: "白米饭", Category: "主食类", PopularityScore: 7.8, CDNDI: 13, NutritionScore: 13, NormalizedPopularity: 0.78, MatchScore: 0.39},
			{Name: "红烧肉", Category: "猪肉类", PopularityScore: 8.5, CDNDI: -45.8, NutritionScore: -45.8, NormalizedPopularity: 0.85, MatchScore: 0.065},
		},
		Categories: []scoring.CategoryStats{
			{Category: "水产类", DishCount: 1, AvgMatchScore: 0.718, AvgPopularity: 7.9},
			{Category: "豆制品类", DishCount: 1, AvgMatchScore: 0.464, AvgPopularity: 8.8},
		},
		Ingredients: []scoring.IngredientCount{
			{Name: "猪肉", Count: 8},
			{Name: "青菜", Count: 3},
			{Name: "豆腐", Count: 3},
			{Name: "米饭", Count: 2},
			{Name: "鸡蛋", Count: 2},
			{Name: "番茄", Count: 2},
			{Name: "大蒜", Count: 1},
			{Name: "生姜", Count: 1},
			{Name: "香葱", Count: 1},
			{Name: "花生", Count: 1},
			{Name: "黄瓜", Count: 1},
			{Name: "冰糖", Count: 1},
		},
	}
}

func TestTerminalRenderer_ReportFormat(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	r := &surface.TerminalRenderer{}
	var buf bytes.Buffer
	if err := r.Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"=== 学生膳食营养与喜爱度匹配分析报告 ===",
		"营养得分与喜爱度相关性: -0.450",
		"分析结果: 存在明显的营养-喜爱度背离现象",
		"💡💡 建议: 需要重点改进高营养菜品的口味吸引力",
		"🏆🏆 匹配度最高菜品TOP5:",
		"1. 清蒸鲈鱼 (匹配度: 0.718)",
		"5. 白米饭 (匹配度: 0.390)",
		"📈📈 各类别表现分析:",
		"水产类: 平均匹配度0.718, 平均喜爱度7.9",
		"🥩🥬 食材使用频率分析:",
		"1. 猪肉: 使用8次",
		"10. 花生: 使用1次",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestTerminalRenderer_TruncatesToDisplayCaps(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	r := &surface.TerminalRenderer{}
	var buf bytes.Buffer
	if err := r.Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()
	// Rank 6 and ingredients 11-12 fall off the display.
	if strings.Contains(output, "红烧肉") {
		t.Error("rank 6 should not be shown")
	}
	if strings.Contains(output, "黄瓜") || strings.Contains(output, "冰糖") {
		t.Error("ingredients beyond the top 10 should not be shown")
	}
}

func TestTerminalRenderer_WeakBandHasNoLamp(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	rep := sampleReport()
	rep.Correlation = 0.1
	rep.Band = scoring.InterpretCorrelation(0.1)

	r := &surface.TerminalRenderer{}
	var buf bytes.Buffer
	if err := r.Render(&buf, rep); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "建议: 需要系统性优化菜品设计") {
		t.Error("expected weak-band suggestion")
	}
	if strings.Contains(output, "💡") {
		t.Error("weak band should not carry the lamp emoji")
	}
}

func TestTerminalRenderer_PlainForNonTerminals(t *testing.T) {
	// Even without NO_COLOR a buffer is not a terminal, so output stays
	// free of ANSI escapes.
	os.Unsetenv("NO_COLOR")

	r := &surface.TerminalRenderer{}
	var buf bytes.Buffer
	if err := r.Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if strings.Contains(buf.String(), "\033[") {
		t.Error("expected no ANSI escapes when writing to a buffer")
	}
}
