package surface

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/mealscope/mealscope/pkg/scoring"
)

// TerminalRenderer renders a Report as the console analysis report.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
)

// Display caps. The report itself carries the full ranking and frequency
// list; the terminal shows the head of each.
const (
	terminalTopDishes      = 5
	terminalTopIngredients = 10
)

func bandColor(band scoring.CorrelationBand) string {
	switch band {
	case scoring.BandDivergence:
		return colorRed
	case scoring.BandPositive:
		return colorGreen
	default:
		return colorYellow
	}
}

// useColor enables ANSI output only for an actual terminal with NO_COLOR
// unset. Buffers and pipes always get plain text.
func useColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func bold(s string, color bool) string {
	if !color {
		return s
	}
	return colorBold + s + colorReset
}

func colored(s, code string, color bool) string {
	if !color || code == "" {
		return s
	}
	return code + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, rep *scoring.Report) error {
	color := useColor(w)

	// Header
	fmt.Fprintf(w, "%s\n", bold("=== 学生膳食营养与喜爱度匹配分析报告 ===", color))
	fmt.Fprintf(w, "营养得分与喜爱度相关性: %.3f\n", rep.Correlation)
	fmt.Fprintf(w, "分析结果: %s\n", colored(rep.Band.Analysis(), bandColor(rep.Band), color))
	fmt.Fprintln(w, rep.Band.Suggestion())

	// Ranking
	fmt.Fprintf(w, "\n%s\n", bold("🏆🏆 匹配度最高菜品TOP5:", color))
	for i, d := range rep.Ranking {
		if i >= terminalTopDishes {
			break
		}
		fmt.Fprintf(w, "%d. %s (匹配度: %.3f)\n", i+1, d.Name, d.MatchScore)
	}

	// Category means
	fmt.Fprintf(w, "\n%s\n", bold("📈📈 各类别表现分析:", color))
	for _, c := range rep.Categories {
		fmt.Fprintf(w, "%s: 平均匹配度%.3f, 平均喜爱度%.1f\n", c.Category, c.AvgMatchScore, c.AvgPopularity)
	}

	// Ingredient frequency
	fmt.Fprintf(w, "\n%s\n", bold("🥩🥬 食材使用频率分析:", color))
	for i, ing := range rep.Ingredients {
		if i >= terminalTopIngredients {
			break
		}
		fmt.Fprintf(w, "%d. %s: 使用%d次\n", i+1, ing.Name, ing.Count)
	}

	return nil
}
