package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mealscope/mealscope/pkg/chart"
	"github.com/mealscope/mealscope/pkg/menu"
	"github.com/mealscope/mealscope/pkg/scoring"
	"github.com/mealscope/mealscope/pkg/viz"
)

func newChartCmd(root *rootOptions) *cobra.Command {
	var (
		outPath string
		modeStr string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the nutrition and popularity scatter chart",
		Long: `Renders an HTML scatter chart of ingredients and dishes, positioned by
nutrition index and popularity. Ingredients aggregate across dishes in
average or frequency mode.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd.Context(), root, outPath, modeStr)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Output HTML path (default from config, then chart.html)")
	cmd.Flags().StringVar(&modeStr, "mode", "", "Ingredient aggregation mode: average or frequency")

	return cmd
}

func runChart(ctx context.Context, root *rootOptions, outPath, modeStr string) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	mode, err := viz.ParseMode(firstNonEmpty(modeStr, cfg.Chart.Mode, string(viz.ModeAverage)))
	if err != nil {
		return err
	}
	out := firstNonEmpty(outPath, cfg.Chart.Output, "chart.html")

	cat, err := fetchCatalog(ctx, root.input)
	if err != nil {
		return err
	}
	resolved := menu.ResolveMainIngredients(cat, cfg.Ingredients.ResolvedNames())
	analyzer := scoring.New(resolved, cfg.Scoring.Weights())

	fmt.Println("📊📊 可视化分析（食材聚合显示）...")

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	renderer := chart.NewRenderer(chart.Options{Title: cfg.Chart.Title})
	if err := renderer.Render(f, viz.Build(resolved, analyzer, mode)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	fmt.Fprintf(os.Stderr, "Chart saved: %s\n", out)
	return nil
}
