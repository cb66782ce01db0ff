package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mealscope/mealscope/pkg/menu"
	"github.com/mealscope/mealscope/pkg/scoring"
)

func newComboCmd(root *rootOptions) *cobra.Command {
	var (
		limit        int
		calorieLimit float64
	)

	cmd := &cobra.Command{
		Use:   "combo",
		Short: "Print the recommended daily dish combination",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombo(cmd.Context(), root, limit, calorieLimit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", scoring.DefaultComboSize, "Number of dishes to recommend")
	cmd.Flags().Float64Var(&calorieLimit, "calorie-limit", scoring.DefaultDailyCalorieLimit, "Daily calorie budget (accepted for compatibility; not applied)")

	return cmd
}

func runCombo(ctx context.Context, root *rootOptions, limit int, calorieLimit float64) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	cat, err := fetchCatalog(ctx, root.input)
	if err != nil {
		return err
	}
	resolved := menu.ResolveMainIngredients(cat, cfg.Ingredients.ResolvedNames())
	analyzer := scoring.New(resolved, cfg.Scoring.Weights())

	combo := analyzer.TopCombination(limit, calorieLimit)

	fmt.Println("🎯🎯 推荐每日菜品组合:")
	for i, dish := range combo {
		fmt.Printf("%d. %s (营养: %.1f, 喜爱度: %v)\n", i+1, dish.Name, dish.NutritionScore, dish.PopularityScore)
	}
	return nil
}
