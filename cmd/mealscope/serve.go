package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mealscope/mealscope/internal/logging"
	"github.com/mealscope/mealscope/internal/server"
	"github.com/mealscope/mealscope/pkg/chart"
	"github.com/mealscope/mealscope/pkg/viz"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		addr    string
		watch   bool
		open    bool
		modeStr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API and chart page",
		Long: `Starts an HTTP server exposing the analysis report, the scored dish list,
and the rendered chart. With --watch, editing a local catalog file reloads
the analysis in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), root, addr, modeStr, watch, open)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, then :8418)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload when the catalog file changes")
	cmd.Flags().BoolVar(&open, "open", false, "Open the chart in the default browser")
	cmd.Flags().StringVar(&modeStr, "mode", "", "Ingredient aggregation mode: average or frequency")

	return cmd
}

func runServe(ctx context.Context, root *rootOptions, addr, modeStr string, watch, open bool) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	mode, err := viz.ParseMode(firstNonEmpty(modeStr, cfg.Chart.Mode, string(viz.ModeAverage)))
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Getenv("MEALSCOPE_LOG_LEVEL"))
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(gin.ReleaseMode)
	srv, err := server.New(server.Options{
		Addr:            firstNonEmpty(addr, cfg.Server.Listen, ":8418"),
		Input:           root.input,
		Mode:            mode,
		Chart:           chart.Options{Title: cfg.Chart.Title},
		Weights:         cfg.Scoring.Weights(),
		IngredientNames: cfg.Ingredients.ResolvedNames(),
		Watch:           watch || cfg.Server.Watch,
		Open:            open || cfg.Server.Open,
		Logger:          logger,
	})
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
