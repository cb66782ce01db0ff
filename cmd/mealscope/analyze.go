package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mealscope/mealscope/internal/source"
	"github.com/mealscope/mealscope/pkg/config"
	"github.com/mealscope/mealscope/pkg/menu"
	"github.com/mealscope/mealscope/pkg/scoring"
	"github.com/mealscope/mealscope/pkg/surface"
)

func newAnalyzeCmd(root *rootOptions) *cobra.Command {
	var (
		outputFmt string
		excelPath string
		save      bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full nutrition and popularity match analysis",
		Long:  `Loads the dish catalog, scores every dish, and renders the analysis report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), analyzeOpts{
				root:      root,
				outputFmt: outputFmt,
				excelPath: excelPath,
				save:      save,
			})
		},
	}

	cmd.Flags().StringVar(&outputFmt, "format", "terminal", "Output format: terminal or json")
	cmd.Flags().StringVar(&excelPath, "excel", "", "Also export the report as an Excel workbook")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the report JSON to the reports directory")

	return cmd
}

type analyzeOpts struct {
	root      *rootOptions
	outputFmt string
	excelPath string
	save      bool
}

func runAnalyze(ctx context.Context, opts analyzeOpts) error {
	cfg, err := loadConfig(opts.root)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Step 1/3: Loading catalog from %s...\n", opts.root.input)
	cat, err := fetchCatalog(ctx, opts.root.input)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "  %d dishes, %d ingredient entries\n", len(cat.Dishes), cat.IngredientEntries())

	fmt.Fprintf(os.Stderr, "Step 2/3: Scoring dishes...\n")
	resolved := menu.ResolveMainIngredients(cat, cfg.Ingredients.ResolvedNames())
	analyzer := scoring.New(resolved, cfg.Scoring.Weights())

	fmt.Fprintf(os.Stderr, "Step 3/3: Building report...\n")
	rep, err := analyzer.BuildReport()
	if err != nil {
		return err
	}

	if opts.save {
		saveReport(reportDir(cfg), rep)
	}

	if opts.excelPath != "" {
		if err := writeExcel(opts.excelPath, rep); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Excel report saved: %s\n", opts.excelPath)
	}

	switch opts.outputFmt {
	case "json":
		renderer := &surface.JSONRenderer{}
		if err := renderer.Render(os.Stdout, rep); err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
	default:
		renderer := &surface.TerminalRenderer{}
		if err := renderer.Render(os.Stdout, rep); err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
	}

	return nil
}

// loadConfig loads the config named by --config, falling back to
// .mealscope/config.yaml discovery from the working directory.
func loadConfig(root *rootOptions) (*config.Config, error) {
	path := root.config
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.FindConfigFile(wd)
		}
	}
	return config.Load(path)
}

// fetchCatalog resolves the catalog URI and decodes it.
func fetchCatalog(ctx context.Context, uri string) (menu.Catalog, error) {
	src, err := source.FromURI(uri)
	if err != nil {
		return menu.Catalog{}, err
	}
	data, err := src.Fetch(ctx)
	if err != nil {
		return menu.Catalog{}, err
	}
	return menu.ParseCatalog(data)
}

// reportDir picks the configured reports directory, defaulting to the
// per-workspace cache.
func reportDir(cfg *config.Config) string {
	if cfg.Reports.Dir != "" {
		return cfg.Reports.Dir
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return config.ReportDir(wd)
}

// saveReport persists the report JSON for later inspection. Failures warn
// rather than abort; the rendered output is the primary artifact.
func saveReport(dir string, rep *scoring.Report) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create reports dir: %v\n", err)
		return
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to marshal report: %v\n", err)
		return
	}
	path := filepath.Join(dir, rep.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save report: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Report saved: %s\n", path)
}

func writeExcel(path string, rep *scoring.Report) error {
	var buf bytes.Buffer
	if err := (&surface.ExcelRenderer{}).Render(&buf, rep); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
