// Package config handles loading and managing MealScope configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mealscope/mealscope/pkg/menu"
	"github.com/mealscope/mealscope/pkg/scoring"
	"github.com/mealscope/mealscope/pkg/viz"
)

// Config is the top-level configuration for MealScope.
type Config struct {
	Scoring     ScoringConfig     `yaml:"scoring"`
	Ingredients IngredientsConfig `yaml:"ingredients"`
	Chart       ChartConfig       `yaml:"chart"`
	Server      ServerConfig      `yaml:"server"`
	Reports     ReportsConfig     `yaml:"reports"`
}

// ScoringConfig holds the index and match weights. Fields absent from the
// file keep their defaults.
type ScoringConfig struct {
	IndexWeights IndexWeightsConfig `yaml:"index_weights"`
	MatchWeights MatchWeightsConfig `yaml:"match_weights"`
}

// IndexWeightsConfig mirrors scoring.IndexWeights for YAML.
type IndexWeightsConfig struct {
	Protein      float64 `yaml:"protein"`
	DietaryFiber float64 `yaml:"dietary_fiber"`
	SaturatedFat float64 `yaml:"saturated_fat"`
	Sodium       float64 `yaml:"sodium"`
	AddedSugar   float64 `yaml:"added_sugar"`
}

// MatchWeightsConfig mirrors scoring.MatchWeights for YAML.
type MatchWeightsConfig struct {
	Nutrition       float64 `yaml:"nutrition"`
	Popularity      float64 `yaml:"popularity"`
	NutritionScale  float64 `yaml:"nutrition_scale"`
	PopularityScale float64 `yaml:"popularity_scale"`
}

// Weights converts the configured values into scoring weights.
func (c ScoringConfig) Weights() scoring.Weights {
	return scoring.Weights{
		Index: scoring.IndexWeights{
			Protein:      c.IndexWeights.Protein,
			DietaryFiber: c.IndexWeights.DietaryFiber,
			SaturatedFat: c.IndexWeights.SaturatedFat,
			Sodium:       c.IndexWeights.Sodium,
			AddedSugar:   c.IndexWeights.AddedSugar,
		},
		Match: scoring.MatchWeights{
			Nutrition:       c.MatchWeights.Nutrition,
			Popularity:      c.MatchWeights.Popularity,
			NutritionScale:  c.MatchWeights.NutritionScale,
			PopularityScale: c.MatchWeights.PopularityScale,
		},
	}
}

// IngredientsConfig overlays extra category to ingredient-name entries on
// the built-in resolution table.
type IngredientsConfig struct {
	Names map[string]string `yaml:"names"`
}

// ResolvedNames returns the full resolution table: built-in entries plus
// the configured ones, configured entries replacing built-ins for the
// same category.
func (c IngredientsConfig) ResolvedNames() map[string]string {
	names := menu.DefaultIngredientNames()
	for category, name := range c.Names {
		names[category] = name
	}
	return names
}

// ChartConfig controls chart generation.
type ChartConfig struct {
	Mode   string `yaml:"mode"`
	Output string `yaml:"output"`
	Title  string `yaml:"title"`
}

// ServerConfig controls the serve command.
type ServerConfig struct {
	Listen string `yaml:"listen"`
	Watch  bool   `yaml:"watch"`
	Open   bool   `yaml:"open"`
}

// ReportsConfig controls where report artifacts are saved. An empty Dir
// means the per-workspace cache directory.
type ReportsConfig struct {
	Dir string `yaml:"dir"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	w := scoring.Defaults()
	return &Config{
		Scoring: ScoringConfig{
			IndexWeights: IndexWeightsConfig{
				Protein:      w.Index.Protein,
				DietaryFiber: w.Index.DietaryFiber,
				SaturatedFat: w.Index.SaturatedFat,
				Sodium:       w.Index.Sodium,
				AddedSugar:   w.Index.AddedSugar,
			},
			MatchWeights: MatchWeightsConfig{
				Nutrition:       w.Match.Nutrition,
				Popularity:      w.Match.Popularity,
				NutritionScale:  w.Match.NutritionScale,
				PopularityScale: w.Match.PopularityScale,
			},
		},
		Ingredients: IngredientsConfig{Names: map[string]string{}},
		Chart: ChartConfig{
			Mode:   string(viz.ModeAverage),
			Output: "chart.html",
		},
		Server: ServerConfig{Listen: ":8418"},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .mealscope/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".mealscope", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the cache directory for a given workspace path.
// Uses ~/.cache/mealscope/<repo-slug>/ to avoid polluting the workspace.
func CacheDir(workspacePath string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	slug := repoSlug(workspacePath)
	return filepath.Join(home, ".cache", "mealscope", slug)
}

// ReportDir returns the report artifact directory for a workspace.
func ReportDir(workspacePath string) string {
	return filepath.Join(CacheDir(workspacePath), "reports")
}

// repoSlug creates a filesystem-safe identifier from a workspace path.
// Uses the last two path components (e.g., "menus_canteen" from "/home/user/menus/canteen").
func repoSlug(workspacePath string) string {
	abs, err := filepath.Abs(workspacePath)
	if err != nil {
		abs = workspacePath
	}
	// Use last two path components for readability
	dir := filepath.Base(filepath.Dir(abs))
	base := filepath.Base(abs)
	return dir + "_" + base
}
