// Package surface defines output rendering for MealScope analysis
// reports. Implementations handle different output targets: terminal,
// JSON, Excel workbook.
package surface

import (
	"io"

	"github.com/mealscope/mealscope/pkg/scoring"
)

// Renderer produces formatted output from a Report.
type Renderer interface {
	// Render writes the formatted report to the writer.
	Render(w io.Writer, rep *scoring.Report) error
}
