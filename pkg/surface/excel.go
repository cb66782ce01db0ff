package surface

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mealscope/mealscope/pkg/scoring"
)

// Workbook sheet names.
const (
	sheetSummary     = "分析概要"
	sheetRanking     = "菜品排名"
	sheetCategories  = "类别分析"
	sheetIngredients = "食材频率"
)

// ExcelRenderer writes a Report as an .xlsx workbook, one sheet per
// report section, rankings and frequencies in full.
type ExcelRenderer struct{}

func (r *ExcelRenderer) Render(w io.Writer, rep *scoring.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return fmt.Errorf("renaming summary sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := writeSummarySheet(f, rep); err != nil {
		return err
	}
	if err := writeRankingSheet(f, rep, header); err != nil {
		return err
	}
	if err := writeCategorySheet(f, rep, header); err != nil {
		return err
	}
	if err := writeIngredientSheet(f, rep, header); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, rep *scoring.Report) error {
	rows := []struct {
		label string
		value any
	}{
		{"报告编号", rep.ID},
		{"生成时间", rep.GeneratedAt.Format(time.RFC3339)},
		{"菜品数量", rep.DishCount},
		{"营养得分与喜爱度相关性", rep.Correlation},
		{"分析结果", rep.Band.Analysis()},
		{"建议", rep.Band.Suggestion()},
	}
	for i, row := range rows {
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", i+1), row.label); err != nil {
			return fmt.Errorf("writing %s: %w", sheetSummary, err)
		}
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", i+1), row.value); err != nil {
			return fmt.Errorf("writing %s: %w", sheetSummary, err)
		}
	}
	if err := f.SetColWidth(sheetSummary, "A", "A", 26); err != nil {
		return fmt.Errorf("writing %s: %w", sheetSummary, err)
	}
	return f.SetColWidth(sheetSummary, "B", "B", 44)
}

func writeRankingSheet(f *excelize.File, rep *scoring.Report, headerStyle int) error {
	if err := writeHeaderRow(f, sheetRanking, headerStyle,
		"排名", "菜品", "类别", "匹配度", "营养指数", "喜爱度"); err != nil {
		return err
	}
	for i, d := range rep.Ranking {
		row := i + 2
		cells := []any{i + 1, d.Name, d.Category, d.MatchScore, d.NutritionScore, d.PopularityScore}
		if err := writeRow(f, sheetRanking, row, cells); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetRanking, "B", "C", 18)
}

func writeCategorySheet(f *excelize.File, rep *scoring.Report, headerStyle int) error {
	if err := writeHeaderRow(f, sheetCategories, headerStyle,
		"类别", "菜品数量", "平均匹配度", "平均喜爱度"); err != nil {
		return err
	}
	for i, c := range rep.Categories {
		cells := []any{c.Category, c.DishCount, c.AvgMatchScore, c.AvgPopularity}
		if err := writeRow(f, sheetCategories, i+2, cells); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetCategories, "A", "D", 14)
}

func writeIngredientSheet(f *excelize.File, rep *scoring.Report, headerStyle int) error {
	if err := writeHeaderRow(f, sheetIngredients, headerStyle,
		"排名", "食材", "使用次数"); err != nil {
		return err
	}
	for i, ing := range rep.Ingredients {
		cells := []any{i + 1, ing.Name, ing.Count}
		if err := writeRow(f, sheetIngredients, i+2, cells); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetIngredients, "B", "B", 18)
}

func writeHeaderRow(f *excelize.File, sheet string, style int, headers ...string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating %s: %w", sheet, err)
	}
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	if err := writeRow(f, sheet, 1, cells); err != nil {
		return err
	}
	last := fmt.Sprintf("%c1", 'A'+len(headers)-1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("styling %s: %w", sheet, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	for col, v := range cells {
		cell := fmt.Sprintf("%c%d", 'A'+col, row)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("writing %s: %w", sheet, err)
		}
	}
	return nil
}
