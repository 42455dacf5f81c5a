package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"jeaudit/internal/benford"
)

// Brand palette for the styled Excel report
const (
	brandGreen     = "006633"
	brandDarkGreen = "004B2E"
	brandGray      = "4D4D4D"
	brandLightGray = "E6E6E6"
	brandGold      = "CBA135"
)

const (
	summarySheet = "Summary"
	columnSheet  = "Column Summary"
	detailSheet  = "Detail"
	skippedSheet = "Skipped"
)

// excelStyles holds the style IDs registered on one workbook
type excelStyles struct {
	title        int
	header       int
	label        int
	section      int
	percent      int
	zebra        int
	zebraPercent int
}

// WriteExcel renders the styled Excel report: a Summary sheet with the
// overall digit distribution, charts and the top-MAD table, plus full
// Column Summary, Detail and Skipped sheets.
func WriteExcel(data Data, path string) error {
	slog.Info("writing excel report", slog.String("path", path))

	f := excelize.NewFile()
	defer f.Close()

	styles, err := registerStyles(f)
	if err != nil {
		return fmt.Errorf("failed to register styles: %w", err)
	}

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, data, styles); err != nil {
		return fmt.Errorf("failed to build summary sheet: %w", err)
	}
	if err := writeColumnSheet(f, data, styles); err != nil {
		return fmt.Errorf("failed to build column summary sheet: %w", err)
	}
	if err := writeDetailSheet(f, data, styles); err != nil {
		return fmt.Errorf("failed to build detail sheet: %w", err)
	}
	if err := writeSkippedSheet(f, data, styles); err != nil {
		return fmt.Errorf("failed to build skipped sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save excel report: %w", err)
	}
	return nil
}

func registerStyles(f *excelize.File) (excelStyles, error) {
	var s excelStyles
	var err error

	s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 16},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{brandDarkGreen}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return s, err
	}

	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{brandGreen}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return s, err
	}

	s.label, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: brandGray},
	})
	if err != nil {
		return s, err
	}

	s.section, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{brandGold}},
	})
	if err != nil {
		return s, err
	}

	pctFmt := "0.0%"
	s.percent, err = f.NewStyle(&excelize.Style{CustomNumFmt: &pctFmt})
	if err != nil {
		return s, err
	}

	s.zebra, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{brandLightGray}},
	})
	if err != nil {
		return s, err
	}

	s.zebraPercent, err = f.NewStyle(&excelize.Style{
		Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{brandLightGray}},
		CustomNumFmt: &pctFmt,
	})
	return s, err
}

func writeSummarySheet(f *excelize.File, data Data, styles excelStyles) error {
	if err := f.MergeCell(summarySheet, "A1", "G1"); err != nil {
		return err
	}
	setCells(f, summarySheet, map[string]interface{}{
		"A1": "Benford's Law Analysis Report",
		"A2": "Input File",
		"B2": data.InputPath,
		"A3": "Generated",
		"B3": time.Now().Format("2006-01-02 15:04"),
		"A5": "Overall Leading Digit Distribution",
	})
	if err := f.SetCellStyle(summarySheet, "A1", "A1", styles.title); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A2", "A3", styles.label); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A5", "A5", styles.section); err != nil {
		return err
	}

	// Overall digit distribution table, rows 6-15.
	headers := []string{"Digit", "Actual Count", "Actual %", "Expected %"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 6)
		if err := f.SetCellValue(summarySheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(summarySheet, "A6", "D6", styles.header); err != nil {
		return err
	}

	counts, total := data.OverallDistribution()
	for d := 1; d <= 9; d++ {
		row := 6 + d
		actual := 0.0
		if total > 0 {
			actual = float64(counts[d-1]) / float64(total)
		}
		setCells(f, summarySheet, map[string]interface{}{
			fmt.Sprintf("A%d", row): d,
			fmt.Sprintf("B%d", row): counts[d-1],
			fmt.Sprintf("C%d", row): actual,
			fmt.Sprintf("D%d", row): benford.Expected(d),
		})
		if row%2 == 0 {
			if err := f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), styles.zebra); err != nil {
				return err
			}
			if err := f.SetCellStyle(summarySheet, fmt.Sprintf("C%d", row), fmt.Sprintf("D%d", row), styles.zebraPercent); err != nil {
				return err
			}
		} else {
			if err := f.SetCellStyle(summarySheet, fmt.Sprintf("C%d", row), fmt.Sprintf("D%d", row), styles.percent); err != nil {
				return err
			}
		}
	}

	if err := f.AddChart(summarySheet, "F6", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       "Summary!$C$6",
				Categories: "Summary!$A$7:$A$15",
				Values:     "Summary!$C$7:$C$15",
			},
			{
				Name:       "Summary!$D$6",
				Categories: "Summary!$A$7:$A$15",
				Values:     "Summary!$D$7:$D$15",
			},
		},
		Title:     []excelize.RichTextRun{{Text: "Actual vs Expected Distribution"}},
		XAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Leading Digit"}}},
		YAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Percentage"}}},
		Dimension: excelize.ChartDimension{Width: 560, Height: 300},
	}); err != nil {
		return err
	}

	// Top deviations table, starting row 18.
	const topStart = 18
	if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", topStart), "Top MAD Deviations"); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", topStart), fmt.Sprintf("A%d", topStart), styles.section); err != nil {
		return err
	}

	topHeaders := []string{"Sheet", "Column", "Total Values", "Chi-Square", "MAD", "Conformity"}
	for i, h := range topHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, topStart+1)
		if err := f.SetCellValue(summarySheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", topStart+1), fmt.Sprintf("F%d", topStart+1), styles.header); err != nil {
		return err
	}

	top := data.TopDeviations(10)
	for i, r := range top {
		row := topStart + 2 + i
		setCells(f, summarySheet, map[string]interface{}{
			fmt.Sprintf("A%d", row): r.Sheet,
			fmt.Sprintf("B%d", row): r.Column,
			fmt.Sprintf("C%d", row): r.SampleSize,
			fmt.Sprintf("D%d", row): r.ChiSquare,
			fmt.Sprintf("E%d", row): r.MAD,
			fmt.Sprintf("F%d", row): r.Conformity.String(),
		})
		if row%2 == 0 {
			if err := f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), styles.zebra); err != nil {
				return err
			}
		}
	}

	if len(top) > 0 {
		if err := f.AddChart(summarySheet, fmt.Sprintf("H%d", topStart+1), &excelize.Chart{
			Type: excelize.Col,
			Series: []excelize.ChartSeries{
				{
					Name:       fmt.Sprintf("Summary!$E$%d", topStart+1),
					Categories: fmt.Sprintf("Summary!$B$%d:$B$%d", topStart+2, topStart+1+len(top)),
					Values:     fmt.Sprintf("Summary!$E$%d:$E$%d", topStart+2, topStart+1+len(top)),
				},
			},
			Title:     []excelize.RichTextRun{{Text: "Top MAD by Column"}},
			XAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Column"}}},
			YAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "MAD"}}},
			Dimension: excelize.ChartDimension{Width: 560, Height: 300},
		}); err != nil {
			return err
		}
	}

	return f.SetColWidth(summarySheet, "A", "F", 16)
}

func writeColumnSheet(f *excelize.File, data Data, styles excelStyles) error {
	if _, err := f.NewSheet(columnSheet); err != nil {
		return err
	}

	headers := []string{"Sheet", "Column", "Total Values", "Chi-Square", "MAD", "Conformity"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(columnSheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(columnSheet, "A1", "F1", styles.header); err != nil {
		return err
	}

	for i, r := range data.Results() {
		row := i + 2
		setCells(f, columnSheet, map[string]interface{}{
			fmt.Sprintf("A%d", row): r.Sheet,
			fmt.Sprintf("B%d", row): r.Column,
			fmt.Sprintf("C%d", row): r.SampleSize,
			fmt.Sprintf("D%d", row): r.ChiSquare,
			fmt.Sprintf("E%d", row): r.MAD,
			fmt.Sprintf("F%d", row): r.Conformity.String(),
		})
	}

	return f.SetColWidth(columnSheet, "A", "F", 16)
}

func writeDetailSheet(f *excelize.File, data Data, styles excelStyles) error {
	if _, err := f.NewSheet(detailSheet); err != nil {
		return err
	}

	headers := []string{"Sheet", "Column", "Digit", "Count", "Proportion", "Expected Proportion", "Difference"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(detailSheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(detailSheet, "A1", "G1", styles.header); err != nil {
		return err
	}

	row := 1
	for _, r := range data.Results() {
		for _, stat := range r.Distribution {
			row++
			setCells(f, detailSheet, map[string]interface{}{
				fmt.Sprintf("A%d", row): r.Sheet,
				fmt.Sprintf("B%d", row): r.Column,
				fmt.Sprintf("C%d", row): stat.Digit,
				fmt.Sprintf("D%d", row): stat.Count,
				fmt.Sprintf("E%d", row): stat.Proportion,
				fmt.Sprintf("F%d", row): stat.Expected,
				fmt.Sprintf("G%d", row): stat.Difference,
			})
		}
	}
	if row > 1 {
		if err := f.SetCellStyle(detailSheet, "E2", fmt.Sprintf("G%d", row), styles.percent); err != nil {
			return err
		}
	}

	return f.SetColWidth(detailSheet, "A", "G", 18)
}

func writeSkippedSheet(f *excelize.File, data Data, styles excelStyles) error {
	if _, err := f.NewSheet(skippedSheet); err != nil {
		return err
	}

	headers := []string{"Sheet", "Column", "Reason", "Raw Values", "Valid Values"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(skippedSheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(skippedSheet, "A1", "E1", styles.header); err != nil {
		return err
	}

	for i, skip := range data.Skips() {
		row := i + 2
		setCells(f, skippedSheet, map[string]interface{}{
			fmt.Sprintf("A%d", row): skip.Sheet,
			fmt.Sprintf("B%d", row): skip.Column,
			fmt.Sprintf("C%d", row): string(skip.Reason),
			fmt.Sprintf("D%d", row): skip.RawValues,
			fmt.Sprintf("E%d", row): skip.ValidValues,
		})
	}

	return f.SetColWidth(skippedSheet, "A", "E", 18)
}

// setCells sets a batch of cell values; coordinate errors cannot occur for
// the fixed layouts used here, so individual errors are not propagated.
func setCells(f *excelize.File, sheet string, cells map[string]interface{}) {
	for cell, value := range cells {
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			slog.Warn("failed to set cell", slog.String("cell", cell), slog.Any("error", err))
		}
	}
}
