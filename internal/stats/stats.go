// Package stats computes descriptive column summaries for the high-level
// report: value counts, mean/min/max for numeric columns and date ranges
// for date columns. Pure aggregation, no analysis logic.
package stats

import (
	"math"
	"time"

	"jeaudit/internal/workbook"
)

// Summary holds the descriptive statistics for one column
type Summary struct {
	Sheet    string `json:"sheet"`
	Column   string `json:"column"`
	Kind     string `json:"kind"` // dominant cell kind label
	Cells    int    `json:"cells"`
	NonEmpty int    `json:"non_empty"`

	// Numeric aggregates, valid when Numeric is true
	Numeric bool    `json:"numeric"`
	Count   int     `json:"count"`
	Mean    float64 `json:"mean"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`

	// Date range, valid when HasDates is true
	HasDates  bool      `json:"has_dates"`
	FirstDate time.Time `json:"first_date"`
	LastDate  time.Time `json:"last_date"`
}

// Summarize computes the descriptive summary for one column
func Summarize(sheet string, col workbook.Column) Summary {
	s := Summary{
		Sheet:    sheet,
		Column:   col.Name,
		Cells:    len(col.Cells),
		NonEmpty: col.NonEmpty(),
		Numeric:  col.IsNumeric(),
	}
	s.Kind = dominantKind(col)

	if numbers := col.Numbers(); len(numbers) > 0 {
		s.Count = len(numbers)
		s.Min = math.Inf(1)
		s.Max = math.Inf(-1)
		sum := 0.0
		for _, v := range numbers {
			sum += v
			s.Min = math.Min(s.Min, v)
			s.Max = math.Max(s.Max, v)
		}
		s.Mean = sum / float64(len(numbers))
	}

	if dates := col.Dates(); len(dates) > 0 {
		s.HasDates = true
		s.FirstDate = dates[0]
		s.LastDate = dates[0]
		for _, d := range dates[1:] {
			if d.Before(s.FirstDate) {
				s.FirstDate = d
			}
			if d.After(s.LastDate) {
				s.LastDate = d
			}
		}
	}

	return s
}

// SummarizeWorkbook summarizes every column of every sheet in source order
func SummarizeWorkbook(wb *workbook.Workbook) []Summary {
	var summaries []Summary
	for _, sheet := range wb.Sheets {
		for _, col := range sheet.Columns {
			summaries = append(summaries, Summarize(sheet.Name, col))
		}
	}
	return summaries
}

// dominantKind returns the label of the most frequent non-empty cell kind
func dominantKind(col workbook.Column) string {
	counts := map[workbook.CellKind]int{}
	for _, cell := range col.Cells {
		if cell.Kind != workbook.CellEmpty {
			counts[cell.Kind]++
		}
	}
	if len(counts) == 0 {
		return workbook.CellEmpty.String()
	}

	best := workbook.CellText
	bestCount := -1
	for _, kind := range []workbook.CellKind{workbook.CellNumeric, workbook.CellDate, workbook.CellText} {
		if counts[kind] > bestCount {
			best = kind
			bestCount = counts[kind]
		}
	}
	return best.String()
}
