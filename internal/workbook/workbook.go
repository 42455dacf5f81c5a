// Package workbook loads the input Excel file into typed, ordered tables.
// Each sheet becomes a sequence of named columns whose cells are
// classified as numeric, date, text or empty, so downstream analysis can
// decide per column what to do without re-parsing raw strings.
package workbook

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// CellKind identifies how a cell's raw text was interpreted
type CellKind int

const (
	// CellEmpty is a missing or whitespace-only cell
	CellEmpty CellKind = iota
	// CellNumeric is a cell parsed as a decimal number
	CellNumeric
	// CellDate is a cell parsed as a calendar date
	CellDate
	// CellText is any other non-empty cell
	CellText
)

// String returns the kind label used in logs and reports
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellNumeric:
		return "numeric"
	case CellDate:
		return "date"
	case CellText:
		return "text"
	default:
		return "unknown"
	}
}

// Cell is a single typed cell value
type Cell struct {
	Kind   CellKind
	Raw    string
	Number float64   // set when Kind == CellNumeric
	Date   time.Time // set when Kind == CellDate
}

// Column is an ordered sequence of cells under one header
type Column struct {
	Name  string
	Cells []Cell
}

// Sheet is an ordered sequence of named columns
type Sheet struct {
	Name    string
	Columns []Column
}

// Workbook is the loaded input file: every sheet in workbook order
type Workbook struct {
	Path   string
	Sheets []Sheet
}

// NumericDominance is the fraction of non-empty cells that must parse as
// numbers for a column to be treated as numeric.
const NumericDominance = 0.5

// NonEmpty returns the number of cells that hold any value
func (c Column) NonEmpty() int {
	n := 0
	for _, cell := range c.Cells {
		if cell.Kind != CellEmpty {
			n++
		}
	}
	return n
}

// NumericCount returns the number of cells parsed as numbers
func (c Column) NumericCount() int {
	n := 0
	for _, cell := range c.Cells {
		if cell.Kind == CellNumeric {
			n++
		}
	}
	return n
}

// IsNumeric reports whether the column should be analyzed as numeric data:
// at least one numeric cell, and numeric cells dominating the non-empty ones.
func (c Column) IsNumeric() bool {
	nonEmpty := c.NonEmpty()
	numeric := c.NumericCount()
	return numeric > 0 && float64(numeric) >= NumericDominance*float64(nonEmpty)
}

// Numbers returns the values of the numeric cells in order. Empty, text
// and date cells are excluded here; zeros and signs are the analyzer's
// concern, not the loader's.
func (c Column) Numbers() []float64 {
	values := make([]float64, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if cell.Kind == CellNumeric {
			values = append(values, cell.Number)
		}
	}
	return values
}

// Dates returns the values of the date cells in order
func (c Column) Dates() []time.Time {
	var dates []time.Time
	for _, cell := range c.Cells {
		if cell.Kind == CellDate {
			dates = append(dates, cell.Date)
		}
	}
	return dates
}

// dateLayouts covers the date formats excelize renders for styled date
// cells plus the plain forms seen in exported JE samples.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06 15:04",
	"01/02/2006",
	"1/2/2006",
	"02-Jan-06",
}

// ParseCell interprets one raw cell string as a typed cell
func ParseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: CellEmpty, Raw: raw}
	}

	// Excel exports often carry thousands separators.
	numText := strings.ReplaceAll(trimmed, ",", "")
	if v, err := strconv.ParseFloat(numText, 64); err == nil {
		return Cell{Kind: CellNumeric, Raw: raw, Number: v}
	}

	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, trimmed); err == nil {
			return Cell{Kind: CellDate, Raw: raw, Date: d}
		}
	}

	return Cell{Kind: CellText, Raw: raw}
}

// Load reads an Excel workbook and extracts every sheet as a table of
// typed columns. The first row with any non-empty cell is taken as the
// header; rows above it are ignored. A corrupt or unreadable file is a
// fatal input error for the whole run.
func Load(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	wb := &Workbook{Path: path}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}

		sheet := buildSheet(name, rows)
		slog.Debug("loaded sheet",
			slog.String("sheet", name),
			slog.Int("rows", len(rows)),
			slog.Int("columns", len(sheet.Columns)))
		wb.Sheets = append(wb.Sheets, sheet)
	}

	slog.Info("loaded workbook",
		slog.String("path", path),
		slog.Int("sheets", len(wb.Sheets)))
	return wb, nil
}

// buildSheet turns excelize's row-major strings into named typed columns
func buildSheet(name string, rows [][]string) Sheet {
	sheet := Sheet{Name: name}

	headerRow := -1
	for i, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				headerRow = i
				break
			}
		}
		if headerRow >= 0 {
			break
		}
	}
	if headerRow < 0 {
		return sheet
	}

	header := rows[headerRow]
	width := len(header)
	for _, row := range rows[headerRow+1:] {
		if len(row) > width {
			width = len(row)
		}
	}

	for j := 0; j < width; j++ {
		colName := ""
		if j < len(header) {
			colName = strings.TrimSpace(header[j])
		}
		if colName == "" {
			colName = fmt.Sprintf("Column %d", j+1)
		}

		col := Column{Name: colName}
		for _, row := range rows[headerRow+1:] {
			raw := ""
			if j < len(row) {
				raw = row[j]
			}
			col.Cells = append(col.Cells, ParseCell(raw))
		}
		sheet.Columns = append(sheet.Columns, col)
	}

	return sheet
}
