package workbook

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// TestParseCell tests typed interpretation of raw cell strings
func TestParseCell(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind CellKind
	}{
		{"empty", "", CellEmpty},
		{"whitespace only", "   ", CellEmpty},
		{"integer", "1200", CellNumeric},
		{"decimal", "45.90", CellNumeric},
		{"negative", "-310.25", CellNumeric},
		{"thousands separator", "1,250,000.75", CellNumeric},
		{"iso date", "2024-03-15", CellDate},
		{"us date", "03/15/2024", CellDate},
		{"text", "Accrued payroll", CellText},
		{"alphanumeric code", "JE-10042", CellText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := ParseCell(tt.raw)
			assert.Equal(t, tt.kind, cell.Kind)
			assert.Equal(t, tt.raw, cell.Raw)
		})
	}

	t.Run("numeric value", func(t *testing.T) {
		assert.InDelta(t, 1250000.75, ParseCell("1,250,000.75").Number, 1e-9)
	})

	t.Run("date value", func(t *testing.T) {
		want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, ParseCell("2024-03-15").Date)
	})
}

// TestCellKindString tests kind labels
func TestCellKindString(t *testing.T) {
	assert.Equal(t, "empty", CellEmpty.String())
	assert.Equal(t, "numeric", CellNumeric.String())
	assert.Equal(t, "date", CellDate.String())
	assert.Equal(t, "text", CellText.String())
	assert.Equal(t, "unknown", CellKind(99).String())
}

// TestColumnIsNumeric tests numeric-column classification
func TestColumnIsNumeric(t *testing.T) {
	col := func(raws ...string) Column {
		c := Column{Name: "test"}
		for _, raw := range raws {
			c.Cells = append(c.Cells, ParseCell(raw))
		}
		return c
	}

	tests := []struct {
		name    string
		column  Column
		numeric bool
	}{
		{"all numeric", col("1", "2", "3"), true},
		{"numeric with gaps", col("1", "", "3", ""), true},
		{"mostly numeric", col("1", "2", "3", "n/a"), true},
		{"mostly text", col("a", "b", "c", "1"), false},
		{"all text", col("a", "b", "c"), false},
		{"all empty", col("", "", ""), false},
		{"empty column", Column{Name: "test"}, false},
		{"dates are not numeric", col("2024-01-02", "2024-01-03"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.numeric, tt.column.IsNumeric())
		})
	}
}

// TestColumnNumbers tests extraction of numeric cell values in order
func TestColumnNumbers(t *testing.T) {
	c := Column{Cells: []Cell{
		ParseCell("100"),
		ParseCell("n/a"),
		ParseCell(""),
		ParseCell("-250.5"),
		ParseCell("0"),
	}}

	assert.Equal(t, []float64{100, -250.5, 0}, c.Numbers())
	assert.Equal(t, 4, c.NonEmpty())
	assert.Equal(t, 3, c.NumericCount())
}

// writeFixture builds a small JE-sample workbook for Load tests
func writeFixture(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "JE Samples"))
	rows := [][]interface{}{
		{"Entry Date", "Account", "Amount", "Memo"},
		{"2024-01-05", "1000", 1250.75, "Opening"},
		{"2024-01-06", "1010", 310.00, "Supplies"},
		{"2024-01-07", "2000", 47.20, ""},
		{"2024-01-08", "1000", 980.10, "Payroll"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("JE Samples", cell, &row))
	}

	_, err := f.NewSheet("Empty")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "je_samples.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

// TestLoad tests end-to-end workbook loading
func TestLoad(t *testing.T) {
	path := writeFixture(t)

	wb, err := Load(path)
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 2)

	samples := wb.Sheets[0]
	assert.Equal(t, "JE Samples", samples.Name)
	require.Len(t, samples.Columns, 4)

	// Columns keep their source order and header names.
	assert.Equal(t, "Entry Date", samples.Columns[0].Name)
	assert.Equal(t, "Account", samples.Columns[1].Name)
	assert.Equal(t, "Amount", samples.Columns[2].Name)
	assert.Equal(t, "Memo", samples.Columns[3].Name)

	amount := samples.Columns[2]
	assert.True(t, amount.IsNumeric())
	assert.Equal(t, []float64{1250.75, 310, 47.2, 980.1}, amount.Numbers())

	memo := samples.Columns[3]
	assert.False(t, memo.IsNumeric())
	assert.Equal(t, 3, memo.NonEmpty())

	empty := wb.Sheets[1]
	assert.Equal(t, "Empty", empty.Name)
	assert.Empty(t, empty.Columns)
}

// TestLoadMissingFile tests that unreadable input is a fatal error
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does_not_exist.xlsx"))
	assert.Error(t, err)
}

// TestBuildSheetSkipsLeadingBlankRows tests header detection
func TestBuildSheetSkipsLeadingBlankRows(t *testing.T) {
	rows := [][]string{
		{"", ""},
		{},
		{"Amount", ""},
		{"120", ""},
		{"340", "stray"},
	}

	sheet := buildSheet("s", rows)
	require.Len(t, sheet.Columns, 2)
	assert.Equal(t, "Amount", sheet.Columns[0].Name)
	assert.Equal(t, "Column 2", sheet.Columns[1].Name)
	assert.Equal(t, []float64{120, 340}, sheet.Columns[0].Numbers())
}
