package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Well-known artifact file names. The reports directory is regenerated
// fresh each run; none of these files are append-only.
const (
	MarkdownReportFile = "benford_report.md"
	ExcelReportFile    = "benford_report.xlsx"
	DetailCSVFile      = "benford_detail.csv"
	SummaryCSVFile     = "benford_summary.csv"
	SkippedCSVFile     = "benford_skipped.csv"
	StatsCSVFile       = "column_stats.csv"
)

// Paths resolves artifact locations for one run.
// This is the single source of truth for output file paths.
type Paths struct {
	ReportsDir string
}

// NewPaths creates a Paths rooted at the given reports directory
func NewPaths(reportsDir string) *Paths {
	return &Paths{ReportsDir: reportsDir}
}

// EnsureDirs creates the reports directory if it does not exist
func (p *Paths) EnsureDirs() error {
	if err := os.MkdirAll(p.ReportsDir, 0755); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}
	return nil
}

// GetReportPath returns the full path for a report artifact
func (p *Paths) GetReportPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.ReportsDir, name)
}

// MarkdownReport returns the Markdown report path
func (p *Paths) MarkdownReport() string { return p.GetReportPath(MarkdownReportFile) }

// ExcelReport returns the styled Excel report path
func (p *Paths) ExcelReport() string { return p.GetReportPath(ExcelReportFile) }

// DetailCSV returns the per-digit detail CSV path
func (p *Paths) DetailCSV() string { return p.GetReportPath(DetailCSVFile) }

// SummaryCSV returns the per-column summary CSV path
func (p *Paths) SummaryCSV() string { return p.GetReportPath(SummaryCSVFile) }

// SkippedCSV returns the skipped-column CSV path
func (p *Paths) SkippedCSV() string { return p.GetReportPath(SkippedCSVFile) }

// StatsCSV returns the descriptive column statistics CSV path
func (p *Paths) StatsCSV() string { return p.GetReportPath(StatsCSVFile) }
