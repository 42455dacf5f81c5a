package report

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// WriteMarkdown renders the Markdown report to the given path. The body
// carries no timestamps, so identical input produces identical bytes.
func WriteMarkdown(data Data, path string) error {
	slog.Info("writing markdown report",
		slog.String("path", path),
		slog.Int("analyzed", data.Summary.ColumnsAnalyzed),
		slog.Int("skipped", data.Summary.ColumnsSkipped))

	if err := os.WriteFile(path, []byte(renderMarkdown(data)), 0644); err != nil {
		return fmt.Errorf("failed to write markdown report: %w", err)
	}
	return nil
}

func renderMarkdown(data Data) string {
	var lines []string

	lines = append(lines,
		"# Benford Analysis Report",
		"",
		fmt.Sprintf("Input file: `%s`", data.InputPath),
		"",
		"## What this report is",
		"Benford's Law describes how often each leading digit (1 through 9) appears in many real-world datasets.",
		"For example, a leading digit of **1** is expected about **30.1%** of the time, while **9** is expected about **4.6%**.",
		"Large deviations from these expected rates can indicate unusual patterns worth reviewing.",
		"",
		"## How to read the results",
		"- **Leading digit**: the first non-zero digit of a number (e.g., 0.045 → 4, 1200 → 1).",
		"- **Observed proportion**: how often that digit appears in the data.",
		"- **Expected proportion**: Benford's Law expectation for that digit.",
		"- **Difference**: observed minus expected (positive means the digit appears more than expected).",
		"- **MAD (Mean Absolute Deviation)**: average absolute difference across digits; higher values mean larger overall deviation.",
		"- **Chi-square**: another deviation metric; higher values suggest larger differences from expectations.",
		"- **Conformity**: Nigrini's MAD classification, from close conformity to nonconformity.",
		"",
	)

	s := data.Summary
	lines = append(lines,
		"## Run summary",
		fmt.Sprintf("- Columns analyzed: %d", s.ColumnsAnalyzed),
		fmt.Sprintf("- Columns skipped: %d", s.ColumnsSkipped),
		fmt.Sprintf("- Close conformity: %d", s.Close),
		fmt.Sprintf("- Acceptable conformity: %d", s.Acceptable),
		fmt.Sprintf("- Marginal conformity: %d", s.Marginal),
		fmt.Sprintf("- Nonconformity: %d", s.Nonconforming),
		"",
	)

	lines = append(lines, "## Top columns by deviation (MAD)")
	top := data.TopDeviations(10)
	if len(top) == 0 {
		lines = append(lines, "No numeric data available.")
	} else {
		rows := make([][]string, 0, len(top))
		for _, r := range top {
			rows = append(rows, []string{
				r.Sheet, r.Column,
				fmt.Sprintf("%d", r.SampleSize),
				fmt.Sprintf("%.4f", r.ChiSquare),
				fmt.Sprintf("%.4f", r.MAD),
				r.Conformity.String(),
			})
		}
		lines = append(lines, markdownTable(
			[]string{"sheet", "column", "total_values", "chi_square", "mad", "conformity"}, rows))
	}
	lines = append(lines, "")

	lines = append(lines, "## Detailed digit breakdown")
	results := data.Results()
	if len(results) == 0 {
		lines = append(lines, "No numeric data available.")
	} else {
		var rows [][]string
		for _, r := range results {
			for _, stat := range r.Distribution {
				rows = append(rows, []string{
					r.Sheet, r.Column,
					fmt.Sprintf("%d", stat.Digit),
					fmt.Sprintf("%d", stat.Count),
					fmt.Sprintf("%.4f", stat.Proportion),
					fmt.Sprintf("%.4f", stat.Expected),
					fmt.Sprintf("%+.4f", stat.Difference),
				})
			}
		}
		lines = append(lines, markdownTable(
			[]string{"sheet", "column", "digit", "count", "proportion", "expected_proportion", "difference"}, rows))
	}
	lines = append(lines, "")

	lines = append(lines, "## Skipped columns")
	skips := data.Skips()
	if len(skips) == 0 {
		lines = append(lines, "None.")
	} else {
		rows := make([][]string, 0, len(skips))
		for _, skip := range skips {
			rows = append(rows, []string{
				skip.Sheet, skip.Column, string(skip.Reason),
				fmt.Sprintf("%d", skip.RawValues),
				fmt.Sprintf("%d", skip.ValidValues),
			})
		}
		lines = append(lines, markdownTable(
			[]string{"sheet", "column", "reason", "raw_values", "valid_values"}, rows))
	}
	lines = append(lines, "")

	lines = append(lines, "## Column overview")
	if len(data.Stats) == 0 {
		lines = append(lines, "No columns found.")
	} else {
		rows := make([][]string, 0, len(data.Stats))
		for _, st := range data.Stats {
			mean, min, max := "", "", ""
			if st.Count > 0 {
				mean = fmt.Sprintf("%.2f", st.Mean)
				min = fmt.Sprintf("%.2f", st.Min)
				max = fmt.Sprintf("%.2f", st.Max)
			}
			dates := ""
			if st.HasDates {
				dates = fmt.Sprintf("%s to %s",
					st.FirstDate.Format("2006-01-02"), st.LastDate.Format("2006-01-02"))
			}
			rows = append(rows, []string{
				st.Sheet, st.Column, st.Kind,
				fmt.Sprintf("%d", st.NonEmpty),
				mean, min, max, dates,
			})
		}
		lines = append(lines, markdownTable(
			[]string{"sheet", "column", "kind", "non_empty", "mean", "min", "max", "date_range"}, rows))
	}
	lines = append(lines, "", "Report generated by `benford-report`.", "")

	return strings.Join(lines, "\n")
}

// markdownTable renders a GitHub-style table
func markdownTable(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	for i, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |")
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
