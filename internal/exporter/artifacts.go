package exporter

import (
	"fmt"

	"jeaudit/internal/benford"
	"jeaudit/internal/config"
	"jeaudit/internal/stats"
)

// WriteBenfordArtifacts writes the three analysis CSVs: per-digit detail,
// per-column summary and the skipped-column list. Every column of the
// source workbook appears in exactly one of summary or skipped.
func (w *CSVWriter) WriteBenfordArtifacts(outcomes []benford.Outcome) error {
	var detail, summary, skipped [][]string

	for _, o := range outcomes {
		if !o.Analyzed() {
			skipped = append(skipped, []string{
				o.Skip.Sheet,
				o.Skip.Column,
				string(o.Skip.Reason),
				formatInt(o.Skip.RawValues),
				formatInt(o.Skip.ValidValues),
			})
			continue
		}

		r := o.Result
		summary = append(summary, []string{
			r.Sheet,
			r.Column,
			formatInt(r.SampleSize),
			formatStatistic(r.ChiSquare),
			formatStatistic(r.MAD),
			r.Conformity.String(),
		})
		for _, stat := range r.Distribution {
			detail = append(detail, []string{
				r.Sheet,
				r.Column,
				formatInt(stat.Digit),
				formatInt(stat.Count),
				formatProportion(stat.Proportion),
				formatProportion(stat.Expected),
				formatProportion(stat.Difference),
			})
		}
	}

	if err := w.WriteSimpleCSV(config.DetailCSVFile,
		[]string{"sheet", "column", "digit", "count", "proportion", "expected_proportion", "difference"},
		detail); err != nil {
		return fmt.Errorf("failed to write detail CSV: %w", err)
	}

	if err := w.WriteSimpleCSV(config.SummaryCSVFile,
		[]string{"sheet", "column", "total_values", "chi_square", "mad", "conformity"},
		summary); err != nil {
		return fmt.Errorf("failed to write summary CSV: %w", err)
	}

	if err := w.WriteSimpleCSV(config.SkippedCSVFile,
		[]string{"sheet", "column", "reason", "raw_values", "valid_values"},
		skipped); err != nil {
		return fmt.Errorf("failed to write skipped CSV: %w", err)
	}

	return nil
}

// WriteStatsArtifact writes the descriptive column statistics CSV
func (w *CSVWriter) WriteStatsArtifact(summaries []stats.Summary) error {
	records := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		first, last := "", ""
		if s.HasDates {
			first = s.FirstDate.Format("2006-01-02")
			last = s.LastDate.Format("2006-01-02")
		}
		mean, min, max := "", "", ""
		if s.Count > 0 {
			mean = formatAmount(s.Mean)
			min = formatAmount(s.Min)
			max = formatAmount(s.Max)
		}
		records = append(records, []string{
			s.Sheet, s.Column, s.Kind,
			formatInt(s.Cells), formatInt(s.NonEmpty), formatInt(s.Count),
			mean, min, max, first, last,
		})
	}

	if err := w.WriteSimpleCSV(config.StatsCSVFile,
		[]string{"sheet", "column", "kind", "cells", "non_empty", "numeric_values",
			"mean", "min", "max", "first_date", "last_date"},
		records); err != nil {
		return fmt.Errorf("failed to write stats CSV: %w", err)
	}
	return nil
}
