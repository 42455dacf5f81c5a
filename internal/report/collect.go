// Package report assembles the per-run analysis data and renders it as
// the Markdown and styled Excel artifacts consumed from CI.
package report

import (
	"sort"

	"jeaudit/internal/benford"
	"jeaudit/internal/stats"
	"jeaudit/internal/workbook"
)

// Data holds everything one report needs: the per-column outcomes in
// source order, the run summary, and descriptive column statistics.
type Data struct {
	InputPath string
	Outcomes  []benford.Outcome
	Summary   benford.RunSummary
	Stats     []stats.Summary
}

// Collect runs the analyzer over every column of every sheet, in source
// order, and gathers the report data. Non-numeric columns are recorded as
// skipped rather than dropped, so the report lists every column.
func Collect(wb *workbook.Workbook, analyzer *benford.Analyzer) Data {
	var outcomes []benford.Outcome
	for _, sheet := range wb.Sheets {
		for _, col := range sheet.Columns {
			if col.IsNumeric() {
				outcomes = append(outcomes, analyzer.AnalyzeColumn(sheet.Name, col.Name, col.Numbers()))
			} else {
				outcomes = append(outcomes, analyzer.SkipColumn(sheet.Name, col.Name, benford.SkipNonNumeric, col.NonEmpty()))
			}
		}
	}

	return Data{
		InputPath: wb.Path,
		Outcomes:  outcomes,
		Summary:   benford.Summarize(outcomes),
		Stats:     stats.SummarizeWorkbook(wb),
	}
}

// Results returns the analyzed results in source order
func (d Data) Results() []*benford.Result {
	var results []*benford.Result
	for _, o := range d.Outcomes {
		if o.Analyzed() {
			results = append(results, o.Result)
		}
	}
	return results
}

// Skips returns the skipped columns in source order
func (d Data) Skips() []*benford.Skip {
	var skips []*benford.Skip
	for _, o := range d.Outcomes {
		if !o.Analyzed() {
			skips = append(skips, o.Skip)
		}
	}
	return skips
}

// TopDeviations returns up to n analyzed results ordered by descending
// MAD. The sort is stable so ties keep their source order and repeated
// runs stay byte-for-byte reproducible.
func (d Data) TopDeviations(n int) []*benford.Result {
	results := d.Results()
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MAD > results[j].MAD
	})
	if len(results) > n {
		results = results[:n]
	}
	return results
}

// OverallDistribution aggregates digit counts across all analyzed columns
func (d Data) OverallDistribution() (counts [9]int, total int) {
	for _, r := range d.Results() {
		for _, stat := range r.Distribution {
			counts[stat.Digit-1] += stat.Count
			total += stat.Count
		}
	}
	return counts, total
}
