// Package benford implements Benford's-Law leading-digit analysis for
// journal-entry sample columns.
//
// Benford's Law is the empirical observation that in many naturally
// occurring numeric datasets the leading decimal digit d (1-9) occurs with
// probability log10(1 + 1/d) rather than uniformly. Large deviations from
// the expected rates are a standard forensic-accounting screen for
// journal entries worth reviewing.
//
// # What is computed
//
// For each numeric column the analyzer computes:
//
//  1. The observed leading-digit distribution over the retained values
//     (missing, non-finite and zero entries are excluded; sign is ignored)
//  2. The chi-square goodness-of-fit statistic against the Benford
//     expectation (9 categories, 8 degrees of freedom; the raw statistic
//     is reported, no p-value is derived)
//  3. The mean absolute deviation (MAD) between observed and expected
//     digit proportions
//  4. A conformity class from the MAD using Nigrini's fixed thresholds
//
// Columns with fewer valid values than the minimum sample size are skipped
// with an explicit reason instead of analyzed, so the final report lists
// every column either with full statistics or with why it was excluded.
//
// # Usage
//
//	analyzer := benford.NewAnalyzer(benford.DefaultMinSampleSize, slog.Default())
//	var outcomes []benford.Outcome
//	for _, col := range columns {
//	    outcomes = append(outcomes, analyzer.AnalyzeColumn(sheet, col.Name, col.Values))
//	}
//	summary := benford.Summarize(outcomes)
//
// All computation is pure and deterministic: columns are processed in
// source order and digits are always reported in ascending 1-9 order, so
// repeated runs over identical input produce identical results.
package benford
