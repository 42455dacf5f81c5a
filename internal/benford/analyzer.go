package benford

import (
	"log/slog"
	"math"
)

// Analyzer computes leading-digit distributions and conformity statistics
// for numeric columns. It is pure computation with no side effects beyond
// logging; the same input always produces the same outcomes.
type Analyzer struct {
	minSampleSize int
	logger        *slog.Logger
}

// NewAnalyzer creates an analyzer with the given minimum sample size.
// A non-positive minimum falls back to DefaultMinSampleSize.
func NewAnalyzer(minSampleSize int, logger *slog.Logger) *Analyzer {
	if minSampleSize <= 0 {
		minSampleSize = DefaultMinSampleSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		minSampleSize: minSampleSize,
		logger:        logger,
	}
}

// MinSampleSize returns the analyzer's minimum valid-value threshold
func (a *Analyzer) MinSampleSize() int {
	return a.minSampleSize
}

// LeadingDigit returns the first significant decimal digit of v, in 1..9.
// ok is false for zero, NaN and infinities, which carry no leading digit.
// Sign is irrelevant: the digit is taken from the magnitude.
//
// The digit is derived from the fractional part of log10 rather than by
// repeated scaling, so the result does not drift through accumulated
// multiplication error. Representation error at digit boundaries is
// repaired before truncation: a significand within epsilon of an integer
// snaps to it, so a value that is mathematically a power of ten resolves
// to digit 1 rather than 9.999... truncating to 9. The final clamp guards
// the 1..9 range.
func LeadingDigit(v float64) (digit int, ok bool) {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	lg := math.Log10(math.Abs(v))
	significand := math.Pow(10, lg-math.Floor(lg)) // in [1, 10)
	if r := math.Round(significand); math.Abs(significand-r) < 1e-9 {
		significand = r
	}
	if significand >= 10 {
		return 1, true
	}
	digit = int(significand)
	if digit < 1 {
		digit = 1
	} else if digit > 9 {
		digit = 9
	}
	return digit, true
}

// Classify maps a MAD value to its Nigrini conformity class
func Classify(mad float64) Conformity {
	switch {
	case mad < CloseThreshold:
		return CloseConformity
	case mad <= AcceptableThreshold:
		return AcceptableConformity
	case mad <= MarginalThreshold:
		return MarginalConformity
	default:
		return Nonconformity
	}
}

// AnalyzeColumn analyzes one numeric column. Invalid entries (NaN, ±Inf)
// and zeros are filtered out, never errored on; if fewer than the minimum
// sample size remain the column is skipped with an explicit reason.
func (a *Analyzer) AnalyzeColumn(sheet, column string, values []float64) Outcome {
	var counts [9]int
	valid := 0
	for _, v := range values {
		d, ok := LeadingDigit(v)
		if !ok {
			continue
		}
		counts[d-1]++
		valid++
	}

	if valid < a.minSampleSize {
		a.logger.Debug("column skipped",
			slog.String("sheet", sheet),
			slog.String("column", column),
			slog.Int("raw_values", len(values)),
			slog.Int("valid_values", valid),
			slog.Int("min_sample_size", a.minSampleSize))
		return Outcome{Skip: &Skip{
			Sheet:       sheet,
			Column:      column,
			Reason:      SkipInsufficientData,
			RawValues:   len(values),
			ValidValues: valid,
		}}
	}

	var dist Distribution
	chiSquare := 0.0
	mad := 0.0
	for d := 1; d <= 9; d++ {
		observed := float64(counts[d-1]) / float64(valid)
		expectedCount := expected[d-1] * float64(valid)
		diff := float64(counts[d-1]) - expectedCount
		chiSquare += diff * diff / expectedCount
		mad += math.Abs(observed - expected[d-1])
		dist[d-1] = DigitStat{
			Digit:      d,
			Count:      counts[d-1],
			Proportion: observed,
			Expected:   expected[d-1],
			Difference: observed - expected[d-1],
		}
	}
	mad /= 9

	result := &Result{
		Sheet:        sheet,
		Column:       column,
		Distribution: dist,
		SampleSize:   valid,
		ChiSquare:    chiSquare,
		MAD:          mad,
		Conformity:   Classify(mad),
	}

	a.logger.Debug("column analyzed",
		slog.String("sheet", sheet),
		slog.String("column", column),
		slog.Int("sample_size", valid),
		slog.Float64("chi_square", chiSquare),
		slog.Float64("mad", mad),
		slog.String("conformity", result.Conformity.String()))

	return Outcome{Result: result}
}

// SkipColumn records a column the caller already knows cannot be analyzed,
// such as a text or date column, so it still appears in the report.
func (a *Analyzer) SkipColumn(sheet, column string, reason SkipReason, rawValues int) Outcome {
	return Outcome{Skip: &Skip{
		Sheet:     sheet,
		Column:    column,
		Reason:    reason,
		RawValues: rawValues,
	}}
}
