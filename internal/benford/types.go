package benford

import (
	"math"
)

// Conformity classifies how closely a column's leading-digit distribution
// matches the Benford expectation, using Nigrini's MAD thresholds.
type Conformity int

const (
	// CloseConformity indicates MAD < 0.006
	CloseConformity Conformity = iota
	// AcceptableConformity indicates 0.006 <= MAD <= 0.012
	AcceptableConformity
	// MarginalConformity indicates 0.012 < MAD <= 0.015
	MarginalConformity
	// Nonconformity indicates MAD > 0.015
	Nonconformity
)

// String returns the report label for the conformity class
func (c Conformity) String() string {
	switch c {
	case CloseConformity:
		return "close conformity"
	case AcceptableConformity:
		return "acceptable conformity"
	case MarginalConformity:
		return "marginal conformity"
	case Nonconformity:
		return "nonconformity"
	default:
		return "unknown"
	}
}

// Nigrini MAD thresholds for leading-digit conformity classification.
// These are fixed published constants, not derived from the data.
const (
	CloseThreshold      = 0.006
	AcceptableThreshold = 0.012
	MarginalThreshold   = 0.015
)

const (
	// DefaultMinSampleSize is the minimum number of valid values a column
	// needs before it is analyzed. Chi-square results on smaller samples
	// are statistically meaningless, so such columns are skipped instead.
	DefaultMinSampleSize = 10

	// DegreesOfFreedom is the chi-square degrees of freedom convention
	// used for the leading-digit test: 9 digit categories minus 1.
	DegreesOfFreedom = 8
)

// expected holds the Benford proportions log10(1 + 1/d) for digits 1..9,
// indexed by digit-1. Computed once at package init and reused.
var expected = expectedTable()

func expectedTable() [9]float64 {
	var table [9]float64
	for d := 1; d <= 9; d++ {
		table[d-1] = math.Log10(1 + 1/float64(d))
	}
	return table
}

// Expected returns the Benford expected proportion for a leading digit in 1..9.
// It returns 0 for any other digit.
func Expected(digit int) float64 {
	if digit < 1 || digit > 9 {
		return 0
	}
	return expected[digit-1]
}

// ExpectedProportions returns the full expected-proportion table for digits 1..9.
func ExpectedProportions() [9]float64 {
	return expected
}

// DigitStat holds the observed and expected statistics for a single leading digit
type DigitStat struct {
	Digit      int     `json:"digit"`
	Count      int     `json:"count"`
	Proportion float64 `json:"proportion"`
	Expected   float64 `json:"expected_proportion"`
	Difference float64 `json:"difference"` // observed minus expected, signed
}

// Distribution is the per-digit breakdown for one analyzed column,
// always ordered by ascending digit 1..9.
type Distribution [9]DigitStat

// Result contains the full Benford analysis for one numeric column.
// Results are immutable after creation.
type Result struct {
	Sheet        string       `json:"sheet"`
	Column       string       `json:"column"`
	Distribution Distribution `json:"distribution"`
	SampleSize   int          `json:"sample_size"` // valid values after exclusion
	ChiSquare    float64      `json:"chi_square"`
	MAD          float64      `json:"mad"`
	Conformity   Conformity   `json:"conformity"`
}

// SkipReason explains why a column was excluded from analysis
type SkipReason string

const (
	// SkipNonNumeric marks a column whose cells are not predominantly numeric
	SkipNonNumeric SkipReason = "non-numeric column"
	// SkipInsufficientData marks a numeric column with fewer valid values
	// than the minimum sample size
	SkipInsufficientData SkipReason = "insufficient data"
)

// Skip describes a column excluded from analysis
type Skip struct {
	Sheet       string     `json:"sheet"`
	Column      string     `json:"column"`
	Reason      SkipReason `json:"reason"`
	RawValues   int        `json:"raw_values"`   // cells seen before filtering
	ValidValues int        `json:"valid_values"` // positive finite values retained
}

// Outcome is the tagged per-column outcome: exactly one of Result or Skip
// is non-nil. Columns are never silently dropped, so every column of the
// source table produces exactly one Outcome.
type Outcome struct {
	Result *Result
	Skip   *Skip
}

// Analyzed reports whether the column was analyzed rather than skipped
func (o Outcome) Analyzed() bool {
	return o.Result != nil
}

// Sheet returns the source sheet name regardless of variant
func (o Outcome) Sheet() string {
	if o.Result != nil {
		return o.Result.Sheet
	}
	return o.Skip.Sheet
}

// Column returns the source column name regardless of variant
func (o Outcome) Column() string {
	if o.Result != nil {
		return o.Result.Column
	}
	return o.Skip.Column
}

// RunSummary aggregates the outcomes of one analysis run
type RunSummary struct {
	ColumnsAnalyzed int `json:"columns_analyzed"`
	ColumnsSkipped  int `json:"columns_skipped"`

	// Per-conformity counts over analyzed columns
	Close         int `json:"close"`
	Acceptable    int `json:"acceptable"`
	Marginal      int `json:"marginal"`
	Nonconforming int `json:"nonconforming"`
}

// Summarize aggregates a run's outcomes into a RunSummary
func Summarize(outcomes []Outcome) RunSummary {
	var s RunSummary
	for _, o := range outcomes {
		if !o.Analyzed() {
			s.ColumnsSkipped++
			continue
		}
		s.ColumnsAnalyzed++
		switch o.Result.Conformity {
		case CloseConformity:
			s.Close++
		case AcceptableConformity:
			s.Acceptable++
		case MarginalConformity:
			s.Marginal++
		case Nonconformity:
			s.Nonconforming++
		}
	}
	return s
}
