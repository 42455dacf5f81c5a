package benford

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpectedProportions verifies the fixed Benford expectation table
func TestExpectedProportions(t *testing.T) {
	t.Run("sums to one", func(t *testing.T) {
		sum := 0.0
		for _, p := range ExpectedProportions() {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("known values", func(t *testing.T) {
		assert.InDelta(t, 0.30103, Expected(1), 1e-5)
		assert.InDelta(t, 0.17609, Expected(2), 1e-5)
		assert.InDelta(t, 0.04576, Expected(9), 1e-5)
	})

	t.Run("monotonically decreasing", func(t *testing.T) {
		for d := 2; d <= 9; d++ {
			assert.Less(t, Expected(d), Expected(d-1), "digit %d", d)
		}
	})

	t.Run("out of range digits", func(t *testing.T) {
		assert.Zero(t, Expected(0))
		assert.Zero(t, Expected(10))
		assert.Zero(t, Expected(-1))
	})
}

// TestLeadingDigit tests first-significant-digit extraction
func TestLeadingDigit(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		digit int
		ok    bool
	}{
		{"integer", 123.0, 1, true},
		{"sub-unit fraction", 0.045, 4, true},
		{"large value", 7_200_000.0, 7, true},
		{"negative uses magnitude", -256.0, 2, true},
		{"negative fraction", -0.0091, 9, true},
		{"exact power of ten", 1000.0, 1, true},
		{"exact one", 1.0, 1, true},
		{"tenth", 0.1, 1, true},
		{"nine point nine", 9.9, 9, true},
		{"zero has no digit", 0.0, 0, false},
		{"negative zero has no digit", math.Copysign(0, -1), 0, false},
		{"NaN has no digit", math.NaN(), 0, false},
		{"positive infinity has no digit", math.Inf(1), 0, false},
		{"negative infinity has no digit", math.Inf(-1), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digit, ok := LeadingDigit(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.digit, digit)
		})
	}
}

// TestLeadingDigitScaleInvariance verifies that scaling a value by any
// power of ten never changes its leading digit
func TestLeadingDigitScaleInvariance(t *testing.T) {
	values := []float64{1.0, 1.5, 2.71828, 3.0, 4.99, 5.5, 6.02, 7.7, 8.125, 9.81, 123.456}

	for _, v := range values {
		base, ok := LeadingDigit(v)
		require.True(t, ok)
		for k := -8; k <= 8; k++ {
			scaled := v * math.Pow(10, float64(k))
			digit, ok := LeadingDigit(scaled)
			require.True(t, ok)
			assert.Equal(t, base, digit, "value %g scaled by 10^%d", v, k)
		}
	}
}

// TestClassify tests the Nigrini MAD threshold boundaries
func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		mad  float64
		want Conformity
	}{
		{"zero deviation", 0.0, CloseConformity},
		{"just under close threshold", 0.0059, CloseConformity},
		{"close threshold boundary", 0.006, AcceptableConformity},
		{"mid acceptable", 0.009, AcceptableConformity},
		{"acceptable threshold boundary", 0.012, AcceptableConformity},
		{"just over acceptable", 0.0121, MarginalConformity},
		{"marginal threshold boundary", 0.015, MarginalConformity},
		{"just over marginal", 0.0151, Nonconformity},
		{"large deviation", 0.2, Nonconformity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.mad))
		})
	}
}

// TestConformityString tests report labels
func TestConformityString(t *testing.T) {
	assert.Equal(t, "close conformity", CloseConformity.String())
	assert.Equal(t, "acceptable conformity", AcceptableConformity.String())
	assert.Equal(t, "marginal conformity", MarginalConformity.String())
	assert.Equal(t, "nonconformity", Nonconformity.String())
	assert.Equal(t, "unknown", Conformity(99).String())
}

// TestAnalyzeColumnAllSameDigit verifies the end-to-end example: a column
// where every value has leading digit 1
func TestAnalyzeColumnAllSameDigit(t *testing.T) {
	analyzer := NewAnalyzer(DefaultMinSampleSize, nil)
	values := []float64{100, 200, 300, 150, 120, 110, 190, 140, 160, 130}

	outcome := analyzer.AnalyzeColumn("JE Samples", "Amount", values)
	require.True(t, outcome.Analyzed())
	result := outcome.Result

	assert.Equal(t, "JE Samples", result.Sheet)
	assert.Equal(t, "Amount", result.Column)
	assert.Equal(t, 10, result.SampleSize)

	// 200 leads with 2 and 300 with 3; the other eight values lead with 1.
	assert.Equal(t, 8, result.Distribution[0].Count)
	assert.InDelta(t, 0.8, result.Distribution[0].Proportion, 1e-12)
	assert.Equal(t, 1, result.Distribution[1].Count)
	assert.Equal(t, 1, result.Distribution[2].Count)

	assert.Equal(t, Nonconformity, result.Conformity)
}

// TestAnalyzeColumnIdenticalValues verifies a column of identical positive
// values: its leading digit gets proportion 1.0, all others 0, and the
// chi-square and MAD match the closed-form values
func TestAnalyzeColumnIdenticalValues(t *testing.T) {
	analyzer := NewAnalyzer(DefaultMinSampleSize, nil)
	n := 20
	values := make([]float64, n)
	for i := range values {
		values[i] = 5.0
	}

	outcome := analyzer.AnalyzeColumn("s", "c", values)
	require.True(t, outcome.Analyzed())
	result := outcome.Result

	for d := 1; d <= 9; d++ {
		stat := result.Distribution[d-1]
		assert.Equal(t, d, stat.Digit)
		if d == 5 {
			assert.Equal(t, n, stat.Count)
			assert.InDelta(t, 1.0, stat.Proportion, 1e-12)
		} else {
			assert.Zero(t, stat.Count)
			assert.Zero(t, stat.Proportion)
		}
	}

	// chi-square = n * ((1-e5)^2/e5 + sum of the other expectations)
	e5 := Expected(5)
	wantChi := float64(n) * ((1-e5)*(1-e5)/e5 + (1 - e5))
	assert.InDelta(t, wantChi, result.ChiSquare, 1e-9)

	// MAD = (|1-e5| + sum over other digits of e_d) / 9 = 2*(1-e5)/9
	wantMAD := 2 * (1 - e5) / 9
	assert.InDelta(t, wantMAD, result.MAD, 1e-12)
	assert.Equal(t, Nonconformity, result.Conformity)

	// Proportions over the nine digits always sum to 1.
	sum := 0.0
	for _, stat := range result.Distribution {
		sum += stat.Proportion
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

// TestAnalyzeColumnLeadingDigitOneEndToEnd pins the exact statistics for a
// column whose observed distribution is entirely concentrated on digit 1
func TestAnalyzeColumnLeadingDigitOneEndToEnd(t *testing.T) {
	analyzer := NewAnalyzer(DefaultMinSampleSize, nil)
	values := []float64{1000, 1200, 1300, 1500, 1100, 190, 140, 160, 130, 175}

	outcome := analyzer.AnalyzeColumn("s", "c", values)
	require.True(t, outcome.Analyzed())
	result := outcome.Result

	assert.InDelta(t, 1.0, result.Distribution[0].Proportion, 1e-12)
	assert.InDelta(t, Expected(1), result.Distribution[0].Expected, 1e-12)

	// MAD = (1/9) * ((1 - e1) + sum_{d>=2} e_d) = 2*(1-e1)/9
	wantMAD := 2 * (1 - Expected(1)) / 9
	assert.InDelta(t, wantMAD, result.MAD, 1e-12)
	assert.Equal(t, Nonconformity, result.Conformity)
}

// TestAnalyzeColumnFiltersInvalidEntries verifies that zeros and
// non-finite entries are excluded and valid values retained
func TestAnalyzeColumnFiltersInvalidEntries(t *testing.T) {
	analyzer := NewAnalyzer(DefaultMinSampleSize, nil)

	valid := []float64{101, 205, 330, 154, 129, 118, 194, 147, 163, 138, 172, 186}
	values := append([]float64{0, 0, math.NaN(), math.Inf(1), math.Inf(-1)}, valid...)
	values = append(values, 0, math.NaN())

	outcome := analyzer.AnalyzeColumn("s", "c", values)
	require.True(t, outcome.Analyzed())
	assert.Equal(t, len(valid), outcome.Result.SampleSize)
}

// TestAnalyzeColumnUsesMagnitude verifies that negative entries contribute
// through their absolute value
func TestAnalyzeColumnUsesMagnitude(t *testing.T) {
	analyzer := NewAnalyzer(DefaultMinSampleSize, nil)

	values := []float64{-100, -110, -120, -130, -140, 150, 160, 170, 180, 190}
	outcome := analyzer.AnalyzeColumn("s", "c", values)
	require.True(t, outcome.Analyzed())
	assert.Equal(t, 10, outcome.Result.SampleSize)
	assert.Equal(t, 10, outcome.Result.Distribution[0].Count)
}

// TestAnalyzeColumnInsufficientData verifies the minimum-sample gate
func TestAnalyzeColumnInsufficientData(t *testing.T) {
	analyzer := NewAnalyzer(10, nil)

	t.Run("below threshold", func(t *testing.T) {
		outcome := analyzer.AnalyzeColumn("s", "c", []float64{1, 2, 3, 4, 5})
		require.False(t, outcome.Analyzed())
		assert.Equal(t, SkipInsufficientData, outcome.Skip.Reason)
		assert.Equal(t, 5, outcome.Skip.RawValues)
		assert.Equal(t, 5, outcome.Skip.ValidValues)
	})

	t.Run("valid count below threshold after filtering", func(t *testing.T) {
		// Eleven raw cells but only nine usable values.
		values := []float64{0, math.NaN(), 1, 2, 3, 4, 5, 6, 7, 8, 9}
		outcome := analyzer.AnalyzeColumn("s", "c", values)
		require.False(t, outcome.Analyzed())
		assert.Equal(t, 11, outcome.Skip.RawValues)
		assert.Equal(t, 9, outcome.Skip.ValidValues)
	})

	t.Run("empty column", func(t *testing.T) {
		outcome := analyzer.AnalyzeColumn("s", "c", nil)
		require.False(t, outcome.Analyzed())
		assert.Zero(t, outcome.Skip.ValidValues)
	})

	t.Run("exactly at threshold is analyzed", func(t *testing.T) {
		values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		outcome := analyzer.AnalyzeColumn("s", "c", values)
		assert.True(t, outcome.Analyzed())
	})
}

// TestAnalyzeColumnLogUniformSample checks that a log-uniform synthetic
// sample, which is known to conform closely to Benford's Law, converges to
// the expected proportions
func TestAnalyzeColumnLogUniformSample(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	values := make([]float64, 20_000)
	for i := range values {
		// Uniform exponent over six orders of magnitude.
		values[i] = math.Pow(10, rng.Float64()*6)
	}

	analyzer := NewAnalyzer(DefaultMinSampleSize, nil)
	outcome := analyzer.AnalyzeColumn("s", "c", values)
	require.True(t, outcome.Analyzed())

	assert.Less(t, outcome.Result.MAD, 0.01)
	for d := 1; d <= 9; d++ {
		assert.InDelta(t, Expected(d), outcome.Result.Distribution[d-1].Proportion, 0.02,
			"digit %d", d)
	}
}

// TestNewAnalyzerDefaults tests constructor fallbacks
func TestNewAnalyzerDefaults(t *testing.T) {
	assert.Equal(t, DefaultMinSampleSize, NewAnalyzer(0, nil).MinSampleSize())
	assert.Equal(t, DefaultMinSampleSize, NewAnalyzer(-3, nil).MinSampleSize())
	assert.Equal(t, 25, NewAnalyzer(25, nil).MinSampleSize())
}

// TestSkipColumn tests explicit skips for non-numeric columns
func TestSkipColumn(t *testing.T) {
	analyzer := NewAnalyzer(DefaultMinSampleSize, nil)
	outcome := analyzer.SkipColumn("JE Samples", "Memo", SkipNonNumeric, 42)

	require.False(t, outcome.Analyzed())
	assert.Equal(t, "JE Samples", outcome.Sheet())
	assert.Equal(t, "Memo", outcome.Column())
	assert.Equal(t, SkipNonNumeric, outcome.Skip.Reason)
	assert.Equal(t, 42, outcome.Skip.RawValues)
}

// TestSummarize tests run-level aggregation of outcomes
func TestSummarize(t *testing.T) {
	t.Run("empty run", func(t *testing.T) {
		summary := Summarize(nil)
		assert.Zero(t, summary.ColumnsAnalyzed)
		assert.Zero(t, summary.ColumnsSkipped)
	})

	t.Run("mixed outcomes", func(t *testing.T) {
		outcomes := []Outcome{
			{Result: &Result{Conformity: CloseConformity}},
			{Result: &Result{Conformity: AcceptableConformity}},
			{Result: &Result{Conformity: AcceptableConformity}},
			{Result: &Result{Conformity: Nonconformity}},
			{Skip: &Skip{Reason: SkipNonNumeric}},
			{Skip: &Skip{Reason: SkipInsufficientData}},
		}

		summary := Summarize(outcomes)
		assert.Equal(t, 4, summary.ColumnsAnalyzed)
		assert.Equal(t, 2, summary.ColumnsSkipped)
		assert.Equal(t, 1, summary.Close)
		assert.Equal(t, 2, summary.Acceptable)
		assert.Zero(t, summary.Marginal)
		assert.Equal(t, 1, summary.Nonconforming)
	})
}
