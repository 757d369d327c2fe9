package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delistats/domain/stats"
	"delistats/internal/errors"
	"delistats/internal/testkit"
)

func TestTCriticalValue_TableValues(t *testing.T) {
	d := NewDistributions()

	// Standard two-sided 5% critical values
	assert.InDelta(t, 12.7062, d.TCriticalValue(0.05, 1), 1e-3)
	assert.InDelta(t, 2.776445, d.TCriticalValue(0.05, 4), 1e-4)
	assert.InDelta(t, 2.045230, d.TCriticalValue(0.05, 29), 1e-4)
}

func TestMeanConfidenceInterval_KnownSample(t *testing.T) {
	// {1,2,3,4,5}: mean 3, sd sqrt(2.5), df 4, t*(0.975) = 2.776445
	// margin = 2.776445 * sqrt(2.5)/sqrt(5) = 1.963243
	summary := testkit.KnownStatistics()

	ci, err := MeanConfidenceInterval(summary, 0.95)
	require.NoError(t, err)

	assert.Equal(t, 0.95, ci.Level)
	assert.InDelta(t, 1.0368, ci.Lower, 1e-3)
	assert.InDelta(t, 4.9632, ci.Upper, 1e-3)
}

func TestMeanConfidenceInterval_ContainsMean(t *testing.T) {
	summary := testkit.KnownStatistics()

	for _, level := range []float64{0.5, 0.8, 0.9, 0.95, 0.99, 0.999} {
		ci, err := MeanConfidenceInterval(summary, level)
		require.NoError(t, err)
		assert.LessOrEqual(t, ci.Lower, summary.Mean)
		assert.GreaterOrEqual(t, ci.Upper, summary.Mean)
	}
}

func TestMeanConfidenceInterval_WidthMonotoneInLevel(t *testing.T) {
	summary := testkit.KnownStatistics()

	levels := []float64{0.5, 0.8, 0.9, 0.95, 0.99}
	prevWidth := 0.0
	for _, level := range levels {
		ci, err := MeanConfidenceInterval(summary, level)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, ci.Width(), prevWidth, "width must not shrink as level grows")
		prevWidth = ci.Width()
	}
}

func TestMeanConfidenceInterval_BoundaryN2(t *testing.T) {
	// {1,2}: df=1, t*(0.975)=12.7062 -> very wide but valid
	summary, err := stats.NewSampleStatistics(1.5, math.Sqrt(0.5), 2)
	require.NoError(t, err)

	ci, err := MeanConfidenceInterval(summary, 0.95)
	require.NoError(t, err)

	assert.InDelta(t, 1.5-6.3531, ci.Lower, 1e-3)
	assert.InDelta(t, 1.5+6.3531, ci.Upper, 1e-3)
	assert.True(t, ci.Contains(summary.Mean))
}

func TestMeanConfidenceInterval_InvalidLevel(t *testing.T) {
	summary := testkit.KnownStatistics()

	for _, level := range []float64{0, 1, -0.5, 1.5} {
		_, err := MeanConfidenceInterval(summary, level)
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidParameter, errors.GetCode(err))
	}
}

func TestOneSampleTTest_KnownSample(t *testing.T) {
	// {1,2,3,4,5} vs mu0=5: t = (3-5)/(sqrt(2.5)/sqrt(5)) = -2.828427
	summary := testkit.KnownStatistics()

	result, err := OneSampleTTest(summary, 5.0, 0.05)
	require.NoError(t, err)

	assert.InDelta(t, -2.828427, result.Statistic, 1e-5)
	assert.InDelta(t, 0.04742, result.PValue, 1e-3)
	assert.True(t, result.RejectNull)
	assert.Equal(t, "reject H0", result.Decision())
}

func TestOneSampleTTest_MeanEqualsHypothesis(t *testing.T) {
	summary := testkit.KnownStatistics()

	result, err := OneSampleTTest(summary, summary.Mean, 0.05)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Statistic)
	assert.Equal(t, 1.0, result.PValue)
	assert.False(t, result.RejectNull)
}

func TestOneSampleTTest_DegenerateSample(t *testing.T) {
	summary, err := stats.NewSampleStatistics(7.0, 0, 10)
	require.NoError(t, err)

	t.Run("mean differs from hypothesis", func(t *testing.T) {
		result, err := OneSampleTTest(summary, 5.0, 0.05)
		require.NoError(t, err)

		assert.True(t, math.IsInf(result.Statistic, 1))
		assert.Equal(t, 0.0, result.PValue)
		assert.True(t, result.RejectNull)
		assert.Contains(t, result.Warnings, stats.WarningZeroVariance)
		assert.Contains(t, result.Warnings, stats.WarningLowN, "low-n tag applies to degenerate samples too")
	})

	t.Run("mean equals hypothesis", func(t *testing.T) {
		result, err := OneSampleTTest(summary, 7.0, 0.05)
		require.NoError(t, err)

		assert.Equal(t, 0.0, result.Statistic)
		assert.Equal(t, 1.0, result.PValue)
		assert.False(t, result.RejectNull)
		assert.Contains(t, result.Warnings, stats.WarningZeroVariance)
		assert.Contains(t, result.Warnings, stats.WarningLowN)
	})

	t.Run("negative direction", func(t *testing.T) {
		result, err := OneSampleTTest(summary, 9.0, 0.05)
		require.NoError(t, err)
		assert.True(t, math.IsInf(result.Statistic, -1))
	})
}

func TestOneSampleTTest_InvalidInput(t *testing.T) {
	summary := testkit.KnownStatistics()

	_, err := OneSampleTTest(summary, 3.0, 0)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidParameter, errors.GetCode(err))

	tooSmall := stats.SampleStatistics{Mean: 3, StdDev: 1, N: 1}
	_, err = OneSampleTTest(tooSmall, 3.0, 0.05)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInsufficientData, errors.GetCode(err))
}

// Two-sided duality: the test rejects at alpha exactly when the
// hypothesized mean falls outside the interval at level 1-alpha.
func TestTTestConfidenceIntervalDuality(t *testing.T) {
	summary := testkit.KnownStatistics()
	level := 0.95
	alpha := 1 - level

	ci, err := MeanConfidenceInterval(summary, level)
	require.NoError(t, err)

	hypotheses := []float64{1.0, 1.1, 2.0, 3.0, 4.0, 4.9, 5.0, 6.0}
	for _, mu0 := range hypotheses {
		result, err := OneSampleTTest(summary, mu0, alpha)
		require.NoError(t, err)

		outside := !ci.Contains(mu0)
		assert.Equal(t, outside, result.RejectNull,
			"mu0=%.2f: interval (%.4f, %.4f), p=%.4f", mu0, ci.Lower, ci.Upper, result.PValue)
	}
}
