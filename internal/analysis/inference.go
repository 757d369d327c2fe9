package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"delistats/domain/stats"
	"delistats/internal/errors"
)

// Distributions provides unified access to the statistical distributions
// used for inference, so CDF/quantile lookups live in one place.
type Distributions struct{}

// NewDistributions creates a new distributions utility
func NewDistributions() *Distributions {
	return &Distributions{}
}

// TCriticalValue returns t* such that P(T <= t*) = 1 - alpha/2 for a
// Student-t distribution with the given degrees of freedom.
func (d *Distributions) TCriticalValue(alpha float64, degreesOfFreedom int) float64 {
	df := float64(degreesOfFreedom)
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return tDist.Quantile(1.0 - alpha/2.0)
}

// TTestPValue computes the two-tailed p-value for a t-statistic using
// Student's t-distribution.
func (d *Distributions) TTestPValue(tStatistic float64, degreesOfFreedom int) float64 {
	if degreesOfFreedom <= 0 {
		return 1.0
	}

	df := float64(degreesOfFreedom)
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	// Two-tailed test
	return 2 * (1 - tDist.CDF(math.Abs(tStatistic)))
}

// MeanConfidenceInterval computes a two-sided confidence interval for the
// population mean. The t-distribution (not normal) is used because the
// population standard deviation is estimated from the sample; degrees of
// freedom = n-1 accounts for the uncertainty in that estimate.
func MeanConfidenceInterval(s stats.SampleStatistics, level float64) (stats.ConfidenceInterval, error) {
	if level <= 0 || level >= 1 {
		return stats.ConfidenceInterval{}, errors.InvalidParameter(
			fmt.Sprintf("confidence level must be in (0,1), got %f", level))
	}
	if s.N < 2 {
		return stats.ConfidenceInterval{}, errors.InsufficientData("confidence interval requires n >= 2")
	}

	alpha := 1.0 - level
	tCritical := NewDistributions().TCriticalValue(alpha, s.N-1)

	se := s.StdDev / math.Sqrt(float64(s.N))
	margin := tCritical * se

	return stats.NewConfidenceInterval(s.Mean-margin, s.Mean+margin, level)
}

// OneSampleTTest runs a one-sample two-sided t-test of the sample mean
// against a hypothesized population mean.
//
// Degenerate fallback: when the sample has zero variance the t-statistic
// is undefined. If the mean equals the hypothesized mean the test reduces
// to t = 0, p = 1; otherwise the result is t = ±Inf, p = 0, RejectNull =
// true, tagged with WarningZeroVariance.
func OneSampleTTest(s stats.SampleStatistics, hypothesizedMean, alpha float64) (stats.HypothesisTestResult, error) {
	if alpha <= 0 || alpha >= 1 {
		return stats.HypothesisTestResult{}, errors.InvalidParameter(
			fmt.Sprintf("significance level must be in (0,1), got %f", alpha))
	}
	if s.N < 2 {
		return stats.HypothesisTestResult{}, errors.InsufficientData("t-test requires n >= 2")
	}

	var result stats.HypothesisTestResult
	var err error
	if s.StdDev == 0 {
		result, err = degenerateTestResult(s, hypothesizedMean, alpha)
	} else {
		se := s.StdDev / math.Sqrt(float64(s.N))
		tStatistic := (s.Mean - hypothesizedMean) / se
		pValue := NewDistributions().TTestPValue(tStatistic, s.N-1)

		// Guard against floating-point drift just past the bounds
		if pValue < 0 {
			pValue = 0
		}
		if pValue > 1 {
			pValue = 1
		}

		result, err = stats.NewHypothesisTestResult(tStatistic, pValue, hypothesizedMean, alpha)
	}
	if err != nil {
		return stats.HypothesisTestResult{}, err
	}

	if s.N < 30 {
		result.Warnings = append(result.Warnings, stats.WarningLowN)
	}
	return result, nil
}

// degenerateTestResult handles the zero-variance sample deterministically
func degenerateTestResult(s stats.SampleStatistics, hypothesizedMean, alpha float64) (stats.HypothesisTestResult, error) {
	if s.Mean == hypothesizedMean {
		result, err := stats.NewHypothesisTestResult(0, 1.0, hypothesizedMean, alpha)
		if err != nil {
			return stats.HypothesisTestResult{}, err
		}
		result.Warnings = append(result.Warnings, stats.WarningZeroVariance)
		return result, nil
	}

	statistic := math.Inf(1)
	if s.Mean < hypothesizedMean {
		statistic = math.Inf(-1)
	}
	result, err := stats.NewHypothesisTestResult(statistic, 0.0, hypothesizedMean, alpha)
	if err != nil {
		return stats.HypothesisTestResult{}, err
	}
	result.Warnings = append(result.Warnings, stats.WarningZeroVariance)
	return result, nil
}
