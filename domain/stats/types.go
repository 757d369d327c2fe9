package stats

import (
	"fmt"
)

// ============================================================================
// STABLE PRIMITIVES (Canonical, never change)
// ============================================================================

// Sample is an ordered, fixed-length sequence of observed values.
// It is immutable after creation: constructors and accessors copy.
type Sample struct {
	values []float64
}

// NewSample creates a sample from a slice of values. The input is copied
// so later mutation of the caller's slice cannot alter the sample.
func NewSample(values []float64) Sample {
	copied := make([]float64, len(values))
	copy(copied, values)
	return Sample{values: copied}
}

// Len returns the number of observations
func (s Sample) Len() int {
	return len(s.values)
}

// Values returns a copy of the underlying observations
func (s Sample) Values() []float64 {
	copied := make([]float64, len(s.values))
	copy(copied, s.values)
	return copied
}

// GeneratorSpec describes a simulated Normal sample to draw
type GeneratorSpec struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Count  int     `json:"count"`
	Seed   int64   `json:"seed"`
}

// SampleStatistics holds the descriptive summary of a sample.
// INVARIANTS:
// - N always present and >= 2 (StdDev is undefined below that)
// - StdDev >= 0, Bessel-corrected (divides by n-1)
type SampleStatistics struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	N      int     `json:"n"`
}

// ConfidenceInterval is a two-sided interval for the population mean.
// INVARIANTS: Lower <= Upper; Level in (0,1).
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Level float64 `json:"level"`
}

// Contains reports whether the interval covers the given value
func (ci ConfidenceInterval) Contains(v float64) bool {
	return ci.Lower <= v && v <= ci.Upper
}

// Width returns the interval width
func (ci ConfidenceInterval) Width() float64 {
	return ci.Upper - ci.Lower
}

// HypothesisTestResult is the outcome of a one-sample two-sided t-test.
// INVARIANTS: PValue in [0,1]; RejectNull == (PValue < alpha) for the
// alpha the test was run with.
type HypothesisTestResult struct {
	Statistic        float64       `json:"statistic"`
	PValue           float64       `json:"p_value"`
	HypothesizedMean float64       `json:"hypothesized_mean"`
	RejectNull       bool          `json:"reject_null"`
	Warnings         []WarningCode `json:"warnings,omitempty"`
}

// Decision returns the textual test decision
func (r HypothesisTestResult) Decision() string {
	if r.RejectNull {
		return "reject H0"
	}
	return "fail to reject H0"
}

// WarningCode represents structured warning types
type WarningCode string

const (
	WarningZeroVariance WarningCode = "ZERO_VARIANCE" // all sample values identical
	WarningLowN         WarningCode = "LOW_N"         // sample size < 30
)

// ============================================================================
// CONSTRUCTORS
// ============================================================================

// NewSampleStatistics creates sample statistics with invariant validation
func NewSampleStatistics(mean, stddev float64, n int) (SampleStatistics, error) {
	if n < 2 {
		return SampleStatistics{}, fmt.Errorf("N must be >= 2, got %d", n)
	}
	if stddev < 0 {
		return SampleStatistics{}, fmt.Errorf("StdDev must be >= 0, got %f", stddev)
	}
	return SampleStatistics{Mean: mean, StdDev: stddev, N: n}, nil
}

// NewConfidenceInterval creates an interval with invariant validation
func NewConfidenceInterval(lower, upper, level float64) (ConfidenceInterval, error) {
	if lower > upper {
		return ConfidenceInterval{}, fmt.Errorf("Lower must be <= Upper, got [%f, %f]", lower, upper)
	}
	if level <= 0 || level >= 1 {
		return ConfidenceInterval{}, fmt.Errorf("Level must be in (0,1), got %f", level)
	}
	return ConfidenceInterval{Lower: lower, Upper: upper, Level: level}, nil
}

// NewHypothesisTestResult creates a test result with invariant validation
func NewHypothesisTestResult(statistic, pValue, hypothesizedMean, alpha float64) (HypothesisTestResult, error) {
	if pValue < 0.0 || pValue > 1.0 {
		return HypothesisTestResult{}, fmt.Errorf("PValue must be in [0.0, 1.0], got %f", pValue)
	}
	return HypothesisTestResult{
		Statistic:        statistic,
		PValue:           pValue,
		HypothesizedMean: hypothesizedMean,
		RejectNull:       pValue < alpha,
	}, nil
}

// MustNewConfidenceInterval creates an interval (panics on invalid input).
// Use only in tests and development - production code should handle validation errors.
func MustNewConfidenceInterval(lower, upper, level float64) ConfidenceInterval {
	ci, err := NewConfidenceInterval(lower, upper, level)
	if err != nil {
		panic(err)
	}
	return ci
}
