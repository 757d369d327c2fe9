package app

import (
	"context"

	"delistats/domain/core"
	"delistats/domain/stats"
	"delistats/internal/analysis"
	"delistats/internal/errors"
	"delistats/ports"
)

// RunRequest specifies one analysis run: the sample to simulate and the
// inference parameters to apply to it.
type RunRequest struct {
	Spec             stats.GeneratorSpec
	ConfidenceLevel  float64
	HypothesizedMean float64
}

// AnalysisService orchestrates the pipeline:
// generate -> describe -> {confidence interval, t-test} -> report.
// Each invocation is independent and reentrant given the same seed.
type AnalysisService struct {
	generator ports.GeneratorPort
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(generator ports.GeneratorPort) *AnalysisService {
	return &AnalysisService{generator: generator}
}

// Run executes the full pipeline for a single request. Any stage error
// aborts the remaining stages; nothing is silently recovered.
func (s *AnalysisService) Run(ctx context.Context, req RunRequest) (*stats.RunReport, error) {
	if req.ConfidenceLevel <= 0 || req.ConfidenceLevel >= 1 {
		return nil, errors.InvalidParameter("confidence level must be in (0,1)")
	}

	sample, err := s.generator.Generate(ctx, req.Spec)
	if err != nil {
		return nil, errors.Wrap(err, "sample generation failed")
	}

	summary, err := analysis.Describe(sample)
	if err != nil {
		return nil, errors.Wrap(err, "descriptive statistics failed")
	}

	interval, err := analysis.MeanConfidenceInterval(summary, req.ConfidenceLevel)
	if err != nil {
		return nil, errors.Wrap(err, "confidence interval estimation failed")
	}

	alpha := 1.0 - req.ConfidenceLevel
	test, err := analysis.OneSampleTTest(summary, req.HypothesizedMean, alpha)
	if err != nil {
		return nil, errors.Wrap(err, "hypothesis test failed")
	}

	return &stats.RunReport{
		RunID:       core.RunID(core.NewID()),
		GeneratedAt: core.Now(),
		Spec:        req.Spec,
		Statistics:  summary,
		Interval:    interval,
		Test:        test,
		Sample:      sample,
	}, nil
}
