package analysis

import (
	montanaflynn "github.com/montanaflynn/stats"

	"delistats/domain/stats"
	"delistats/internal/errors"
)

// Describe computes the descriptive summary of a sample: arithmetic mean
// and the Bessel-corrected (n-1) standard deviation.
func Describe(sample stats.Sample) (stats.SampleStatistics, error) {
	if sample.Len() < 2 {
		return stats.SampleStatistics{}, errors.InsufficientData("sample standard deviation requires n >= 2")
	}

	data := sample.Values()

	mean, err := montanaflynn.Mean(data)
	if err != nil {
		return stats.SampleStatistics{}, errors.Wrap(err, "mean computation failed")
	}

	stdDev, err := montanaflynn.StandardDeviationSample(data)
	if err != nil {
		return stats.SampleStatistics{}, errors.Wrap(err, "standard deviation computation failed")
	}

	return stats.NewSampleStatistics(mean, stdDev, sample.Len())
}
