package testkit

import (
	"context"
	"math/rand"

	"delistats/domain/stats"
)

// RNGAdapter implements ports.RNGPort for tests with plain seeded streams
// (the operation name is ignored so fixtures stay easy to reason about).
type RNGAdapter struct{}

// SeededStream creates a deterministic random number generator
func (r *RNGAdapter) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	return rand.New(rand.NewSource(seed)), nil
}

// FixedSample returns a sample over the given literal values
func FixedSample(values ...float64) stats.Sample {
	return stats.NewSample(values)
}

// KnownStatistics returns the hand-checked summary of FixedSample(1,2,3,4,5):
// mean 3, sample stddev sqrt(2.5), n 5. Tests that need a fixture with
// t-table-verifiable inference results start here.
func KnownStatistics() stats.SampleStatistics {
	return stats.SampleStatistics{Mean: 3.0, StdDev: 1.5811388300841898, N: 5}
}

// DefaultSpec returns the reference delivery-time scenario
func DefaultSpec() stats.GeneratorSpec {
	return stats.GeneratorSpec{Mean: 3.5, StdDev: 0.5, Count: 30, Seed: 42}
}
