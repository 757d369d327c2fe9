package simulate

import (
	"context"
	"fmt"

	"delistats/domain/stats"
	"delistats/internal/errors"
	"delistats/ports"
)

// streamName keys the generator's RNG stream so other operations sharing
// the same base seed stay independent.
const streamName = "normal_sample"

// NormalGenerator implements ports.GeneratorPort by drawing from a Normal
// distribution through a seeded RNG stream.
type NormalGenerator struct {
	rng ports.RNGPort
}

// NewNormalGenerator creates a generator backed by the given RNG port
func NewNormalGenerator(rng ports.RNGPort) *NormalGenerator {
	return &NormalGenerator{rng: rng}
}

// Generate draws spec.Count independent values from Normal(spec.Mean,
// spec.StdDev). The draw order is fixed, so a fixed seed reproduces the
// sample byte for byte.
func (g *NormalGenerator) Generate(ctx context.Context, spec stats.GeneratorSpec) (stats.Sample, error) {
	if spec.StdDev <= 0 {
		return stats.Sample{}, errors.InvalidParameter(
			fmt.Sprintf("population stddev must be > 0, got %f", spec.StdDev))
	}
	if spec.Count < 1 {
		return stats.Sample{}, errors.InvalidParameter(
			fmt.Sprintf("sample count must be >= 1, got %d", spec.Count))
	}

	r, err := g.rng.SeededStream(ctx, streamName, spec.Seed)
	if err != nil {
		return stats.Sample{}, errors.Wrap(err, "failed to create RNG stream")
	}

	values := make([]float64, spec.Count)
	for i := range values {
		values[i] = spec.Mean + spec.StdDev*r.NormFloat64()
	}

	return stats.NewSample(values), nil
}
