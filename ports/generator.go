package ports

import (
	"context"

	"delistats/domain/stats"
)

// GeneratorPort produces simulated samples for analysis
type GeneratorPort interface {
	// Generate draws spec.Count independent values from Normal(spec.Mean,
	// spec.StdDev), deterministic for a fixed spec.Seed.
	Generate(ctx context.Context, spec stats.GeneratorSpec) (stats.Sample, error)
}
