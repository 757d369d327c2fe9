package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic runs
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a
	// named operation. Each stream is isolated, so concurrent runs never
	// share or mutate a common generator state.
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)
}
