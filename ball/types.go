package ball

import (
	"context"
	"errors"
)

// Sentinel errors for ball growth.
var (
	// ErrBadRadius indicates a negative radius.
	ErrBadRadius = errors.New("ball: radius must be non-negative")

	// ErrNoGenerators indicates an empty generating set.
	ErrNoGenerators = errors.New("ball: at least one generator required")
)

// Options tunes ball growth.
type Options struct {
	// Ctx allows cancellation of long expansions. Checked once per
	// sphere element; a cancelled context aborts with Ctx.Err().
	Ctx context.Context

	// IncludeInverses closes the generating step set under inversion,
	// so the ball is symmetric (the usual metric-ball convention).
	IncludeInverses bool

	// Workers caps the goroutines multiplying one sphere. Values below 2
	// keep the expansion sequential.
	Workers int
}

// DefaultOptions returns the standard configuration:
//   - context.Background()
//   - inverse-closed generating set
//   - sequential expansion (Workers == 1).
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		IncludeInverses: true,
		Workers:         1,
	}
}
