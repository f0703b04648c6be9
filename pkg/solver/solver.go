// Package solver defines the common Solver contract implemented by
// the naive, CFS, and fast solver families.
package solver

import (
	"github.com/hamao0820/daily-akari-solver/pkg/field"
	"github.com/hamao0820/daily-akari-solver/pkg/solution"
)

// Solver solves a Field, returning a Solution and true on success, or
// (nil, false) if no solution was found (unsatisfiable or timed out).
// Implementations are single-threaded and synchronous: a call to
// Solve owns its working state and does not share it across calls.
type Solver interface {
	Solve(f *field.Field) (*solution.Solution, bool)
}
