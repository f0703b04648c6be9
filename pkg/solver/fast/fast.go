package fast

import (
	"github.com/hamao0820/daily-akari-solver/pkg/field"
	"github.com/hamao0820/daily-akari-solver/pkg/solution"
)

// Fast is the segment-model solver exposed as the module's default.
type Fast struct{}

// Solve implements solver.Solver.
func (Fast) Solve(f *field.Field) (*solution.Solution, bool) {
	co := newCore(f)
	if co.dfs() {
		return co.toSolution(f), true
	}
	return nil, false
}
