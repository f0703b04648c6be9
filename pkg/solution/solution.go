// Package solution models a candidate light placement and the
// presentation adapters external callers use to consume it.
package solution

import "github.com/hamao0820/daily-akari-solver/pkg/grid"

// Solution is an H×W boolean grid: true where a light is placed.
// Invariant at acceptance time: true only on cells the originating
// Field marks Empty.
type Solution struct {
	H, W   int
	Lights [][]bool
}

// New returns an all-false solution of the given dimensions.
func New(h, w int) *Solution {
	lights := make([][]bool, h)
	for r := range lights {
		lights[r] = make([]bool, w)
	}
	return &Solution{H: h, W: w, Lights: lights}
}

// Clone returns a deep copy, used by solvers that branch by cloning
// partial state (Naive, CFS).
func (s *Solution) Clone() *Solution {
	out := New(s.H, s.W)
	for r := range s.Lights {
		copy(out.Lights[r], s.Lights[r])
	}
	return out
}

// AkariIndices enumerates the (row, column) positions holding a light,
// in row-major order, for use by external presentation code.
func (s *Solution) AkariIndices() []grid.Point {
	var out []grid.Point
	for r := 0; r < s.H; r++ {
		for c := 0; c < s.W; c++ {
			if s.Lights[r][c] {
				out = append(out, grid.Point{R: r, C: c})
			}
		}
	}
	return out
}

// Equal reports whether two solutions have identical light placement.
func (s *Solution) Equal(other *Solution) bool {
	if s.H != other.H || s.W != other.W {
		return false
	}
	for r := 0; r < s.H; r++ {
		for c := 0; c < s.W; c++ {
			if s.Lights[r][c] != other.Lights[r][c] {
				return false
			}
		}
	}
	return true
}
