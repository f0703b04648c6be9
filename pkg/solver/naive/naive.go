// Package naive implements a reference-oracle backtracker: a full
// row-major cell walk that clones its partial state at every branch
// point. It is deliberately simple and used to cross-check the faster
// solvers on small grids.
package naive

import (
	"github.com/hamao0820/daily-akari-solver/pkg/field"
	"github.com/hamao0820/daily-akari-solver/pkg/grid"
	"github.com/hamao0820/daily-akari-solver/pkg/solution"
	"github.com/hamao0820/daily-akari-solver/pkg/verifier"
)

// tentative tracks, per cell, whether a light may still be placed
// there. nilCell marks a non-empty cell.
type tentative int8

const (
	nilCell tentative = iota
	unlit
	lit
)

// Naive is the cell-by-cell backtracking solver.
type Naive struct{}

// Solve implements solver.Solver.
func (Naive) Solve(f *field.Field) (*solution.Solution, bool) {
	sol := solution.New(f.H, f.W)
	fill := make([][]tentative, f.H)
	for r := 0; r < f.H; r++ {
		fill[r] = make([]tentative, f.W)
		for c := 0; c < f.W; c++ {
			if f.At(r, c).IsEmpty() {
				fill[r][c] = unlit
			}
		}
	}

	var found *solution.Solution
	rec(f, 0, sol, fill, &found)
	if found == nil {
		return nil, false
	}
	return found, true
}

func cloneFill(fill [][]tentative) [][]tentative {
	out := make([][]tentative, len(fill))
	for r, row := range fill {
		out[r] = append([]tentative(nil), row...)
	}
	return out
}

func rec(f *field.Field, pos int, sol *solution.Solution, fill [][]tentative, found **solution.Solution) {
	if *found != nil {
		return
	}

	if pos == f.H*f.W {
		if verifier.Check(f, sol) == nil {
			*found = sol
		}
		return
	}

	r, c := pos/f.W, pos%f.W

	if fill[r][c] == unlit {
		newSol := sol.Clone()
		newSol.Lights[r][c] = true

		newFill := cloneFill(fill)
		newFill[r][c] = lit

		if placeable := illuminate(f, grid.Point{R: r, C: c}, newSol, newFill); placeable {
			rec(f, pos+1, newSol, newFill, found)
		}
	}

	rec(f, pos+1, sol, fill, found)
}

// illuminate marks every cell along the four rays from p as lit,
// stopping at a block. It returns false if another light is found
// along the way (the branch must be abandoned).
func illuminate(f *field.Field, p grid.Point, sol *solution.Solution, fill [][]tentative) bool {
	ok := true
	for _, dir := range grid.Directions {
		if !ok {
			break
		}
		p.Ray(dir, f.H, f.W, func(n grid.Point) bool {
			if sol.Lights[n.R][n.C] {
				ok = false
				return false
			}
			if fill[n.R][n.C] == nilCell {
				return false
			}
			fill[n.R][n.C] = lit
			return true
		})
	}
	return ok
}
