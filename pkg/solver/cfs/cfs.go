// Package cfs implements the constraint-first backtracker: it
// branches on numeric walls before free cells, since a numeric wall is
// the most information-dense variable, and supports a wall-clock
// timeout polled at every recursive entry.
package cfs

import (
	"errors"
	"time"

	"github.com/hamao0820/daily-akari-solver/pkg/field"
	"github.com/hamao0820/daily-akari-solver/pkg/grid"
	"github.com/hamao0820/daily-akari-solver/pkg/solution"
	"github.com/hamao0820/daily-akari-solver/pkg/verifier"
	"gonum.org/v1/gonum/stat/combin"
)

// ErrOverlap mirrors the boundary string used elsewhere; CFS treats it
// as an internal conflict and never surfaces it.
var ErrOverlap = errors.New("The light is already in place.")

// CFS is the constraint-first solver. A zero-value CFS has no
// timeout.
type CFS struct {
	Timeout    time.Duration
	HasTimeout bool
}

// New builds a CFS with an optional timeout in seconds; nil means
// search without a budget.
func New(timeoutSeconds *uint64) CFS {
	if timeoutSeconds == nil {
		return CFS{}
	}
	return CFS{Timeout: time.Duration(*timeoutSeconds) * time.Second, HasTimeout: true}
}

func (s CFS) timedOut(start time.Time) bool {
	return s.HasTimeout && time.Since(start) >= s.Timeout
}

// numConstraint pairs a numeric wall's position with its fillable
// orthogonal empty neighbors at solve start.
type numConstraint struct {
	pos       grid.Point
	value     int
	neighbors []grid.Point
}

// Solve implements solver.Solver.
func (s CFS) Solve(f *field.Field) (*solution.Solution, bool) {
	sol := solution.New(f.H, f.W)
	fill := initialFill(f)
	constraints := collectConstraints(f)

	var found *solution.Solution
	start := time.Now()
	rec(f, constraints, 0, 0, sol, fill, start, s, &found)
	if found == nil {
		return nil, false
	}
	return found, true
}

func initialFill(f *field.Field) TempFill {
	fill := make(TempFill, f.H)
	for r := 0; r < f.H; r++ {
		fill[r] = make([]Cell, f.W)
		for c := 0; c < f.W; c++ {
			if f.At(r, c).IsEmpty() {
				fill[r][c] = CellFillable
			} else {
				fill[r][c] = CellNil
			}
		}
	}
	return fill
}

func collectConstraints(f *field.Field) []numConstraint {
	var out []numConstraint
	for r := 0; r < f.H; r++ {
		for c := 0; c < f.W; c++ {
			value, ok := f.At(r, c).NumValue()
			if !ok {
				continue
			}
			pos := grid.Point{R: r, C: c}
			var neighbors []grid.Point
			for _, n := range pos.Adjacent(f.H, f.W) {
				if f.At(n.R, n.C).IsEmpty() {
					neighbors = append(neighbors, n)
				}
			}
			out = append(out, numConstraint{pos: pos, value: value, neighbors: neighbors})
		}
	}
	return out
}

func rec(f *field.Field, constraints []numConstraint, consPos, cellPos int, sol *solution.Solution, fill TempFill, start time.Time, s CFS, found **solution.Solution) {
	if *found != nil {
		return
	}
	if s.timedOut(start) {
		return
	}

	if cellPos == f.H*f.W {
		if verifier.Check(f, sol) == nil {
			*found = sol
		}
		return
	}

	if hasUnfeasibleCell(f, fill) {
		return
	}

	if consPos < len(constraints) {
		branchConstraint(f, constraints, consPos, cellPos, sol, fill, start, s, found)
		return
	}

	r, c := cellPos/f.W, cellPos%f.W
	if fill[r][c].CanPutAkari() {
		if newSol, newFill, err := putAkari(f, r, c, sol, fill); err == nil {
			rec(f, constraints, consPos, cellPos+1, newSol, newFill, start, s, found)
		}
	}

	nextFill := fill.Clone()
	nextFill[r][c].Disable()
	rec(f, constraints, consPos, cellPos+1, sol, nextFill, start, s, found)
}

// branchConstraint enumerates every C(m, value) subset of a numeric
// wall's fillable empty neighbors, placing a light on the chosen
// subset and disabling the rest, before recursing to the next
// constraint.
func branchConstraint(f *field.Field, constraints []numConstraint, consPos, cellPos int, sol *solution.Solution, fill TempFill, start time.Time, s CFS, found **solution.Solution) {
	con := constraints[consPos]
	m := len(con.neighbors)
	if con.value > m {
		return
	}

	for _, combo := range combosFor(m, con.value) {
		if *found != nil {
			return
		}
		chosen := make(map[int]bool, len(combo))
		for _, idx := range combo {
			chosen[idx] = true
		}

		curSol, curFill := sol, fill
		ok := true
		for idx, n := range con.neighbors {
			if !chosen[idx] {
				continue
			}
			ns, nf, err := putAkari(f, n.R, n.C, curSol, curFill)
			if err != nil {
				ok = false
				break
			}
			curSol, curFill = ns, nf
		}
		if !ok {
			continue
		}

		curFill = curFill.Clone()
		for idx, n := range con.neighbors {
			if !chosen[idx] {
				curFill[n.R][n.C].Disable()
			}
		}

		rec(f, constraints, consPos+1, cellPos, curSol, curFill, start, s, found)
	}
}

// combosFor returns every k-element subset of {0, ..., m-1} as index
// lists, via gonum's combinatorics routine; it special-cases k = 0
// since the empty combination still represents one valid choice (light
// none of the neighbors).
func combosFor(m, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}
	if k > m {
		return nil
	}
	return combin.Combinations(m, k)
}

// putAkari places a light at (r, c), returning fresh copies of sol and
// fill reflecting that placement and its ray-illumination fallout. It
// is idempotent if a light is already there, and fails if the cell
// cannot take one or another light is found along its rays.
func putAkari(f *field.Field, r, c int, sol *solution.Solution, fill TempFill) (*solution.Solution, TempFill, error) {
	newFill := fill.Clone()
	switch {
	case newFill[r][c] == CellFillable:
		newFill[r][c] = CellUnfillableLit
	case sol.Lights[r][c]:
		return sol, fill, nil
	default:
		return nil, nil, errors.New("given cell is not fillable")
	}

	newSol := sol.Clone()
	newSol.Lights[r][c] = true

	for _, dir := range grid.Directions {
		var rayErr error
		(grid.Point{R: r, C: c}).Ray(dir, f.H, f.W, func(p grid.Point) bool {
			if newSol.Lights[p.R][p.C] {
				rayErr = ErrOverlap
				return false
			}
			if newFill[p.R][p.C] == CellNil {
				return false
			}
			newFill[p.R][p.C] = CellUnfillableLit
			return true
		})
		if rayErr != nil {
			return nil, nil, rayErr
		}
	}

	return newSol, newFill, nil
}

// hasUnfeasibleCell reports whether some cell marked Unfillable(false)
// (disabled but not yet illuminated) has no remaining Fillable cell
// anywhere along its four rays, which would make it permanently unlit.
func hasUnfeasibleCell(f *field.Field, fill TempFill) bool {
	for r := 0; r < f.H; r++ {
		for c := 0; c < f.W; c++ {
			if fill[r][c] != CellUnfillableUnlit {
				continue
			}
			feasible := false
			for _, dir := range grid.Directions {
				if feasible {
					break
				}
				(grid.Point{R: r, C: c}).Ray(dir, f.H, f.W, func(p grid.Point) bool {
					if fill[p.R][p.C].CanPutAkari() {
						feasible = true
						return false
					}
					return true
				})
			}
			if !feasible {
				return true
			}
		}
	}
	return false
}
