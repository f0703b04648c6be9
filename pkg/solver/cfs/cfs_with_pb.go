package cfs

import (
	"time"

	"github.com/hamao0820/daily-akari-solver/pkg/field"
	"github.com/hamao0820/daily-akari-solver/pkg/progress"
	"github.com/hamao0820/daily-akari-solver/pkg/solution"
	"github.com/hamao0820/daily-akari-solver/pkg/verifier"
)

// WithPB is the progress-reporting variant of CFS: Phase A is fully
// materialized as a list of (Solution, TempFill) placements before
// Phase B consumes them one at a time, each reported to sink. The
// embedded CFS supplies the optional timeout.
type WithPB struct {
	CFS
	Sink progress.Sink
}

type placement struct {
	sol  *solution.Solution
	fill TempFill
}

// Solve implements solver.Solver.
func (s WithPB) Solve(f *field.Field) (*solution.Solution, bool) {
	sink := s.Sink
	if sink == nil {
		sink = progress.Noop{}
	}

	sol := solution.New(f.H, f.W)
	fill := initialFill(f)
	constraints := collectConstraints(f)

	placements := enumConstraints(f, constraints, 0, sol, fill)

	var found *solution.Solution
	start := time.Now()
	for i, p := range placements {
		if found != nil || s.timedOut(start) {
			break
		}
		sink.Report(i+1, len(placements))
		sweep(f, 0, p.sol, p.fill, start, s.CFS, &found)
	}
	sink.Done(found != nil)

	if found == nil {
		return nil, false
	}
	return found, true
}

func sweep(f *field.Field, cellPos int, sol *solution.Solution, fill TempFill, start time.Time, s CFS, found **solution.Solution) {
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

	r, c := cellPos/f.W, cellPos%f.W
	if fill[r][c].CanPutAkari() {
		if newSol, newFill, err := putAkari(f, r, c, sol, fill); err == nil {
			sweep(f, cellPos+1, newSol, newFill, start, s, found)
		}
	}

	nextFill := fill.Clone()
	nextFill[r][c].Disable()
	sweep(f, cellPos+1, sol, nextFill, start, s, found)
}

// enumConstraints recursively enumerates every feasible combination of
// placements across all numeric-wall constraints, returning the full
// list of (Solution, TempFill) pairs Phase B will consume.
func enumConstraints(f *field.Field, constraints []numConstraint, consPos int, sol *solution.Solution, fill TempFill) []placement {
	if consPos == len(constraints) {
		return []placement{{sol: sol, fill: fill}}
	}
	if hasUnfeasibleCell(f, fill) {
		return nil
	}

	con := constraints[consPos]
	m := len(con.neighbors)

	var out []placement
	for _, combo := range combosFor(m, con.value) {
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

		out = append(out, enumConstraints(f, constraints, consPos+1, curSol, curFill)...)
	}
	return out
}
