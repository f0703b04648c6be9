// Package fast implements the segment model: row/column segments, a
// trail of reversible edits, and propagation-to-fixpoint before a
// least-candidates branching search. This is the solver exposed as
// the module's default.
package fast

import (
	"github.com/hamao0820/daily-akari-solver/pkg/field"
	"github.com/hamao0820/daily-akari-solver/pkg/grid"
	"github.com/hamao0820/daily-akari-solver/pkg/solution"
)

type cellState int8

const (
	stateUnknown cellState = iota
	stateLight
	stateBlocked
)

// segment is a maximal run of empty cells along one row or column.
type segment struct {
	cells   []int
	light   int // -1 if unset
	freeCnt int
}

// numCell is one numeric wall: its target value and the empty-cell
// indices it is adjacent to.
type numCell struct {
	value int
	adj   []int
	on    int
	unk   int
}

// core owns all solver-mutable state for one solve. The Field is
// never mutated; it is read during initialization and, for its
// dimensions, when the final Solution is built.
type core struct {
	nEmpty        int
	emptyPos      []grid.Point
	rowSegID      []int
	colSegID      []int
	rowSegs       []segment
	colSegs       []segment
	numCells      []numCell
	numAdjOfEmpty [][]int
	litList       [][]int
	litCount      []int
	cellState     []cellState
	trail         []action
}

func newCore(f *field.Field) *core {
	h, w := f.H, f.W

	emptyID := make([][]int, h)
	for r := range emptyID {
		emptyID[r] = make([]int, w)
		for c := range emptyID[r] {
			emptyID[r][c] = -1
		}
	}

	var emptyPos []grid.Point
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if f.At(r, c).IsEmpty() {
				emptyID[r][c] = len(emptyPos)
				emptyPos = append(emptyPos, grid.Point{R: r, C: c})
			}
		}
	}
	nEmpty := len(emptyPos)

	rowSegID := make([]int, nEmpty)
	colSegID := make([]int, nEmpty)

	var rowSegs []segment
	for r := 0; r < h; r++ {
		c := 0
		for c < w {
			if !f.At(r, c).IsEmpty() {
				c++
				continue
			}
			var cells []int
			for c < w && f.At(r, c).IsEmpty() {
				id := emptyID[r][c]
				rowSegID[id] = len(rowSegs)
				cells = append(cells, id)
				c++
			}
			rowSegs = append(rowSegs, segment{cells: cells, light: -1, freeCnt: len(cells)})
		}
	}

	var colSegs []segment
	for c := 0; c < w; c++ {
		r := 0
		for r < h {
			if !f.At(r, c).IsEmpty() {
				r++
				continue
			}
			var cells []int
			for r < h && f.At(r, c).IsEmpty() {
				id := emptyID[r][c]
				colSegID[id] = len(colSegs)
				cells = append(cells, id)
				r++
			}
			colSegs = append(colSegs, segment{cells: cells, light: -1, freeCnt: len(cells)})
		}
	}

	var numCells []numCell
	numAdjOfEmpty := make([][]int, nEmpty)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			value, ok := f.At(r, c).NumValue()
			if !ok {
				continue
			}
			var adj []int
			for _, n := range (grid.Point{R: r, C: c}).Adjacent(h, w) {
				if f.At(n.R, n.C).IsEmpty() {
					id := emptyID[n.R][n.C]
					adj = append(adj, id)
					numAdjOfEmpty[id] = append(numAdjOfEmpty[id], len(numCells))
				}
			}
			numCells = append(numCells, numCell{value: value, adj: adj, on: 0, unk: len(adj)})
		}
	}

	litList := make([][]int, nEmpty)
	for id := 0; id < nEmpty; id++ {
		list := append([]int(nil), rowSegs[rowSegID[id]].cells...)
		seen := make(map[int]bool, len(list))
		for _, x := range list {
			seen[x] = true
		}
		for _, x := range colSegs[colSegID[id]].cells {
			if !seen[x] {
				list = append(list, x)
				seen[x] = true
			}
		}
		litList[id] = list
	}

	return &core{
		nEmpty:        nEmpty,
		emptyPos:      emptyPos,
		rowSegID:      rowSegID,
		colSegID:      colSegID,
		rowSegs:       rowSegs,
		colSegs:       colSegs,
		numCells:      numCells,
		numAdjOfEmpty: numAdjOfEmpty,
		litList:       litList,
		litCount:      make([]int, nEmpty),
		cellState:     make([]cellState, nEmpty),
	}
}

func (co *core) toSolution(f *field.Field) *solution.Solution {
	sol := solution.New(f.H, f.W)
	for id, p := range co.emptyPos {
		if co.cellState[id] == stateLight {
			sol.Lights[p.R][p.C] = true
		}
	}
	return sol
}

func (co *core) checkpoint() int { return len(co.trail) }

func (co *core) undo(cp int) {
	for len(co.trail) > cp {
		n := len(co.trail) - 1
		act := co.trail[n]
		co.trail = co.trail[:n]
		act.undo(co)
	}
}
