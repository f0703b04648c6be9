package fast

import (
	"testing"

	"github.com/hamao0820/daily-akari-solver/pkg/field"
	"github.com/hamao0820/daily-akari-solver/pkg/verifier"
)

func TestScenario1(t *testing.T) {
	f, err := field.ParseText(1, 3, ".2.")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sol, ok := Fast{}.Solve(f)
	if !ok {
		t.Fatalf("expected a solution")
	}
	if !sol.Lights[0][0] || sol.Lights[0][1] || !sol.Lights[0][2] {
		t.Fatalf("lights = %v", sol.Lights)
	}
	if err := verifier.Check(f, sol); err != nil {
		t.Fatalf("verifier rejected fast solution: %v", err)
	}
}

func TestScenario2(t *testing.T) {
	f, err := field.ParseText(3, 3, "2.1 ... ..0")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sol, ok := Fast{}.Solve(f)
	if !ok {
		t.Fatalf("expected a solution")
	}
	want := [][]bool{
		{false, true, false},
		{true, false, false},
		{false, false, false},
	}
	for r := range want {
		for c := range want[r] {
			if sol.Lights[r][c] != want[r][c] {
				t.Fatalf("lights = %v, want %v", sol.Lights, want)
			}
		}
	}
}

func TestScenario3SingleCell(t *testing.T) {
	f, err := field.ParseText(1, 1, ".")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sol, ok := Fast{}.Solve(f)
	if !ok {
		t.Fatalf("expected a solution")
	}
	if !sol.Lights[0][0] {
		t.Fatalf("expected the single empty cell to be lit")
	}
}

func TestUndoRestoresState(t *testing.T) {
	f, err := field.ParseText(3, 3, "... ... ...")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	co := newCore(f)
	if !co.propagate() {
		t.Fatalf("unexpected conflict during initial propagation")
	}

	cp := co.checkpoint()
	cellStateBefore := append([]cellState(nil), co.cellState...)
	litCountBefore := append([]int(nil), co.litCount...)
	rowLightBefore := make([]int, len(co.rowSegs))
	rowFreeBefore := make([]int, len(co.rowSegs))
	for i, s := range co.rowSegs {
		rowLightBefore[i], rowFreeBefore[i] = s.light, s.freeCnt
	}
	colLightBefore := make([]int, len(co.colSegs))
	colFreeBefore := make([]int, len(co.colSegs))
	for i, s := range co.colSegs {
		colLightBefore[i], colFreeBefore[i] = s.light, s.freeCnt
	}
	numOnBefore := make([]int, len(co.numCells))
	numUnkBefore := make([]int, len(co.numCells))
	for i, n := range co.numCells {
		numOnBefore[i], numUnkBefore[i] = n.on, n.unk
	}

	q := &intQueue{}
	if !co.setLight(0, q) {
		t.Fatalf("setLight(0) unexpectedly failed")
	}
	co.undo(cp)

	if len(co.trail) != cp {
		t.Fatalf("trail length = %d, want %d", len(co.trail), cp)
	}
	for i := range co.cellState {
		if co.cellState[i] != cellStateBefore[i] {
			t.Fatalf("cellState[%d] not restored", i)
		}
	}
	for i := range co.litCount {
		if co.litCount[i] != litCountBefore[i] {
			t.Fatalf("litCount[%d] not restored", i)
		}
	}
	for i, s := range co.rowSegs {
		if s.light != rowLightBefore[i] || s.freeCnt != rowFreeBefore[i] {
			t.Fatalf("rowSegs[%d] not restored", i)
		}
	}
	for i, s := range co.colSegs {
		if s.light != colLightBefore[i] || s.freeCnt != colFreeBefore[i] {
			t.Fatalf("colSegs[%d] not restored", i)
		}
	}
	for i, n := range co.numCells {
		if n.on != numOnBefore[i] || n.unk != numUnkBefore[i] {
			t.Fatalf("numCells[%d] not restored", i)
		}
	}
}
