package cfs

import (
	"testing"

	"github.com/hamao0820/daily-akari-solver/pkg/field"
	"github.com/hamao0820/daily-akari-solver/pkg/progress"
	"github.com/hamao0820/daily-akari-solver/pkg/verifier"
)

func TestScenario1(t *testing.T) {
	f, err := field.ParseText(1, 3, ".2.")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sol, ok := CFS{}.Solve(f)
	if !ok {
		t.Fatalf("expected a solution")
	}
	if !sol.Lights[0][0] || sol.Lights[0][1] || !sol.Lights[0][2] {
		t.Fatalf("lights = %v", sol.Lights)
	}
	if err := verifier.Check(f, sol); err != nil {
		t.Fatalf("verifier rejected cfs solution: %v", err)
	}
}

func TestScenario2(t *testing.T) {
	f, err := field.ParseText(3, 3, "2.1 ... ..0")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sol, ok := CFS{}.Solve(f)
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

func TestTimeoutInterruptsSearch(t *testing.T) {
	f, err := field.ParseText(1, 3, ".2.")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	zero := uint64(0)
	s := New(&zero)
	if _, ok := s.Solve(f); ok {
		t.Fatalf("expected timeout to prevent finding a solution")
	}
}

func TestWithPBAgreesWithCFS(t *testing.T) {
	f, err := field.ParseText(3, 3, "2.1 ... ..0")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sol, ok := WithPB{Sink: progress.Noop{}}.Solve(f)
	if !ok {
		t.Fatalf("expected a solution")
	}
	if err := verifier.Check(f, sol); err != nil {
		t.Fatalf("verifier rejected cfs-with-pb solution: %v", err)
	}
}

func TestLoneNumZeroWall(t *testing.T) {
	f, err := field.ParseText(1, 1, "0")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	_, ok := CFS{}.Solve(f)
	if !ok {
		t.Fatalf("expected a trivial solution for a lone Num0 wall")
	}
}
