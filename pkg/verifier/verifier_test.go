package verifier

import (
	"testing"

	"github.com/hamao0820/daily-akari-solver/pkg/field"
	"github.com/hamao0820/daily-akari-solver/pkg/solution"
)

func TestScenario2Accepts(t *testing.T) {
	f, err := field.ParseText(3, 3, "2.1 ... ..0")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sol := solution.New(3, 3)
	sol.Lights[0][1] = true
	sol.Lights[1][0] = true

	if err := Check(f, sol); err != nil {
		t.Fatalf("Check() = %v, want nil", err)
	}
}

func TestScenario5MismatchCount(t *testing.T) {
	f, err := field.ParseText(3, 3, "2.2 ... ..0")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sol := solution.New(3, 3)
	sol.Lights[0][1] = true
	sol.Lights[1][0] = true

	if err := Check(f, sol); err != ErrMismatchCount {
		t.Fatalf("Check() = %v, want ErrMismatchCount", err)
	}
}

func TestScenario6OverlapLight(t *testing.T) {
	f, err := field.ParseText(3, 3, "2.2 ... ...")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sol := solution.New(3, 3)
	sol.Lights[0][1] = true
	sol.Lights[1][0] = true
	sol.Lights[1][2] = true

	if err := Check(f, sol); err != ErrOverlapLight {
		t.Fatalf("Check() = %v, want ErrOverlapLight", err)
	}
}

func TestUnlitCell(t *testing.T) {
	f, err := field.ParseText(3, 3, "2.1 ... ...")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sol := solution.New(3, 3)
	sol.Lights[0][1] = true
	sol.Lights[1][0] = true

	if err := Check(f, sol); err != ErrUnlitCell {
		t.Fatalf("Check() = %v, want ErrUnlitCell", err)
	}
}

func TestIdempotence(t *testing.T) {
	f, err := field.ParseText(3, 3, "2.1 ... ..0")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sol := solution.New(3, 3)
	sol.Lights[0][1] = true
	sol.Lights[1][0] = true

	first := Check(f, sol)
	second := Check(f, sol)
	if first != second {
		t.Fatalf("Check() not idempotent: %v vs %v", first, second)
	}
}
