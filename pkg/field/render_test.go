package field

import (
	"strings"
	"testing"

	"github.com/hamao0820/daily-akari-solver/pkg/solution"
)

func TestRenderScenario2(t *testing.T) {
	f, err := ParseText(3, 3, "2.1 ... ..0")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sol := solution.New(3, 3)
	sol.Lights[0][1] = true
	sol.Lights[1][0] = true

	got := Render(f, sol)
	want := "2A1\nA..\n..0\n"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	f, err := ParseText(3, 3, "2.1 ... ..0")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	sol := solution.New(3, 3)
	sol.Lights[0][1] = true
	sol.Lights[1][0] = true

	rendered := Render(f, sol)
	// Treat 'A' as '.' for the purpose of round-tripping kinds.
	normalized := strings.ReplaceAll(rendered, "A", ".")

	back, err := ParseText(f.H, f.W, normalized)
	if err != nil {
		t.Fatalf("re-parse error: %v", err)
	}
	for r := 0; r < f.H; r++ {
		for c := 0; c < f.W; c++ {
			if f.At(r, c) != back.At(r, c) {
				t.Fatalf("cell (%d,%d) changed across round trip: %v vs %v", r, c, f.At(r, c), back.At(r, c))
			}
		}
	}
}
