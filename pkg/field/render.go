package field

import (
	"strings"

	"github.com/hamao0820/daily-akari-solver/pkg/solution"
)

// Render returns a newline-terminated text rendering of f with sol
// overlaid: each cell is '#'/digit for a block, 'A' for an empty cell
// holding a light, or '.' for an empty cell without a light.
func Render(f *Field, sol *solution.Solution) string {
	var b strings.Builder
	for r := 0; r < f.H; r++ {
		for c := 0; c < f.W; c++ {
			k := f.Cells[r][c]
			switch {
			case k == Empty && sol != nil && sol.Lights[r][c]:
				b.WriteByte('A')
			default:
				b.WriteByte(k.char())
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
