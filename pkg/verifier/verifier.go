// Package verifier independently checks a candidate Solution against
// a Field. It shares no state or code with any solver and is the sole
// authority on correctness used by tests and by solvers that want to
// assert their own output.
package verifier

import (
	"errors"

	"github.com/hamao0820/daily-akari-solver/pkg/field"
	"github.com/hamao0820/daily-akari-solver/pkg/grid"
	"github.com/hamao0820/daily-akari-solver/pkg/solution"
)

// Boundary error strings, fixed by the external interface contract.
var (
	ErrMismatchCount = errors.New("The number of lights does not match.")
	ErrOverlapLight  = errors.New("The light is already in place.")
	ErrUnlitCell     = errors.New("There are cells that are not lighted.")
)

// Check performs three independent passes over f and sol: numeric-wall
// adjacency counts, light-overlap along rays, and full illumination
// coverage. It returns nil only if all three pass.
func Check(f *field.Field, sol *solution.Solution) error {
	h, w := f.H, f.W

	// Pass (a): numeric walls and walls must not carry lights, and a
	// numeric wall's adjacent light count must equal its value.
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			k := f.At(r, c)
			if k.IsEmpty() {
				continue
			}
			if value, ok := k.NumValue(); ok {
				if sol.Lights[r][c] {
					return ErrMismatchCount
				}
				count := 0
				for _, n := range (grid.Point{R: r, C: c}).Adjacent(h, w) {
					if sol.Lights[n.R][n.C] {
						count++
					}
				}
				if count != value {
					return ErrMismatchCount
				}
			} else if sol.Lights[r][c] {
				// Wall (no adjacency constraint) carrying a light.
				return ErrMismatchCount
			}
		}
	}

	// fill[r][c] is nil for blocks, false for an unlit empty cell, true
	// once a ray walk or a light itself has covered it.
	fill := make([][]*bool, h)
	for r := 0; r < h; r++ {
		fill[r] = make([]*bool, w)
		for c := 0; c < w; c++ {
			if f.At(r, c).IsEmpty() {
				v := false
				fill[r][c] = &v
			}
		}
	}

	// Pass (b): overlap check via ray walk from every light.
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if !sol.Lights[r][c] {
				continue
			}
			set(fill, r, c, true)
			for _, dir := range grid.Directions {
				blocked := false
				(grid.Point{R: r, C: c}).Ray(dir, h, w, func(p grid.Point) bool {
					if sol.Lights[p.R][p.C] {
						blocked = true
						return false
					}
					if fill[p.R][p.C] == nil {
						return false
					}
					set(fill, p.R, p.C, true)
					return true
				})
				if blocked {
					return ErrOverlapLight
				}
			}
		}
	}

	// Pass (c): every empty cell must have been illuminated.
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if fill[r][c] != nil && !*fill[r][c] {
				return ErrUnlitCell
			}
		}
	}

	return nil
}

func set(fill [][]*bool, r, c int, v bool) {
	*fill[r][c] = v
}
