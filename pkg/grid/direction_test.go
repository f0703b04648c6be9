package grid

import "testing"

func TestStepBounds(t *testing.T) {
	p := Point{0, 0}
	if _, ok := p.Step(Up, 3, 3); ok {
		t.Fatalf("expected Up from (0,0) to be out of bounds")
	}
	if _, ok := p.Step(Left, 3, 3); ok {
		t.Fatalf("expected Left from (0,0) to be out of bounds")
	}
	np, ok := p.Step(Right, 3, 3)
	if !ok || np != (Point{0, 1}) {
		t.Fatalf("Right from (0,0) = %v, %v", np, ok)
	}
}

func TestRayStopsAtEdge(t *testing.T) {
	p := Point{1, 0}
	var visited []Point
	p.Ray(Right, 2, 3, func(pt Point) bool {
		visited = append(visited, pt)
		return true
	})
	want := []Point{{1, 1}, {1, 2}}
	if len(visited) != len(want) {
		t.Fatalf("visited = %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited[%d] = %v, want %v", i, visited[i], want[i])
		}
	}
}

func TestRayStopsEarly(t *testing.T) {
	p := Point{0, 0}
	count := 0
	p.Ray(Right, 1, 5, func(pt Point) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
}

func TestAdjacentCorner(t *testing.T) {
	p := Point{0, 0}
	adj := p.Adjacent(3, 3)
	want := []Point{{0, 1}, {1, 0}}
	if len(adj) != len(want) {
		t.Fatalf("adj = %v, want %v", adj, want)
	}
	for i := range want {
		if adj[i] != want[i] {
			t.Fatalf("adj[%d] = %v, want %v", i, adj[i], want[i])
		}
	}
}

func TestAdjacentInterior(t *testing.T) {
	p := Point{1, 1}
	adj := p.Adjacent(3, 3)
	if len(adj) != 4 {
		t.Fatalf("len(adj) = %d, want 4", len(adj))
	}
}
