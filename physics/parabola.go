package physics

import (
	"github.com/plazmaezio/OpenFrontIO/engine"
)

// bezierScale is the fixed-point resolution for curve sampling. All
// arithmetic stays in integers so identical inputs rasterize the same
// path on every platform.
const bezierScale = 1024

// ParabolaPathFinder computes a ballistic tile path between two tiles
// and steps a cursor along it. Curved paths arc perpendicular to the
// chord; direct paths degenerate to the straight segment (MIRV
// warheads fly straight).
type ParabolaPathFinder struct {
	path  []engine.TileRef
	index int
}

// NewParabolaPathFinder rasterizes the path from src to dst. The path
// always starts at src and ends at dst.
func NewParabolaPathFinder(m *engine.GameMap, src, dst engine.TileRef, curved bool) *ParabolaPathFinder {
	x0, y0 := m.XY(src)
	x1, y1 := m.XY(dst)

	// Control point: chord midpoint, lifted perpendicular to the chord
	// by a quarter of its length when curved
	cx := (x0 + x1) / 2
	cy := (y0 + y1) / 2
	if curved {
		dx, dy := x1-x0, y1-y0
		cx -= dy / 4
		cy += dx / 4
	}

	chord := abs(x1-x0) + abs(y1-y0)
	samples := 4*chord + 8

	path := make([]engine.TileRef, 0, chord+2)
	for i := 0; i <= samples; i++ {
		t := i * bezierScale / samples
		s := bezierScale - t

		// Quadratic Bézier in fixed point
		px := (s*s*x0 + 2*s*t*cx + t*t*x1) / (bezierScale * bezierScale)
		py := (s*s*y0 + 2*s*t*cy + t*t*y1) / (bezierScale * bezierScale)

		px, py = clamp(px, 0, m.Width()-1), clamp(py, 0, m.Height()-1)
		ref := m.Ref(px, py)
		if len(path) == 0 || path[len(path)-1] != ref {
			path = append(path, ref)
		}
	}
	if path[len(path)-1] != dst {
		path = append(path, dst)
	}

	return &ParabolaPathFinder{path: path}
}

// Next advances the cursor by speed tiles. Arrival is reported when
// the cursor reaches the final tile; the returned tile is then the
// destination itself.
func (p *ParabolaPathFinder) Next(speed int) (engine.TileRef, bool) {
	if speed < 1 {
		speed = 1
	}
	p.index += speed
	if p.index >= len(p.path)-1 {
		p.index = len(p.path) - 1
		return p.path[p.index], true
	}
	return p.path[p.index], false
}

// Path exposes the full precomputed tile list
func (p *ParabolaPathFinder) Path() []engine.TileRef { return p.path }

// Index is the current progress cursor, for external interpolation
func (p *ParabolaPathFinder) Index() int { return p.index }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
