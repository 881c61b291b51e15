package engine

// TileRef is an opaque index into the map grid
type TileRef uint32

// GameMap owns the tile grid: land/water mask and persistent fallout
// flags. Ownership lives on Game (see game.go), not here.
type GameMap struct {
	width, height int
	land          []bool
	fallout       []bool
}

// NewGameMap creates an all-water map of the given size
func NewGameMap(width, height int) *GameMap {
	if width <= 0 || height <= 0 {
		panic("engine: non-positive map dimensions")
	}
	n := width * height
	return &GameMap{
		width:   width,
		height:  height,
		land:    make([]bool, n),
		fallout: make([]bool, n),
	}
}

func (m *GameMap) Width() int  { return m.width }
func (m *GameMap) Height() int { return m.height }

// Ref converts grid coordinates to a tile reference
func (m *GameMap) Ref(x, y int) TileRef {
	return TileRef(y*m.width + x)
}

// XY converts a tile reference back to grid coordinates
func (m *GameMap) XY(t TileRef) (int, int) {
	return int(t) % m.width, int(t) / m.width
}

func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m *GameMap) IsLand(t TileRef) bool { return m.land[t] }

func (m *GameMap) SetLand(t TileRef, land bool) { m.land[t] = land }

// SetFallout marks a land tile with persistent fallout. Water tiles
// are ignored.
func (m *GameMap) SetFallout(t TileRef) {
	if m.land[t] {
		m.fallout[t] = true
	}
}

func (m *GameMap) HasFallout(t TileRef) bool { return m.fallout[t] }

// DistSquared is the squared Euclidean distance between two tiles
func (m *GameMap) DistSquared(a, b TileRef) int {
	ax, ay := m.XY(a)
	bx, by := m.XY(b)
	dx, dy := ax-bx, ay-by
	return dx*dx + dy*dy
}

// Neighbors appends the 4-connected neighbors of t to buf and returns it
func (m *GameMap) Neighbors(t TileRef, buf []TileRef) []TileRef {
	x, y := m.XY(t)
	if m.InBounds(x-1, y) {
		buf = append(buf, m.Ref(x-1, y))
	}
	if m.InBounds(x+1, y) {
		buf = append(buf, m.Ref(x+1, y))
	}
	if m.InBounds(x, y-1) {
		buf = append(buf, m.Ref(x, y-1))
	}
	if m.InBounds(x, y+1) {
		buf = append(buf, m.Ref(x, y+1))
	}
	return buf
}

// TilesInRange returns every tile whose squared distance to center is
// at most radius squared, scanning the bounding box in row order for
// deterministic iteration.
func (m *GameMap) TilesInRange(center TileRef, radius int) []TileRef {
	cx, cy := m.XY(center)
	r2 := radius * radius
	out := make([]TileRef, 0, (2*radius+1)*(2*radius+1))
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if !m.InBounds(x, y) {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r2 {
				out = append(out, m.Ref(x, y))
			}
		}
	}
	return out
}

// BfsTiles expands breadth-first from origin, visiting 4-connected
// neighbors of every admitted tile. The admit predicate decides
// membership; origin itself is subject to it. Returns admitted tiles
// in visit order.
func (m *GameMap) BfsTiles(origin TileRef, admit func(TileRef) bool) []TileRef {
	if !admit(origin) {
		return nil
	}
	seen := map[TileRef]struct{}{origin: {}}
	queue := []TileRef{origin}
	out := []TileRef{origin}
	var buf [4]TileRef
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		for _, n := range m.Neighbors(t, buf[:0]) {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			if admit(n) {
				out = append(out, n)
				queue = append(queue, n)
			}
		}
	}
	return out
}
