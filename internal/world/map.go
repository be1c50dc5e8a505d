package world

const (
	// Default map dimensions (reference configuration).
	DefaultWidth  = 14
	DefaultHeight = 21
)

// Map represents the game map as a flat row-major grid of tiles. It is
// mutable during generation and treated as read-only once the builder
// hands it off, so concurrent readers need no locking.
type Map struct {
	width  int
	height int
	tiles  []Tile
}

// NewMap creates a new map filled with walls. Returns ErrInvalidDimensions
// if width or height is not positive.
func NewMap(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = TileWall
	}

	return &Map{
		width:  width,
		height: height,
		tiles:  tiles,
	}, nil
}

// Width returns the map width in tiles.
func (m *Map) Width() int {
	return m.width
}

// Height returns the map height in tiles.
func (m *Map) Height() int {
	return m.height
}

// InBounds reports whether (x, y) lies within the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Index maps (x, y) to its row-major tile index. The caller must
// bounds-check first; Index and PointAt are inverses over the valid range.
func (m *Map) Index(x, y int) int {
	return y*m.width + x
}

// PointAt converts a row-major tile index back to its coordinate.
func (m *Map) PointAt(idx int) Point {
	return Point{X: idx % m.width, Y: idx / m.width}
}

// TileAt returns the tile at (x, y), or ErrOutOfBounds if the coordinate
// is outside the grid.
func (m *Map) TileAt(x, y int) (Tile, error) {
	if !m.InBounds(x, y) {
		return TileWall, ErrOutOfBounds
	}
	return m.tiles[m.Index(x, y)], nil
}

// SetTile sets the tile at (x, y). Used only during generation; mutating
// a map after hand-off is a caller error this layer does not defend
// against.
func (m *Map) SetTile(x, y int, t Tile) error {
	if !m.InBounds(x, y) {
		return ErrOutOfBounds
	}
	m.tiles[m.Index(x, y)] = t
	return nil
}

// IsPassable returns true if the given position can be walked on.
// Out-of-bounds positions are not passable.
func (m *Map) IsPassable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.tiles[m.Index(x, y)].IsPassable()
}

// Each calls fn for every tile in index order.
func (m *Map) Each(fn func(idx int, p Point, t Tile)) {
	for i, t := range m.tiles {
		fn(i, m.PointAt(i), t)
	}
}

// NodeCount returns the number of tiles. Together with Neighbors it
// satisfies pathfind.Graph.
func (m *Map) NodeCount() int {
	return len(m.tiles)
}

// Neighbors returns the indices of the orthogonal in-bounds neighbors of
// idx that are not walls, each one traversal step away. Pathfinding over
// the map consumes only this view of it.
func (m *Map) Neighbors(idx int) []int {
	p := m.PointAt(idx)
	out := make([]int, 0, 4)
	for _, d := range cardinal {
		n := p.Add(d[0], d[1])
		if m.IsPassable(n.X, n.Y) {
			out = append(out, m.Index(n.X, n.Y))
		}
	}
	return out
}
