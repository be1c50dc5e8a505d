package world

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Add returns the point offset by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// cardinal lists the four orthogonal neighbor offsets: N, E, S, W.
var cardinal = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
