package common

// CellSize is the edge length in pixels of one map grid cell.
const CellSize = 64

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
)

// Position is a grid cell coordinate. It is immutable once built.
type Position struct {
	x, y int
}

func NewPosition(x, y int) Position {
	return Position{x: x, y: y}
}

func (p Position) X() int { return p.x }
func (p Position) Y() int { return p.y }

// Pixel returns the world-space top-left corner of the cell.
func (p Position) Pixel() (int, int) {
	return p.x * CellSize, p.y * CellSize
}

// Rect is an axis-aligned rectangle in world pixel space.
type Rect struct {
	X, Y          int
	Width, Height int
}

// CellRect builds a w x h rect anchored at the top-left of the cell at p.
func CellRect(p Position, w, h int) Rect {
	x, y := p.Pixel()
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Intersects reports whether r and other overlap. Rects that only share an
// edge do not intersect, and empty rects never intersect anything.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}
