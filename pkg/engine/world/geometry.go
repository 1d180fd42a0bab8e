package world

import "fmt"

// Pos is an integer grid coordinate. X is the column, Y the row.
type Pos struct {
	X int
	Y int
}

// String returns "(x,y)"
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p offset by (dx, dy)
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the adjacent position in the given direction.
// An invalid direction returns p unchanged.
func (p Pos) Step(dir Direction) Pos {
	dx, dy := dir.Delta()
	return p.Add(dx, dy)
}

// Rect is an axis-aligned rectangle of grid cells.
// It covers columns [X, X+W) and rows [Y, Y+H).
type Rect struct {
	X int
	Y int
	W int
	H int
}

// String returns "x,y wxh"
func (r Rect) String() string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.W, r.H)
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside the rectangle
func (r Rect) Contains(p Pos) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersect returns the overlap of r and o. The result is Empty when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// ForEachCell calls fn for every cell covered by the rectangle, row by row
func (r Rect) ForEachCell(fn func(p Pos)) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			fn(Pos{X: x, Y: y})
		}
	}
}
