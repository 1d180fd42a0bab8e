// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// FootprintHandle identifies a registered blocking footprint. The zero value is never issued.
type FootprintHandle uint32

// footprint is the arena entry behind a FootprintHandle
type footprint struct {
	requested Rect // rectangle as registered
	covered   Rect // requested clipped to the map
}

// CollisionMap is an immutable walkability grid plus a set of blocking footprints
// registered by collaborators that occupy space (characters, overlays).
type CollisionMap struct {
	width  int
	height int
	base   [][]bool // base[y][x], true = walkable

	footprints []footprint
	byRect     map[Rect]FootprintHandle
	blocked    mapset.Set[Pos]
}

// NewCollisionMap creates a collision map from a row-major walkability matrix.
// The matrix is copied; every row must have the same, non-zero length.
func NewCollisionMap(base [][]bool) (*CollisionMap, error) {
	if len(base) == 0 || len(base[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidGrid)
	}

	width := len(base[0])
	rows := make([][]bool, len(base))
	for y, row := range base {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, y, len(row), width)
		}
		rows[y] = append([]bool(nil), row...)
	}

	return &CollisionMap{
		width:   width,
		height:  len(rows),
		base:    rows,
		byRect:  make(map[Rect]FootprintHandle),
		blocked: mapset.New[Pos](),
	}, nil
}

// NewOpenCollisionMap creates a width x height map where every cell is walkable
func NewOpenCollisionMap(width, height int) (*CollisionMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, width, height)
	}
	base := make([][]bool, height)
	for y := range base {
		base[y] = make([]bool, width)
		for x := range base[y] {
			base[y][x] = true
		}
	}
	return NewCollisionMap(base)
}

// Width returns the number of columns
func (m *CollisionMap) Width() int {
	return m.width
}

// Height returns the number of rows
func (m *CollisionMap) Height() int {
	return m.height
}

// Bounds returns the rectangle covering the whole map
func (m *CollisionMap) Bounds() Rect {
	return Rect{W: m.width, H: m.height}
}

// InBounds checks if a position is inside [0,width)x[0,height)
func (m *CollisionMap) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// BaseWalkable reports the base grid value, ignoring footprints.
// Out-of-bounds positions are not walkable.
func (m *CollisionMap) BaseWalkable(p Pos) bool {
	if !m.InBounds(p) {
		return false
	}
	return m.base[p.Y][p.X]
}

// IsBlockedByFootprint reports whether a registered footprint covers p
func (m *CollisionMap) IsBlockedByFootprint(p Pos) bool {
	return m.blocked.Has(p)
}

// IsWalkable reports whether the actor may stand on p: inside the map,
// walkable in the base grid and not covered by any footprint.
func (m *CollisionMap) IsWalkable(p Pos) bool {
	return m.BaseWalkable(p) && !m.blocked.Has(p)
}

// RegisterFootprint marks every cell of r as blocked regardless of the base grid.
// Cells outside the map are dropped. Registering the same rectangle again returns
// the original handle and changes nothing. A rectangle that covers no map cell is
// rejected with ErrFootprintOutOfBounds.
func (m *CollisionMap) RegisterFootprint(r Rect) (FootprintHandle, error) {
	if h, ok := m.byRect[r]; ok {
		return h, nil
	}

	covered := r.Intersect(m.Bounds())
	if covered.Empty() {
		return 0, fmt.Errorf("%w: %v", ErrFootprintOutOfBounds, r)
	}

	m.footprints = append(m.footprints, footprint{requested: r, covered: covered})
	h := FootprintHandle(len(m.footprints))
	m.byRect[r] = h

	covered.ForEachCell(func(p Pos) {
		m.blocked.Put(p)
	})

	return h, nil
}

// Footprint returns the map-clipped rectangle of a registered footprint
func (m *CollisionMap) Footprint(h FootprintHandle) (Rect, bool) {
	if h == 0 || int(h) > len(m.footprints) {
		return Rect{}, false
	}
	return m.footprints[h-1].covered, true
}

// FootprintCount returns the number of distinct registered footprints
func (m *CollisionMap) FootprintCount() int {
	return len(m.footprints)
}

// ForEachCell calls fn for every cell with its effective walkability
func (m *CollisionMap) ForEachCell(fn func(p Pos, walkable bool)) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			p := Pos{X: x, Y: y}
			fn(p, m.IsWalkable(p))
		}
	}
}
