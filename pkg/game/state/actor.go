package state

import "townwalk/pkg/engine/world"

// PixelPos is a position in scaled map pixels
type PixelPos struct {
	X float64
	Y float64
}

// MovementPhase is the actor's movement state
type MovementPhase int

const (
	Idle MovementPhase = iota
	Moving
)

// String returns the phase name
func (p MovementPhase) String() string {
	if p == Moving {
		return "moving"
	}
	return "idle"
}

// Movement is Idle or Moving toward Target. Progress runs from 0 to 1.
type Movement struct {
	Phase    MovementPhase
	Target   world.Pos
	Progress float64
}

// Walk cycle used by sprite renderers
const (
	WalkFrames     = 4
	WalkFrameTicks = 5
)

// Actor is the controllable character. Grid is authoritative; Pixel trails it
// by at most one tile while Moving and equals it exactly while Idle.
type Actor struct {
	Grid     world.Pos
	Pixel    PixelPos
	Facing   world.Direction
	Movement Movement

	// WalkFrame is the current frame of the walk cycle, 0 while Idle
	WalkFrame   int
	walkCounter int
}

// IsIdle reports whether the actor is standing still
func (a *Actor) IsIdle() bool {
	return a.Movement.Phase == Idle
}

// AdvanceWalkCycle steps the walk animation by one tick
func (a *Actor) AdvanceWalkCycle() {
	a.walkCounter++
	if a.walkCounter >= WalkFrameTicks {
		a.walkCounter = 0
		a.WalkFrame = (a.WalkFrame + 1) % WalkFrames
	}
}

// ResetWalkCycle returns the walk animation to the standing frame
func (a *Actor) ResetWalkCycle() {
	a.walkCounter = 0
	a.WalkFrame = 0
}

// Camera is the top-left corner of the visible area in map pixels.
// It is recomputed every frame and never read back by game logic.
type Camera struct {
	X float64
	Y float64
}

// Viewport is the size of the visible area in pixels
type Viewport struct {
	Width  float64
	Height float64
}
