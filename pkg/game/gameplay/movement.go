// Package gameplay provides core game logic for actor movement and interactions.
package gameplay

import (
	"math"

	"townwalk/pkg/engine/world"
	"townwalk/pkg/game/state"
	"townwalk/pkg/logger"
)

// CanEnter checks if the actor may step onto p
func CanEnter(g *state.Game, p world.Pos) bool {
	return g.Collision.IsWalkable(p)
}

// RequestMove asks the actor to step one cell in dir. It returns true when
// the move was accepted. Rejected moves are silent: they leave grid, facing
// and movement state untouched.
func RequestMove(g *state.Game, dir world.Direction) bool {
	if !dir.IsValid() {
		return false
	}
	if g.Interaction.Mode.Kind != state.Exploring {
		return false
	}
	a := &g.Actor
	if !a.IsIdle() {
		return false
	}

	target := a.Grid.Step(dir)
	if !CanEnter(g, target) {
		return false
	}

	a.Facing = dir
	a.Grid = target
	a.Movement = state.Movement{Phase: state.Moving, Target: target}
	return true
}

// TickMovement advances the pixel position toward the target cell by the
// configured speed. Once both axes are within one step of the target the
// actor snaps onto it exactly and returns to Idle.
//
// An interpolation already in flight is settled even when the interaction
// mode is not Exploring; only new requests are frozen.
func TickMovement(g *state.Game) {
	a := &g.Actor
	if a.IsIdle() {
		a.ResetWalkCycle()
		return
	}

	target := g.PixelFor(a.Movement.Target)
	speed := g.Config.Speed
	dx := target.X - a.Pixel.X
	dy := target.Y - a.Pixel.Y

	if math.Abs(dx) < speed && math.Abs(dy) < speed {
		a.Pixel = target
		a.Movement = state.Movement{Phase: state.Idle}
		a.ResetWalkCycle()
		return
	}

	a.Pixel.X += stepToward(dx, speed)
	a.Pixel.Y += stepToward(dy, speed)
	a.Movement.Progress = progress(g, a.Movement.Target, a.Pixel)
	a.AdvanceWalkCycle()
}

// stepToward moves at most speed along one axis without overshooting
func stepToward(delta, speed float64) float64 {
	switch {
	case delta > speed:
		return speed
	case delta < -speed:
		return -speed
	default:
		return delta
	}
}

func progress(g *state.Game, target world.Pos, pixel state.PixelPos) float64 {
	tile := g.TilePixels()
	if tile <= 0 {
		return 1
	}
	to := g.PixelFor(target)
	remaining := math.Max(math.Abs(to.X-pixel.X), math.Abs(to.Y-pixel.Y))
	return math.Max(0, math.Min(1, 1-remaining/tile))
}

// Teleport places the actor on p immediately, cancelling any interpolation.
// A destination that is not walkable is refused and the actor stays put.
func Teleport(g *state.Game, p world.Pos) bool {
	if !CanEnter(g, p) {
		logger.Get().WithField("pos", p.String()).Debug("teleport refused, cell not walkable")
		return false
	}
	a := &g.Actor
	a.Grid = p
	a.Pixel = g.PixelFor(p)
	a.Movement = state.Movement{Phase: state.Idle}
	a.ResetWalkCycle()
	return true
}
