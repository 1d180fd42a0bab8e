package gameplay

import (
	"github.com/zyedidia/generic/mapset"

	engineinput "townwalk/pkg/engine/input"
	"townwalk/pkg/engine/world"
	"townwalk/pkg/game/renderer"
	"townwalk/pkg/game/state"
)

// Frame runs one frame: intents, movement, camera, zones, then the fade.
// Every step runs regardless of mode; frozen steps are no-ops.
func Frame(g *state.Game, intents []engineinput.Intent) renderer.Snapshot {
	for _, intent := range intents {
		ProcessIntent(g, intent)
	}
	TickMovement(g)
	UpdateCamera(g)
	EvaluateZones(g)

	now := g.Now()
	AdvanceFade(g, now)
	g.Frame++
	return renderer.Capture(g, now)
}

// Session adapts a game to the loop renderers drive
type Session struct {
	Game *state.Game
}

// NewSession wraps g and settles the camera and zone state for frame zero.
// An actor spawned inside a zone has not entered it.
func NewSession(g *state.Game) *Session {
	UpdateCamera(g)
	contained := mapset.New[world.ZoneHandle]()
	for _, h := range g.Zones.ContainingZones(g.Actor.Grid) {
		contained.Put(h)
	}
	g.Interaction.PrevContained = contained
	return &Session{Game: g}
}

// Step runs one frame
func (s *Session) Step(intents []engineinput.Intent) renderer.Snapshot {
	return Frame(s.Game, intents)
}

// SetViewport records the renderer's visible area
func (s *Session) SetViewport(width, height float64) {
	s.Game.SetViewport(width, height)
}
