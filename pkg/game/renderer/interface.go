package renderer

import (
	"time"

	"townwalk/pkg/engine/input"
	"townwalk/pkg/engine/world"
	"townwalk/pkg/game/state"
)

// Session is the frame loop a renderer drives. Step runs exactly one frame.
type Session interface {
	Step(intents []input.Intent) Snapshot
	SetViewport(width, height float64)
}

// Renderer defines the interface for game rendering backends
// Implementations can include TUI (terminal), Ebiten, etc.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init() error

	// Run drives the session until it quits or the window closes
	Run(s Session) error
}

// MapView is the read-only part of the collision map a renderer may look at
type MapView interface {
	Width() int
	Height() int
	BaseWalkable(p world.Pos) bool
	IsBlockedByFootprint(p world.Pos) bool
}

// ZoneView is the read-only part of the zone index a renderer may look at
type ZoneView interface {
	All() []world.ZoneHandle
	Get(h world.ZoneHandle) (world.Zone, bool)
}

// Snapshot is everything a renderer needs to draw one frame. It is a copy;
// nothing a renderer does to it reaches the session.
type Snapshot struct {
	Frame uint64

	Grid      world.Pos
	Pixel     state.PixelPos
	Facing    world.Direction
	Moving    bool
	WalkFrame int

	Camera     state.Camera
	Viewport   state.Viewport
	TilePixels float64

	Mode           state.ModeKind
	Zone           world.Zone
	PayloadVisible bool
	FadeOpacity    float64

	Debug    bool
	Quit     bool
	Messages []state.Message

	Map   MapView
	Zones ZoneView
}

// Capture copies the renderer-visible state of g at now
func Capture(g *state.Game, now time.Time) Snapshot {
	snap := Snapshot{
		Frame:          g.Frame,
		Grid:           g.Actor.Grid,
		Pixel:          g.Actor.Pixel,
		Facing:         g.Actor.Facing,
		Moving:         !g.Actor.IsIdle(),
		WalkFrame:      g.Actor.WalkFrame,
		Camera:         g.Camera,
		Viewport:       g.Viewport,
		TilePixels:     g.TilePixels(),
		Mode:           g.Interaction.Mode.Kind,
		PayloadVisible: g.Interaction.PayloadVisible,
		FadeOpacity:    g.Interaction.Fade.Opacity(now),
		Debug:          g.Debug,
		Quit:           g.Quit,
		Messages:       append([]state.Message(nil), g.Messages...),
		Map:            g.Collision,
		Zones:          g.Zones,
	}
	if zone, ok := g.ActiveZone(); ok {
		snap.Zone = zone
		if zone.Payload.Character {
			snap.PayloadVisible = true
		}
	}
	return snap
}

// ToScreen converts a map pixel position to screen coordinates
func (s Snapshot) ToScreen(p state.PixelPos) (x, y float64) {
	return p.X - s.Camera.X, p.Y - s.Camera.Y
}

// VisibleCells returns the range of cells overlapping the viewport
func (s Snapshot) VisibleCells() world.Rect {
	if s.TilePixels <= 0 || s.Map == nil {
		return world.Rect{}
	}
	x0 := int(s.Camera.X / s.TilePixels)
	y0 := int(s.Camera.Y / s.TilePixels)
	x1 := int((s.Camera.X+s.Viewport.Width)/s.TilePixels) + 1
	y1 := int((s.Camera.Y+s.Viewport.Height)/s.TilePixels) + 1
	view := world.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
	return view.Intersect(world.Rect{W: s.Map.Width(), H: s.Map.Height()})
}
