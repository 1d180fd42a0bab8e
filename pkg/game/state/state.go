// Package state holds the session object for one walk through the town.
// Everything the frame loop mutates lives on Game; there is no package-level state.
package state

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"townwalk/pkg/engine/clock"
	"townwalk/pkg/engine/world"
	"townwalk/pkg/game/config"
)

const maxMessages = 5

// Message is a log line shown by renderers
type Message struct {
	Text      string
	Timestamp int64 // Unix milliseconds
}

// Game is the session: world data, the actor and every piece of
// per-frame state. Renderers read it through a Snapshot and never mutate it.
type Game struct {
	Config config.Config
	Clock  clock.Clock

	Collision *world.CollisionMap
	Zones     *world.ZoneIndex
	Spawn     world.Pos

	Actor       Actor
	Camera      Camera
	Viewport    Viewport
	Interaction Interaction

	Debug    bool
	Quit     bool
	Frame    uint64
	Messages []Message
}

// NewGame creates a session with the actor standing on spawn
func NewGame(cfg config.Config, collision *world.CollisionMap, zones *world.ZoneIndex, spawn world.Pos, clk clock.Clock) *Game {
	if clk == nil {
		clk = clock.Real{}
	}
	g := &Game{
		Config:    cfg,
		Clock:     clk,
		Collision: collision,
		Zones:     zones,
		Spawn:     spawn,
		Viewport: Viewport{
			Width:  float64(cfg.ViewportWidth),
			Height: float64(cfg.ViewportHeight),
		},
		Interaction: Interaction{
			Mode:          Mode{Kind: Exploring},
			PrevContained: mapset.New[world.ZoneHandle](),
		},
		Debug:    cfg.Debug,
		Messages: make([]Message, 0),
	}
	g.Actor = Actor{Grid: spawn, Facing: world.South}
	g.Actor.Pixel = g.PixelFor(spawn)
	return g
}

// TilePixels is the scaled pixel size of one cell
func (g *Game) TilePixels() float64 {
	return g.Config.TilePixels()
}

// PixelFor converts a grid position to its settled pixel position
func (g *Game) PixelFor(p world.Pos) PixelPos {
	tile := g.TilePixels()
	return PixelPos{X: float64(p.X) * tile, Y: float64(p.Y) * tile}
}

// MapPixelSize returns the full map extent in scaled pixels
func (g *Game) MapPixelSize() (width, height float64) {
	tile := g.TilePixels()
	return float64(g.Collision.Width()) * tile, float64(g.Collision.Height()) * tile
}

// SetViewport records the renderer's visible area in pixels
func (g *Game) SetViewport(width, height float64) {
	g.Viewport = Viewport{Width: width, Height: height}
}

// Now reads the session clock
func (g *Game) Now() time.Time {
	return g.Clock.Now()
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, Message{
		Text:      msg,
		Timestamp: g.Now().UnixMilli(),
	})

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ActiveZone returns the zone behind the current mode, if any
func (g *Game) ActiveZone() (world.Zone, bool) {
	if g.Interaction.Mode.Kind == Exploring {
		return world.Zone{}, false
	}
	return g.Zones.Get(g.Interaction.Mode.Zone)
}
