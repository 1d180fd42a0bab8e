package gameplay

import (
	"townwalk/pkg/game/state"
)

// UpdateCamera centres the viewport on the actor's pixel position and clamps
// it to the map. A map smaller than the viewport pins that axis to 0.
func UpdateCamera(g *state.Game) {
	mapW, mapH := g.MapPixelSize()
	cx := g.Actor.Pixel.X - g.Viewport.Width/2
	cy := g.Actor.Pixel.Y - g.Viewport.Height/2

	g.Camera = state.Camera{
		X: clampAxis(cx, mapW-g.Viewport.Width),
		Y: clampAxis(cy, mapH-g.Viewport.Height),
	}
}

func clampAxis(v, maxV float64) float64 {
	if maxV < 0 {
		maxV = 0
	}
	return max(0, min(v, maxV))
}
