package gameplay

import (
	"testing"

	"townwalk/pkg/engine/world"
	"townwalk/pkg/game/state"
)

func TestUpdateCamera_BoundForEveryCell(t *testing.T) {
	g, _ := makeGame(t, 20, 12, world.Pos{})
	g.SetViewport(320, 200)
	mapW, mapH := g.MapPixelSize()

	g.Collision.ForEachCell(func(p world.Pos, walkable bool) {
		g.Actor.Pixel = g.PixelFor(p)
		UpdateCamera(g)
		if g.Camera.X < 0 || g.Camera.X > mapW-g.Viewport.Width {
			t.Errorf("at %v camera.X = %v, want in [0,%v]", p, g.Camera.X, mapW-g.Viewport.Width)
		}
		if g.Camera.Y < 0 || g.Camera.Y > mapH-g.Viewport.Height {
			t.Errorf("at %v camera.Y = %v, want in [0,%v]", p, g.Camera.Y, mapH-g.Viewport.Height)
		}
	})
}

func TestUpdateCamera_CentresAndClamps(t *testing.T) {
	g, _ := makeGame(t, 20, 12, world.Pos{})
	g.SetViewport(320, 200) // map is 640x384

	cases := []struct {
		name  string
		pixel state.PixelPos
		want  state.Camera
	}{
		{"top-left corner", state.PixelPos{X: 0, Y: 0}, state.Camera{X: 0, Y: 0}},
		{"middle", state.PixelPos{X: 320, Y: 192}, state.Camera{X: 160, Y: 92}},
		{"bottom-right corner", state.PixelPos{X: 608, Y: 352}, state.Camera{X: 320, Y: 184}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g.Actor.Pixel = tc.pixel
			UpdateCamera(g)
			if g.Camera != tc.want {
				t.Errorf("Camera = %+v, want %+v", g.Camera, tc.want)
			}
		})
	}
}

func TestUpdateCamera_MapSmallerThanViewport(t *testing.T) {
	g, _ := makeGame(t, 3, 2, world.Pos{X: 2, Y: 1})
	g.SetViewport(1024, 640)
	UpdateCamera(g)
	if g.Camera != (state.Camera{}) {
		t.Errorf("Camera = %+v, want origin when the map fits the viewport", g.Camera)
	}
}

func TestFrame_CameraTracksInterpolation(t *testing.T) {
	g, _ := makeGame(t, 40, 40, world.Pos{X: 20, Y: 20})
	g.SetViewport(320, 320)
	NewSession(g)
	before := g.Camera

	RequestMove(g, world.East)
	snap := Frame(g, nil)

	if snap.Camera.X != before.X+g.Config.Speed {
		t.Errorf("Camera.X = %v after one frame, want %v", snap.Camera.X, before.X+g.Config.Speed)
	}
	if snap.Camera.X != g.Actor.Pixel.X-g.Viewport.Width/2 {
		t.Error("camera does not use this frame's pixel position")
	}
}
