package gameplay

import (
	"testing"
	"time"

	"townwalk/pkg/engine/clock"
	engineinput "townwalk/pkg/engine/input"
	"townwalk/pkg/engine/world"
	"townwalk/pkg/game/config"
	"townwalk/pkg/game/state"
)

var testStart = time.Unix(1000, 0)

// makeGame creates a width x height open map with the listed cells blocked,
// the actor on start and a manual clock.
func makeGame(t *testing.T, width, height int, start world.Pos, blocked ...world.Pos) (*state.Game, *clock.Manual) {
	t.Helper()
	base := make([][]bool, height)
	for y := range base {
		base[y] = make([]bool, width)
		for x := range base[y] {
			base[y][x] = true
		}
	}
	for _, p := range blocked {
		base[p.Y][p.X] = false
	}
	m, err := world.NewCollisionMap(base)
	if err != nil {
		t.Fatal(err)
	}
	clk := clock.NewManual(testStart)
	g := state.NewGame(config.Default(), m, world.NewZoneIndex(width, height), start, clk)
	return g, clk
}

func addZone(t *testing.T, g *state.Game, z world.Zone) world.ZoneHandle {
	t.Helper()
	if z.Payload.Content == "" {
		z.Payload.Content = "content of " + z.Name
	}
	h, err := g.Zones.Register(z)
	if err != nil {
		t.Fatalf("Register(%s): %v", z.Name, err)
	}
	return h
}

// settle runs movement ticks until the actor is idle
func settle(t *testing.T, g *state.Game) {
	t.Helper()
	for i := 0; i < 100; i++ {
		if g.Actor.IsIdle() {
			return
		}
		TickMovement(g)
	}
	t.Fatalf("actor still moving after 100 ticks at %+v", g.Actor.Pixel)
}

// frameUntilIdle runs whole frames until the actor stops
func frameUntilIdle(t *testing.T, g *state.Game) {
	t.Helper()
	for i := 0; i < 100; i++ {
		if g.Actor.IsIdle() {
			return
		}
		Frame(g, nil)
	}
	t.Fatal("actor still moving after 100 frames")
}

// step issues one fresh intent as a frame and lets the actor settle
func step(t *testing.T, g *state.Game, action engineinput.Action) {
	t.Helper()
	Frame(g, []engineinput.Intent{{Action: action}})
	frameUntilIdle(t, g)
}
