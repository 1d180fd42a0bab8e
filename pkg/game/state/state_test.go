package state

import (
	"testing"
	"time"

	"townwalk/pkg/engine/clock"
	"townwalk/pkg/engine/world"
	"townwalk/pkg/game/config"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	m, err := world.NewOpenCollisionMap(10, 8)
	if err != nil {
		t.Fatal(err)
	}
	clk := clock.NewManual(time.Unix(1000, 0))
	return NewGame(config.Default(), m, world.NewZoneIndex(10, 8), world.Pos{X: 3, Y: 2}, clk)
}

func TestNewGame_ActorSettledOnSpawn(t *testing.T) {
	g := newTestGame(t)
	if g.Actor.Grid != (world.Pos{X: 3, Y: 2}) {
		t.Errorf("Actor.Grid = %v, want (3,2)", g.Actor.Grid)
	}
	if g.Actor.Pixel != (PixelPos{X: 96, Y: 64}) {
		t.Errorf("Actor.Pixel = %v, want {96 64}", g.Actor.Pixel)
	}
	if !g.Actor.IsIdle() || g.Interaction.Mode.Kind != Exploring {
		t.Errorf("new game should start Idle and Exploring, got %v / %v", g.Actor.Movement.Phase, g.Interaction.Mode.Kind)
	}
}

func TestMapPixelSize(t *testing.T) {
	g := newTestGame(t)
	w, h := g.MapPixelSize()
	if w != 320 || h != 256 {
		t.Errorf("MapPixelSize() = %v,%v, want 320,256", w, h)
	}
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 8; i++ {
		g.AddMessage(string(rune('a' + i)))
	}
	if len(g.Messages) != maxMessages {
		t.Fatalf("len(Messages) = %d, want %d", len(g.Messages), maxMessages)
	}
	if g.Messages[0].Text != "d" || g.Messages[4].Text != "h" {
		t.Errorf("Messages = %v, want d..h", g.Messages)
	}
}

func TestFadeOpacity(t *testing.T) {
	start := time.Unix(0, 0)
	f := &Fade{
		Start:    start,
		CommitAt: start.Add(300 * time.Millisecond),
		EndAt:    start.Add(400 * time.Millisecond),
	}
	cases := []struct {
		at   time.Duration
		want float64
	}{
		{0, 0},
		{150 * time.Millisecond, 0.5},
		{300 * time.Millisecond, 1},
		{350 * time.Millisecond, 0.5},
		{500 * time.Millisecond, 0},
	}
	for _, tc := range cases {
		if got := f.Opacity(start.Add(tc.at)); got != tc.want {
			t.Errorf("Opacity(+%v) = %v, want %v", tc.at, got, tc.want)
		}
	}
	var none *Fade
	if none.Opacity(start) != 0 {
		t.Error("nil fade should be fully transparent")
	}
}

func TestWalkCycle(t *testing.T) {
	var a Actor
	for i := 0; i < WalkFrameTicks; i++ {
		a.AdvanceWalkCycle()
	}
	if a.WalkFrame != 1 {
		t.Errorf("WalkFrame = %d after %d ticks, want 1", a.WalkFrame, WalkFrameTicks)
	}
	a.ResetWalkCycle()
	if a.WalkFrame != 0 {
		t.Errorf("WalkFrame = %d after reset, want 0", a.WalkFrame)
	}
}
