package gameplay

import (
	"testing"
	"time"

	engineinput "townwalk/pkg/engine/input"
	"townwalk/pkg/engine/world"
	"townwalk/pkg/game/state"
)

// houseGame is a 5x5 map blocked at (2,2) with a walk-over shop on (2,1) exiting to (2,0)
func houseGame(t *testing.T) (*state.Game, func(time.Duration), world.ZoneHandle) {
	t.Helper()
	g, clk := makeGame(t, 5, 5, world.Pos{}, world.Pos{X: 2, Y: 2})
	exit := world.Pos{X: 2, Y: 0}
	h := addZone(t, g, world.Zone{
		Name:    "shop",
		Bounds:  world.Rect{X: 2, Y: 1, W: 1, H: 1},
		Trigger: world.TriggerWalkOver,
		Exit:    &exit,
	})
	NewSession(g)
	return g, clk.Advance, h
}

func TestWalkOver_OpensModalAndCloseExits(t *testing.T) {
	g, advance, h := houseGame(t)

	step(t, g, engineinput.ActionMoveEast)
	step(t, g, engineinput.ActionMoveEast)
	if g.Interaction.Mode.Kind != state.Exploring {
		t.Fatalf("mode = %v before entering the zone, want exploring", g.Interaction.Mode.Kind)
	}
	step(t, g, engineinput.ActionMoveSouth)

	if g.Interaction.Mode != (state.Mode{Kind: state.ModalOpen, Zone: h}) {
		t.Fatalf("mode = %+v after entering, want modal for zone %d", g.Interaction.Mode, h)
	}
	if g.Interaction.EntryPos == nil || *g.Interaction.EntryPos != (world.Pos{X: 2, Y: 1}) {
		t.Errorf("EntryPos = %v, want (2,1)", g.Interaction.EntryPos)
	}
	if n := len(g.Messages); n == 0 || g.Messages[n-1].Text != "Entered shop" {
		t.Errorf("Messages = %+v, want last to be \"Entered shop\"", g.Messages)
	}

	// Close plays the fade; nothing moves until it is opaque
	Frame(g, []engineinput.Intent{{Action: engineinput.ActionClose}})
	if g.Interaction.Mode.Kind != state.ModalOpen || g.Actor.Grid != (world.Pos{X: 2, Y: 1}) {
		t.Fatalf("state changed before the fade: mode %v at %v", g.Interaction.Mode.Kind, g.Actor.Grid)
	}

	advance(g.Config.FadeClose)
	Frame(g, nil)
	if g.Actor.Grid != (world.Pos{X: 2, Y: 0}) {
		t.Errorf("Grid = %v after close, want exit (2,0)", g.Actor.Grid)
	}
	if g.Actor.Pixel != g.PixelFor(world.Pos{X: 2, Y: 0}) {
		t.Errorf("Pixel = %+v, want settled on the exit", g.Actor.Pixel)
	}
	if g.Interaction.Mode.Kind != state.Exploring || g.Interaction.EntryPos != nil {
		t.Errorf("after close mode = %v entry = %v, want exploring and no entry", g.Interaction.Mode.Kind, g.Interaction.EntryPos)
	}

	advance(g.Config.FadeHold)
	Frame(g, nil)
	if g.Interaction.Fade != nil {
		t.Errorf("fade still pending after it faded back: %+v", g.Interaction.Fade)
	}
}

func TestWalkOver_ExitFallsBackBelowEntry(t *testing.T) {
	g, clk := makeGame(t, 4, 4, world.Pos{X: 1, Y: 0})
	addZone(t, g, world.Zone{Name: "hut", Bounds: world.Rect{X: 1, Y: 1, W: 1, H: 1}, Trigger: world.TriggerWalkOver})
	NewSession(g)

	step(t, g, engineinput.ActionMoveSouth)
	if g.Interaction.Mode.Kind != state.ModalOpen {
		t.Fatalf("mode = %v, want modal", g.Interaction.Mode.Kind)
	}
	Close(g)
	clk.Advance(g.Config.FadeClose)
	Frame(g, nil)
	if g.Actor.Grid != (world.Pos{X: 1, Y: 2}) {
		t.Errorf("Grid = %v, want one below the entry cell (1,2)", g.Actor.Grid)
	}
}

func TestWalkOver_CloseNeverLeavesWalkableCells(t *testing.T) {
	below := world.Pos{X: 1, Y: 2}
	cases := []struct {
		name       string
		height     int
		blocked    []world.Pos
		exit       *world.Pos
		blockLater *world.Rect // footprint registered after the zone
		want       world.Pos
	}{
		{"entry on the bottom row", 2, nil, nil, nil, world.Pos{X: 1, Y: 1}},
		{"cell below is a wall", 4, []world.Pos{below}, nil, nil, world.Pos{X: 1, Y: 1}},
		{"exit blocked later", 4, nil, &world.Pos{X: 3, Y: 3}, &world.Rect{X: 3, Y: 3, W: 1, H: 1}, below},
		{"exit and fallback blocked", 4, []world.Pos{below}, &world.Pos{X: 3, Y: 3}, &world.Rect{X: 3, Y: 3, W: 1, H: 1}, world.Pos{X: 1, Y: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, clk := makeGame(t, 4, tc.height, world.Pos{X: 1, Y: 0}, tc.blocked...)
			addZone(t, g, world.Zone{Name: "hut", Bounds: world.Rect{X: 1, Y: 1, W: 1, H: 1}, Trigger: world.TriggerWalkOver, Exit: tc.exit})
			if tc.blockLater != nil {
				if _, err := g.Collision.RegisterFootprint(*tc.blockLater); err != nil {
					t.Fatal(err)
				}
			}
			NewSession(g)

			step(t, g, engineinput.ActionMoveSouth)
			Close(g)
			clk.Advance(g.Config.FadeClose)
			Frame(g, nil)

			if g.Interaction.Mode.Kind != state.Exploring {
				t.Fatalf("mode = %v after close, want exploring", g.Interaction.Mode.Kind)
			}
			if g.Actor.Grid != tc.want {
				t.Errorf("Grid = %v after close, want %v", g.Actor.Grid, tc.want)
			}
			if !g.Collision.IsWalkable(g.Actor.Grid) {
				t.Errorf("actor closed onto blocked cell %v", g.Actor.Grid)
			}
			if !RequestMove(g, world.North) {
				t.Error("actor cannot move after the modal closed")
			}
		})
	}
}

func TestEvaluateZones_EdgeTriggeredOnce(t *testing.T) {
	g, clk := makeGame(t, 6, 3, world.Pos{X: 0, Y: 1})
	inside := world.Pos{X: 2, Y: 1}
	h := addZone(t, g, world.Zone{
		Name:    "plaza",
		Bounds:  world.Rect{X: 1, Y: 0, W: 3, H: 3},
		Trigger: world.TriggerWalkOver,
		Exit:    &inside, // closing leaves the actor inside the zone
	})
	NewSession(g)

	opened := 0
	frame := func(intents ...engineinput.Intent) {
		before := g.Interaction.Mode.Kind
		Frame(g, intents)
		if before != state.ModalOpen && g.Interaction.Mode.Kind == state.ModalOpen {
			opened++
		}
	}

	frame(engineinput.Intent{Action: engineinput.ActionMoveEast})
	if opened != 1 || g.Interaction.Mode.Zone != h {
		t.Fatalf("opened = %d on entry, want 1", opened)
	}
	Close(g)
	clk.Advance(g.Config.FadeClose + g.Config.FadeHold)
	for i := 0; i < 30; i++ {
		frame()
	}

	// Walk around inside; the zone never re-fires
	for _, a := range []engineinput.Action{engineinput.ActionMoveEast, engineinput.ActionMoveNorth, engineinput.ActionMoveSouth} {
		frame(engineinput.Intent{Action: a})
		for !g.Actor.IsIdle() {
			frame()
		}
	}
	if opened != 1 {
		t.Errorf("opened = %d while staying inside, want 1", opened)
	}

	// Leave every zone and come back: a new entry
	frame(engineinput.Intent{Action: engineinput.ActionMoveEast})
	for !g.Actor.IsIdle() {
		frame()
	}
	if g.Zones.ContainingZones(g.Actor.Grid) != nil {
		t.Fatalf("actor at %v still inside a zone", g.Actor.Grid)
	}
	frame(engineinput.Intent{Action: engineinput.ActionMoveWest})
	if opened != 2 {
		t.Errorf("opened = %d after re-entering, want 2", opened)
	}
}

func TestEvaluateZones_FirstContainingZoneDecides(t *testing.T) {
	g, _ := makeGame(t, 4, 1, world.Pos{})
	addZone(t, g, world.Zone{Name: "sign", Bounds: world.Rect{X: 1, Y: 0, W: 1, H: 1}, Trigger: world.TriggerFacing})
	addZone(t, g, world.Zone{Name: "door", Bounds: world.Rect{X: 1, Y: 0, W: 1, H: 1}, Trigger: world.TriggerWalkOver})
	NewSession(g)

	step(t, g, engineinput.ActionMoveEast)
	if g.Interaction.Mode.Kind != state.Exploring {
		t.Errorf("mode = %v, want exploring: the first zone on the cell is a facing zone", g.Interaction.Mode.Kind)
	}
}

func TestEvaluateZones_SpawnInsideZoneDoesNotFire(t *testing.T) {
	g, _ := makeGame(t, 3, 3, world.Pos{X: 1, Y: 1})
	addZone(t, g, world.Zone{Name: "home", Bounds: world.Rect{X: 0, Y: 0, W: 3, H: 3}, Trigger: world.TriggerWalkOver})
	NewSession(g)
	Frame(g, nil)
	if g.Interaction.Mode.Kind != state.Exploring {
		t.Errorf("mode = %v on spawn, want exploring", g.Interaction.Mode.Kind)
	}
}

func TestFacing_CharacterTextBox(t *testing.T) {
	g, clk := makeGame(t, 5, 5, world.Pos{X: 4, Y: 2})
	h := addZone(t, g, world.Zone{
		Name:    "villager",
		Bounds:  world.Rect{X: 4, Y: 4, W: 1, H: 1},
		Trigger: world.TriggerFacing,
		Payload: world.Payload{Content: "Lovely weather.", Character: true},
	})
	NewSession(g)

	step(t, g, engineinput.ActionMoveSouth)
	if g.Actor.Grid != (world.Pos{X: 4, Y: 3}) || g.Actor.Facing != world.South {
		t.Fatalf("actor at %v facing %v, want (4,3) facing down", g.Actor.Grid, g.Actor.Facing)
	}

	if !Interact(g) {
		t.Fatal("Interact = false, want true")
	}
	if g.Interaction.Mode != (state.Mode{Kind: state.TextBoxOpen, Zone: h}) {
		t.Fatalf("mode = %+v, want text box for zone %d", g.Interaction.Mode, h)
	}
	if RequestMove(g, world.West) {
		t.Error("RequestMove during text box = true, want false")
	}
	if Close(g) {
		t.Error("Close right after opening = true, want it ignored by the guard")
	}

	clk.Advance(g.Config.TextBoxGuard)
	if !Close(g) {
		t.Fatal("Close after the guard = false, want true")
	}
	if g.Interaction.Mode.Kind != state.Exploring {
		t.Errorf("mode = %v, want exploring", g.Interaction.Mode.Kind)
	}
	if g.Actor.Grid != (world.Pos{X: 4, Y: 3}) {
		t.Errorf("Grid = %v after closing, want unchanged (4,3)", g.Actor.Grid)
	}
	if g.Interaction.Fade != nil {
		t.Error("text box close scheduled a fade")
	}
}

func TestInteract_FacingModalKeepsPosition(t *testing.T) {
	g, clk := makeGame(t, 3, 3, world.Pos{X: 1, Y: 1})
	g.Actor.Facing = world.North
	h := addZone(t, g, world.Zone{Name: "sign", Bounds: world.Rect{X: 1, Y: 0, W: 1, H: 1}, Trigger: world.TriggerFacing})
	NewSession(g)

	if !Interact(g) || g.Interaction.Mode != (state.Mode{Kind: state.ModalOpen, Zone: h}) {
		t.Fatalf("mode = %+v, want modal for the sign", g.Interaction.Mode)
	}
	Close(g)
	clk.Advance(g.Config.FadeClose)
	Frame(g, nil)
	if g.Interaction.Mode.Kind != state.Exploring || g.Actor.Grid != (world.Pos{X: 1, Y: 1}) {
		t.Errorf("after close mode = %v at %v, want exploring at (1,1)", g.Interaction.Mode.Kind, g.Actor.Grid)
	}
}

func TestInteract_NothingFacing(t *testing.T) {
	g, _ := makeGame(t, 3, 3, world.Pos{X: 1, Y: 1})
	addZone(t, g, world.Zone{Name: "mat", Bounds: world.Rect{X: 1, Y: 2, W: 1, H: 1}, Trigger: world.TriggerWalkOver})
	g.Actor.Facing = world.South
	if Interact(g) {
		t.Error("Interact facing a walk-over zone = true, want false")
	}
	if len(g.Messages) != 1 {
		t.Errorf("Messages = %v, want one nothing-here message", g.Messages)
	}
}

func TestStateMachine_OutOfSequenceEventsIgnored(t *testing.T) {
	g, _, _ := houseGame(t)
	if Close(g) {
		t.Error("Close while exploring = true, want false")
	}

	step(t, g, engineinput.ActionMoveEast)
	step(t, g, engineinput.ActionMoveEast)
	step(t, g, engineinput.ActionMoveSouth)
	if Interact(g) {
		t.Error("Interact while modal open = true, want false")
	}
	if !Close(g) {
		t.Fatal("first Close = false, want true")
	}
	token := g.Interaction.Fade.Token
	if Close(g) {
		t.Error("second Close while closing = true, want false")
	}
	if g.Interaction.Fade.Token != token {
		t.Error("second Close replaced the pending fade")
	}
}

func TestFade_CloseSupersedesOpen(t *testing.T) {
	g, advance, _ := houseGame(t)
	step(t, g, engineinput.ActionMoveEast)
	step(t, g, engineinput.ActionMoveEast)
	step(t, g, engineinput.ActionMoveSouth)

	open := g.Interaction.Fade
	if open == nil || open.Kind != state.FadeOpen {
		t.Fatalf("Fade = %+v, want a pending open fade", open)
	}
	if g.Interaction.PayloadVisible {
		t.Error("payload visible before the open fade committed")
	}

	Close(g)
	closing := g.Interaction.Fade
	if closing == open || closing.Kind != state.FadeClose || closing.Token <= open.Token {
		t.Fatalf("Fade = %+v, want a newer close fade", closing)
	}

	advance(g.Config.FadeClose)
	Frame(g, nil)
	if g.Interaction.Mode.Kind != state.Exploring {
		t.Fatalf("mode = %v, want exploring after the close commit", g.Interaction.Mode.Kind)
	}

	// The superseded open fade never reveals anything
	advance(g.Config.FadeOpen)
	Frame(g, nil)
	if g.Interaction.PayloadVisible || g.Interaction.Fade != nil {
		t.Errorf("stale open fade ran: visible=%v fade=%+v", g.Interaction.PayloadVisible, g.Interaction.Fade)
	}
}

func TestFade_OpenRevealsPayload(t *testing.T) {
	g, advance, _ := houseGame(t)
	step(t, g, engineinput.ActionMoveEast)
	step(t, g, engineinput.ActionMoveEast)
	step(t, g, engineinput.ActionMoveSouth)

	advance(g.Config.FadeOpen)
	snap := Frame(g, nil)
	if !snap.PayloadVisible {
		t.Error("payload hidden after the open fade reached opaque")
	}
	if snap.FadeOpacity != 1 {
		t.Errorf("FadeOpacity = %v at the commit point, want 1", snap.FadeOpacity)
	}
	if snap.Zone.Name != "shop" {
		t.Errorf("snapshot zone = %q, want shop", snap.Zone.Name)
	}

	advance(g.Config.FadeHold)
	snap = Frame(g, nil)
	if snap.FadeOpacity != 0 || g.Interaction.Fade != nil {
		t.Errorf("fade not finished: opacity %v", snap.FadeOpacity)
	}
}

func TestEntryWhileMovingStillSettles(t *testing.T) {
	g, _, _ := houseGame(t)
	step(t, g, engineinput.ActionMoveEast)
	step(t, g, engineinput.ActionMoveEast)

	Frame(g, []engineinput.Intent{{Action: engineinput.ActionMoveSouth}})
	if g.Interaction.Mode.Kind != state.ModalOpen {
		t.Fatalf("mode = %v, want modal as soon as the grid enters", g.Interaction.Mode.Kind)
	}
	if g.Actor.IsIdle() {
		t.Fatal("actor idle on the entry frame, want still interpolating")
	}
	frameUntilIdle(t, g)
	if g.Actor.Pixel != g.PixelFor(world.Pos{X: 2, Y: 1}) {
		t.Errorf("Pixel = %+v, want settled on (2,1)", g.Actor.Pixel)
	}
}
