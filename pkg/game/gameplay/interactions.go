package gameplay

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"townwalk/pkg/engine/world"
	"townwalk/pkg/game/locale"
	"townwalk/pkg/game/state"
	"townwalk/pkg/logger"
)

// Event is an input to the interaction state machine
type Event int

const (
	// EventEnterZone fires once when the actor steps into a zone from outside every zone
	EventEnterZone Event = iota
	// EventInteract is the explicit interact action
	EventInteract
	// EventClose is the explicit close action
	EventClose
	// EventPayloadRevealed fires when an opening fade reaches opaque
	EventPayloadRevealed
	// EventCloseCommitted fires when a closing fade reaches opaque
	EventCloseCommitted
)

// String returns the event name
func (e Event) String() string {
	switch e {
	case EventEnterZone:
		return "enter-zone"
	case EventInteract:
		return "interact"
	case EventClose:
		return "close"
	case EventPayloadRevealed:
		return "payload-revealed"
	case EventCloseCommitted:
		return "close-committed"
	default:
		return "unknown"
	}
}

// transition handles one event in one mode and reports whether it changed anything
type transition func(g *state.Game, h world.ZoneHandle) bool

// transitions is the whole interaction state machine. A (mode, event) pair
// missing from the table is ignored.
var transitions = map[state.ModeKind]map[Event]transition{
	state.Exploring: {
		EventEnterZone: openWalkOver,
		EventInteract:  openFacing,
	},
	state.ModalOpen: {
		EventClose:           beginModalClose,
		EventPayloadRevealed: revealPayload,
		EventCloseCommitted:  finishModalClose,
	},
	state.TextBoxOpen: {
		EventClose: closeTextBox,
	},
}

// Dispatch feeds an event into the state machine
func Dispatch(g *state.Game, ev Event, h world.ZoneHandle) bool {
	mode := g.Interaction.Mode.Kind
	fn, ok := transitions[mode][ev]
	if !ok {
		logger.Get().WithFields(logrus.Fields{
			"mode":  mode.String(),
			"event": ev.String(),
		}).Debug("event ignored")
		return false
	}
	changed := fn(g, h)
	if changed && g.Interaction.Mode.Kind != mode {
		logger.Get().WithFields(logrus.Fields{
			"from":  mode.String(),
			"to":    g.Interaction.Mode.Kind.String(),
			"event": ev.String(),
			"zone":  g.Interaction.Mode.Zone,
		}).Debug("mode transition")
	}
	return changed
}

// EvaluateZones compares the zones containing the actor with last frame's.
// Stepping from no zone into at least one zone is the only edge that fires;
// the first containing zone in registration order is the one entered.
func EvaluateZones(g *state.Game) {
	contained := g.Zones.ContainingZones(g.Actor.Grid)
	entered := g.Interaction.PrevContained.Size() == 0 && len(contained) > 0

	next := mapset.New[world.ZoneHandle]()
	for _, h := range contained {
		next.Put(h)
	}
	g.Interaction.PrevContained = next

	if entered {
		Dispatch(g, EventEnterZone, contained[0])
	}
}

// Interact checks the zone the actor is facing. It is a no-op outside Exploring.
func Interact(g *state.Game) bool {
	return Dispatch(g, EventInteract, 0)
}

// Close asks the open modal or text box to close. It is a no-op while Exploring.
func Close(g *state.Game) bool {
	return Dispatch(g, EventClose, g.Interaction.Mode.Zone)
}

func openWalkOver(g *state.Game, h world.ZoneHandle) bool {
	zone, ok := g.Zones.Get(h)
	if !ok || zone.Trigger != world.TriggerWalkOver {
		return false
	}
	entry := g.Actor.Grid
	g.Interaction.EntryPos = &entry
	openModal(g, h)
	g.AddMessage(fmt.Sprintf(locale.Get("ENTERED_ZONE"), zoneLabel(zone)))
	return true
}

func openFacing(g *state.Game, _ world.ZoneHandle) bool {
	h, ok := g.Zones.FacingZone(g.Actor.Grid, g.Actor.Facing)
	if !ok {
		g.AddMessage(locale.Get("NOTHING_HERE"))
		return false
	}
	zone, _ := g.Zones.Get(h)
	if zone.Payload.Character {
		g.Interaction.Mode = state.Mode{Kind: state.TextBoxOpen, Zone: h}
		g.Interaction.OpenedAt = g.Now()
		return true
	}
	g.Interaction.EntryPos = nil
	openModal(g, h)
	return true
}

func openModal(g *state.Game, h world.ZoneHandle) {
	g.Interaction.Mode = state.Mode{Kind: state.ModalOpen, Zone: h}
	g.Interaction.OpenedAt = g.Now()
	g.Interaction.PayloadVisible = false
	scheduleFade(g, state.FadeOpen, g.Config.FadeOpen, g.Config.FadeHold)
}

func revealPayload(g *state.Game, _ world.ZoneHandle) bool {
	g.Interaction.PayloadVisible = true
	return true
}

func beginModalClose(g *state.Game, _ world.ZoneHandle) bool {
	if f := g.Interaction.Fade; f != nil && f.Kind == state.FadeClose && !f.Committed {
		return false
	}
	scheduleFade(g, state.FadeClose, g.Config.FadeClose, g.Config.FadeHold)
	return true
}

// finishModalClose moves the actor to the zone's exit, or one cell below
// where it entered. When neither is walkable, or a facing modal has no exit,
// the actor stays where it is.
func finishModalClose(g *state.Game, h world.ZoneHandle) bool {
	zone, _ := g.Zones.Get(h)
	placed := zone.Exit != nil && Teleport(g, *zone.Exit)
	if !placed && g.Interaction.EntryPos != nil {
		placed = Teleport(g, g.Interaction.EntryPos.Add(0, 1))
	}
	if !placed {
		logger.Get().WithFields(logrus.Fields{
			"zone": zone.Name,
			"pos":  g.Actor.Grid.String(),
		}).Debug("modal closed in place")
	}
	g.Interaction.EntryPos = nil
	g.Interaction.PayloadVisible = false
	g.Interaction.Mode = state.Mode{Kind: state.Exploring}
	return true
}

func closeTextBox(g *state.Game, _ world.ZoneHandle) bool {
	if g.Now().Sub(g.Interaction.OpenedAt) < g.Config.TextBoxGuard {
		logger.Get().Debug("text box close ignored, just opened")
		return false
	}
	g.Interaction.Mode = state.Mode{Kind: state.Exploring}
	return true
}

func zoneLabel(z world.Zone) string {
	if z.Payload.Title != "" {
		return z.Payload.Title
	}
	return z.Name
}
