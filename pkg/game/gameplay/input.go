package gameplay

import (
	"fmt"

	"github.com/sirupsen/logrus"

	engineinput "townwalk/pkg/engine/input"
	"townwalk/pkg/engine/world"
	"townwalk/pkg/game/devtools"
	"townwalk/pkg/game/locale"
	"townwalk/pkg/game/state"
	"townwalk/pkg/logger"
)

// directionFor maps a movement action to its direction
func directionFor(a engineinput.Action) (world.Direction, bool) {
	switch a {
	case engineinput.ActionMoveNorth:
		return world.North, true
	case engineinput.ActionMoveSouth:
		return world.South, true
	case engineinput.ActionMoveWest:
		return world.West, true
	case engineinput.ActionMoveEast:
		return world.East, true
	default:
		return 0, false
	}
}

// ProcessIntent handles a high-level input intent from the tiered input system.
//
// While a modal is open any fresh movement, interact or close press closes
// it; a text box closes on interact or close only. Held keys never close.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionQuit:
		g.Quit = true
		return

	case engineinput.ActionToggleDebug:
		if intent.Repeat {
			return
		}
		g.Debug = !g.Debug
		if g.Debug {
			g.AddMessage(locale.Get("DEBUG_ON"))
		} else {
			g.AddMessage(locale.Get("DEBUG_OFF"))
		}
		return

	case engineinput.ActionDebugMapDump:
		if intent.Repeat {
			return
		}
		path, err := devtools.DumpMapToFile(g)
		if err != nil {
			logger.Get().WithError(err).Warn("map dump failed")
			return
		}
		g.AddMessage(fmt.Sprintf(locale.Get("MAP_DUMPED"), path))
		return

	case engineinput.ActionInteract:
		if intent.Repeat {
			return
		}
		if g.Interaction.Mode.Kind == state.Exploring {
			Interact(g)
			return
		}
		Close(g)
		return

	case engineinput.ActionClose:
		if intent.Repeat {
			return
		}
		Close(g)
		return
	}

	dir, ok := directionFor(intent.Action)
	if !ok {
		logger.Get().WithField("action", engineinput.ActionName(intent.Action)).Debug("unhandled intent")
		return
	}

	switch g.Interaction.Mode.Kind {
	case state.Exploring:
		if !RequestMove(g, dir) {
			logger.Get().WithFields(logrus.Fields{
				"from": g.Actor.Grid.String(),
				"dir":  dir.String(),
			}).Trace("move rejected")
		}
	case state.ModalOpen:
		if !intent.Repeat {
			Close(g)
		}
	}
}
