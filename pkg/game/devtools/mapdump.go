// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"townwalk/pkg/engine/world"
	"townwalk/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell (no actor overlay)
func cellSymbol(g *state.Game, p world.Pos, zoneCells map[world.Pos]world.Trigger) rune {
	switch {
	case !g.Collision.BaseWalkable(p):
		return '#'
	case g.Collision.IsBlockedByFootprint(p):
		return 'X'
	}
	if trigger, ok := zoneCells[p]; ok {
		if trigger == world.TriggerFacing {
			return 'F'
		}
		return 'W'
	}
	return '.'
}

// zoneCellTriggers records the trigger of the first zone covering each cell
func zoneCellTriggers(g *state.Game) map[world.Pos]world.Trigger {
	cells := make(map[world.Pos]world.Trigger)
	for _, h := range g.Zones.All() {
		z, _ := g.Zones.Get(h)
		z.Bounds.ForEachCell(func(p world.Pos) {
			if _, taken := cells[p]; !taken {
				cells[p] = z.Trigger
			}
		})
	}
	return cells
}

// writeMapGrid writes the grid with the actor overlaid
func writeMapGrid(w io.Writer, g *state.Game) {
	zoneCells := zoneCellTriggers(g)
	for y := 0; y < g.Collision.Height(); y++ {
		for x := 0; x < g.Collision.Width(); x++ {
			p := world.Pos{X: x, Y: y}
			if p == g.Actor.Grid {
				fmt.Fprint(w, "@")
				continue
			}
			fmt.Fprintf(w, "%c", cellSymbol(g, p, zoneCells))
		}
		fmt.Fprintln(w)
	}
}

// DumpMap writes a debug dump of the session: metadata, legend, the map,
// and every zone and footprint with its coordinates.
func DumpMap(w io.Writer, g *state.Game) error {
	if g == nil || g.Collision == nil || g.Zones == nil {
		return errors.New("no map loaded")
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (collision, zones, actor) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "width: %d\n", g.Collision.Width())
	fmt.Fprintf(w, "height: %d\n", g.Collision.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(w, "actor: %s\n", g.Actor.Grid)
	fmt.Fprintf(w, "facing: %s\n", g.Actor.Facing)
	fmt.Fprintf(w, "movement: %s\n", g.Actor.Movement.Phase)
	fmt.Fprintf(w, "spawn: %s\n", g.Spawn)
	fmt.Fprintf(w, "mode: %s\n", g.Interaction.Mode.Kind)
	fmt.Fprintf(w, "camera: %.1f,%.1f\n", g.Camera.X, g.Camera.Y)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = walkable  # = wall  X = blocked by footprint  W = walk-over zone  F = facing zone  @ = actor")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, g)
	fmt.Fprintln(w, "")

	// --- Zones in registration order ---
	fmt.Fprintln(w, "--- Zones (registration order; first wins) ---")
	for _, h := range g.Zones.All() {
		z, _ := g.Zones.Get(h)
		exit := "-"
		if z.Exit != nil {
			exit = z.Exit.String()
		}
		fmt.Fprintf(w, "  handle: %d name: %q rect: %s trigger: %s character: %v exit: %s\n",
			h, z.Name, z.Bounds, z.Trigger, z.Payload.Character, exit)
	}
	fmt.Fprintln(w, "")

	// --- Footprints ---
	fmt.Fprintln(w, "--- Footprints ---")
	for i := 1; i <= g.Collision.FootprintCount(); i++ {
		r, ok := g.Collision.Footprint(world.FootprintHandle(i))
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  handle: %d rect: %s\n", i, r)
	}
	return nil
}

// DumpMapToFile writes DumpMap output to map.txt in the working directory
// and returns the absolute path.
func DumpMapToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}
