// Package setup builds a playable session from a world definition.
package setup

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"townwalk/pkg/engine/world"
	"townwalk/pkg/game/config"
	"townwalk/pkg/game/state"
	"townwalk/pkg/logger"
)

// Build creates the collision map and zone index for def and places the actor
// on its spawn. Characters are registered first so they win facing precedence.
//
// Rejected zones, including those whose exit is blocked or off the map, are
// left out and reported together in the returned error; the game is still
// usable in that case. Footprints that miss the map are
// dropped with a warning. A broken grid or a blocked spawn returns a nil game.
func Build(def *WorldDef, cfg config.Config) (*state.Game, error) {
	log := logger.Get()

	base, err := def.Grid()
	if err != nil {
		return nil, err
	}
	collision, err := world.NewCollisionMap(base)
	if err != nil {
		return nil, err
	}
	zones := world.NewZoneIndex(def.Width, def.Height)

	var errs []error
	for _, c := range def.Characters {
		if c.Blocking {
			if _, err := collision.RegisterFootprint(c.Rect()); err != nil {
				log.WithFields(logrus.Fields{
					"character": c.Name,
					"rect":      c.Rect().String(),
				}).WithError(err).Warn("footprint ignored")
			}
		}
		if !c.Interactive {
			continue
		}
		if _, err := zones.Register(c.Zone()); err != nil {
			log.WithField("character", c.Name).WithError(err).Warn("character zone rejected")
			errs = append(errs, err)
		}
	}

	for _, zd := range def.Zones {
		zone, err := zd.Zone()
		if err == nil && zone.Exit != nil && !collision.IsWalkable(*zone.Exit) {
			err = fmt.Errorf("%w: zone %q exit %s is not walkable", world.ErrInvalidZone, zone.Name, *zone.Exit)
		}
		if err == nil {
			_, err = zones.Register(zone)
		}
		if err != nil {
			log.WithField("zone", zd.Name).WithError(err).Warn("zone rejected")
			errs = append(errs, err)
		}
	}

	spawn := def.Spawn.Pos()
	if !collision.IsWalkable(spawn) {
		return nil, fmt.Errorf("%w: spawn %s is not walkable", world.ErrInvalidGrid, spawn)
	}

	log.WithFields(logrus.Fields{
		"world":      def.Name,
		"size":       fmt.Sprintf("%dx%d", def.Width, def.Height),
		"zones":      zones.Len(),
		"footprints": collision.FootprintCount(),
	}).Info("world built")

	g := state.NewGame(cfg, collision, zones, spawn, nil)
	return g, errors.Join(errs...)
}
