package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"townwalk/pkg/game/config"
	"townwalk/pkg/game/devtools"
	"townwalk/pkg/game/gameplay"
	"townwalk/pkg/game/locale"
	"townwalk/pkg/game/renderer"
	"townwalk/pkg/game/renderer/ebiten"
	"townwalk/pkg/game/renderer/tui"
	"townwalk/pkg/game/setup"
	"townwalk/pkg/game/state"
	"townwalk/pkg/logger"
)

func main() {
	rendererName := flag.String("renderer", "", "renderer to use: ebiten or tui (default from TOWNWALK_RENDERER)")
	worldPath := flag.String("world", "", "YAML world file (default: the built-in town)")
	dump := flag.Bool("dump", false, "print the collision and zone map and exit (for developer testing)")
	debug := flag.Bool("debug", false, "start with the debug overlay on")
	flag.Parse()

	logger.Init()
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Warn("using default config")
	}
	if *rendererName != "" {
		cfg.Renderer = *rendererName
	}
	if *worldPath != "" {
		cfg.WorldPath = *worldPath
	}
	if *debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid settings")
	}

	g, err := buildGame(cfg)
	if g == nil {
		log.WithError(err).Fatal("could not build the world")
	}
	if err != nil {
		log.WithError(err).Warn("some zones were left out")
	}

	if *dump {
		if err := devtools.DumpMap(os.Stdout, g); err != nil {
			log.WithError(err).Fatal("map dump failed")
		}
		return
	}

	g.AddMessage(locale.Get("WELCOME"))
	session := gameplay.NewSession(g)

	r := newRenderer(cfg)
	if err := r.Init(); err != nil {
		log.WithError(err).Fatal("renderer init failed")
	}
	log.WithFields(logrus.Fields{
		"renderer": cfg.Renderer,
		"spawn":    g.Spawn.String(),
	}).Info("starting")

	if err := r.Run(session); err != nil {
		log.WithError(err).Fatal("renderer stopped")
	}
	fmt.Println(locale.Get("GOODBYE"))
}

// buildGame loads the configured world, or the built-in town
func buildGame(cfg config.Config) (*state.Game, error) {
	var (
		def *setup.WorldDef
		err error
	)
	if cfg.WorldPath != "" {
		def, err = setup.Load(cfg.WorldPath)
	} else {
		def, err = setup.Default()
	}
	if err != nil {
		return nil, err
	}

	g, err := setup.Build(def, cfg)
	if g != nil {
		g.Debug = cfg.Debug
	}
	return g, err
}

func newRenderer(cfg config.Config) renderer.Renderer {
	if cfg.Renderer == config.RendererTUI {
		return tui.New(cfg)
	}
	return ebiten.New(cfg)
}
