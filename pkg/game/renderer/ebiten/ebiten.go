// Package ebiten provides an Ebiten-based 2D graphical renderer for the town.
package ebiten

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	engineinput "townwalk/pkg/engine/input"
	"townwalk/pkg/game/config"
	"townwalk/pkg/game/locale"
	"townwalk/pkg/game/renderer"
	"townwalk/pkg/logger"
)

// errQuit ends RunGame cleanly when the session asks to quit
var errQuit = errors.New("quit")

// EbitenRenderer is the Ebiten-based graphical renderer. Ebiten calls
// Update at a fixed 60 ticks per second; each Update runs one session frame.
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource // Monospace font for the debug overlay
	sansFontSource *text.GoTextFaceSource // Sans-serif font for UI text

	// Cached font faces
	cachedUIFace    *text.GoTextFace
	cachedTitleFace *text.GoTextFace
	cachedMonoFace  *text.GoTextFace

	session renderer.Session

	// Latest snapshot, written by Update and read by Draw
	snapshot      renderer.Snapshot
	hasSnapshot   bool
	snapshotMutex sync.RWMutex

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// New creates a new Ebiten renderer sized from cfg
func New(cfg config.Config) *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  cfg.ViewportWidth,
		windowHeight: cfg.ViewportHeight,
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() error {
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load sans font: %w", err)
	}
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	e.sansFontSource = sans
	e.monoFontSource = mono

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(locale.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run starts the Ebiten game loop and blocks until the window closes or
// the session quits.
func (e *EbitenRenderer) Run(s renderer.Session) error {
	e.session = s
	s.SetViewport(float64(e.windowWidth), float64(e.windowHeight))
	err := ebiten.RunGame(e)
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// Update samples input and advances the session by one frame (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		logger.Get().WithField("size", fmt.Sprintf("%dx%d", w, h)).Info("main window opened")
	}

	intents := e.collectIntents()
	snap := e.session.Step(intents)

	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.hasSnapshot = true
	e.snapshotMutex.Unlock()

	if snap.Quit {
		return errQuit
	}
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface).
// The session viewport follows the window.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
		if e.session != nil {
			e.session.SetViewport(float64(outsideWidth), float64(outsideHeight))
		}
	}
	return e.windowWidth, e.windowHeight
}

// compile-time check
var _ renderer.Renderer = (*EbitenRenderer)(nil)

// intent builds an intent from a raw device code through the tiered input layers
func intent(device engineinput.Device, code string, held bool) engineinput.Intent {
	return engineinput.Translate(engineinput.RawInput{Device: device, Code: code, Held: held})
}
