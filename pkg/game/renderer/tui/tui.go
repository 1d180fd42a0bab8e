// Package tui renders the town in a terminal, one map cell per two columns.
package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"

	"townwalk/pkg/engine/input"
	"townwalk/pkg/engine/terminal"
	"townwalk/pkg/engine/world"
	"townwalk/pkg/game/config"
	"townwalk/pkg/game/locale"
	"townwalk/pkg/game/renderer"
	"townwalk/pkg/game/state"
	"townwalk/pkg/logger"
)

// Icons for each kind of cell
const (
	IconPlayer    = "@"
	IconGround    = "·"
	IconWall      = "▒"
	IconFootprint = "▓"
	IconDoor      = "▢"
	IconCharacter = "☺"
	IconSign      = "?"
	IconVoid      = " "

	ModalMore = "…" // marks modal content cut to fit the rows
)

// Layout
const (
	CellWidth    = 2  // columns per map cell
	ReservedRows = 12 // title, status, text box, messages and key hint
	FrameRate    = 60
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorGround    color.Style
	colorWall      color.Style
	colorFootprint color.Style
	colorDoor      color.Style
	colorCharacter color.Style
	colorSign      color.Style
	colorPlayer    color.Style
	colorTitle     color.Style
	colorSubtle    color.Style
	colorDebug     color.Style

	out        io.Writer
	tilePixels float64
	cols, rows int

	lastScreen string
}

// New creates a new TUI renderer
func New(cfg config.Config) *TUIRenderer {
	return &TUIRenderer{
		out:        os.Stdout,
		tilePixels: cfg.TilePixels(),
	}
}

// Init initializes the TUI renderer colors and measures the terminal
func (t *TUIRenderer) Init() error {
	t.colorGround = color.Style{color.FgGreen}
	t.colorWall = color.Style{color.FgGray}
	t.colorFootprint = color.Style{color.FgYellow}
	t.colorDoor = color.Style{color.FgYellow, color.OpBold}
	t.colorCharacter = color.Style{color.FgRed, color.OpBold}
	t.colorSign = color.Style{color.FgCyan, color.OpBold}
	t.colorPlayer = color.Style{color.FgBlue, color.BgBlack, color.OpBold}
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDebug = color.Style{color.FgRed}

	t.cols, t.rows = terminal.ViewportCells(CellWidth, ReservedRows)
	return nil
}

// Run reads keys on a separate goroutine and steps the session at FrameRate
// until it quits. The screen is only redrawn when its contents change.
func (t *TUIRenderer) Run(s renderer.Session) error {
	s.SetViewport(float64(t.cols)*t.tilePixels, float64(t.rows)*t.tilePixels)
	logger.Get().WithField("cells", fmt.Sprintf("%dx%d", t.cols, t.rows)).Info("terminal viewport")

	keys := make(chan string, 16)
	errs := make(chan error, 1)
	go readKeys(keys, errs)

	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	var pending []input.Intent
	moving := false
	for {
		select {
		case code := <-keys:
			in := input.Translate(input.RawInput{Device: input.DeviceTerminal, Code: code, Timestamp: time.Now()})
			if in.Action != input.ActionNone {
				pending = append(pending, in)
			}
		case err := <-errs:
			logger.Get().WithError(err).Error("terminal input failed")
			return fmt.Errorf("read terminal input: %w", err)
		case <-ticker.C:
			var intents []input.Intent
			intents, pending = takeIntents(pending, moving)
			snap := s.Step(intents)
			moving = snap.Moving
			t.draw(&snap)
			if snap.Quit {
				return nil
			}
		}
	}
}

// readKeys forwards terminal key codes until the quit key is read.
// Stopping there leaves the terminal out of raw mode when the program exits.
func readKeys(keys chan<- string, errs chan<- error) {
	for {
		code, err := input.ReadKey()
		if err != nil {
			errs <- err
			return
		}
		if code == "" {
			continue
		}
		keys <- code
		if input.Translate(input.RawInput{Code: code}).Action == input.ActionQuit {
			return
		}
	}
}

// takeIntents returns the intents to run this frame and those to keep.
// Terminals have no key-up events, so a move pressed while the actor is
// still walking waits for the step to finish instead of being rejected.
func takeIntents(pending []input.Intent, moving bool) (now, later []input.Intent) {
	for _, in := range pending {
		if moving && in.IsMove() {
			later = append(later, in)
			continue
		}
		now = append(now, in)
	}
	return now, later
}

func (t *TUIRenderer) draw(snap *renderer.Snapshot) {
	screen := t.compose(snap)
	if screen == t.lastScreen {
		return
	}
	t.lastScreen = screen
	// Raw mode may be active on the reader goroutine, so lines end in \r\n
	fmt.Fprint(t.out, "\x1b[H\x1b[2J"+strings.ReplaceAll(screen, "\n", "\r\n"))
}

// compose builds the whole screen for a snapshot
func (t *TUIRenderer) compose(snap *renderer.Snapshot) string {
	var b strings.Builder
	width := t.cols * CellWidth

	title := locale.Get("WINDOW_TITLE")
	if snap.Mode != state.Exploring && snap.Zone.Name != "" {
		title += " - " + snap.Zone.Name
	}
	b.WriteString(t.colorTitle.Sprint(title) + "\n")

	if snap.Mode == state.ModalOpen && snap.PayloadVisible {
		t.writeModal(&b, snap, width)
	} else {
		t.writeMap(&b, snap)
	}

	status := fmt.Sprintf(locale.Get("STATUS_LINE"), snap.Grid.X, snap.Grid.Y, snap.Facing)
	if snap.Debug {
		status += t.colorDebug.Sprintf("  px %.0f,%.0f  cam %.0f,%.0f  %s  frame %d",
			snap.Pixel.X, snap.Pixel.Y, snap.Camera.X, snap.Camera.Y, snap.Mode, snap.Frame)
	}
	b.WriteString(status + "\n")

	if snap.Mode == state.TextBoxOpen {
		t.writeTextBox(&b, snap, width)
	}

	if len(snap.Messages) == 0 {
		b.WriteString(t.colorSubtle.Sprint(locale.Get("NO_MESSAGES")) + "\n")
	}
	for _, msg := range snap.Messages {
		b.WriteString("  " + msg.Text + "\n")
	}
	b.WriteString(t.colorSubtle.Sprint(locale.Get("TUI_KEYS")) + "\n")
	return b.String()
}

// writeMap writes the visible cells. Past half opacity a fade blanks the map.
func (t *TUIRenderer) writeMap(b *strings.Builder, snap *renderer.Snapshot) {
	view := snap.VisibleCells()
	if snap.FadeOpacity >= 0.5 {
		for y := 0; y < t.rows; y++ {
			b.WriteString("\n")
		}
		return
	}

	kinds := zoneKinds(snap)
	actor := actorCell(snap)
	for y := view.Y; y < view.Y+view.H && y-view.Y < t.rows; y++ {
		for x := view.X; x < view.X+view.W && x-view.X < t.cols; x++ {
			p := world.Pos{X: x, Y: y}
			kind := cellKindAt(snap, kinds, p)
			if p == actor {
				kind = kindPlayer
			}
			b.WriteString(t.style(kind).Sprint(kind.icon()) + " ")
		}
		b.WriteString("\n")
	}
	for y := view.H; y < t.rows; y++ {
		b.WriteString("\n")
	}
}

// writeModal fills the map rows with the open payload. The title, the first
// content line and the close hint always fit when there are three rows; longer
// content is cut with a marker and the rules and spacing come last.
func (t *TUIRenderer) writeModal(b *strings.Builder, snap *renderer.Snapshot, width int) {
	title := snap.Zone.Payload.Title
	if title == "" {
		title = snap.Zone.Name
	}
	content := renderer.Wrap(snap.Zone.Payload.Content, float64(width), renderer.RuneWidth)
	rule := t.colorSubtle.Sprint(strings.Repeat("─", width))
	hint := t.colorSubtle.Sprint(centre(locale.Get("MODAL_CLOSE_HINT"), width))

	room := max(t.rows-2, 0)
	if len(content) > room {
		switch {
		case room == 0:
			content = nil
		case room == 1:
			content = []string{content[0] + " " + ModalMore}
		default:
			content = append(content[:room-1:room-1], ModalMore)
		}
	}

	var lines []string
	spare := room - len(content)
	gap := func() bool {
		if spare > 0 {
			spare--
			return true
		}
		return false
	}
	gapAboveHint, gapBelowTitle := gap(), gap()
	topRule, bottomRule := gap(), gap()

	if topRule {
		lines = append(lines, rule)
	}
	lines = append(lines, t.colorTitle.Sprint(centre(title, width)))
	if gapBelowTitle {
		lines = append(lines, "")
	}
	lines = append(lines, content...)
	if gapAboveHint {
		lines = append(lines, "")
	}
	if t.rows > 1 {
		lines = append(lines, hint)
	}
	if bottomRule {
		lines = append(lines, rule)
	}

	for i := 0; i < t.rows; i++ {
		if i < len(lines) {
			b.WriteString(lines[i])
		}
		b.WriteString("\n")
	}
}

func (t *TUIRenderer) writeTextBox(b *strings.Builder, snap *renderer.Snapshot, width int) {
	name := snap.Zone.Payload.Title
	if name == "" {
		name = snap.Zone.Name
	}
	indent := int(renderer.RuneWidth(name)) + 2
	b.WriteString(t.colorCharacter.Sprint(name) + ": ")
	lines := renderer.Wrap(snap.Zone.Payload.Content, float64(width-indent), renderer.RuneWidth)
	b.WriteString(strings.Join(lines, "\n"+strings.Repeat(" ", indent)) + "\n")
	b.WriteString(t.colorSubtle.Sprint(locale.Get("TEXTBOX_CLOSE_HINT")) + "\n")
}

// centre pads s on the left so it sits in the middle of width columns
func centre(s string, width int) string {
	pad := (width - int(renderer.RuneWidth(s))) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// cellKind is what a terminal cell shows
type cellKind int

const (
	kindVoid cellKind = iota
	kindGround
	kindWall
	kindFootprint
	kindDoor
	kindCharacter
	kindSign
	kindPlayer
)

func (k cellKind) icon() string {
	switch k {
	case kindGround:
		return IconGround
	case kindWall:
		return IconWall
	case kindFootprint:
		return IconFootprint
	case kindDoor:
		return IconDoor
	case kindCharacter:
		return IconCharacter
	case kindSign:
		return IconSign
	case kindPlayer:
		return IconPlayer
	default:
		return IconVoid
	}
}

func (t *TUIRenderer) style(k cellKind) color.Style {
	switch k {
	case kindGround:
		return t.colorGround
	case kindWall:
		return t.colorWall
	case kindFootprint:
		return t.colorFootprint
	case kindDoor:
		return t.colorDoor
	case kindCharacter:
		return t.colorCharacter
	case kindSign:
		return t.colorSign
	case kindPlayer:
		return t.colorPlayer
	default:
		return color.Style{}
	}
}

// zoneKinds marks zone cells; the first registered zone wins
func zoneKinds(snap *renderer.Snapshot) map[world.Pos]cellKind {
	kinds := make(map[world.Pos]cellKind)
	if snap.Zones == nil {
		return kinds
	}
	for _, h := range snap.Zones.All() {
		z, _ := snap.Zones.Get(h)
		kind := kindSign
		switch {
		case z.Trigger == world.TriggerWalkOver:
			kind = kindDoor
		case z.Payload.Character:
			kind = kindCharacter
		}
		z.Bounds.ForEachCell(func(p world.Pos) {
			if _, taken := kinds[p]; !taken {
				kinds[p] = kind
			}
		})
	}
	return kinds
}

// cellKindAt picks the icon for a map cell. Zones drawn on blocked cells
// (characters standing on their footprint) show the zone.
func cellKindAt(snap *renderer.Snapshot, kinds map[world.Pos]cellKind, p world.Pos) cellKind {
	if snap.Map == nil || p.X < 0 || p.Y < 0 || p.X >= snap.Map.Width() || p.Y >= snap.Map.Height() {
		return kindVoid
	}
	if kind, ok := kinds[p]; ok {
		return kind
	}
	switch {
	case !snap.Map.BaseWalkable(p):
		return kindWall
	case snap.Map.IsBlockedByFootprint(p):
		return kindFootprint
	default:
		return kindGround
	}
}

// actorCell is the cell nearest the actor's drawn position, so a step in
// progress shows the actor moving part way.
func actorCell(snap *renderer.Snapshot) world.Pos {
	if snap.TilePixels <= 0 {
		return snap.Grid
	}
	return world.Pos{
		X: int(math.Round(snap.Pixel.X / snap.TilePixels)),
		Y: int(math.Round(snap.Pixel.Y / snap.TilePixels)),
	}
}

// compile-time check
var _ renderer.Renderer = (*TUIRenderer)(nil)
