package ebiten

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"townwalk/pkg/engine/world"
	"townwalk/pkg/game/locale"
	"townwalk/pkg/game/renderer"
	"townwalk/pkg/game/state"
)

// Draw renders the latest snapshot (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	snap := e.snapshot
	ok := e.hasSnapshot
	e.snapshotMutex.RUnlock()

	if !ok || e.sansFontSource == nil {
		return
	}

	e.drawMap(screen, &snap)
	e.drawActor(screen, &snap)
	if snap.Debug {
		e.drawDebugOverlay(screen, &snap)
	}
	e.drawMessages(screen, &snap)

	switch snap.Mode {
	case state.ModalOpen:
		if snap.PayloadVisible {
			e.drawModal(screen, &snap)
		}
	case state.TextBoxOpen:
		e.drawTextBox(screen, &snap)
	}

	if snap.FadeOpacity > 0 {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), applyAlpha(colorFade, snap.FadeOpacity), false)
	}
}

// drawMap fills every visible cell with its placeholder tile
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, snap *renderer.Snapshot) {
	tile := snap.TilePixels
	zoneColors := e.zoneCellColors(snap)

	snap.VisibleCells().ForEachCell(func(p world.Pos) {
		x, y := snap.ToScreen(state.PixelPos{X: float64(p.X) * tile, Y: float64(p.Y) * tile})

		var c color.Color
		switch {
		case !snap.Map.BaseWalkable(p):
			c = colorWall
		case snap.Map.IsBlockedByFootprint(p):
			c = colorFootprint
		case (p.X+p.Y)%2 == 0:
			c = colorGrass
		default:
			c = colorGrassAlt
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(tile), float32(tile), c, false)

		if zc, ok := zoneColors[p]; ok {
			if zc == colorCharacter {
				r := float32(tile) / 3
				vector.DrawFilledCircle(screen, float32(x+tile/2), float32(y+tile/2), r, zc, true)
				return
			}
			inset := float32(tile) / 4
			vector.DrawFilledRect(screen, float32(x)+inset, float32(y)+inset, float32(tile)-2*inset, float32(tile)-2*inset, zc, false)
		}
	})
}

// zoneCellColors picks a marker per zone cell; the first registered zone wins
func (e *EbitenRenderer) zoneCellColors(snap *renderer.Snapshot) map[world.Pos]color.Color {
	colors := make(map[world.Pos]color.Color)
	for _, h := range snap.Zones.All() {
		z, _ := snap.Zones.Get(h)
		var c color.Color
		switch {
		case z.Trigger == world.TriggerWalkOver:
			c = colorDoor
		case z.Payload.Character:
			c = colorCharacter
		default:
			c = colorSign
		}
		z.Bounds.ForEachCell(func(p world.Pos) {
			if _, taken := colors[p]; !taken {
				colors[p] = c
			}
		})
	}
	return colors
}

// drawActor draws the actor with a small bob on alternate walk frames and a
// marker on the side it faces.
func (e *EbitenRenderer) drawActor(screen *ebiten.Image, snap *renderer.Snapshot) {
	tile := float32(snap.TilePixels)
	x, y := snap.ToScreen(snap.Pixel)
	fx, fy := float32(x), float32(y)
	if snap.WalkFrame%2 == 1 {
		fy -= tile / 16
	}

	margin := tile / 6
	vector.DrawFilledRect(screen, fx+margin, fy+margin, tile-2*margin, tile-2*margin, colorPlayer, false)

	dx, dy := snap.Facing.Delta()
	cx := fx + tile/2 + float32(dx)*tile/4
	cy := fy + tile/2 + float32(dy)*tile/4
	vector.DrawFilledCircle(screen, cx, cy, tile/10, colorPlayerFacing, true)
}

// drawDebugOverlay draws cell outlines, blocked cells, zone rectangles and a status line
func (e *EbitenRenderer) drawDebugOverlay(screen *ebiten.Image, snap *renderer.Snapshot) {
	tile := snap.TilePixels
	snap.VisibleCells().ForEachCell(func(p world.Pos) {
		x, y := snap.ToScreen(state.PixelPos{X: float64(p.X) * tile, Y: float64(p.Y) * tile})
		vector.StrokeRect(screen, float32(x), float32(y), float32(tile), float32(tile), 1, colorDebugGrid, false)
		if !snap.Map.BaseWalkable(p) || snap.Map.IsBlockedByFootprint(p) {
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(tile), float32(tile), colorDebugBlocked, false)
		}
	})

	for _, h := range snap.Zones.All() {
		z, _ := snap.Zones.Get(h)
		c := colorDebugFacing
		if z.Trigger == world.TriggerWalkOver {
			c = colorDebugWalkOver
		}
		x, y := snap.ToScreen(state.PixelPos{X: float64(z.Bounds.X) * tile, Y: float64(z.Bounds.Y) * tile})
		vector.StrokeRect(screen, float32(x), float32(y), float32(float64(z.Bounds.W)*tile), float32(float64(z.Bounds.H)*tile), 2, c, false)
	}

	status := fmt.Sprintf("%s  px %.0f,%.0f  cam %.0f,%.0f  %s",
		fmt.Sprintf(locale.Get("STATUS_LINE"), snap.Grid.X, snap.Grid.Y, snap.Facing),
		snap.Pixel.X, snap.Pixel.Y, snap.Camera.X, snap.Camera.Y, snap.Mode)
	face := e.getMonoFontFace()
	vector.DrawFilledRect(screen, 0, 0, float32(e.getTextWidth(status, face)+16), float32(face.Size+12), colorPanel, false)
	e.drawText(screen, status, 8, 6, colorText, face)
}

// drawMessages draws the message log bottom-left, fading each line with age
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap *renderer.Snapshot) {
	if len(snap.Messages) == 0 {
		return
	}
	now := time.Now().UnixMilli()
	face := e.getUIFontFace()
	h := screen.Bounds().Dy()
	y := float64(h) - float64(len(snap.Messages))*messageSpacing - 10

	for _, msg := range snap.Messages {
		age := now - msg.Timestamp
		alpha := 1 - float64(age)/messageFadeMs
		if alpha > 0 {
			e.drawText(screen, msg.Text, 12, y, applyAlpha(colorText, alpha), face)
		}
		y += messageSpacing
	}
}

// drawPanel draws a bordered panel
func drawPanel(screen *ebiten.Image, x, y, w, h float32) {
	vector.DrawFilledRect(screen, x-2, y-2, w+4, h+4, colorPanelBorder, false)
	vector.DrawFilledRect(screen, x, y, w, h, colorPanel, false)
}

// drawModal draws the active zone's payload in a centred panel
func (e *EbitenRenderer) drawModal(screen *ebiten.Image, snap *renderer.Snapshot) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := float64(panelMargin)
	y := float64(panelMargin)
	w := float64(sw) - 2*panelMargin
	h := float64(sh) - 2*panelMargin
	drawPanel(screen, float32(x), float32(y), float32(w), float32(h))

	cursor := y + panelPadding
	title := snap.Zone.Payload.Title
	if title == "" {
		title = snap.Zone.Name
	}
	titleFace := e.getTitleFontFace()
	tw := e.getTextWidth(title, titleFace)
	e.drawText(screen, title, x+(w-tw)/2, cursor, colorPanelBorder, titleFace)
	cursor += titleFace.Size * 2

	e.drawWrapped(screen, snap.Zone.Payload.Content, x+panelPadding, cursor, w-2*panelPadding, colorText, e.getUIFontFace())

	hint := locale.Get("MODAL_CLOSE_HINT")
	face := e.getUIFontFace()
	hw := e.getTextWidth(hint, face)
	e.drawText(screen, hint, x+(w-hw)/2, y+h-panelPadding-face.Size, colorSubtle, face)
}

// drawTextBox draws character dialogue in a strip along the bottom
func (e *EbitenRenderer) drawTextBox(screen *ebiten.Image, snap *renderer.Snapshot) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := float64(panelPadding)
	w := float64(sw) - 2*panelPadding
	y := float64(sh) - textBoxHeight - panelPadding
	drawPanel(screen, float32(x), float32(y), float32(w), textBoxHeight)

	face := e.getUIFontFace()
	name := snap.Zone.Payload.Title
	if name == "" {
		name = snap.Zone.Name
	}
	e.drawText(screen, name, x+panelPadding, y+12, colorPanelBorder, face)
	e.drawWrapped(screen, snap.Zone.Payload.Content, x+panelPadding, y+12+face.Size*1.6, w-2*panelPadding, colorText, face)

	hint := locale.Get("TEXTBOX_CLOSE_HINT")
	hw := e.getTextWidth(hint, face)
	e.drawText(screen, hint, x+w-panelPadding-hw, y+textBoxHeight-face.Size-10, colorSubtle, face)
}
