package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"townwalk/pkg/game/renderer"
)

// drawText draws one line with its top-left corner at x, y.
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawWrapped draws str wrapped to width and returns the height used
func (e *EbitenRenderer) drawWrapped(screen *ebiten.Image, str string, x, y, width float64, col color.Color, face *text.GoTextFace) float64 {
	lineHeight := face.Size * 1.4
	lines := renderer.Wrap(str, width, func(s string) float64 {
		w, _ := text.Measure(s, face, 0)
		return w
	})
	for i, line := range lines {
		e.drawText(screen, line, x, y+float64(i)*lineHeight, col, face)
	}
	return float64(len(lines)) * lineHeight
}

// getTextWidth returns the width of a string in pixels using the given font face.
func (e *EbitenRenderer) getTextWidth(str string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(str, face, 0)
	return w
}

// applyAlpha applies an alpha value to a color
func applyAlpha(c color.Color, alpha float64) color.Color {
	if alpha <= 0 {
		alpha = 0
	}
	if alpha > 1.0 {
		alpha = 1.0
	}

	r, g, b, a := c.RGBA()
	// RGBA returns values in 0-65535 range, convert to 0-255
	r8 := uint8(r >> 8)
	g8 := uint8(g >> 8)
	b8 := uint8(b >> 8)
	a8 := uint8(a >> 8)

	// Premultiplied: scale RGB along with alpha
	return color.RGBA{
		uint8(float64(r8) * alpha),
		uint8(float64(g8) * alpha),
		uint8(float64(b8) * alpha),
		uint8(float64(a8) * alpha),
	}
}
