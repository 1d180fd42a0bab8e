package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// getUIFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getUIFontFace() *text.GoTextFace {
	if e.cachedUIFace == nil {
		e.cachedUIFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   uiFontSize,
		}
	}
	return e.cachedUIFace
}

// getTitleFontFace returns a cached larger face for modal titles
func (e *EbitenRenderer) getTitleFontFace() *text.GoTextFace {
	if e.cachedTitleFace == nil {
		e.cachedTitleFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   titleFontSize,
		}
	}
	return e.cachedTitleFace
}

// getMonoFontFace returns a cached monospace face for the debug overlay
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	if e.cachedMonoFace == nil {
		e.cachedMonoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   monoFontSize,
		}
	}
	return e.cachedMonoFace
}
