package ebiten

import "image/color"

// Color palette for the town placeholders
var (
	colorBackground    = color.RGBA{15, 15, 26, 255}    // Outside the map
	colorGrass         = color.RGBA{96, 160, 88, 255}   // Walkable ground
	colorGrassAlt      = color.RGBA{88, 150, 80, 255}   // Checkerboard variant
	colorWall          = color.RGBA{60, 60, 80, 255}    // Blocked in the base grid
	colorFootprint     = color.RGBA{120, 90, 60, 255}   // Blocked by a character or overlay
	colorDoor          = color.RGBA{200, 160, 80, 255}  // Walk-over zone cells
	colorCharacter     = color.RGBA{220, 80, 80, 255}   // Facing zones with dialogue
	colorSign          = color.RGBA{230, 210, 140, 255} // Facing zones with a modal
	colorPlayer        = color.RGBA{40, 90, 220, 255}   // Actor body
	colorPlayerFacing  = color.RGBA{250, 250, 250, 255} // Facing marker
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Hints
	colorPanel         = color.RGBA{30, 30, 50, 235}    // Modal and text box background
	colorPanelBorder   = color.RGBA{180, 150, 250, 255} // Blue-purple border
	colorDebugGrid     = color.RGBA{0, 0, 0, 60}
	colorDebugWalkOver = color.RGBA{255, 220, 100, 255}
	colorDebugFacing   = color.RGBA{100, 200, 255, 255}
	colorDebugBlocked  = color.RGBA{255, 80, 80, 90}
	colorFade          = color.RGBA{0, 0, 0, 255}
)

// Layout sizes in pixels
const (
	uiFontSize     = 16.0
	titleFontSize  = 22.0
	monoFontSize   = 13.0
	panelPadding   = 20
	panelMargin    = 60
	textBoxHeight  = 130
	messageSpacing = 20
	messageFadeMs  = 4000 // messages fade out over this long
)
