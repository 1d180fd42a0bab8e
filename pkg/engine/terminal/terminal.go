// Package terminal reports the dimensions of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// ViewportCells returns how many map cells fit on screen when every cell is
// cellWidth characters wide and reservedRows lines are kept for status text.
func ViewportCells(cellWidth, reservedRows int) (cols, rows int) {
	width, height := GetSize()
	return FitCells(width, height, cellWidth, reservedRows)
}

// FitCells is the size computation behind ViewportCells. Both results are at least 1.
func FitCells(width, height, cellWidth, reservedRows int) (cols, rows int) {
	if cellWidth < 1 {
		cellWidth = 1
	}
	cols = width / cellWidth
	rows = height - reservedRows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}
