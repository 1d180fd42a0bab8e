package input

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read the rest of an arrow key escape sequence.
// A lone escape is reported as "escape".
func tryReadArrowKey() string {
	b2, err := readByte()
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}

// codeForByte converts a single keypress byte into a binding code
func codeForByte(b byte) string {
	switch {
	case b == ' ':
		return "space"
	case b == '\r' || b == '\n':
		return "enter"
	case b == 127 || b == 8:
		return "backspace"
	case b >= 'A' && b <= 'Z':
		return string(rune(b - 'A' + 'a'))
	case b >= 32 && b < 127:
		return string(rune(b))
	default:
		return ""
	}
}

// ReadKey blocks until one key is pressed on the terminal and returns its
// binding code ("arrow_up", "space", "w", ...). Ctrl+C returns "q".
func ReadKey() (string, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("set terminal raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	b, err := readByte()
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	if b == 3 {
		return "q", nil
	}
	if b == 0x1b {
		return tryReadArrowKey(), nil
	}
	return codeForByte(b), nil
}
