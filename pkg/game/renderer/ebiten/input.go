package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "townwalk/pkg/engine/input"
)

// keyCodes maps Ebiten keys to binding codes
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyD, "d"},
	{ebiten.KeySpace, "space"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyE, "e"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyX, "x"},
	{ebiten.KeyBackspace, "backspace"},
	{ebiten.KeyG, "g"},
	{ebiten.KeyF8, "f8"},
	{ebiten.KeyQ, "q"},
}

// Typical mapping on XInput-style controllers under Ebiten
var gamepadCodes = []struct {
	button ebiten.GamepadButton
	code   string
}{
	{ebiten.GamepadButton11, "gamepad_dpad_up"},
	{ebiten.GamepadButton12, "gamepad_dpad_right"},
	{ebiten.GamepadButton13, "gamepad_dpad_down"},
	{ebiten.GamepadButton14, "gamepad_dpad_left"},
	{ebiten.GamepadButton0, "gamepad_a"},
	{ebiten.GamepadButton1, "gamepad_b"},
}

// collectIntents returns this tick's intents. Fresh presses come first;
// a held movement key adds a repeat intent so walking continues.
func (e *EbitenRenderer) collectIntents() []engineinput.Intent {
	var intents []engineinput.Intent
	var held []engineinput.Intent

	for _, k := range keyCodes {
		switch {
		case inpututil.IsKeyJustPressed(k.key):
			intents = appendIntent(intents, intent(engineinput.DeviceKeyboard, k.code, false))
		case ebiten.IsKeyPressed(k.key):
			if in := intent(engineinput.DeviceKeyboard, k.code, true); in.IsMove() {
				held = append(held, in)
			}
		}
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		for _, b := range gamepadCodes {
			switch {
			case inpututil.IsGamepadButtonJustPressed(id, b.button):
				intents = appendIntent(intents, intent(engineinput.DeviceGamepad, b.code, false))
			case ebiten.IsGamepadButtonPressed(id, b.button):
				if in := intent(engineinput.DeviceGamepad, b.code, true); in.IsMove() {
					held = append(held, in)
				}
			}
		}
	}

	// Only the first held direction repeats
	if len(held) > 0 {
		intents = append(intents, held[0])
	}
	return intents
}

func appendIntent(intents []engineinput.Intent, in engineinput.Intent) []engineinput.Intent {
	if in.Action == engineinput.ActionNone {
		return intents
	}
	return append(intents, in)
}
