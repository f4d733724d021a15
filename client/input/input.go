package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsTapJustPressed returns a boolean value indicating whether a tap just
// landed. This is used to handle both mouse and touch inputs.
func IsTapJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// TapPosition returns the screen position of the current tap. Touch wins
// over the cursor when both are present.
func TapPosition() (int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// IsBackJustPressed returns a boolean value indicating whether the generic
// back/cancel input is just pressed.
func IsBackJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsQuitJustPressed returns a boolean value indicating whether the quit
// input is just pressed.
func IsQuitJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyQ)
}
