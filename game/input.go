package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"snowfall/snow"
)

// pointerFeed samples ebiten mouse and touch state for the cursor tracker
type pointerFeed struct {
	touchIDs []ebiten.TouchID
	tracker  snow.PointerTracker
}

func newPointerFeed() *pointerFeed {
	return &pointerFeed{touchIDs: make([]ebiten.TouchID, 0, 4)}
}

// poll reads this frame's input. Positions arrive in device pixels and are
// converted to logical coordinates with scale.
func (f *pointerFeed) poll(cursor *snow.Cursor, scale, width, height float64) {
	s := snow.PointerSample{
		Width:   width,
		Height:  height,
		Focused: ebiten.IsFocused(),
	}

	f.touchIDs = ebiten.AppendTouchIDs(f.touchIDs[:0])
	if len(f.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(f.touchIDs[0])
		s.X, s.Y = float64(tx)/scale, float64(ty)/scale
		s.Touch = true
	} else {
		mx, my := ebiten.CursorPosition()
		s.X, s.Y = float64(mx)/scale, float64(my)/scale
		s.Pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		s.Released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	}

	f.tracker.Apply(cursor, s)
}
