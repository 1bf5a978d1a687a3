package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugState holds debug flags that can be toggled at runtime
type DebugState struct {
	ShowOverlay bool // FPS, particle count and cursor state in the corner
}

// Toggle flips the overlay
func (d *DebugState) Toggle() {
	d.ShowOverlay = !d.ShowOverlay
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	if !g.debug.ShowOverlay {
		return
	}
	w, h := g.viewport.Size()
	pw, ph := g.viewport.PixelSize()
	cursor := "parked"
	if g.cursor.Active() {
		x, y := g.cursor.Target()
		cursor = fmt.Sprintf("%.0f,%.0f", x, y)
	}
	msg := fmt.Sprintf("FPS: %.1f\nFlakes: %d\nSize: %.0fx%.0f (%dx%d px, scale %.2f)\nCursor: %s\nFrames: %d",
		ebiten.ActualFPS(), g.field.Len(), w, h, pw, ph, g.viewport.Scale(), cursor, g.driver.Frames())
	ebitenutil.DebugPrint(screen, msg)
}
