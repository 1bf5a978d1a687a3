package snow

import "snowfall/sprite"

// Surface is the drawing target for one frame, in logical coordinates
type Surface interface {
	// Clear erases the whole surface
	Clear()
	// SetAlpha sets the global paint transparency for the following draws
	SetAlpha(alpha float64)
	// DrawSprite paints the pattern's shared raster centered on (x, y),
	// scaled to size x size and rotated by rotation radians.
	DrawSprite(p sprite.Pattern, x, y, size, rotation float64)
}
