package snow

import (
	"go.uber.org/zap"
)

// Viewport tracks the logical surface size and device scale, and repopulates
// the field whenever either changes.
type Viewport struct {
	field  *Field
	logger *zap.Logger

	width, height float64
	scale         float64
	pixelW        int
	pixelH        int
	sized         bool
}

// NewViewport creates a viewport driving field. It starts with no size.
func NewViewport(field *Field, logger *zap.Logger) *Viewport {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Viewport{
		field:  field,
		logger: logger.Named("viewport"),
		scale:  1,
	}
}

// Resize applies a new logical size and device scale. It returns the surface
// size in device pixels and whether the field was repopulated.
// A non-positive size is ignored.
func (v *Viewport) Resize(width, height, scale float64) (int, int, bool) {
	if !(width > 0) || !(height > 0) {
		return v.pixelW, v.pixelH, false
	}
	if !(scale > 0) {
		scale = 1
	}
	if width == v.width && height == v.height && scale == v.scale && v.sized {
		return v.pixelW, v.pixelH, false
	}

	v.width, v.height, v.scale = width, height, scale
	v.sized = true
	v.pixelW = int(width * scale)
	v.pixelH = int(height * scale)
	v.field.Populate(width, height)

	v.logger.Info("Surface resized",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Float64("scale", scale),
		zap.Int("pixel_width", v.pixelW),
		zap.Int("pixel_height", v.pixelH),
		zap.Int("particles", v.field.Len()),
	)
	return v.pixelW, v.pixelH, true
}

// Size returns the current logical size
func (v *Viewport) Size() (float64, float64) {
	return v.width, v.height
}

// Scale returns the current device pixel ratio
func (v *Viewport) Scale() float64 {
	return v.scale
}

// PixelSize returns the current surface size in device pixels
func (v *Viewport) PixelSize() (int, int) {
	return v.pixelW, v.pixelH
}

// Ready reports whether a usable size has been applied
func (v *Viewport) Ready() bool {
	return v.pixelW > 0 && v.pixelH > 0
}
