package sprite

import "image"

// Set holds one raster per pattern. Rasters are shared by every particle of
// their pattern and must not be modified after NewSet returns.
type Set struct {
	scale   float64
	rasters [Count]*image.RGBA
}

// NewSet renders each of the four patterns exactly once at the given device scale
func NewSet(scale float64) *Set {
	s := &Set{scale: normalizeScale(scale)}
	for _, p := range Patterns() {
		s.rasters[p] = Render(p, s.scale)
	}
	return s
}

// Raster returns the shared raster for p, or nil if p is not a defined pattern
func (s *Set) Raster(p Pattern) *image.RGBA {
	if !p.Valid() {
		return nil
	}
	return s.rasters[p]
}

// Scale returns the device scale the set was rendered at
func (s *Set) Scale() float64 {
	return s.scale
}

