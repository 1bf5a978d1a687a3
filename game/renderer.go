package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"snowfall/sprite"
)

// textureCache uploads the four sprite rasters once per device scale
type textureCache struct {
	logger   *zap.Logger
	scale    float64
	textures [sprite.Count]*ebiten.Image
}

func newTextureCache(logger *zap.Logger) *textureCache {
	return &textureCache{logger: logger.Named("sprites")}
}

// ensure renders the sprite set again when the device scale changed
func (c *textureCache) ensure(scale float64) {
	if c.textures[0] != nil && scale == c.scale {
		return
	}
	set := sprite.NewSet(scale)
	for _, p := range sprite.Patterns() {
		if old := c.textures[p]; old != nil {
			old.Deallocate()
		}
		c.textures[p] = ebiten.NewImageFromImage(set.Raster(p))
	}
	c.scale = set.Scale()
	c.logger.Debug("Sprites rendered",
		zap.Float64("scale", c.scale),
		zap.Int("size", sprite.Size(c.scale)),
	)
}

func (c *textureCache) get(p sprite.Pattern) *ebiten.Image {
	if !p.Valid() {
		return nil
	}
	return c.textures[p]
}

// screenSurface draws in logical coordinates onto a screen sized in device pixels
type screenSurface struct {
	screen   *ebiten.Image
	textures *textureCache
	scale    float64
	alpha    float32
}

func (s *screenSurface) bind(screen *ebiten.Image, scale float64) *screenSurface {
	s.screen = screen
	s.scale = scale
	s.alpha = 1
	return s
}

func (s *screenSurface) Clear() {
	s.screen.Clear()
}

func (s *screenSurface) SetAlpha(alpha float64) {
	s.alpha = float32(alpha)
}

// DrawSprite mirrors a canvas translate, rotate and drawImage(-r, -r, 2r, 2r)
func (s *screenSurface) DrawSprite(p sprite.Pattern, x, y, size, rotation float64) {
	img := s.textures.get(p)
	if img == nil {
		return
	}
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(size/w, size/h)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(x, y)
	op.GeoM.Scale(s.scale, s.scale)
	op.ColorScale.ScaleAlpha(s.alpha)
	op.Filter = ebiten.FilterLinear
	s.screen.DrawImage(img, op)
}
