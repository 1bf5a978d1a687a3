package sprite

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// Sprite geometry constants, in logical units
const (
	BaseRadius = 10.0
	lineWidth  = 1.0
	sectors    = 6
	miterLimit = 4.0
)

var spriteColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Size returns the side length in device pixels of a raster rendered at scale
func Size(scale float64) int {
	return int(BaseRadius * 2 * normalizeScale(scale))
}

func normalizeScale(scale float64) float64 {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return 1
	}
	return scale
}

// Render rasterizes a single pattern onto a new square RGBA image.
// The image is Size(scale) pixels wide and the shape is centered on it.
// Unknown patterns are drawn with the asterisk recipe.
func Render(p Pattern, scale float64) *image.RGBA {
	scale = normalizeScale(scale)
	size := Size(scale)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	pn := newPen(img, scale)
	pn.translate(BaseRadius, BaseRadius)

	if p == Dot {
		pn.fillCircle(0, 0, BaseRadius/2)
		return img
	}

	// Each rotation composes with the previous one, so the motif lands at
	// 60, 120, ... 360 degrees.
	for i := 0; i < sectors; i++ {
		pn.rotate(math.Pi / (sectors / 2))
		switch p {
		case Branches:
			drawBranch(pn)
		case Spearheads:
			drawSpearhead(pn)
		default:
			drawAsteriskStroke(pn)
		}
	}
	return img
}

func drawAsteriskStroke(pn *pen) {
	adjusted := BaseRadius - 1
	pn.strokePath(false, pt{0, 0}, pt{0, adjusted})
}

func drawBranch(pn *pen) {
	adjusted := BaseRadius - 0.5
	spurPos := -adjusted * 0.5
	spurLength := adjusted * 0.35

	// stem
	pn.strokePath(false, pt{0, 0}, pt{0, -adjusted})
	// side spurs
	pn.strokePath(false, pt{0, spurPos}, pt{-spurLength, spurPos - spurLength})
	pn.strokePath(false, pt{0, spurPos}, pt{spurLength, spurPos - spurLength})
}

func drawSpearhead(pn *pen) {
	adjusted := BaseRadius - 0.5
	headStart := -adjusted * 0.6
	headEnd := -adjusted
	headWidth := adjusted * 0.2

	// shaft
	pn.strokePath(false, pt{0, 0}, pt{0, -adjusted * 0.5})

	head := []pt{
		{0, headEnd},
		{-headWidth, headStart},
		{0, headStart + adjusted*0.1}, // notch
		{headWidth, headStart},
	}
	pn.strokePath(true, head...)
	pn.fillPath(head...)
}

type pt struct {
	x, y float64
}

// pen is a minimal 2D context: an affine transform plus a stroker and a
// filler sharing one scanner over the destination image.
type pen struct {
	m       f64.Aff3
	scale   float64
	stroker *rasterx.Stroker
	filler  *rasterx.Filler
}

func newPen(img *image.RGBA, scale float64) *pen {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())

	stroker := rasterx.NewStroker(w, h, scanner)
	width := lineWidth * scale
	stroker.SetStroke(toFixed(width), toFixed(miterLimit*width),
		rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round)
	stroker.SetColor(spriteColor)

	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(spriteColor)

	return &pen{
		m:       scaleAff(scale),
		scale:   scale,
		stroker: stroker,
		filler:  filler,
	}
}

func (pn *pen) translate(tx, ty float64) {
	pn.m = mulAff(pn.m, f64.Aff3{1, 0, tx, 0, 1, ty})
}

func (pn *pen) rotate(theta float64) {
	s, c := math.Sincos(theta)
	pn.m = mulAff(pn.m, f64.Aff3{c, -s, 0, s, c, 0})
}

func (pn *pen) apply(p pt) fixed.Point26_6 {
	x := pn.m[0]*p.x + pn.m[1]*p.y + pn.m[2]
	y := pn.m[3]*p.x + pn.m[4]*p.y + pn.m[5]
	return rasterx.ToFixedP(x, y)
}

func (pn *pen) strokePath(closed bool, pts ...pt) {
	if len(pts) < 2 {
		return
	}
	pn.stroker.Clear()
	pn.stroker.Start(pn.apply(pts[0]))
	for _, p := range pts[1:] {
		pn.stroker.Line(pn.apply(p))
	}
	pn.stroker.Stop(closed)
	pn.stroker.Draw()
	pn.stroker.Clear()
}

func (pn *pen) fillPath(pts ...pt) {
	if len(pts) < 3 {
		return
	}
	pn.filler.Clear()
	pn.filler.Start(pn.apply(pts[0]))
	for _, p := range pts[1:] {
		pn.filler.Line(pn.apply(p))
	}
	pn.filler.Stop(true)
	pn.filler.Draw()
	pn.filler.Clear()
}

// fillCircle only supports the translate+scale transforms used for the dot
func (pn *pen) fillCircle(cx, cy, r float64) {
	x := pn.m[0]*cx + pn.m[1]*cy + pn.m[2]
	y := pn.m[3]*cx + pn.m[4]*cy + pn.m[5]
	pn.filler.Clear()
	rasterx.AddCircle(x, y, r*pn.scale, pn.filler)
	pn.filler.Draw()
	pn.filler.Clear()
}

func scaleAff(s float64) f64.Aff3 {
	return f64.Aff3{s, 0, 0, 0, s, 0}
}

// mulAff returns m*n: n is applied first
func mulAff(m, n f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		m[0]*n[0] + m[1]*n[3],
		m[0]*n[1] + m[1]*n[4],
		m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3],
		m[3]*n[1] + m[4]*n[4],
		m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
