package snow

import (
	"math"

	"snowfall/random"
	"snowfall/sprite"
)

// Field sizing and paint constants
const (
	areaPerParticle = 800.0
	MaxParticles    = 1000
	paintAlpha      = 0.8
)

// Field owns the live set of particles for the current surface size
type Field struct {
	rng       random.Source
	particles []Particle
}

// NewField creates an empty field drawing randomness from rng
func NewField(rng random.Source) *Field {
	return &Field{rng: rng}
}

// Count returns how many particles a width x height surface holds
func Count(width, height float64) int {
	area := width * height
	if math.IsNaN(area) || area <= 0 {
		return 0
	}
	n := math.Round(area / areaPerParticle)
	if n > MaxParticles {
		return MaxParticles
	}
	return int(n)
}

// Populate discards every particle and creates a fresh set for the new size
func (f *Field) Populate(width, height float64) {
	n := Count(width, height)
	particles := make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		radius := f.rng.Range(radiusMin, radiusMax)
		particles = append(particles, NewParticle(f.rng, width, height, radius, f.randomPattern()))
	}
	f.particles = particles
}

// randomPattern picks one of the four patterns with equal probability
func (f *Field) randomPattern() sprite.Pattern {
	idx := int(f.rng.Range(0, sprite.Count))
	if idx >= sprite.Count {
		idx = sprite.Count - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sprite.Pattern(idx)
}

// Step advances every particle by one tick. Particles are independent.
func (f *Field) Step(c *Cursor, width, height float64) {
	for i := range f.particles {
		f.particles[i].Update(f.rng, c, width, height)
	}
}

// Draw paints every particle with its shared sprite
func (f *Field) Draw(s Surface) {
	s.SetAlpha(paintAlpha)
	for i := range f.particles {
		p := &f.particles[i]
		s.DrawSprite(p.Pattern, p.X, p.Y, p.Radius*2, p.Rotation)
	}
}

// Len returns the number of live particles
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles exposes the live particles. Callers must not keep the slice
// across a Populate call.
func (f *Field) Particles() []Particle {
	return f.particles
}
