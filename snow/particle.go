package snow

import (
	"math"

	"snowfall/random"
	"snowfall/sprite"
)

// Particle constants
const (
	radiusMin        = 4.0
	radiusMax        = 10.0
	rotationSpeedMax = 0.02
	speedXMax        = 0.5
	density          = 50.0
	fullTurn         = 2 * math.Pi
)

// Particle is a single snowflake. Radius is fixed at creation.
type Particle struct {
	X, Y          float64
	Radius        float64
	Rotation      float64 // radians, kept in [0, 2π)
	RotationSpeed float64 // radians per tick, signed
	SpeedX        float64
	SpeedY        float64
	Density       float64 // weight of the repulsion push
	Pattern       sprite.Pattern
}

// NewParticle places a particle uniformly inside width x height
func NewParticle(rng random.Source, width, height, radius float64, pattern sprite.Pattern) Particle {
	return Particle{
		Rotation:      rng.Range(0, math.Pi),
		Density:       density,
		RotationSpeed: rng.Range(-rotationSpeedMax, rotationSpeedMax),
		SpeedX:        rng.Range(-speedXMax, speedXMax),
		// Bounds are intentionally passed high-to-low: Range(1, 0.5) falls in (0.5, 1].
		SpeedY:  rng.Range(1, 0.5),
		X:       rng.Range(0, width),
		Y:       rng.Range(0, height),
		Radius:  radius,
		Pattern: pattern,
	}
}

// Update advances the particle by one tick: drift, spin, cursor repulsion and
// the reset to the top once it leaves the field.
func (p *Particle) Update(rng random.Source, c *Cursor, width, height float64) {
	p.X += p.SpeedX
	p.Y += p.SpeedY
	p.Rotation = wrapAngle(p.Rotation + p.RotationSpeed)

	tx, ty := c.Target()
	dx := tx - p.X
	dy := ty - p.Y
	distance := math.Hypot(dx, dy)

	// distance 0 has no direction to push along
	if distance < c.Radius && distance > 0 {
		forceX := dx / distance
		forceY := dy / distance
		force := (c.Radius - distance) / c.Radius
		p.X -= forceX * force * p.Density
		p.Y -= forceY * force * p.Density
	}

	outsideLeft := p.X < -c.Radius
	outsideRight := p.X > width+c.Radius
	outsideBottom := p.Y > height+c.Radius
	if outsideLeft || outsideRight || outsideBottom {
		p.X = rng.Range(0, width)
		p.Y = -p.Radius
	}
}

// wrapAngle maps any angle into [0, 2π)
func wrapAngle(a float64) float64 {
	a = math.Mod(a, fullTurn)
	if a < 0 {
		a += fullTurn
	}
	if a >= fullTurn {
		a = 0
	}
	return a
}
