package snow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowfall/random"
	"snowfall/sprite"
)

func still(x, y, radius float64) Particle {
	return Particle{X: x, Y: y, Radius: radius, Density: density, Pattern: sprite.Dot}
}

func TestNewParticleRanges(t *testing.T) {
	rng := random.NewSeeded(3, 5)
	for i := 0; i < 1000; i++ {
		p := NewParticle(rng, 800, 600, 6, sprite.Branches)
		assert.Equal(t, 6.0, p.Radius)
		assert.Equal(t, density, p.Density)
		assert.GreaterOrEqual(t, p.Rotation, 0.0)
		assert.Less(t, p.Rotation, math.Pi)
		assert.GreaterOrEqual(t, p.RotationSpeed, -0.02)
		assert.Less(t, p.RotationSpeed, 0.02)
		assert.GreaterOrEqual(t, p.SpeedX, -0.5)
		assert.Less(t, p.SpeedX, 0.5)
		assert.Greater(t, p.SpeedY, 0.5)
		assert.LessOrEqual(t, p.SpeedY, 1.0)
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 800.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 600.0)
	}
}

func TestRepulsionPushesAwayFromCursor(t *testing.T) {
	c := NewCursor()
	c.SetActive(110, 100)
	p := still(100, 100, 5)

	p.Update(random.Fixed(0.5), c, 800, 600)

	// distance 10, force (60-10)/60, push 50*force along +x, subtracted
	assert.InDelta(t, 100-50*(50.0/60.0), p.X, 1e-9)
	assert.InDelta(t, 58.33, p.X, 0.01)
	assert.InDelta(t, 100, p.Y, 1e-9)
}

func TestRepulsionOnlyInsideRadius(t *testing.T) {
	c := NewCursor()
	c.SetActive(160, 100)

	p := still(100, 100, 5) // exactly on the edge
	p.Update(random.Fixed(0.5), c, 800, 600)
	assert.Equal(t, 100.0, p.X)

	p = still(100, 100, 5)
	c.SetActive(159, 100)
	p.Update(random.Fixed(0.5), c, 800, 600)
	assert.Less(t, p.X, 100.0)
}

func TestRepulsionAtZeroDistanceIsNoop(t *testing.T) {
	c := NewCursor()
	c.SetActive(100, 100)
	p := still(100, 100, 5)

	require.NotPanics(t, func() { p.Update(random.Fixed(0.5), c, 800, 600) })
	assert.False(t, math.IsNaN(p.X))
	assert.False(t, math.IsNaN(p.Y))
	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, 100.0, p.Y)
}

func TestParkedCursorNeverRepels(t *testing.T) {
	c := NewCursor()
	c.SetActive(10, 10)
	c.SetParked()
	require.False(t, c.Active())

	for x := 0.0; x < 800; x += 7 {
		for y := 0.0; y < 600; y += 11 {
			p := still(x, y, 5)
			p.Update(random.Fixed(0.5), c, 800, 600)
			assert.Equal(t, x, p.X)
			assert.Equal(t, y, p.Y)
		}
	}
}

func TestParkedTarget(t *testing.T) {
	c := NewCursor()
	x, y := c.Target()
	assert.Equal(t, -CursorRadius, x)
	assert.Equal(t, -CursorRadius, y)

	c.SetActive(3, 4)
	x, y = c.Target()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestResetWhenOffField(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"left", -65, 100},
		{"right", 866, 100},
		{"bottom", 400, 661},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor()
			p := still(tt.x, tt.y, 7)
			p.Update(random.Fixed(0.25), c, 800, 600)
			assert.Equal(t, 200.0, p.X, "x re-sampled within [0, width)")
			assert.Equal(t, -7.0, p.Y)
			assert.Equal(t, 7.0, p.Radius)
		})
	}
}

func TestNoResetAboveTop(t *testing.T) {
	c := NewCursor()
	p := still(400, -500, 7)
	p.Update(random.Fixed(0.25), c, 800, 600)
	assert.Equal(t, 400.0, p.X)
	assert.Equal(t, -500.0, p.Y)
}

func TestMotionIntegration(t *testing.T) {
	c := NewCursor()
	p := still(400, 300, 5)
	p.SpeedX = -0.25
	p.SpeedY = 0.75
	p.Update(random.Fixed(0.5), c, 800, 600)
	assert.Equal(t, 399.75, p.X)
	assert.Equal(t, 300.75, p.Y)
}

func TestRotationStaysWrapped(t *testing.T) {
	c := NewCursor()
	for _, speed := range []float64{-0.02, -0.019, 0.019, 0.02} {
		p := still(400, 300, 5)
		p.RotationSpeed = speed
		for i := 0; i < 2000; i++ {
			p.Update(random.Fixed(0.5), c, 800, 600)
			require.GreaterOrEqual(t, p.Rotation, 0.0)
			require.Less(t, p.Rotation, 2*math.Pi)
			p.Y = 300
		}
	}
}

func TestWrapAngle(t *testing.T) {
	assert.Equal(t, 0.0, wrapAngle(0))
	assert.InDelta(t, 2*math.Pi-0.01, wrapAngle(-0.01), 1e-12)
	assert.InDelta(t, 0.01, wrapAngle(2*math.Pi+0.01), 1e-12)
	assert.Equal(t, 0.0, wrapAngle(-1e-300))
}
