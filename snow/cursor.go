package snow

// CursorRadius is the radius of the repulsion zone in logical pixels
const CursorRadius = 60.0

// Cursor tracks the last known pointer position. A parked cursor has no
// position and behaves as if it sat at (-Radius, -Radius), outside the field.
type Cursor struct {
	Radius float64
	x, y   float64
	active bool
}

// NewCursor returns a parked cursor with the fixed interaction radius
func NewCursor() *Cursor {
	return &Cursor{Radius: CursorRadius}
}

// SetActive records the pointer position on pointer-down or pointer-move
func (c *Cursor) SetActive(x, y float64) {
	c.x, c.y = x, y
	c.active = true
}

// SetParked clears the position on pointer-up or when the pointer leaves the surface
func (c *Cursor) SetParked() {
	c.x, c.y = 0, 0
	c.active = false
}

// Active reports whether the cursor currently has a position
func (c *Cursor) Active() bool {
	return c.active
}

// Target returns the point particles are repelled from
func (c *Cursor) Target() (float64, float64) {
	if !c.active {
		return -c.Radius, -c.Radius
	}
	return c.x, c.y
}
