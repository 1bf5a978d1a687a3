package snow

// PointerAction is what a frame of pointer input does to the cursor
type PointerAction int

const (
	PointerNone PointerAction = iota
	PointerActivate
	PointerPark
)

func (a PointerAction) String() string {
	switch a {
	case PointerActivate:
		return "activate"
	case PointerPark:
		return "park"
	default:
		return "none"
	}
}

// PointerSample is one frame of raw pointer state in logical coordinates.
// When Touch is set, X and Y are the first touch point; otherwise they are
// the mouse position.
type PointerSample struct {
	X, Y          float64
	Width, Height float64
	Touch         bool
	Focused       bool
	Pressed       bool
	Released      bool
}

func (s PointerSample) inside() bool {
	return s.Focused && s.X >= 0 && s.Y >= 0 && s.X < s.Width && s.Y < s.Height
}

// PointerTracker turns pointer samples into cursor updates. Down and move
// activate the cursor; up, lifting a finger and leaving the surface park it.
// Touch wins over the mouse while a finger is down.
type PointerTracker struct {
	touching bool
	primed   bool
	lastX    float64
	lastY    float64
}

// Next decides the action for s and advances the tracker
func (t *PointerTracker) Next(s PointerSample) PointerAction {
	if s.Touch {
		t.touching = true
		return PointerActivate
	}

	moved := t.primed && (s.X != t.lastX || s.Y != t.lastY)
	t.lastX, t.lastY, t.primed = s.X, s.Y, true

	if t.touching {
		// finger lifted
		t.touching = false
		return PointerPark
	}

	switch {
	case !s.inside():
		return PointerPark
	case s.Released:
		return PointerPark
	case moved || s.Pressed:
		return PointerActivate
	}
	return PointerNone
}

// Apply runs Next and updates c accordingly
func (t *PointerTracker) Apply(c *Cursor, s PointerSample) PointerAction {
	a := t.Next(s)
	switch a {
	case PointerActivate:
		c.SetActive(s.X, s.Y)
	case PointerPark:
		c.SetParked()
	}
	return a
}
