package snow

import (
	"context"

	"go.uber.org/zap"
)

// State is the lifecycle of a Driver
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	default:
		return "stopped"
	}
}

// Driver runs the per-frame pass: advance the field, then clear and draw.
// The host calls Tick and Render once per display refresh; both are no-ops
// unless the driver is running.
type Driver struct {
	field    *Field
	cursor   *Cursor
	viewport *Viewport
	logger   *zap.Logger

	state  State
	ctx    context.Context
	frames uint64
}

// NewDriver wires the driver to its field, cursor and viewport
func NewDriver(field *Field, cursor *Cursor, viewport *Viewport, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{
		field:    field,
		cursor:   cursor,
		viewport: viewport,
		logger:   logger.Named("driver"),
		state:    Stopped,
	}
}

// Start moves the driver to Running. Cancelling ctx stops it at the next frame.
func (d *Driver) Start(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	d.ctx = ctx
	if d.state == Running {
		return
	}
	d.state = Running
	d.logger.Debug("Driver started")
}

// Stop moves the driver to Stopped. It is safe to call repeatedly or before Start.
func (d *Driver) Stop() {
	if d.state == Stopped {
		return
	}
	d.state = Stopped
	d.logger.Debug("Driver stopped", zap.Uint64("frames", d.frames))
}

// Running reports whether frames are being produced
func (d *Driver) Running() bool {
	if d.state == Running && d.ctx != nil && d.ctx.Err() != nil {
		d.Stop()
	}
	return d.state == Running
}

// State returns the current lifecycle state
func (d *Driver) State() State {
	d.Running()
	return d.state
}

// Frames returns the number of ticks advanced since creation
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Tick advances the field by one step. It returns false when nothing ran.
func (d *Driver) Tick() bool {
	if !d.Running() || !d.viewport.Ready() {
		return false
	}
	w, h := d.viewport.Size()
	d.field.Step(d.cursor, w, h)
	d.frames++
	return true
}

// Render clears s and draws every particle
func (d *Driver) Render(s Surface) {
	if s == nil || !d.Running() || !d.viewport.Ready() {
		return
	}
	s.Clear()
	d.field.Draw(s)
}
