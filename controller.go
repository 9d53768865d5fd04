package linview

// probeHitRadius is the screen-space grab radius around the probe tip.
const probeHitRadius = 16.0

// controllerMode is the gesture state machine's current state.
type controllerMode uint8

const (
	modeIdle controllerMode = iota
	modeDraggingVector
	modePanning
)

// Controller interprets pointer and wheel events on the viewport as probe
// drags, camera pans, zooms, or click-to-relocate. It consumes plain
// screen-space coordinates so the host surface stays a thin polling shim.
// Every handler is synchronous and idempotent for repeated identical events.
type Controller struct {
	state *State

	mode  controllerMode
	lastX float64
	lastY float64
	moved bool
}

// NewController returns a controller mutating the given state.
func NewController(state *State) *Controller {
	return &Controller{state: state}
}

// Dragging reports whether the probe tip is being dragged.
func (c *Controller) Dragging() bool {
	return c.mode == modeDraggingVector
}

// Panning reports whether the camera is being panned.
func (c *Controller) Panning() bool {
	return c.mode == modePanning
}

// PointerDown starts a gesture. A press within probeHitRadius pixels of the
// probe tip's interpolated screen position begins a vector drag; anything
// else begins a pan.
func (c *Controller) PointerDown(pos Vec2, w, h float64) {
	s := c.state
	tip := Interpolate(s.Probe, s.Matrix, s.T)
	tipScreen := s.Camera.WorldToScreen(tip, w, h)

	dx := pos.X - tipScreen.X
	dy := pos.Y - tipScreen.Y
	if dx*dx+dy*dy <= probeHitRadius*probeHitRadius {
		c.mode = modeDraggingVector
	} else {
		c.mode = modePanning
	}
	c.lastX = pos.X
	c.lastY = pos.Y
	c.moved = false
}

// PointerMove advances the active gesture. While dragging, the probe follows
// the pointer in world space; while panning, the camera shifts by the pixel
// delta since the last move.
func (c *Controller) PointerMove(pos Vec2, w, h float64) {
	switch c.mode {
	case modeDraggingVector:
		world := c.state.Camera.ScreenToWorld(pos, w, h)
		c.state.Apply(SetProbe{V: world})
		c.moved = true
	case modePanning:
		dx := pos.X - c.lastX
		dy := pos.Y - c.lastY
		if dx != 0 || dy != 0 {
			c.state.Camera.Pan(dx, dy)
			c.moved = true
		}
	default:
		return
	}
	c.lastX = pos.X
	c.lastY = pos.Y
}

// PointerUp ends the gesture. A pan that never moved is a plain click and
// relocates the probe to the clicked world point.
func (c *Controller) PointerUp(pos Vec2, w, h float64) {
	if c.mode == modePanning && !c.moved {
		world := c.state.Camera.ScreenToWorld(pos, w, h)
		c.state.Apply(SetProbe{V: world})
	}
	c.mode = modeIdle
	c.moved = false
}

// PointerLeave cancels any gesture without the click-to-relocate behavior.
func (c *Controller) PointerLeave() {
	c.mode = modeIdle
	c.moved = false
}

// Wheel zooms the camera around the cursor.
func (c *Controller) Wheel(cursor Vec2, deltaY, w, h float64) {
	c.state.Camera.ZoomAt(cursor, deltaY, w, h)
}
