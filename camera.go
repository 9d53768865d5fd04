package linview

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Zoom bounds in pixels per world unit.
const (
	MinZoom = 20.0
	MaxZoom = 400.0
)

// wheelZoomRate converts a wheel delta into an exponential zoom factor.
const wheelZoomRate = 0.001

// glideAnim holds active glide tweens for camera offset and zoom.
type glideAnim struct {
	tweenX    *gween.Tween
	tweenY    *gween.Tween
	tweenZoom *gween.Tween
	doneX     bool
	doneY     bool
	doneZoom  bool
}

// Camera maps world coordinates (the mathematical plane) to screen pixels and
// back. Screen Y increases downward, world Y increases upward, so the Y axis
// is flipped in both directions.
type Camera struct {
	// OffsetX and OffsetY are the world-space point the camera centers on.
	OffsetX, OffsetY float64
	// Zoom is the scale in pixels per world unit, kept within
	// [MinZoom, MaxZoom].
	Zoom float64

	glide *glideAnim
}

// NewCamera returns a camera centered on the origin at the given zoom.
func NewCamera(zoom float64) *Camera {
	return &Camera{Zoom: Clamp(zoom, MinZoom, MaxZoom)}
}

// WorldToScreen converts a world point to screen pixels for a viewport of
// w×h pixels.
func (c *Camera) WorldToScreen(p Vec2, w, h float64) Vec2 {
	return Vec2{
		X: (p.X-c.OffsetX)*c.Zoom + w/2,
		Y: h/2 - (p.Y-c.OffsetY)*c.Zoom,
	}
}

// ScreenToWorld is the exact inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(p Vec2, w, h float64) Vec2 {
	return Vec2{
		X: (p.X-w/2)/c.Zoom + c.OffsetX,
		Y: (h/2-p.Y)/c.Zoom + c.OffsetY,
	}
}

// Pan shifts the camera by a screen-pixel delta. The shift is divided by the
// zoom to land in world units and inverted on Y to match the flipped screen
// convention. Cancels any active glide.
func (c *Camera) Pan(dxPix, dyPix float64) {
	c.glide = nil
	c.OffsetX -= dxPix / c.Zoom
	c.OffsetY += dyPix / c.Zoom
}

// ZoomAt applies a wheel delta as an exponential zoom factor, clamps the
// result to bounds, and adjusts the offset so the world point under the
// cursor stays fixed on screen. Cancels any active glide.
func (c *Camera) ZoomAt(cursor Vec2, wheelDY, w, h float64) {
	c.glide = nil
	anchor := c.ScreenToWorld(cursor, w, h)

	factor := math.Exp(-wheelDY * wheelZoomRate)
	c.Zoom = Clamp(c.Zoom*factor, MinZoom, MaxZoom)

	// Re-derive where the anchor lands at the new zoom and shift the offset
	// by the drift so the cursor keeps pointing at the same world point.
	after := c.ScreenToWorld(cursor, w, h)
	c.OffsetX += anchor.X - after.X
	c.OffsetY += anchor.Y - after.Y
}

// GlideTo animates the camera to the given offset and zoom over duration
// seconds. The target zoom is clamped to bounds before the tween starts.
func (c *Camera) GlideTo(x, y, zoom float64, duration float32, easeFn ease.TweenFunc) {
	zoom = Clamp(zoom, MinZoom, MaxZoom)
	c.glide = &glideAnim{
		tweenX:    gween.New(float32(c.OffsetX), float32(x), duration, easeFn),
		tweenY:    gween.New(float32(c.OffsetY), float32(y), duration, easeFn),
		tweenZoom: gween.New(float32(c.Zoom), float32(zoom), duration, easeFn),
	}
}

// Gliding reports whether a glide animation is in progress.
func (c *Camera) Gliding() bool {
	return c.glide != nil
}

// Update advances an active glide by dt seconds. No-op when idle.
func (c *Camera) Update(dt float32) {
	if c.glide == nil {
		return
	}
	g := c.glide
	if !g.doneX {
		val, done := g.tweenX.Update(dt)
		c.OffsetX = float64(val)
		g.doneX = done
	}
	if !g.doneY {
		val, done := g.tweenY.Update(dt)
		c.OffsetY = float64(val)
		g.doneY = done
	}
	if !g.doneZoom {
		val, done := g.tweenZoom.Update(dt)
		c.Zoom = Clamp(float64(val), MinZoom, MaxZoom)
		g.doneZoom = done
	}
	if g.doneX && g.doneY && g.doneZoom {
		c.glide = nil
	}
}
