package linview

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Grid extent and sampling. Lines cover [-gridExtent, gridExtent] on both
// axes at step 1, each sampled at gridSegments segments so curved images of
// straight lines stay smooth under interpolation.
const (
	gridExtent   = 10
	gridSegments = 32
)

// Scene palette.
var (
	colorBackground = Color{R: 0.08, G: 0.08, B: 0.11, A: 1}
	colorGrid       = Color{R: 0.35, G: 0.42, B: 0.6, A: 0.55}
	colorGridFull   = Color{R: 0.3, G: 0.65, B: 0.55, A: 0.3}
	colorAxis       = Color{R: 0.85, G: 0.85, B: 0.9, A: 0.25}
	colorSquareRest = Color{R: 0.9, G: 0.9, B: 0.95, A: 0.5}
	colorSquareFull = Color{R: 0.45, G: 0.75, B: 1, A: 0.8}
	colorSquareFill = Color{R: 0.45, G: 0.75, B: 1, A: 0.18}
	colorBasisX     = Color{R: 0.55, G: 0.9, B: 0.45, A: 1}
	colorBasisY     = Color{R: 0.95, G: 0.4, B: 0.4, A: 1}
	colorPin        = Color{R: 0.7, G: 0.7, B: 0.75, A: 0.6}
	colorProbe      = Color{R: 1, G: 0.8, B: 0.25, A: 1}
	colorLabel      = Color{R: 1, G: 1, B: 1, A: 1}
)

// restAlpha dims the rest-position copies of vectors.
const restAlpha = 0.25

// toRGBA converts to a premultiplied 8-bit color for submission.
func (c Color) toRGBA() color.RGBA {
	a := Clamp(c.A, 0, 1)
	return color.RGBA{
		R: uint8(Clamp(c.R, 0, 1) * a * 255),
		G: uint8(Clamp(c.G, 0, 1) * a * 255),
		B: uint8(Clamp(c.B, 0, 1) * a * 255),
		A: uint8(a * 255),
	}
}

// opKind identifies the kind of draw op.
type opKind uint8

const (
	opPolyline opKind = iota // stroked open polyline, optionally dashed
	opPolygon                // filled convex polygon
	opLabel                  // text anchored at a screen position
)

// drawOp is a single draw instruction in screen space. The emit stage fills
// a display list of these; the submit stage strokes them. Keeping emission
// free of GPU calls lets tests inspect exactly what a frame contains.
type drawOp struct {
	kind   opKind
	points []Vec2
	color  Color
	width  float32
	dashed bool
	closed bool
	text   string
}

// whitePixel is a 1x1 white image used to fill polygons via DrawTriangles.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// Renderer draws one frame as a pure function of the state and viewport
// size. It owns only scratch buffers.
type Renderer struct {
	ops      []drawOp
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer returns a renderer with empty scratch buffers.
func NewRenderer() *Renderer {
	return &Renderer{ops: make([]drawOp, 0, 256)}
}

// Draw renders the scene for the given state onto dst. The viewport size is
// taken from dst; resizing therefore redraws at the new size immediately.
func (r *Renderer) Draw(dst *ebiten.Image, s *State) {
	w := float64(dst.Bounds().Dx())
	h := float64(dst.Bounds().Dy())
	dst.Fill(colorBackground.toRGBA())
	r.emit(s, w, h)
	r.submit(dst)
}

// emit rebuilds the display list for one frame. Op order is visual layering:
// later ops draw on top.
func (r *Renderer) emit(s *State, w, h float64) {
	r.ops = r.ops[:0]

	if s.Grid == GridOriginal || s.Grid == GridBoth {
		// The base grid follows the animated position, not frozen at t=0.
		r.emitGrid(s, s.T, colorGrid, w, h)
	}
	if s.Grid == GridTransformed || s.Grid == GridBoth {
		r.emitGrid(s, 1, colorGridFull, w, h)
	}
	r.emitAxes(s, w, h)
	r.emitUnitSquare(s, w, h)
	r.emitBasis(s, w, h)
	r.emitPins(s, w, h)
	r.emitProbe(s, w, h)
}

// emitGrid samples every grid line at the given interpolation parameter and
// appends one polyline per line.
func (r *Renderer) emitGrid(s *State, t float64, col Color, w, h float64) {
	for i := -gridExtent; i <= gridExtent; i++ {
		fixed := float64(i)
		vertical := make([]Vec2, 0, gridSegments+1)
		horizontal := make([]Vec2, 0, gridSegments+1)
		for seg := 0; seg <= gridSegments; seg++ {
			along := -gridExtent + 2*gridExtent*float64(seg)/gridSegments
			vp := Interpolate(Vec2{X: fixed, Y: along}, s.Matrix, t)
			hp := Interpolate(Vec2{X: along, Y: fixed}, s.Matrix, t)
			vertical = append(vertical, s.Camera.WorldToScreen(vp, w, h))
			horizontal = append(horizontal, s.Camera.WorldToScreen(hp, w, h))
		}
		r.ops = append(r.ops,
			drawOp{kind: opPolyline, points: vertical, color: col, width: 1},
			drawOp{kind: opPolyline, points: horizontal, color: col, width: 1},
		)
	}
}

// emitAxes draws the rest-position coordinate axes across the full viewport.
func (r *Renderer) emitAxes(s *State, w, h float64) {
	origin := s.Camera.WorldToScreen(Vec2{}, w, h)
	r.ops = append(r.ops,
		drawOp{
			kind:   opPolyline,
			points: []Vec2{{X: 0, Y: origin.Y}, {X: w, Y: origin.Y}},
			color:  colorAxis,
			width:  1,
		},
		drawOp{
			kind:   opPolyline,
			points: []Vec2{{X: origin.X, Y: 0}, {X: origin.X, Y: h}},
			color:  colorAxis,
			width:  1,
		},
	)
}

// unitSquare is the rest outline of the unit square, counter-clockwise.
var unitSquare = [4]Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// emitUnitSquare draws three overlays of the unit square: rest outline
// (dashed), fully transformed outline, and the t-interpolated image filled
// with its outline on top.
func (r *Renderer) emitUnitSquare(s *State, w, h float64) {
	rest := make([]Vec2, 4)
	full := make([]Vec2, 4)
	blend := make([]Vec2, 4)
	for i, p := range unitSquare {
		rest[i] = s.Camera.WorldToScreen(p, w, h)
		full[i] = s.Camera.WorldToScreen(s.Matrix.Apply(p), w, h)
		blend[i] = s.Camera.WorldToScreen(Interpolate(p, s.Matrix, s.T), w, h)
	}
	r.ops = append(r.ops,
		drawOp{kind: opPolyline, points: rest, color: colorSquareRest, width: 1, dashed: true, closed: true},
		drawOp{kind: opPolyline, points: full, color: colorSquareFull, width: 1.5, closed: true},
		drawOp{kind: opPolygon, points: blend, color: colorSquareFill},
		drawOp{kind: opPolyline, points: append([]Vec2(nil), blend...), color: colorSquareFull, width: 2, closed: true},
	)
}

// emitBasis draws both basis vectors faintly at rest and prominently at
// their interpolated positions, labeled with their fully transformed
// coordinates.
func (r *Renderer) emitBasis(s *State, w, h float64) {
	bases := [2]struct {
		v   Vec2
		col Color
	}{
		{Vec2{X: 1, Y: 0}, colorBasisX},
		{Vec2{X: 0, Y: 1}, colorBasisY},
	}
	for _, b := range bases {
		r.emitArrow(s, b.v, b.col.WithAlpha(restAlpha), 2, false, "", w, h)
		tip := Interpolate(b.v, s.Matrix, s.T)
		full := s.Matrix.Apply(b.v)
		r.emitArrow(s, tip, b.col, 3, false, coordLabel(full), w, h)
	}
}

// emitPins draws each pinned ghost, dashed and unlabeled, interpolating the
// captured origin/image pair directly.
func (r *Renderer) emitPins(s *State, w, h float64) {
	for _, pin := range s.Pins {
		ghost := Vec2{
			X: (1-s.T)*pin.V.X + s.T*pin.TV.X,
			Y: (1-s.T)*pin.V.Y + s.T*pin.TV.Y,
		}
		r.emitArrow(s, ghost, colorPin, 2, true, "", w, h)
	}
}

// emitProbe draws the probe faintly at rest and prominently interpolated,
// labeled with its fully transformed coordinates.
func (r *Renderer) emitProbe(s *State, w, h float64) {
	r.emitArrow(s, s.Probe, colorProbe.WithAlpha(restAlpha), 2, false, "", w, h)
	tip := Interpolate(s.Probe, s.Matrix, s.T)
	full := s.Matrix.Apply(s.Probe)
	r.emitArrow(s, tip, colorProbe, 3, false, coordLabel(full), w, h)
}

// coordLabel formats a world point for an on-screen label. Non-finite
// components render as the sentinel dash.
func coordLabel(v Vec2) string {
	return "(" + FormatScalar(v.X, 2) + ", " + FormatScalar(v.Y, 2) + ")"
}

// arrowHeadLen is the arrowhead size in screen pixels.
const arrowHeadLen = 10.0

// emitArrow appends a vector arrow from the world origin to tip: a shaft
// polyline, a filled triangular head, and an optional label beside the tip.
// Dashed arrows (pinned ghosts) get a dashed shaft.
func (r *Renderer) emitArrow(s *State, tip Vec2, col Color, width float32, dashed bool, label string, w, h float64) {
	from := s.Camera.WorldToScreen(Vec2{}, w, h)
	to := s.Camera.WorldToScreen(tip, w, h)

	dx := to.X - from.X
	dy := to.Y - from.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		// Degenerate vector: nothing to stroke, keep the label.
		if label != "" {
			r.ops = append(r.ops, drawOp{kind: opLabel, points: []Vec2{to}, color: colorLabel, text: label})
		}
		return
	}
	ux, uy := dx/length, dy/length

	head := math.Min(arrowHeadLen, length/2)
	baseX := to.X - ux*head
	baseY := to.Y - uy*head
	// Perpendicular half-width of the head.
	px, py := -uy*head*0.45, ux*head*0.45

	r.ops = append(r.ops,
		drawOp{
			kind:   opPolyline,
			points: []Vec2{from, {X: baseX, Y: baseY}},
			color:  col,
			width:  width,
			dashed: dashed,
		},
		drawOp{
			kind: opPolygon,
			points: []Vec2{
				to,
				{X: baseX + px, Y: baseY + py},
				{X: baseX - px, Y: baseY - py},
			},
			color: col,
		},
	)
	if label != "" {
		r.ops = append(r.ops, drawOp{
			kind:   opLabel,
			points: []Vec2{{X: to.X + 8, Y: to.Y - 16}},
			color:  colorLabel,
			text:   label,
		})
	}
}

// dashLen is the on/off length of dashed strokes in screen pixels.
const dashLen = 6.0

// submit strokes the display list onto dst.
func (r *Renderer) submit(dst *ebiten.Image) {
	for i := range r.ops {
		op := &r.ops[i]
		switch op.kind {
		case opPolyline:
			r.strokePolyline(dst, op)
		case opPolygon:
			r.fillPolygon(dst, op)
		case opLabel:
			p := op.points[0]
			ebitenutil.DebugPrintAt(dst, op.text, int(p.X), int(p.Y))
		}
	}
}

// strokePolyline strokes an op's points, splitting segments into dashes when
// requested.
func (r *Renderer) strokePolyline(dst *ebiten.Image, op *drawOp) {
	rgba := op.color.toRGBA()
	n := len(op.points)
	if n < 2 {
		return
	}
	last := n - 1
	for i := 0; i < last; i++ {
		r.strokeSegment(dst, op.points[i], op.points[i+1], op.width, rgba, op.dashed)
	}
	if op.closed {
		r.strokeSegment(dst, op.points[last], op.points[0], op.width, rgba, op.dashed)
	}
}

func (r *Renderer) strokeSegment(dst *ebiten.Image, a, b Vec2, width float32, rgba color.RGBA, dashed bool) {
	if !dashed {
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, rgba, true)
		return
	}
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return
	}
	ux, uy := dx/length, dy/length
	for pos := 0.0; pos < length; pos += 2 * dashLen {
		end := math.Min(pos+dashLen, length)
		vector.StrokeLine(dst,
			float32(a.X+ux*pos), float32(a.Y+uy*pos),
			float32(a.X+ux*end), float32(a.Y+uy*end),
			width, rgba, true)
	}
}

// fillPolygon fans a convex polygon into triangles and submits them over the
// white pixel.
func (r *Renderer) fillPolygon(dst *ebiten.Image, op *drawOp) {
	n := len(op.points)
	if n < 3 {
		return
	}
	cr := float32(Clamp(op.color.R, 0, 1) * op.color.A)
	cg := float32(Clamp(op.color.G, 0, 1) * op.color.A)
	cb := float32(Clamp(op.color.B, 0, 1) * op.color.A)
	ca := float32(Clamp(op.color.A, 0, 1))

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, p := range op.points {
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	for i := 2; i < n; i++ {
		r.indices = append(r.indices, 0, uint16(i-1), uint16(i))
	}
	dst.DrawTriangles(r.vertices, r.indices, whitePixel, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
