package linview

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// wheelNotchDelta converts an ebiten wheel notch into the pixel-style delta
// the exponential zoom curve expects.
const wheelNotchDelta = 120.0

// defaultZoom is the camera zoom the session starts at and the R shortcut
// glides back to.
const defaultZoom = 60.0

// App is the ebiten.Game host: it polls input, feeds the gesture controller,
// drives the animation player with measured wall-clock time, and renders.
// The keyboard shortcuts stand in for external form controls and only ever
// produce state commands.
type App struct {
	state      *State
	controller *Controller
	renderer   *Renderer
	player     *Player

	showHUD   bool
	screenW   float64
	screenH   float64
	prevFrame time.Time
	presets   []Preset
}

// NewApp builds the host around a fresh state. An empty presetID starts on
// the identity matrix.
func NewApp(cfg Config) (*App, error) {
	state := NewState()
	state.Camera.Zoom = defaultZoom

	presets := Presets()
	if cfg.Preset != "" {
		p, ok := LookupPreset(cfg.Preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", cfg.Preset)
		}
		state.Apply(ApplyPreset{Preset: p})
	}

	return &App{
		state:      state,
		controller: NewController(state),
		renderer:   NewRenderer(),
		player:     NewPlayer(state),
		showHUD:    cfg.ShowHUD,
		presets:    presets,
	}, nil
}

// State exposes the owned state container, mainly for tests and embedding.
func (a *App) State() *State {
	return a.state
}

// Update handles one tick: input, animation, camera glide. All state
// mutation happens here on the game goroutine, so renders always observe the
// latest mutation.
func (a *App) Update() error {
	now := time.Now()
	var elapsed time.Duration
	if !a.prevFrame.IsZero() {
		elapsed = now.Sub(a.prevFrame)
	}
	a.prevFrame = now

	a.handleKeys()
	a.handlePointer()

	// Only elapsed time since this tick began reaches the player; nothing
	// accumulates while playback is inactive.
	a.player.Tick(float64(elapsed) / float64(time.Millisecond))
	a.state.Camera.Update(float32(elapsed.Seconds()))
	return nil
}

// handleKeys maps the keyboard shell onto state commands.
func (a *App) handleKeys() {
	s := a.state
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.Apply(TogglePlaying{})
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		s.Apply(CycleGridMode{})
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.Apply(PinProbe{})
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		s.Apply(ClearPins{})
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.Camera.GlideTo(0, 0, defaultZoom, 0.4, ease.OutQuad)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit0):
		s.Apply(SetT{T: 0})
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		s.Apply(SetT{T: s.T - 0.05})
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		s.Apply(SetT{T: s.T + 0.05})
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		a.showHUD = !a.showHUD
	}

	for i := 0; i < len(a.presets) && i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			a.state.Apply(ApplyPreset{Preset: a.presets[i]})
		}
	}
}

// handlePointer polls the mouse and forwards screen-space events to the
// gesture controller.
func (a *App) handlePointer() {
	w, h := a.screenW, a.screenH
	if w == 0 || h == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	pos := Vec2{X: float64(mx), Y: float64(my)}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		a.controller.PointerDown(pos, w, h)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		a.controller.PointerUp(pos, w, h)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		a.controller.PointerMove(pos, w, h)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		a.controller.Wheel(pos, -wy*wheelNotchDelta, w, h)
	}
}

// Draw renders the scene and HUD.
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.state)
	if a.showHUD {
		a.drawHUD(screen)
	}
}

// drawHUD prints the matrix, determinant, t, and probe readouts.
func (a *App) drawHUD(screen *ebiten.Image) {
	s := a.state
	m := s.Matrix

	det := m.Det()
	detLine := "det " + FormatScalar(det, 2)
	if !m.Invertible() {
		detLine += "  (non-invertible)"
	}

	presetLine := "custom matrix"
	if s.PresetID != "" {
		if p, ok := LookupPreset(s.PresetID); ok {
			presetLine = p.Label + " — " + p.Description
		}
	}

	playLine := "paused"
	if s.Playing {
		playLine = "playing"
	}

	image := m.Apply(s.Probe)
	hud := fmt.Sprintf(
		"[%s  %s]\n[%s  %s]\n%s\nt %s  (%s)\ngrid: %s\nprobe (%s, %s) -> (%s, %s)\npins: %d\n%s\nFPS: %.1f\n\nspace play  g grid  p pin  x clear  r reset view  1-9 presets  h hud",
		FormatScalar(m.A, 2), FormatScalar(m.B, 2),
		FormatScalar(m.C, 2), FormatScalar(m.D, 2),
		detLine,
		FormatScalar(s.T, 2), playLine,
		s.Grid,
		FormatScalar(s.Probe.X, 2), FormatScalar(s.Probe.Y, 2),
		FormatScalar(image.X, 2), FormatScalar(image.Y, 2),
		len(s.Pins),
		presetLine,
		ebiten.ActualFPS(),
	)
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
}

// Layout scales the drawing surface by the monitor's device scale factor so
// strokes stay crisp on high-density displays. Ebiten redraws every frame,
// so a resize shows up immediately.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	w := int(float64(outsideWidth) * scale)
	h := int(float64(outsideHeight) * scale)
	a.screenW = float64(w)
	a.screenH = float64(h)
	return w, h
}
