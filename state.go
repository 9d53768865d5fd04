package linview

// MaxPins caps the pinned-vector list. Pinning beyond the cap evicts the
// oldest entry.
const MaxPins = 6

// PinnedVector is a probe vector snapshotted together with its transformed
// image at pin time. Ghost rendering reads the captured pair and never
// re-reads the live matrix.
type PinnedVector struct {
	V  Vec2 // origin at pin time
	TV Vec2 // image under the matrix at pin time
}

// State is the single owning container for everything the renderer,
// controller, and player read or mutate. All mutation goes through Apply;
// there are no hidden globals.
type State struct {
	// Matrix is the current 2×2 map. Replaced wholesale on edit.
	Matrix Mat2
	// T is the interpolation parameter in [0, 1] between identity display
	// (0) and the full transform (1). Display-only; it never alters Matrix.
	T float64
	// Probe is the user-manipulable vector shown at rest and under the map.
	Probe Vec2
	// Pins holds up to MaxPins snapshotted probe vectors, oldest first.
	Pins []PinnedVector
	// Camera maps the plane to the viewport.
	Camera *Camera
	// Grid selects which grid overlays are drawn.
	Grid GridMode
	// Playing gates the animation driver.
	Playing bool
	// PresetID names the most recently applied preset, empty after a manual
	// matrix edit.
	PresetID string
}

// NewState returns the initial session state: identity matrix, probe at
// (1, 1), camera on the origin.
func NewState() *State {
	return &State{
		Matrix: Identity(),
		T:      1,
		Probe:  Vec2{X: 1, Y: 1},
		Camera: NewCamera(60),
		Grid:   GridOriginal,
	}
}

// Command is a single state mutation. Commands are produced by the input
// shell and the gesture controller and consumed by the owning State.
type Command interface {
	apply(*State)
}

// Apply runs a command against the state. Handlers run to completion on one
// goroutine, so every render observes the most recent mutation.
func (s *State) Apply(cmd Command) {
	cmd.apply(s)
}

// SetMatrix replaces the whole matrix.
type SetMatrix struct {
	M Mat2
}

func (c SetMatrix) apply(s *State) {
	s.Matrix = c.M
	s.PresetID = ""
}

// SetMatrixEntry replaces one entry, addressed by row and column in {0, 1}.
// The raw text is parsed with malformed input treated as zero. The matrix is
// still replaced wholesale so no partially updated value is ever observable.
type SetMatrixEntry struct {
	Row, Col int
	Text     string
}

func (c SetMatrixEntry) apply(s *State) {
	v := ParseScalar(c.Text)
	m := s.Matrix
	switch {
	case c.Row == 0 && c.Col == 0:
		m.A = v
	case c.Row == 0 && c.Col == 1:
		m.B = v
	case c.Row == 1 && c.Col == 0:
		m.C = v
	case c.Row == 1 && c.Col == 1:
		m.D = v
	default:
		return
	}
	s.Matrix = m
	s.PresetID = ""
}

// SetT sets the interpolation parameter, clamped to [0, 1].
type SetT struct {
	T float64
}

func (c SetT) apply(s *State) {
	s.T = Clamp(c.T, 0, 1)
}

// SetProbe moves the probe vector to a world position.
type SetProbe struct {
	V Vec2
}

func (c SetProbe) apply(s *State) {
	s.Probe = c.V
}

// PinProbe snapshots the current probe and its transformed image. The list
// is capped at MaxPins with the oldest entry evicted by truncation.
type PinProbe struct{}

func (PinProbe) apply(s *State) {
	s.Pins = append(s.Pins, PinnedVector{V: s.Probe, TV: s.Matrix.Apply(s.Probe)})
	if len(s.Pins) > MaxPins {
		s.Pins = s.Pins[len(s.Pins)-MaxPins:]
	}
}

// ClearPins drops all pinned vectors.
type ClearPins struct{}

func (ClearPins) apply(s *State) {
	s.Pins = nil
}

// SetGridMode selects the grid overlays.
type SetGridMode struct {
	Mode GridMode
}

func (c SetGridMode) apply(s *State) {
	s.Grid = c.Mode
}

// CycleGridMode advances original → transformed → both → original.
type CycleGridMode struct{}

func (CycleGridMode) apply(s *State) {
	s.Grid = s.Grid.Next()
}

// SetPlaying sets the animation flag.
type SetPlaying struct {
	Playing bool
}

func (c SetPlaying) apply(s *State) {
	s.Playing = c.Playing
}

// TogglePlaying flips the animation flag.
type TogglePlaying struct{}

func (TogglePlaying) apply(s *State) {
	s.Playing = !s.Playing
}

// ApplyPreset replaces the matrix with a preset's and records its identity.
type ApplyPreset struct {
	Preset Preset
}

func (c ApplyPreset) apply(s *State) {
	s.Matrix = c.Preset.Matrix
	s.PresetID = c.Preset.ID
}
