package linview

import "testing"

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	if s.Matrix != Identity() {
		t.Errorf("Matrix = %+v, want identity", s.Matrix)
	}
	if s.T != 1 {
		t.Errorf("T = %f, want 1", s.T)
	}
	if s.Grid != GridOriginal {
		t.Errorf("Grid = %v, want original", s.Grid)
	}
	if s.Playing {
		t.Error("Playing = true, want false")
	}
	if s.Camera == nil {
		t.Fatal("Camera is nil")
	}
}

func TestSetTClamps(t *testing.T) {
	s := NewState()
	tests := []struct{ in, want float64 }{
		{0.5, 0.5},
		{-2, 0},
		{1.0001, 1},
		{0, 0},
		{1, 1},
	}
	for _, tt := range tests {
		s.Apply(SetT{T: tt.in})
		if s.T != tt.want {
			t.Errorf("SetT(%f): T = %f, want %f", tt.in, s.T, tt.want)
		}
	}
}

func TestSetMatrixReplacesWholesale(t *testing.T) {
	s := NewState()
	s.Apply(ApplyPreset{Preset: builtinPresets[1]})
	m := Mat2{A: 1, B: 2, C: 3, D: 4}
	s.Apply(SetMatrix{M: m})
	if s.Matrix != m {
		t.Errorf("Matrix = %+v, want %+v", s.Matrix, m)
	}
	if s.PresetID != "" {
		t.Errorf("PresetID = %q, want cleared after manual edit", s.PresetID)
	}
}

func TestSetMatrixEntry(t *testing.T) {
	s := NewState()
	s.Apply(SetMatrixEntry{Row: 0, Col: 1, Text: "2.5"})
	want := Mat2{A: 1, B: 2.5, C: 0, D: 1}
	if s.Matrix != want {
		t.Errorf("Matrix = %+v, want %+v", s.Matrix, want)
	}
}

func TestSetMatrixEntryMalformedIsZero(t *testing.T) {
	s := NewState()
	s.Apply(SetMatrixEntry{Row: 0, Col: 0, Text: "not a number"})
	if s.Matrix.A != 0 {
		t.Errorf("A = %f, want 0 for malformed input", s.Matrix.A)
	}
	// The rest of the matrix is untouched.
	if s.Matrix.D != 1 {
		t.Errorf("D = %f, want 1", s.Matrix.D)
	}
}

func TestSetMatrixEntryOutOfRangeIgnored(t *testing.T) {
	s := NewState()
	before := s.Matrix
	s.Apply(SetMatrixEntry{Row: 2, Col: 0, Text: "9"})
	if s.Matrix != before {
		t.Errorf("Matrix = %+v, want unchanged", s.Matrix)
	}
}

func TestPinProbeCapturesImage(t *testing.T) {
	s := NewState()
	s.Apply(SetMatrix{M: Mat2{A: 0, B: 1, C: 1, D: 0}})
	s.Apply(SetProbe{V: Vec2{X: 2, Y: 3}})
	s.Apply(PinProbe{})

	if len(s.Pins) != 1 {
		t.Fatalf("pins = %d, want 1", len(s.Pins))
	}
	pin := s.Pins[0]
	if pin.V != (Vec2{X: 2, Y: 3}) {
		t.Errorf("pin.V = %v", pin.V)
	}
	if pin.TV != (Vec2{X: 3, Y: 2}) {
		t.Errorf("pin.TV = %v, want (3,2)", pin.TV)
	}

	// Changing the matrix afterwards must not rewrite the captured image.
	s.Apply(SetMatrix{M: Identity()})
	if s.Pins[0].TV != (Vec2{X: 3, Y: 2}) {
		t.Errorf("pin.TV changed to %v after matrix edit", s.Pins[0].TV)
	}
}

func TestPinProbeEvictsOldest(t *testing.T) {
	s := NewState()
	for i := 0; i < MaxPins+1; i++ {
		s.Apply(SetProbe{V: Vec2{X: float64(i), Y: 0}})
		s.Apply(PinProbe{})
	}
	if len(s.Pins) != MaxPins {
		t.Fatalf("pins = %d, want %d", len(s.Pins), MaxPins)
	}
	// Pin 0 was evicted; the oldest survivor is pin 1.
	if s.Pins[0].V.X != 1 {
		t.Errorf("oldest pin X = %f, want 1", s.Pins[0].V.X)
	}
	if s.Pins[MaxPins-1].V.X != float64(MaxPins) {
		t.Errorf("newest pin X = %f, want %d", s.Pins[MaxPins-1].V.X, MaxPins)
	}
}

func TestClearPins(t *testing.T) {
	s := NewState()
	s.Apply(PinProbe{})
	s.Apply(ClearPins{})
	if len(s.Pins) != 0 {
		t.Errorf("pins = %d, want 0", len(s.Pins))
	}
}

func TestGridModeCommands(t *testing.T) {
	s := NewState()
	s.Apply(SetGridMode{Mode: GridBoth})
	if s.Grid != GridBoth {
		t.Errorf("Grid = %v, want both", s.Grid)
	}
	s.Apply(CycleGridMode{})
	if s.Grid != GridOriginal {
		t.Errorf("Grid = %v, want original after cycle from both", s.Grid)
	}
}

func TestPlayingCommands(t *testing.T) {
	s := NewState()
	s.Apply(TogglePlaying{})
	if !s.Playing {
		t.Error("Playing = false after toggle")
	}
	s.Apply(SetPlaying{Playing: false})
	if s.Playing {
		t.Error("Playing = true after SetPlaying(false)")
	}
}

func TestApplyPresetRecordsID(t *testing.T) {
	s := NewState()
	p, ok := LookupPreset("rotate90")
	if !ok {
		t.Fatal("rotate90 preset missing")
	}
	s.Apply(ApplyPreset{Preset: p})
	if s.Matrix != p.Matrix {
		t.Errorf("Matrix = %+v, want %+v", s.Matrix, p.Matrix)
	}
	if s.PresetID != "rotate90" {
		t.Errorf("PresetID = %q, want rotate90", s.PresetID)
	}
}
