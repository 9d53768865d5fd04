package linview

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a named matrix with a short description for the preset list.
type Preset struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
	Matrix      Mat2   `yaml:"matrix"`
}

// NonInvertible reports whether the preset's matrix collapses the plane
// (determinant effectively zero). The preset list and HUD flag these.
func (p Preset) NonInvertible() bool {
	return !p.Matrix.Invertible()
}

// builtinPresets is the ordered built-in preset table.
var builtinPresets = []Preset{
	{
		ID:          "identity",
		Label:       "Identity",
		Description: "leaves every vector in place (det 1)",
		Matrix:      Mat2{A: 1, B: 0, C: 0, D: 1},
	},
	{
		ID:          "rotate90",
		Label:       "Rotation 90°",
		Description: "counter-clockwise quarter turn (det 1)",
		Matrix:      Mat2{A: 0, B: -1, C: 1, D: 0},
	},
	{
		ID:          "shear",
		Label:       "Horizontal shear",
		Description: "slides points sideways in proportion to height (det 1)",
		Matrix:      Mat2{A: 1, B: 1, C: 0, D: 1},
	},
	{
		ID:          "scale",
		Label:       "Scale ×2",
		Description: "doubles every vector (det 4)",
		Matrix:      Mat2{A: 2, B: 0, C: 0, D: 2},
	},
	{
		ID:          "reflect-x",
		Label:       "Reflection over x-axis",
		Description: "flips the plane vertically (det -1)",
		Matrix:      Mat2{A: 1, B: 0, C: 0, D: -1},
	},
	{
		ID:          "swap",
		Label:       "Axis swap",
		Description: "mirrors across the line y = x (det -1)",
		Matrix:      Mat2{A: 0, B: 1, C: 1, D: 0},
	},
	{
		ID:          "project-x",
		Label:       "Projection onto x-axis",
		Description: "collapses the plane onto the x-axis (det 0)",
		Matrix:      Mat2{A: 1, B: 0, C: 0, D: 0},
	},
}

// Presets returns the ordered preset list: built-ins followed by any presets
// registered via LoadPresetFile.
func Presets() []Preset {
	out := make([]Preset, 0, len(builtinPresets)+len(userPresets))
	out = append(out, builtinPresets...)
	out = append(out, userPresets...)
	return out
}

// LookupPreset finds a preset by identifier. The second return is false when
// no preset has that ID.
func LookupPreset(id string) (Preset, bool) {
	for _, p := range Presets() {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

var userPresets []Preset

// presetFile is the YAML layout for user preset files.
type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresetFile reads user presets from a YAML file and appends them to the
// preset list. Entries without an ID or label are rejected.
func LoadPresetFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load presets: %w", err)
	}
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse presets %s: %w", path, err)
	}
	for i, p := range f.Presets {
		if p.ID == "" || p.Label == "" {
			return fmt.Errorf("parse presets %s: entry %d missing id or label", path, i)
		}
		if _, exists := LookupPreset(p.ID); exists {
			return fmt.Errorf("parse presets %s: duplicate id %q", path, p.ID)
		}
		userPresets = append(userPresets, p)
	}
	return nil
}
