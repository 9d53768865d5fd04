// Command linview opens an interactive visualization of 2×2 linear
// transformations: edit a matrix, watch its effect on the grid, the basis
// vectors, and a draggable probe vector, and animate the sweep between the
// identity and the full transform.
package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	linview "github.com/thomarog/LinearTransformations"
)

var (
	configFile string
	presetFile string
	presetID   string
	width      int
	height     int
	hideHUD    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "linview",
		Short: "interactive 2x2 linear transformation visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "YAML config file")
	rootCmd.Flags().StringVar(&presetFile, "presets-file", "", "YAML file with extra presets")
	rootCmd.Flags().StringVar(&presetID, "preset", "", "preset to start from (see 'linview presets')")
	rootCmd.Flags().IntVar(&width, "width", 0, "window width in pixels")
	rootCmd.Flags().IntVar(&height, "height", 0, "window height in pixels")
	rootCmd.Flags().BoolVar(&hideHUD, "no-hud", false, "start with the HUD hidden")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list the preset matrices",
		RunE: func(cmd *cobra.Command, args []string) error {
			if presetFile != "" {
				if err := linview.LoadPresetFile(presetFile); err != nil {
					return err
				}
			}
			listPresets()
			return nil
		},
	}
	presetsCmd.Flags().StringVar(&presetFile, "presets-file", "", "YAML file with extra presets")

	rootCmd.AddCommand(presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// runApp resolves config file and flag overrides, then hands control to the
// ebiten game loop until the window closes.
func runApp(cmd *cobra.Command) error {
	cfg := linview.DefaultConfig()
	if configFile != "" {
		loaded, err := linview.LoadConfig(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("preset") {
		cfg.Preset = presetID
	}
	if cmd.Flags().Changed("presets-file") {
		cfg.PresetFile = presetFile
	}
	if hideHUD {
		cfg.ShowHUD = false
	}

	if cfg.PresetFile != "" {
		if err := linview.LoadPresetFile(cfg.PresetFile); err != nil {
			return err
		}
	}

	app, err := linview.NewApp(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Linear Transformations")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// listPresets prints the preset table.
func listPresets() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tMATRIX\tDET\tDESCRIPTION")
	for _, p := range linview.Presets() {
		m := p.Matrix
		det := linview.FormatScalar(m.Det(), 2)
		if p.NonInvertible() {
			det += " (non-invertible)"
		}
		fmt.Fprintf(w, "%s\t%s\t[%g %g; %g %g]\t%s\t%s\n",
			p.ID, p.Label, m.A, m.B, m.C, m.D, det, p.Description)
	}
	w.Flush()
}
