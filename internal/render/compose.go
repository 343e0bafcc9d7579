// Package render turns the editor state into an ordered list of draw commands.
package render

import (
	"image/color"

	"github.com/iburimskiy/circle-of-fifths/internal/assets"
	"github.com/iburimskiy/circle-of-fifths/internal/circle"
	"github.com/iburimskiy/circle-of-fifths/internal/layout"
	"github.com/iburimskiy/circle-of-fifths/internal/overlay"
	"github.com/iburimskiy/circle-of-fifths/internal/theme"
	"github.com/iburimskiy/circle-of-fifths/internal/theory"
)

// Op is what a Command does.
type Op int

const (
	// Fill paints Bounds with Color.
	Fill Op = iota
	// Image draws Asset scaled into Bounds, rotated by Rotation around the centre of Bounds.
	Image
)

// Command is a single drawing step.
type Command struct {
	Op       Op
	Layer    assets.Kind
	Asset    *theme.Asset
	Bounds   layout.Rect
	Rotation float64
	Color    color.Color
}

// Frame is everything a frame depends on.
type Frame struct {
	Window     layout.Rect
	Circle     layout.Rect
	Background color.Color
	Layers     theme.Set
	Mode       theory.Mode
	Selection  circle.Snapshot
	Overlay    overlay.Mode
}

// Compose returns the commands for f, back to front.
func Compose(f Frame) []Command {
	cmds := make([]Command, 0, 6)
	cmds = append(cmds, Command{Op: Fill, Bounds: f.Window, Color: f.Background})

	layer := func(k assets.Kind, a *theme.Asset, rot float64) {
		if a == nil {
			return
		}
		cmds = append(cmds, Command{Op: Image, Layer: k, Asset: a, Bounds: f.Circle, Rotation: rot})
	}

	withMode := f.Mode.HasOverlay()
	if withMode {
		layer(assets.ModeBackground, f.Layers.ModeBackground, 0)
	}
	rot := 0.0
	if f.Selection.Rotated {
		rot = f.Selection.Rotation
	}
	layer(assets.Circle, f.Layers.Circle, rot)
	if !withMode {
		return cmds
	}
	layer(assets.ModeImage, f.Layers.ModeImage, 0)
	if f.Overlay.ShowsTriads() {
		layer(assets.Triads, f.Layers.Triads, 0)
	}
	if f.Overlay.ShowsSevenths() {
		layer(assets.Sevenths, f.Layers.Sevenths, 0)
	}
	return cmds
}
