// Package layout computes the editor's window limits and where its parts go.
package layout

import (
	"github.com/iburimskiy/circle-of-fifths/internal/config"
)

// Rect is an integer rectangle in window coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) CenterX() float64 { return float64(r.X) + float64(r.W)/2 }

func (r Rect) CenterY() float64 { return float64(r.Y) + float64(r.H)/2 }

// Limits are the window sizes the host may resize to.
type Limits struct {
	MinW, MinH, MaxW, MaxH int
}

// Clamp returns the nearest allowed size to w x h.
func (l Limits) Clamp(w, h int) (int, int) {
	return clamp(w, l.MinW, l.MaxW), clamp(h, l.MinH, l.MaxH)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Constrain derives the window limits from the current bounds. The normal layout keeps the
// window a little taller than wide; the half-width layout keeps it about 2.5 times wider than tall.
func Constrain(bounds Rect, half bool) Limits {
	if half {
		return Limits{
			MinW: config.MinWidth,
			MinH: config.HalfMinHeight,
			MaxW: max(config.MinWidth, int(float64(bounds.H)*config.HalfMaxWidthRatio)),
			MaxH: max(config.HalfMinHeight, int(float64(bounds.W)*config.HalfMaxHeightRatio)),
		}
	}
	return Limits{
		MinW: config.MinWidth,
		MinH: config.MinHeight,
		MaxW: int(float64(bounds.H) / config.HeightPerMaxWidth),
		MaxH: int(float64(bounds.W) * config.MaxHeightPerWidth),
	}
}

// ButtonHeight is the toolbar height for a window width.
func ButtonHeight(width int) int {
	return max(config.MinButtonHeight, int(float64(width)*config.ButtonHeightRatio))
}

// ButtonSpace is the gap around toolbar items.
func ButtonSpace(buttonHeight int) int {
	return int(float64(buttonHeight) * config.ButtonSpaceRatio)
}
