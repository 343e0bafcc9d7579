package layout

import "github.com/iburimskiy/circle-of-fifths/internal/config"

// Widgets is where each part of the editor sits for a given window size.
type Widgets struct {
	ModeMenu      Rect
	LabelsButton  Rect
	OverlayButton Rect
	DarkButton    Rect
	HalfButton    Rect
	// CircleArea is everything below the toolbar.
	CircleArea Rect
	// Circle is the square the diagram is drawn within.
	Circle Rect
	// MenuItem is the size of one row of the opened mode menu.
	MenuItem Rect
}

// Arrange lays out the toolbar and circle for a window of w x h.
func Arrange(w, h int) Widgets {
	bh := ButtonHeight(w)
	sp := ButtonSpace(bh)

	fbh := float64(bh)
	out := Widgets{
		ModeMenu:      Rect{X: sp, Y: sp, W: bh * 5, H: bh},
		LabelsButton:  Rect{X: bh*5 + sp*2, Y: sp, W: int(fbh * 1.5), H: bh},
		OverlayButton: Rect{X: int(fbh*6.5) + sp*3, Y: sp, W: bh, H: bh},
		DarkButton:    Rect{X: int(fbh*7.5) + sp*4, Y: sp, W: bh, H: bh},
		HalfButton:    Rect{X: int(fbh*8.5) + sp*5, Y: sp, W: bh, H: bh},
		MenuItem:      Rect{X: sp, Y: sp + bh, W: bh * 5, H: bh},
	}
	out.CircleArea = Rect{X: 0, Y: bh + sp, W: w, H: h - bh - sp*2}
	out.Circle = circleIn(out.CircleArea, sp)
	return out
}

// circleIn centres the diagram at (w/2, w/2) of the area, so an area shorter than it is
// wide cuts the circle off at the bottom.
func circleIn(area Rect, sp int) Rect {
	d := area.W - sp*config.CircleInsetSpaces
	if d < 0 {
		d = 0
	}
	c := area.W / 2
	return Rect{
		X: area.X + c - d/2,
		Y: area.Y + c - d/2,
		W: d,
		H: d,
	}
}
