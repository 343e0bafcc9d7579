package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/circle-of-fifths/internal/editor"
	"github.com/iburimskiy/circle-of-fifths/internal/layout"
	"github.com/iburimskiy/circle-of-fifths/internal/theme"
)

func fillRect(dst *ebiten.Image, r layout.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func strokeRect(dst *ebiten.Image, r layout.Rect, c color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
}

// drawText writes s centred vertically in r, either centred horizontally or from the left edge.
func (g *Game) drawText(dst *ebiten.Image, s string, r layout.Rect, centre bool, c color.Color) {
	op := &text.DrawOptions{}
	op.SecondaryAlign = text.AlignCenter
	x := float64(r.X) + 4
	if centre {
		op.PrimaryAlign = text.AlignCenter
		x = r.CenterX()
	}
	op.GeoM.Translate(x, r.CenterY())
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, g.face, op)
}

func (g *Game) drawButton(dst *ebiten.Image, b editor.ButtonView, pal theme.Palette) {
	bg := pal.ButtonOff
	switch {
	case b.On:
		bg = pal.ButtonOn
	case b.Hovered && b.Enabled:
		bg = pal.ButtonHover
	}
	fillRect(dst, b.Bounds, bg)

	outline, fg := pal.Foreground, pal.TextOn
	if !b.On {
		fg = pal.TextOff
	}
	if !b.Enabled {
		outline, fg = pal.TextDisabled, pal.TextDisabled
	}
	strokeRect(dst, b.Bounds, outline)
	g.drawText(dst, b.Label, b.Bounds, true, fg)
}

func (g *Game) drawMenu(dst *ebiten.Image, m editor.MenuView, pal theme.Palette) {
	box := m.Bounds
	fillRect(dst, box, pal.MenuBackground)
	outline := pal.MenuOutline
	if m.Open || m.Hovered {
		outline = pal.MenuFocused
	}
	strokeRect(dst, box, outline)
	g.drawText(dst, m.Current, box, false, pal.Foreground)

	// down arrow at the right edge
	ax := float32(box.X+box.W) - float32(box.H)*0.6
	ay := float32(box.Y) + float32(box.H)*0.4
	s := float32(box.H) * 0.2
	vector.StrokeLine(dst, ax-s, ay, ax, ay+s, 1.5, pal.MenuArrow, true)
	vector.StrokeLine(dst, ax, ay+s, ax+s, ay, 1.5, pal.MenuArrow, true)

	if !m.Open {
		return
	}
	for _, it := range m.Items {
		bg, fg := pal.MenuBackground, pal.Foreground
		if it.Hovered || it.Selected {
			bg, fg = pal.MenuHighlight, pal.MenuHighlightFg
		}
		fillRect(dst, it.Bounds, bg)
		g.drawText(dst, it.Label, it.Bounds, false, fg)
	}
	if n := len(m.Items); n > 0 {
		first, last := m.Items[0].Bounds, m.Items[n-1].Bounds
		strokeRect(dst, layout.Rect{X: first.X, Y: first.Y, W: first.W, H: last.Y + last.H - first.Y}, pal.MenuOutline)
	}
}

func (g *Game) drawTooltip(dst *ebiten.Image, tip string, x, y int, pal theme.Palette) {
	tw, th := text.Measure(tip, g.face, 0)
	r := layout.Rect{X: x, Y: y, W: int(tw) + 8, H: int(th) + 6}
	if sw := dst.Bounds().Dx(); r.X+r.W > sw {
		r.X = max(0, sw-r.W)
	}
	fillRect(dst, r, pal.TooltipBackground)
	strokeRect(dst, r, pal.TooltipText)
	g.drawText(dst, tip, r, true, pal.TooltipText)
}
