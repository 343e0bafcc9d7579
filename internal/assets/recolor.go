package assets

import (
	"image"
	"image/color"
)

// ReplaceColor rewrites every pixel of img equal to from with to, and returns how many it changed.
func ReplaceColor(img *image.RGBA, from, to color.Color) int {
	f := color.RGBAModel.Convert(from).(color.RGBA)
	t := color.RGBAModel.Convert(to).(color.RGBA)
	n := 0
	for i := 0; i+3 < len(img.Pix); i += 4 {
		p := img.Pix[i : i+4 : i+4]
		if p[0] == f.R && p[1] == f.G && p[2] == f.B && p[3] == f.A {
			p[0], p[1], p[2], p[3] = t.R, t.G, t.B, t.A
			n++
		}
	}
	return n
}
