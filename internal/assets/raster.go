package assets

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// canvas draws filled shapes and text onto a square RGBA image. Angles are in degrees,
// clockwise from straight up, as on the diagram.
type canvas struct {
	img  *image.RGBA
	z    *vector.Rasterizer
	size int
	c    float32
}

const segments = 96

func newCanvas(size int) *canvas {
	return &canvas{
		img:  image.NewRGBA(image.Rect(0, 0, size, size)),
		z:    vector.NewRasterizer(size, size),
		size: size,
		c:    float32(size) / 2,
	}
}

func (cv *canvas) point(r float32, deg float64) (float32, float32) {
	rad := deg * math.Pi / 180
	return cv.c + r*float32(math.Sin(rad)), cv.c - r*float32(math.Cos(rad))
}

func (cv *canvas) fill(col color.Color) {
	cv.z.DrawOp = xdraw.Over
	cv.z.Draw(cv.img, cv.img.Bounds(), image.NewUniform(col), image.Point{})
	cv.z.Reset(cv.size, cv.size)
}

// arc appends a polyline along radius r from a0 to a1.
func (cv *canvas) arc(r float32, a0, a1 float64, move bool) {
	n := int(math.Ceil(math.Abs(a1-a0) / 360 * segments))
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		x, y := cv.point(r, a0+(a1-a0)*float64(i)/float64(n))
		if i == 0 && move {
			cv.z.MoveTo(x, y)
			continue
		}
		cv.z.LineTo(x, y)
	}
}

// sector fills the band between radii r0 < r1 from angle a0 to a1.
func (cv *canvas) sector(r0, r1 float32, a0, a1 float64, col color.Color) {
	cv.arc(r1, a0, a1, true)
	cv.arc(r0, a1, a0, false)
	cv.z.ClosePath()
	cv.fill(col)
}

// ring fills the band between radii r0 < r1 all the way round.
func (cv *canvas) ring(r0, r1 float32, col color.Color) {
	cv.arc(r1, 0, 360, true)
	cv.z.ClosePath()
	cv.arc(r0, 360, 0, true)
	cv.z.ClosePath()
	cv.fill(col)
}

func (cv *canvas) disc(r float32, col color.Color) {
	cv.arc(r, 0, 360, true)
	cv.z.ClosePath()
	cv.fill(col)
}

// spoke draws a radial line of width w at angle a.
func (cv *canvas) spoke(r0, r1 float32, a float64, w float32, col color.Color) {
	half := float64(w) / 2 / float64(r1) * 180 / math.Pi
	cv.sector(r0, r1, a-half, a+half, col)
}

// triangle fills a marker pointing at the centre, with its tip at radius r.
func (cv *canvas) triangle(r, side float32, a float64, col color.Color) {
	tx, ty := cv.point(r, a)
	spread := float64(side) / float64(r+side) * 90 / math.Pi
	lx, ly := cv.point(r+side, a-spread)
	rx, ry := cv.point(r+side, a+spread)
	cv.z.MoveTo(tx, ty)
	cv.z.LineTo(lx, ly)
	cv.z.LineTo(rx, ry)
	cv.z.ClosePath()
	cv.fill(col)
}

// text draws s centred on (x, y), scaled up from the 7x13 bitmap face.
func (cv *canvas) text(s string, x, y float32, scale float64, col color.Color) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	if w == 0 {
		return
	}
	h := face.Height
	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)

	sw := int(math.Round(float64(w) * scale))
	sh := int(math.Round(float64(h) * scale))
	x0 := int(math.Round(float64(x))) - sw/2
	y0 := int(math.Round(float64(y))) - sh/2
	xdraw.ApproxBiLinear.Scale(cv.img, image.Rect(x0, y0, x0+sw, y0+sh), glyphs, glyphs.Bounds(), xdraw.Over, nil)
}

// textAt draws s centred on the point at radius r and angle a.
func (cv *canvas) textAt(s string, r float32, a float64, scale float64, col color.Color) {
	x, y := cv.point(r, a)
	cv.text(s, x, y, scale, col)
}
