package assets

import (
	"fmt"
	"image"
	"image/color"

	"github.com/iburimskiy/circle-of-fifths/internal/config"
	"github.com/iburimskiy/circle-of-fifths/internal/theory"
)

type ink struct {
	bg, fg, grid, marker color.Color
	accent               color.Color
}

var (
	lightInk = ink{
		bg:     color.White,
		fg:     color.NRGBA{R: 20, G: 20, B: 20, A: 255},
		grid:   color.NRGBA{R: 170, G: 170, B: 170, A: 255},
		marker: color.NRGBA{R: 200, G: 60, B: 60, A: 255},
		accent: color.NRGBA{R: 70, G: 120, B: 200, A: 80},
	}
	// Dark diagrams carry the background they were exported with; the theme registry
	// swaps it for the real one when it loads them.
	darkInk = ink{
		bg:     config.WrongDarkBackground,
		fg:     config.DarkForeground,
		grid:   color.NRGBA{R: 110, G: 110, B: 110, A: 255},
		marker: color.NRGBA{R: 230, G: 90, B: 90, A: 255},
		accent: color.NRGBA{R: 90, G: 150, B: 230, A: 80},
	}
)

var categoryTint = map[theory.Category]color.NRGBA{
	theory.CategoryDiatonic:      {R: 70, G: 120, B: 200, A: 40},
	theory.CategoryHarmonicMinor: {R: 200, G: 120, B: 60, A: 48},
	theory.CategoryMelodicMinor:  {R: 80, G: 170, B: 110, A: 48},
}

// Radii as fractions of the diagram radius.
const (
	rimOuter   = 1.0
	rimInner   = 0.62
	labelR     = 0.81
	triadR     = 0.52
	seventhR   = 0.40
	chordInner = 0.33
)

// Rasterizer draws every diagram at startup from the music theory tables.
type Rasterizer struct {
	Size int
}

// NewRasterizer draws diagrams of size x size pixels.
func NewRasterizer(size int) *Rasterizer {
	return &Rasterizer{Size: size}
}

func (r *Rasterizer) Load(s Spec) (*image.RGBA, error) {
	if r.Size <= 0 {
		return nil, fmt.Errorf("load %s: bad size %d", s.Name(), r.Size)
	}
	k := lightInk
	if s.Dark {
		k = darkInk
	}
	cv := newCanvas(r.Size)
	switch s.Kind {
	case Circle:
		drawCircle(cv, k, s.Solfege)
	case ModeBackground:
		if s.Category == theory.CategoryNotes {
			return nil, fmt.Errorf("load %s: notes have no background", s.Name())
		}
		drawBackground(cv, k, s.Category)
	case ModeImage:
		if !s.Mode.HasOverlay() {
			return nil, fmt.Errorf("load %s: notes have no mode image", s.Name())
		}
		drawModeImage(cv, k, s.Mode)
	case Triads, Sevenths:
		if s.Category == theory.CategoryNotes {
			return nil, fmt.Errorf("load %s: notes have no chords", s.Name())
		}
		drawChords(cv, k, s.Category, s.Kind == Sevenths)
	default:
		return nil, fmt.Errorf("load %s: unknown kind %d", s.Name(), s.Kind)
	}
	return cv.img, nil
}

func (cv *canvas) radius(f float32) float32 {
	return f * (cv.c - 2)
}

func (cv *canvas) textScale() float64 {
	return float64(cv.size) / 220
}

func drawCircle(cv *canvas, k ink, solfege bool) {
	line := float32(cv.size) / 200
	cv.ring(cv.radius(rimInner), cv.radius(rimOuter), k.bg)
	cv.ring(cv.radius(rimOuter)-line, cv.radius(rimOuter), k.fg)
	cv.ring(cv.radius(rimInner), cv.radius(rimInner)+line, k.grid)
	for p := 0; p < theory.Slots; p++ {
		a := float64(p) * 30
		cv.spoke(cv.radius(rimInner), cv.radius(rimOuter), a+15, line, k.grid)

		d := theory.Position(p).Degree()
		name := d.Name()
		if solfege {
			name = d.Solfege()
		}
		cv.textAt(name, cv.radius(labelR), a, cv.textScale(), k.fg)
	}
}

func drawBackground(cv *canvas, k ink, c theory.Category) {
	cv.disc(cv.radius(rimInner), k.bg)
	cv.ring(cv.radius(chordInner), cv.radius(rimInner), categoryTint[c])
	line := float32(cv.size) / 400
	for p := 0; p < theory.Slots; p++ {
		cv.spoke(cv.radius(chordInner), cv.radius(rimInner), float64(p)*30+15, line, k.grid)
	}
}

func drawModeImage(cv *canvas, k ink, m theory.Mode) {
	for _, semis := range m.Scale() {
		a := float64(theory.Degree(semis).Position()) * 30
		cv.sector(cv.radius(rimInner), cv.radius(rimOuter), a-15, a+15, k.accent)
	}
	cv.triangle(cv.radius(rimOuter)-float32(cv.size)/24, float32(cv.size)/28, 0, k.marker)
	cv.text(m.String(), cv.c, cv.c-cv.radius(0.14), cv.textScale(), k.fg)
}

// drawChords labels each chord of the category at its root. The seven diatonic modes share
// one layer, so they get a legend of the parent major's chords instead.
func drawChords(cv *canvas, k ink, c theory.Category, sevenths bool) {
	scale := cv.textScale() * 0.8
	if c == theory.CategoryDiatonic {
		var line string
		for i, ch := range theory.Chords(theory.Ionian) {
			if i > 0 {
				line += " "
			}
			if sevenths {
				line += ch.Seventh
			} else {
				line += ch.Numeral()
			}
		}
		y := cv.c + cv.radius(0.05)
		if sevenths {
			y = cv.c + cv.radius(0.2)
		}
		cv.text(line, cv.c, y, scale*0.7, k.fg)
		return
	}

	for _, ch := range theory.Chords(modeOf(c)) {
		a := float64(ch.Root.Position()) * 30
		if sevenths {
			cv.textAt(ch.Seventh, cv.radius(seventhR), a, scale, k.fg)
		} else {
			cv.textAt(ch.Numeral(), cv.radius(triadR), a, scale, k.fg)
		}
	}
}

func modeOf(c theory.Category) theory.Mode {
	switch c {
	case theory.CategoryHarmonicMinor:
		return theory.HarmonicMinor
	case theory.CategoryMelodicMinor:
		return theory.MelodicMinor
	default:
		return theory.Ionian
	}
}
