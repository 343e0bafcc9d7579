// Package game runs the editor in an ebiten window.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/circle-of-fifths/internal/dialog"
	"github.com/iburimskiy/circle-of-fifths/internal/editor"
	"github.com/iburimskiy/circle-of-fifths/internal/layout"
	"github.com/iburimskiy/circle-of-fifths/internal/logger"
	"github.com/iburimskiy/circle-of-fifths/internal/render"
	"github.com/iburimskiy/circle-of-fifths/internal/theme"
)

var keys = map[ebiten.Key]editor.Key{
	ebiten.KeyArrowLeft:  editor.KeyLeft,
	ebiten.KeyArrowRight: editor.KeyRight,
	ebiten.KeyArrowUp:    editor.KeyUp,
	ebiten.KeyArrowDown:  editor.KeyDown,
}

// Game adapts an editor to ebiten.
type Game struct {
	ed          *editor.Editor
	about       string
	aboutDialog dialog.Single
	face        text.Face

	images map[*theme.Asset]*ebiten.Image
	limits layout.Limits

	// input edge detection
	prevKey map[ebiten.Key]bool
}

// New wraps ed. about is shown by F1.
func New(ed *editor.Editor, about string) *Game {
	return &Game{
		ed:      ed,
		about:   about,
		face:    text.NewGoXFace(basicfont.Face7x13),
		images:  map[*theme.Asset]*ebiten.Image{},
		prevKey: map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.ed.Hover(mouseX, mouseY)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ed.Click(mouseX, mouseY)
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for k, ek := range keys {
		if justPressed(k) {
			g.ed.Key(ek, shift)
		}
	}

	if justPressed(ebiten.KeyF1) {
		g.aboutDialog.Go(g.showAbout)
	}
	if justPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if w, h, ok := g.ed.TakeResize(); ok {
		g.applyLimits(true)
		ebiten.SetWindowSize(w, h)
	}
	g.applyLimits(false)
	return nil
}

// applyLimits passes the editor's size limits to the window when they change.
func (g *Game) applyLimits(force bool) {
	l := g.ed.Limits()
	if l == g.limits && !force {
		return
	}
	g.limits = l
	ebiten.SetWindowSizeLimits(l.MinW, l.MinH, max(l.MinW, l.MaxW), max(l.MinH, l.MaxH))
}

func (g *Game) showAbout() {
	if err := dialog.Info("About", g.about); err != nil {
		logger.Warn("about dialog failed", logger.Fields{"error": err.Error()})
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.ed.Dirty() {
		return
	}
	for _, c := range g.ed.Frame() {
		g.drawCommand(screen, c)
	}
	pal := g.ed.Palette()
	for _, b := range g.ed.Toolbar() {
		g.drawButton(screen, b, pal)
	}
	g.drawMenu(screen, g.ed.Menu(), pal)
	if tip, x, y, ok := g.ed.Tooltip(); ok {
		g.drawTooltip(screen, tip, x, y, pal)
	}
	g.ed.ClearDirty()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ed.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) drawCommand(screen *ebiten.Image, c render.Command) {
	b := c.Bounds
	switch c.Op {
	case render.Fill:
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c.Color, false)
	case render.Image:
		img := g.image(c.Asset)
		if img == nil || b.W <= 0 || b.H <= 0 {
			return
		}
		sw, sh := img.Bounds().Dx(), img.Bounds().Dy()
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM.Translate(-float64(sw)/2, -float64(sh)/2)
		op.GeoM.Rotate(c.Rotation)
		op.GeoM.Scale(float64(b.W)/float64(sw), float64(b.H)/float64(sh))
		op.GeoM.Translate(b.CenterX(), b.CenterY())
		screen.DrawImage(img, op)
	}
}

// image uploads a diagram to the GPU the first time it is drawn.
func (g *Game) image(a *theme.Asset) *ebiten.Image {
	if a == nil || a.Image == nil {
		return nil
	}
	img, ok := g.images[a]
	if !ok {
		img = ebiten.NewImageFromImage(a.Image)
		g.images[a] = img
	}
	return img
}
