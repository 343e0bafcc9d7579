package editor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/circle-of-fifths/internal/assets"
	"github.com/iburimskiy/circle-of-fifths/internal/config"
	"github.com/iburimskiy/circle-of-fifths/internal/layout"
	"github.com/iburimskiy/circle-of-fifths/internal/overlay"
	"github.com/iburimskiy/circle-of-fifths/internal/render"
	"github.com/iburimskiy/circle-of-fifths/internal/theme"
	"github.com/iburimskiy/circle-of-fifths/internal/theory"
)

var (
	regOnce sync.Once
	reg     *theme.Registry
	regErr  error
)

// At the default 400x440 the toolbar buttons are 20 high at y=2 and the circle is
// centred on (200, 222) with radius 184.
const (
	centerX = 200
	centerY = 222
)

func newEditor(t *testing.T) *Editor {
	t.Helper()
	regOnce.Do(func() {
		reg, regErr = theme.NewRegistry(assets.NewRasterizer(64))
	})
	require.NoError(t, regErr)

	e, err := New(config.Default(), reg)
	require.NoError(t, err)
	e.ClearDirty()
	return e
}

func TestNewDefaults(t *testing.T) {
	e := newEditor(t)
	assert.Equal(t, theme.Light, e.Theme())
	assert.Equal(t, theme.Letters, e.Labels())
	assert.Equal(t, theory.Notes, e.Mode())
	assert.Equal(t, overlay.Sevenths, e.Overlay())
	assert.False(t, e.HalfWidth())
	assert.False(t, e.Selection().Rotated)

	w, h := e.Size()
	assert.Equal(t, 400, w)
	assert.Equal(t, 440, h)
	assert.Equal(t, layout.Rect{X: 16, Y: 38, W: 368, H: 368}, e.Widgets().Circle)
}

func TestNewRejectsBadConfig(t *testing.T) {
	regOnce.Do(func() {
		reg, regErr = theme.NewRegistry(assets.NewRasterizer(64))
	})
	require.NoError(t, regErr)

	cfg := config.Default()
	cfg.Mode.Initial = "Blues"
	_, err := New(cfg, reg)
	assert.ErrorIs(t, err, theory.ErrUnknownMode)

	cfg = config.Default()
	cfg.Overlay.Initial = "ninths"
	_, err = New(cfg, reg)
	assert.Error(t, err)

	_, err = New(config.Default(), nil)
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	regOnce.Do(func() {
		reg, regErr = theme.NewRegistry(assets.NewRasterizer(64))
	})
	require.NoError(t, regErr)

	cfg := config.Default()
	cfg.Theme.Dark = true
	cfg.Circle.Labels = config.LabelsSolfege
	cfg.Overlay.Initial = "none"
	cfg.Mode.Initial = "Harmonic minor"
	e, err := New(cfg, reg)
	require.NoError(t, err)

	assert.Equal(t, theme.Dark, e.Theme())
	assert.Equal(t, theme.Solfege, e.Labels())
	assert.Equal(t, overlay.None, e.Overlay())
	assert.Equal(t, theory.HarmonicMinor, e.Mode())
}

func TestClickOnCircle(t *testing.T) {
	e := newEditor(t)

	assert.False(t, e.Click(centerX, centerY-100), "straight up stays")
	assert.False(t, e.Dirty())

	assert.True(t, e.Click(centerX+100, centerY), "quarter turn")
	assert.Equal(t, theory.Degree(9), e.Selection().Degree)
	assert.True(t, e.Selection().Rotated)
	assert.True(t, e.Dirty())

	assert.False(t, e.Click(centerX+190, centerY), "outside the circle")
	assert.Equal(t, theory.Degree(9), e.Selection().Degree)
}

func TestKeys(t *testing.T) {
	e := newEditor(t)

	assert.True(t, e.Key(KeyLeft, false))
	assert.Equal(t, theory.Degree(7), e.Selection().Degree)
	assert.True(t, e.Key(KeyRight, false))
	assert.True(t, e.Key(KeyRight, false))
	assert.Equal(t, theory.Degree(5), e.Selection().Degree)

	assert.True(t, e.Key(KeyUp, false))
	assert.Equal(t, theory.Notes, e.Mode(), "stops at the top")
	assert.True(t, e.Key(KeyDown, false))
	assert.Equal(t, theory.Ionian, e.Mode())
	for i := 0; i < 20; i++ {
		e.Key(KeyDown, false)
	}
	assert.Equal(t, theory.MelodicMinor, e.Mode(), "stops at the bottom")

	assert.True(t, e.Key(KeyUp, true))
	assert.Equal(t, overlay.None, e.Overlay())
	assert.False(t, e.Key(KeyDown, true))
	assert.Equal(t, overlay.None, e.Overlay())
	assert.Equal(t, theory.MelodicMinor, e.Mode())

	assert.False(t, e.Key(Key(99), false))
}

func TestTwelveStepsReturnHome(t *testing.T) {
	e := newEditor(t)
	for i := 0; i < 12; i++ {
		e.Key(KeyLeft, false)
	}
	s := e.Selection()
	assert.Equal(t, theory.Degree(0), s.Degree)
	assert.Equal(t, theory.Position(0), s.Position)
}

func TestToolbarButtons(t *testing.T) {
	e := newEditor(t)
	w := e.Widgets()
	at := func(r layout.Rect) (int, int) { return r.X + r.W/2, r.Y + r.H/2 }

	assert.True(t, e.Click(at(w.LabelsButton)))
	assert.Equal(t, theme.Solfege, e.Labels())

	assert.True(t, e.Click(at(w.DarkButton)))
	assert.Equal(t, theme.Dark, e.Theme())
	assert.Equal(t, config.DarkBackground, e.Palette().Background)

	assert.True(t, e.Click(at(w.OverlayButton)))
	assert.Equal(t, overlay.Sevenths, e.Overlay(), "disabled for Notes")

	e.SelectMode(theory.Dorian)
	assert.True(t, e.Click(at(w.OverlayButton)))
	assert.Equal(t, overlay.None, e.Overlay())

	assert.Equal(t, theory.Degree(0), e.Selection().Degree, "toolbar clicks never reach the circle")
}

func TestToolbarViews(t *testing.T) {
	e := newEditor(t)
	views := e.Toolbar()
	require.Len(t, views, 4)

	assert.Equal(t, "C", views[0].Label)
	assert.Equal(t, "Show Do Re Mi", views[0].Tooltip)
	assert.Equal(t, "7", views[1].Label)
	assert.False(t, views[1].Enabled)
	assert.Equal(t, "D", views[2].Label)
	assert.Equal(t, "H", views[3].Label)

	e.ToggleLabels()
	e.SelectMode(theory.Ionian)
	views = e.Toolbar()
	assert.Equal(t, "Do", views[0].Label)
	assert.Equal(t, "Show C D E", views[0].Tooltip)
	assert.True(t, views[1].Enabled)
	assert.Equal(t, "Don't show overlays", views[1].Tooltip)
}

func TestTooltip(t *testing.T) {
	e := newEditor(t)
	_, _, _, ok := e.Tooltip()
	assert.False(t, ok)

	b := e.Widgets().LabelsButton
	e.Hover(b.X+1, b.Y+1)
	assert.True(t, e.Dirty())
	text, x, y, ok := e.Tooltip()
	require.True(t, ok)
	assert.Equal(t, "Show Do Re Mi", text)
	assert.Equal(t, b.X, x)
	assert.Greater(t, y, b.Y+b.H)

	e.ClearDirty()
	e.Hover(b.X+b.W-2, b.Y+b.H-2)
	assert.False(t, e.Dirty(), "moving within a button changes nothing")
	_, x2, y2, ok := e.Tooltip()
	require.True(t, ok)
	assert.Equal(t, x, x2)
	assert.Equal(t, y, y2)

	o := e.Widgets().OverlayButton
	e.Hover(o.X+1, o.Y+1)
	_, _, _, ok = e.Tooltip()
	assert.False(t, ok, "no tooltip on a disabled button")
}

func TestModeMenu(t *testing.T) {
	e := newEditor(t)
	m := e.Widgets().ModeMenu

	assert.True(t, e.Click(m.X+5, m.Y+5))
	assert.True(t, e.MenuOpen())
	view := e.Menu()
	require.Len(t, view.Items, theory.ModeCount)
	assert.Equal(t, "Ionian (Major)", view.Items[1].Label)
	assert.True(t, view.Items[0].Selected)

	item := view.Items[theory.HarmonicMinor].Bounds
	e.Hover(item.X+5, item.Y+5)
	assert.True(t, e.Menu().Items[theory.HarmonicMinor].Hovered)

	assert.True(t, e.Click(item.X+5, item.Y+5))
	assert.False(t, e.MenuOpen())
	assert.Equal(t, theory.HarmonicMinor, e.Mode())
	assert.Equal(t, "Harmonic minor", e.Menu().Current)
	assert.Equal(t, theory.Degree(0), e.Selection().Degree, "menu clicks never reach the circle")
}

func TestModeMenuClosesOnOutsideClick(t *testing.T) {
	e := newEditor(t)
	m := e.Widgets().ModeMenu
	e.Click(m.X+5, m.Y+5)
	require.True(t, e.MenuOpen())

	assert.True(t, e.Click(centerX+100, centerY))
	assert.False(t, e.MenuOpen())
	assert.Equal(t, theory.Notes, e.Mode())
	assert.Equal(t, theory.Degree(0), e.Selection().Degree)
}

func TestHalfWidth(t *testing.T) {
	e := newEditor(t)
	assert.Equal(t, layout.Limits{MinW: 320, MinH: 352, MaxW: 415, MaxH: 440}, e.Limits())

	h := e.ToggleHalfWidth()
	assert.Equal(t, 220, h)
	assert.True(t, e.HalfWidth())
	w, rh, ok := e.TakeResize()
	require.True(t, ok)
	assert.Equal(t, 400, w)
	assert.Equal(t, 220, rh)
	_, _, ok = e.TakeResize()
	assert.False(t, ok)

	e.Resize(400, 220)
	assert.Equal(t, layout.Limits{MinW: 320, MinH: 175, MaxW: 550, MaxH: 220}, e.Limits())

	assert.Equal(t, 440, e.ToggleHalfWidth())
	assert.False(t, e.HalfWidth())
}

func TestHalfWidthRoundTripRestoresWindow(t *testing.T) {
	e := newEditor(t)

	// apply does what the window does with a requested size: clamp it to the limits, then lay out.
	apply := func() {
		w, h, ok := e.TakeResize()
		require.True(t, ok)
		w, h = e.Limits().Clamp(w, h)
		e.Resize(w, h)
	}

	e.ToggleHalfWidth()
	apply()
	w, h := e.Size()
	assert.Equal(t, 400, w)
	assert.Equal(t, 220, h)

	e.ToggleHalfWidth()
	cw, ch := e.Limits().Clamp(400, 440)
	assert.Equal(t, 400, cw)
	assert.Equal(t, 440, ch)
	apply()
	w, h = e.Size()
	assert.Equal(t, 400, w)
	assert.Equal(t, 440, h)
	assert.Equal(t, layout.Limits{MinW: 320, MinH: 352, MaxW: 415, MaxH: 440}, e.Limits())
}

func TestFrame(t *testing.T) {
	e := newEditor(t)

	cmds := e.Frame()
	require.Len(t, cmds, 2)
	assert.Equal(t, render.Fill, cmds[0].Op)
	assert.Equal(t, "lm_notes_circle_c", cmds[1].Asset.Name)

	e.Key(KeyDown, false)
	e.Key(KeyLeft, false)
	cmds = e.Frame()
	require.Len(t, cmds, 6)
	assert.Equal(t, "lm_ionian", cmds[3].Asset.Name)
	assert.NotZero(t, cmds[2].Rotation)

	e.ToggleTheme()
	cmds = e.Frame()
	assert.Equal(t, config.DarkBackground, cmds[0].Color)
	assert.Equal(t, "dm_modes_background", cmds[1].Asset.Name)
}
