// Package editor holds the state of the circle-of-fifths window and routes input to it.
package editor

import (
	"fmt"

	"github.com/iburimskiy/circle-of-fifths/internal/circle"
	"github.com/iburimskiy/circle-of-fifths/internal/config"
	"github.com/iburimskiy/circle-of-fifths/internal/layout"
	"github.com/iburimskiy/circle-of-fifths/internal/logger"
	"github.com/iburimskiy/circle-of-fifths/internal/overlay"
	"github.com/iburimskiy/circle-of-fifths/internal/render"
	"github.com/iburimskiy/circle-of-fifths/internal/theme"
	"github.com/iburimskiy/circle-of-fifths/internal/theory"
)

// Key is a keyboard key the editor reacts to.
type Key int

const (
	KeyLeft Key = iota + 1
	KeyRight
	KeyUp
	KeyDown
)

// Editor owns everything the window shows. It is not safe for concurrent use;
// all calls come from the UI loop.
type Editor struct {
	registry  *theme.Registry
	selection *circle.Selection
	overlay   *overlay.Machine

	theme  theme.Theme
	labels theme.Labels
	mode   theory.Mode
	half   bool

	menuOpen    bool
	hovered     Button
	hoveredItem theory.Mode

	width   int
	height  int
	widgets layout.Widgets
	limits  layout.Limits

	// pending window size asked for by the half-width toggle
	resizeW, resizeH int
	resizePending    bool

	dirty bool
}

// New builds an editor from cfg, drawing with the diagrams of reg.
func New(cfg config.Config, reg *theme.Registry) (*Editor, error) {
	if reg == nil {
		return nil, fmt.Errorf("editor: no theme registry")
	}
	labels, err := theme.ParseLabels(cfg.Circle.Labels)
	if err != nil {
		return nil, err
	}
	ov, err := overlay.Parse(cfg.Overlay.Initial)
	if err != nil {
		return nil, err
	}
	mode, err := theory.ModeByName(cfg.Mode.Initial)
	if err != nil {
		return nil, err
	}

	e := &Editor{
		registry:    reg,
		selection:   circle.NewSelection(),
		overlay:     overlay.NewAt(ov),
		theme:       theme.FromDark(cfg.Theme.Dark),
		labels:      labels,
		mode:        mode,
		half:        cfg.Layout.HalfWidth,
		hoveredItem: -1,
	}
	e.selection.OnChange(func(s circle.Snapshot) {
		e.dirty = true
		logger.Debug("selection changed", logger.Fields{
			"degree":   s.Degree.Name(),
			"position": int(s.Position),
			"target":   s.Target,
		})
	})
	e.Resize(cfg.Window.Width, cfg.Window.Height)

	logger.Debug("editor created", logger.Fields{
		"theme":   e.theme.String(),
		"labels":  e.labels.String(),
		"mode":    e.mode.String(),
		"overlay": e.overlay.Mode().String(),
		"half":    e.half,
	})
	return e, nil
}

// Resize lays the editor out for a window of w x h.
func (e *Editor) Resize(w, h int) {
	if w == e.width && h == e.height && e.widgets.Circle.W != 0 {
		return
	}
	e.width, e.height = w, h
	e.widgets = layout.Arrange(w, h)
	e.limits = layout.Constrain(layout.Rect{W: w, H: h}, e.half)
	e.dirty = true
}

// Size is the current window size.
func (e *Editor) Size() (int, int) { return e.width, e.height }

// Limits are the sizes the window may be resized to.
func (e *Editor) Limits() layout.Limits { return e.limits }

func (e *Editor) Widgets() layout.Widgets { return e.widgets }

// TakeResize returns a window size the editor asked for since the last call.
func (e *Editor) TakeResize() (w, h int, ok bool) {
	if !e.resizePending {
		return 0, 0, false
	}
	e.resizePending = false
	return e.resizeW, e.resizeH, true
}

func (e *Editor) Theme() theme.Theme { return e.theme }

func (e *Editor) Labels() theme.Labels { return e.labels }

func (e *Editor) Mode() theory.Mode { return e.mode }

func (e *Editor) Overlay() overlay.Mode { return e.overlay.Mode() }

func (e *Editor) HalfWidth() bool { return e.half }

func (e *Editor) MenuOpen() bool { return e.menuOpen }

func (e *Editor) Selection() circle.Snapshot { return e.selection.Snapshot() }

// Palette returns the colours of the current theme.
func (e *Editor) Palette() theme.Palette { return theme.PaletteFor(e.theme) }

// Dirty reports whether anything changed since the last ClearDirty.
func (e *Editor) Dirty() bool { return e.dirty }

func (e *Editor) ClearDirty() { e.dirty = false }

// SelectMode switches the mode overlay.
func (e *Editor) SelectMode(m theory.Mode) {
	m = theory.ClampMode(int(m))
	if m == e.mode {
		return
	}
	e.mode = m
	e.dirty = true
	logger.Debug("mode changed", logger.Fields{"mode": m.String()})
}

// ToggleTheme switches between light and dark.
func (e *Editor) ToggleTheme() {
	e.theme = e.theme.Toggle()
	e.dirty = true
	logger.Debug("theme changed", logger.Fields{"theme": e.theme.String()})
}

// ToggleLabels switches between letter and solfege note names.
func (e *Editor) ToggleLabels() {
	e.labels = e.labels.Toggle()
	e.dirty = true
	logger.Debug("labels changed", logger.Fields{"labels": e.labels.String()})
}

// AdvanceOverlay moves to the next chord overlay.
func (e *Editor) AdvanceOverlay() {
	m := e.overlay.Advance()
	e.dirty = true
	logger.Debug("overlay changed", logger.Fields{"overlay": m.String()})
}

// ToggleHalfWidth switches the half circle layout and returns the window height it asks for,
// the tallest the new layout allows at the current width.
func (e *Editor) ToggleHalfWidth() int {
	e.half = !e.half
	e.limits = layout.Constrain(layout.Rect{W: e.width, H: e.height}, e.half)
	h := e.limits.MaxH
	// Limits derived from the old height can exclude the size asked for here.
	e.limits = layout.Constrain(layout.Rect{W: e.width, H: h}, e.half)
	e.resizeW, e.resizeH, e.resizePending = e.width, h, true
	e.dirty = true
	logger.Debug("half width changed", logger.Fields{"half": e.half, "height": h})
	return h
}

// Key handles a key press and reports whether it was used.
func (e *Editor) Key(k Key, shift bool) bool {
	switch k {
	case KeyLeft:
		return e.selection.StepClockwise()
	case KeyRight:
		return e.selection.StepCounterclockwise()
	case KeyUp:
		if shift {
			e.AdvanceOverlay()
			return true
		}
		e.SelectMode(e.mode.Prev())
		return true
	case KeyDown:
		if shift {
			return false
		}
		e.SelectMode(e.mode.Next())
		return true
	}
	return false
}

// Click handles a primary button press at (x, y). The open menu gets it first,
// then the toolbar, then the circle.
func (e *Editor) Click(x, y int) bool {
	if e.menuOpen {
		if m, ok := e.menuItemAt(x, y); ok {
			e.SelectMode(m)
		}
		e.menuOpen = false
		e.hoveredItem = -1
		e.dirty = true
		return true
	}

	if b := e.buttonAt(x, y); b != ButtonNone {
		e.press(b)
		return true
	}

	c := e.widgets.Circle
	return e.selection.Click(float64(x), float64(y), c.CenterX(), c.CenterY(), float64(c.W)/2)
}

func (e *Editor) press(b Button) {
	switch b {
	case ButtonMode:
		e.menuOpen = true
		e.dirty = true
	case ButtonLabels:
		e.ToggleLabels()
	case ButtonOverlay:
		if e.overlayEnabled() {
			e.AdvanceOverlay()
		}
	case ButtonDark:
		e.ToggleTheme()
	case ButtonHalf:
		e.ToggleHalfWidth()
	}
}

// Hover records which control the pointer is over, for highlights and tooltips.
func (e *Editor) Hover(x, y int) {
	b := e.buttonAt(x, y)
	item := theory.Mode(-1)
	if e.menuOpen {
		b = ButtonNone
		if m, ok := e.menuItemAt(x, y); ok {
			item = m
		}
	}
	if b != e.hovered || item != e.hoveredItem {
		e.dirty = true
	}
	e.hovered, e.hoveredItem = b, item
}

// Frame returns the draw commands of the diagram.
func (e *Editor) Frame() []render.Command {
	return render.Compose(render.Frame{
		Window:     layout.Rect{W: e.width, H: e.height},
		Circle:     e.widgets.Circle,
		Background: e.Palette().Background,
		Layers:     e.registry.Resolve(e.theme, e.labels, e.mode),
		Mode:       e.mode,
		Selection:  e.selection.Snapshot(),
		Overlay:    e.overlay.Mode(),
	})
}

func (e *Editor) overlayEnabled() bool { return e.mode.HasOverlay() }
