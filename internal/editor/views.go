package editor

import (
	"github.com/iburimskiy/circle-of-fifths/internal/layout"
	"github.com/iburimskiy/circle-of-fifths/internal/theme"
	"github.com/iburimskiy/circle-of-fifths/internal/theory"
)

// Button identifies a toolbar control.
type Button int

const (
	ButtonNone Button = iota
	ButtonMode
	ButtonLabels
	ButtonOverlay
	ButtonDark
	ButtonHalf
)

// ButtonView is what the toolbar draws for one button.
type ButtonView struct {
	Button  Button
	Bounds  layout.Rect
	Label   string
	Tooltip string
	On      bool
	Enabled bool
	Hovered bool
}

// MenuItem is one row of the opened mode menu.
type MenuItem struct {
	Mode     theory.Mode
	Label    string
	Bounds   layout.Rect
	Selected bool
	Hovered  bool
}

// MenuView is the mode menu, closed or open.
type MenuView struct {
	Bounds  layout.Rect
	Current string
	Open    bool
	Hovered bool
	Items   []MenuItem
}

// Toolbar returns the buttons right of the mode menu, left to right.
func (e *Editor) Toolbar() []ButtonView {
	w := e.widgets
	labelsTip := "Show Do Re Mi"
	labelsText := "C"
	if e.labels == theme.Solfege {
		labelsTip = "Show C D E"
		labelsText = "Do"
	}
	ov := e.overlay.Mode()
	views := []ButtonView{
		{Button: ButtonLabels, Bounds: w.LabelsButton, Label: labelsText, Tooltip: labelsTip, On: e.labels == theme.Solfege, Enabled: true},
		{Button: ButtonOverlay, Bounds: w.OverlayButton, Label: ov.Label(), Tooltip: ov.Tooltip(), On: ov.ShowsTriads(), Enabled: e.overlayEnabled()},
		{Button: ButtonDark, Bounds: w.DarkButton, Label: "D", Tooltip: "Dark mode", On: e.theme.Dark(), Enabled: true},
		{Button: ButtonHalf, Bounds: w.HalfButton, Label: "H", Tooltip: "Half circle", On: e.half, Enabled: true},
	}
	for i := range views {
		views[i].Hovered = !e.menuOpen && views[i].Button == e.hovered
	}
	return views
}

// Menu returns the mode menu.
func (e *Editor) Menu() MenuView {
	v := MenuView{
		Bounds:  e.widgets.ModeMenu,
		Current: e.mode.String(),
		Open:    e.menuOpen,
		Hovered: !e.menuOpen && e.hovered == ButtonMode,
	}
	if !e.menuOpen {
		return v
	}
	for _, m := range theory.Modes() {
		v.Items = append(v.Items, MenuItem{
			Mode:     m,
			Label:    m.String(),
			Bounds:   e.itemBounds(m),
			Selected: m == e.mode,
			Hovered:  m == e.hoveredItem,
		})
	}
	return v
}

// Tooltip returns the text to show for the hovered button and where its top left corner goes,
// just below the button's left edge.
func (e *Editor) Tooltip() (text string, x, y int, ok bool) {
	if e.menuOpen || e.hovered == ButtonNone || e.hovered == ButtonMode {
		return "", 0, 0, false
	}
	for _, b := range e.Toolbar() {
		if b.Button != e.hovered {
			continue
		}
		if !b.Enabled {
			return "", 0, 0, false
		}
		return b.Tooltip, b.Bounds.X, b.Bounds.Y + b.Bounds.H + 2, true
	}
	return "", 0, 0, false
}

func (e *Editor) buttonAt(x, y int) Button {
	w := e.widgets
	switch {
	case w.ModeMenu.Contains(x, y):
		return ButtonMode
	case w.LabelsButton.Contains(x, y):
		return ButtonLabels
	case w.OverlayButton.Contains(x, y):
		return ButtonOverlay
	case w.DarkButton.Contains(x, y):
		return ButtonDark
	case w.HalfButton.Contains(x, y):
		return ButtonHalf
	}
	return ButtonNone
}

func (e *Editor) itemBounds(m theory.Mode) layout.Rect {
	r := e.widgets.MenuItem
	r.Y += int(m) * r.H
	return r
}

func (e *Editor) menuItemAt(x, y int) (theory.Mode, bool) {
	for _, m := range theory.Modes() {
		if e.itemBounds(m).Contains(x, y) {
			return m, true
		}
	}
	return theory.Notes, false
}
