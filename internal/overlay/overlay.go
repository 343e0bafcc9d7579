// Package overlay cycles the chord overlays drawn on top of a mode.
package overlay

import (
	"fmt"
	"strings"
)

// Mode is which chord overlays are visible.
type Mode int

const (
	None Mode = iota
	Triads
	Sevenths
)

type state struct {
	name    string
	label   string
	tooltip string
}

var states = [...]state{
	None:     {"none", " ", "Show triads"},
	Triads:   {"triads", "T", "Show sevenths"},
	Sevenths: {"sevenths", "7", "Don't show overlays"},
}

// Clamp bounds m to the known states.
func Clamp(m Mode) Mode {
	if m < None {
		return None
	}
	if m > Sevenths {
		return Sevenths
	}
	return m
}

func (m Mode) String() string { return states[Clamp(m)].name }

// Label is the text of the button that shows this state.
func (m Mode) Label() string { return states[Clamp(m)].label }

// Tooltip describes what pressing the button will do next.
func (m Mode) Tooltip() string { return states[Clamp(m)].tooltip }

// ShowsTriads is true for Triads and Sevenths; sevenths are drawn over the triads.
func (m Mode) ShowsTriads() bool { return m == Triads || m == Sevenths }

func (m Mode) ShowsSevenths() bool { return m == Sevenths }

// Parse reads a mode from its name.
func Parse(s string) (Mode, error) {
	for i, st := range states {
		if strings.EqualFold(st.name, s) {
			return Mode(i), nil
		}
	}
	return None, fmt.Errorf("unknown overlay %q", s)
}

// Machine holds the current overlay. It only moves forward, one state at a time.
type Machine struct {
	mode Mode
}

// New starts at Sevenths.
func New() *Machine {
	return &Machine{mode: Sevenths}
}

// NewAt starts at m, clamped to the known states.
func NewAt(m Mode) *Machine {
	return &Machine{mode: Clamp(m)}
}

func (m *Machine) Mode() Mode { return m.mode }

// Advance moves None -> Triads -> Sevenths -> None and returns the new state.
func (m *Machine) Advance() Mode {
	m.mode = (m.mode + 1) % Mode(len(states))
	return m.mode
}

// ShowsTriads reports whether the triad layer is drawn.
func (m *Machine) ShowsTriads() bool { return m.mode.ShowsTriads() }

// ShowsSevenths reports whether the seventh-chord layer is drawn.
func (m *Machine) ShowsSevenths() bool { return m.mode.ShowsSevenths() }
