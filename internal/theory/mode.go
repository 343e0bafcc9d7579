package theory

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is returned when a menu name does not match any mode.
var ErrUnknownMode = errors.New("unknown mode")

// Mode is an entry of the mode menu. The zero value is Notes.
type Mode int

const (
	Notes Mode = iota
	Ionian
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
	HarmonicMinor
	MelodicMinor
)

// ModeCount is the number of menu entries.
const ModeCount = int(MelodicMinor) + 1

// Category groups modes that share overlay artwork.
type Category int

const (
	CategoryNotes Category = iota
	CategoryDiatonic
	CategoryHarmonicMinor
	CategoryMelodicMinor
)

// CategoryCount is the number of mode categories.
const CategoryCount = int(CategoryMelodicMinor) + 1

type modeInfo struct {
	name     string
	slug     string
	category Category
	scale    []int
}

var modes = [ModeCount]modeInfo{
	Notes:         {"Notes", "notes", CategoryNotes, nil},
	Ionian:        {"Ionian (Major)", "ionian", CategoryDiatonic, []int{0, 2, 4, 5, 7, 9, 11}},
	Dorian:        {"Dorian", "dorian", CategoryDiatonic, []int{0, 2, 3, 5, 7, 9, 10}},
	Phrygian:      {"Phrygian", "phrygian", CategoryDiatonic, []int{0, 1, 3, 5, 7, 8, 10}},
	Lydian:        {"Lydian", "lydian", CategoryDiatonic, []int{0, 2, 4, 6, 7, 9, 11}},
	Mixolydian:    {"Mixolydian", "mixolydian", CategoryDiatonic, []int{0, 2, 4, 5, 7, 9, 10}},
	Aeolian:       {"Aeolian (Nat. minor)", "aeolian", CategoryDiatonic, []int{0, 2, 3, 5, 7, 8, 10}},
	Locrian:       {"Locrian", "locrian", CategoryDiatonic, []int{0, 1, 3, 5, 6, 8, 10}},
	HarmonicMinor: {"Harmonic minor", "harmonic_minor", CategoryHarmonicMinor, []int{0, 2, 3, 5, 7, 8, 11}},
	MelodicMinor:  {"Melodic minor", "melodic_minor", CategoryMelodicMinor, []int{0, 2, 3, 5, 7, 9, 11}},
}

// Modes returns every mode in menu order.
func Modes() []Mode {
	out := make([]Mode, ModeCount)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// ClampMode bounds i to the menu.
func ClampMode(i int) Mode {
	if i < 0 {
		return Notes
	}
	if i >= ModeCount {
		return MelodicMinor
	}
	return Mode(i)
}

// ModeByName finds a mode by its menu name or its slug.
func ModeByName(name string) (Mode, error) {
	for i, m := range modes {
		if m.name == name || m.slug == name {
			return Mode(i), nil
		}
	}
	return Notes, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

func (m Mode) info() modeInfo { return modes[ClampMode(int(m))] }

// String returns the menu name.
func (m Mode) String() string { return m.info().name }

// Slug returns a lower-case identifier, used in asset names and configuration.
func (m Mode) Slug() string { return m.info().slug }

// Category returns the artwork group of m.
func (m Mode) Category() Category { return m.info().category }

// HasOverlay reports whether m draws anything on top of the plain circle.
func (m Mode) HasOverlay() bool { return m != Notes }

// Scale returns the semitone offsets of m from its tonic, or nil for Notes.
func (m Mode) Scale() []int {
	s := m.info().scale
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)
	return out
}

// Prev returns the entry above m in the menu, stopping at the first one.
func (m Mode) Prev() Mode { return ClampMode(int(m) - 1) }

// Next returns the entry below m in the menu, stopping at the last one.
func (m Mode) Next() Mode { return ClampMode(int(m) + 1) }

func (c Category) String() string {
	switch c {
	case CategoryNotes:
		return "notes"
	case CategoryDiatonic:
		return "modes"
	case CategoryHarmonicMinor:
		return "harmonic_minor"
	case CategoryMelodicMinor:
		return "melodic_minor"
	default:
		return "unknown"
	}
}
