// Package assets renders the diagrams the editor composites: the note circle, and the
// background, image and chord layers of each mode.
package assets

import (
	"fmt"
	"image"

	"github.com/iburimskiy/circle-of-fifths/internal/theory"
)

// Kind is one of the five layers a diagram is made of.
type Kind int

const (
	Circle Kind = iota
	ModeBackground
	ModeImage
	Triads
	Sevenths
)

// KindCount is the number of layer kinds.
const KindCount = int(Sevenths) + 1

func (k Kind) String() string {
	switch k {
	case Circle:
		return "circle"
	case ModeBackground:
		return "background"
	case ModeImage:
		return "image"
	case Triads:
		return "triads"
	case Sevenths:
		return "7ths"
	default:
		return "unknown"
	}
}

// Spec identifies one diagram.
type Spec struct {
	Kind Kind
	Dark bool
	// Solfege selects Do Re Mi note names on the circle.
	Solfege bool
	// Mode is set for ModeImage.
	Mode theory.Mode
	// Category is set for ModeBackground, Triads and Sevenths.
	Category theory.Category
}

// Name is a stable identifier, e.g. "dm_harmonic_minor_triads".
func (s Spec) Name() string {
	prefix := "lm"
	if s.Dark {
		prefix = "dm"
	}
	switch s.Kind {
	case Circle:
		if s.Solfege {
			return prefix + "_notes_circle_do"
		}
		return prefix + "_notes_circle_c"
	case ModeImage:
		return fmt.Sprintf("%s_%s", prefix, s.Mode.Slug())
	default:
		return fmt.Sprintf("%s_%s_%s", prefix, s.Category, s.Kind)
	}
}

// Source loads diagrams.
type Source interface {
	Load(s Spec) (*image.RGBA, error)
}
