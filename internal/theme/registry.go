// Package theme resolves which diagram layers to draw for a theme and a mode.
package theme

import (
	"errors"
	"fmt"
	"image"

	"github.com/iburimskiy/circle-of-fifths/internal/assets"
	"github.com/iburimskiy/circle-of-fifths/internal/config"
	"github.com/iburimskiy/circle-of-fifths/internal/logger"
	"github.com/iburimskiy/circle-of-fifths/internal/theory"
)

// ErrMissingAsset is returned when the source cannot provide a diagram.
var ErrMissingAsset = errors.New("missing asset")

// Theme is light or dark.
type Theme int

const (
	Light Theme = iota
	Dark
)

// FromDark converts a dark-mode flag.
func FromDark(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}

func (t Theme) Dark() bool { return t == Dark }

// Toggle returns the other theme.
func (t Theme) Toggle() Theme { return 1 - t }

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Labels picks how notes on the circle are named.
type Labels int

const (
	Letters Labels = iota
	Solfege
)

// Toggle returns the other naming.
func (l Labels) Toggle() Labels { return 1 - l }

func (l Labels) String() string {
	if l == Solfege {
		return config.LabelsSolfege
	}
	return config.LabelsLetters
}

// ParseLabels reads a configured naming.
func ParseLabels(s string) (Labels, error) {
	switch s {
	case config.LabelsLetters:
		return Letters, nil
	case config.LabelsSolfege:
		return Solfege, nil
	}
	return Letters, fmt.Errorf("unknown circle labels %q", s)
}

// Asset is a loaded diagram. Assets are never modified after the registry is built.
type Asset struct {
	Name  string
	Spec  assets.Spec
	Image *image.RGBA
}

// Set holds the layers of one diagram. Mode layers are nil for Notes.
type Set struct {
	Circle         *Asset
	ModeBackground *Asset
	ModeImage      *Asset
	Triads         *Asset
	Sevenths       *Asset
}

// Registry holds every diagram for both themes.
type Registry struct {
	circle     [2][2]*Asset
	background [2][theory.CategoryCount]*Asset
	image      [2][theory.ModeCount]*Asset
	triads     [2][theory.CategoryCount]*Asset
	sevenths   [2][theory.CategoryCount]*Asset

	// Corrected counts the pixels rewritten by the dark background fix.
	Corrected int
}

// NewRegistry loads all diagrams from src and fixes the background colour of the dark ones.
func NewRegistry(src assets.Source) (*Registry, error) {
	r := &Registry{}
	for _, t := range []Theme{Light, Dark} {
		for _, l := range []Labels{Letters, Solfege} {
			a, err := r.load(src, assets.Spec{Kind: assets.Circle, Dark: t.Dark(), Solfege: l == Solfege})
			if err != nil {
				return nil, err
			}
			r.circle[t][l] = a
		}
		for c := theory.CategoryDiatonic; int(c) < theory.CategoryCount; c++ {
			var err error
			if r.background[t][c], err = r.load(src, assets.Spec{Kind: assets.ModeBackground, Dark: t.Dark(), Category: c}); err != nil {
				return nil, err
			}
			if r.triads[t][c], err = r.load(src, assets.Spec{Kind: assets.Triads, Dark: t.Dark(), Category: c}); err != nil {
				return nil, err
			}
			if r.sevenths[t][c], err = r.load(src, assets.Spec{Kind: assets.Sevenths, Dark: t.Dark(), Category: c}); err != nil {
				return nil, err
			}
		}
		for _, m := range theory.Modes() {
			if !m.HasOverlay() {
				continue
			}
			a, err := r.load(src, assets.Spec{Kind: assets.ModeImage, Dark: t.Dark(), Mode: m})
			if err != nil {
				return nil, err
			}
			r.image[t][m] = a
		}
	}
	logger.Info("theme assets loaded", logger.Fields{"corrected_pixels": r.Corrected})
	return r, nil
}

func (r *Registry) load(src assets.Source, s assets.Spec) (*Asset, error) {
	img, err := src.Load(s)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrMissingAsset, s.Name(), err)
	}
	if img == nil {
		return nil, fmt.Errorf("%w %s", ErrMissingAsset, s.Name())
	}
	if s.Dark {
		r.Corrected += assets.ReplaceColor(img, config.WrongDarkBackground, config.DarkBackground)
	}
	return &Asset{Name: s.Name(), Spec: s, Image: img}, nil
}

// Resolve returns the layers to draw for theme t, note naming l and mode m.
func (r *Registry) Resolve(t Theme, l Labels, m theory.Mode) Set {
	t, l, m = Theme(clampIndex(int(t), 2)), Labels(clampIndex(int(l), 2)), theory.ClampMode(int(m))
	s := Set{Circle: r.circle[t][l]}
	if !m.HasOverlay() {
		return s
	}
	c := m.Category()
	s.ModeBackground = r.background[t][c]
	s.ModeImage = r.image[t][m]
	s.Triads = r.triads[t][c]
	s.Sevenths = r.sevenths[t][c]
	return s
}

// Lookup resolves by the mode's menu name.
func (r *Registry) Lookup(dark bool, l Labels, modeName string) (Set, error) {
	m, err := theory.ModeByName(modeName)
	if err != nil {
		return Set{}, err
	}
	return r.Resolve(FromDark(dark), l, m), nil
}

// Get returns the layer of kind k from s.
func (s Set) Get(k assets.Kind) *Asset {
	switch k {
	case assets.Circle:
		return s.Circle
	case assets.ModeBackground:
		return s.ModeBackground
	case assets.ModeImage:
		return s.ModeImage
	case assets.Triads:
		return s.Triads
	case assets.Sevenths:
		return s.Sevenths
	}
	return nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
