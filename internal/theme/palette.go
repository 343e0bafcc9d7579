package theme

import (
	"image/color"

	"github.com/iburimskiy/circle-of-fifths/internal/config"
)

// Palette colours the toolbar, menu and window around the diagram.
type Palette struct {
	Background color.Color
	Foreground color.Color

	ButtonOff    color.Color
	ButtonOn     color.Color
	ButtonHover  color.Color
	TextOn       color.Color
	TextOff      color.Color
	TextDisabled color.Color

	MenuBackground  color.Color
	MenuOutline     color.Color
	MenuFocused     color.Color
	MenuArrow       color.Color
	MenuHighlight   color.Color
	MenuHighlightFg color.Color

	TooltipBackground color.Color
	TooltipText       color.Color
}

var (
	black     = color.NRGBA{A: 255}
	white     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	lightgrey = color.NRGBA{R: 211, G: 211, B: 211, A: 255}
	darkgrey  = color.NRGBA{R: 169, G: 169, B: 169, A: 255}
)

var light = Palette{
	Background:        white,
	Foreground:        black,
	ButtonOff:         white,
	ButtonOn:          lightgrey,
	ButtonHover:       color.NRGBA{R: 230, G: 230, B: 230, A: 255},
	TextOn:            black,
	TextOff:           darkgrey,
	TextDisabled:      lightgrey,
	MenuBackground:    white,
	MenuOutline:       black,
	MenuFocused:       black,
	MenuArrow:         darkgrey,
	MenuHighlight:     lightgrey,
	MenuHighlightFg:   black,
	TooltipBackground: color.NRGBA{R: 230, G: 230, B: 230, A: 255},
	TooltipText:       black,
}

var dark = Palette{
	Background:        config.DarkBackground,
	Foreground:        config.DarkForeground,
	ButtonOff:         config.DarkBackground,
	ButtonOn:          config.DarkSelectedBackground,
	ButtonHover:       color.NRGBA{R: 60, G: 58, B: 58, A: 255},
	TextOn:            config.DarkForeground,
	TextOff:           config.DarkForeground,
	TextDisabled:      config.DarkSelectedBackground,
	MenuBackground:    config.DarkBackground,
	MenuOutline:       config.DarkForeground,
	MenuFocused:       white,
	MenuArrow:         config.DarkForeground,
	MenuHighlight:     config.DarkSelectedBackground,
	MenuHighlightFg:   white,
	TooltipBackground: config.DarkSelectedBackground,
	TooltipText:       config.DarkForeground,
}

// PaletteFor returns the colours of theme t.
func PaletteFor(t Theme) Palette {
	if t == Dark {
		return dark
	}
	return light
}
