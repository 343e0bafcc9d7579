package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/iburimskiy/circle-of-fifths/internal/overlay"
	"github.com/iburimskiy/circle-of-fifths/internal/theory"
)

const (
	WindowWidth  = 400
	WindowHeight = 440

	// Size in pixels of the square diagrams rendered at startup.
	AssetSize = 512

	// Toolbar
	MinButtonHeight   = 17
	ButtonHeightRatio = 0.05
	ButtonSpaceRatio  = 0.1
	// The circle is narrower than its area by this many button spaces.
	CircleInsetSpaces = 16

	// Window limits, normal layout
	MinWidth           = 320
	MinHeight          = 352
	MaxHeightPerWidth  = 1.1
	HeightPerMaxWidth  = 1.06
	HalfMinHeight      = 175
	HalfMaxHeightRatio = 0.55
	HalfMaxWidthRatio  = 2.5

	DefaultSampleRate = 44100
)

// Dark diagrams were exported on this background; it is replaced by DarkBackground at load.
var WrongDarkBackground = color.NRGBA{R: 41, G: 43, B: 44, A: 255}

var (
	DarkForeground         = color.NRGBA{R: 236, G: 236, B: 236, A: 255}
	DarkBackground         = color.NRGBA{R: 36, G: 33, B: 33, A: 255}
	DarkSelectedBackground = color.NRGBA{R: 95, G: 95, B: 95, A: 255}
)

// Config holds runtime settings.
type Config struct {
	Window  WindowConfig
	Theme   ThemeConfig
	Layout  LayoutConfig
	Circle  CircleConfig
	Overlay OverlayConfig
	Mode    ModeConfig
	Assets  AssetsConfig
	Audio   AudioConfig
	Log     LogConfig
}

type WindowConfig struct {
	Width  int
	Height int
}

type ThemeConfig struct {
	Dark bool
}

type LayoutConfig struct {
	HalfWidth bool `mapstructure:"half_width"`
}

// CircleConfig picks letter (C D E) or solfege (Do Re Mi) note names.
type CircleConfig struct {
	Labels string
}

type OverlayConfig struct {
	Initial string
}

type ModeConfig struct {
	Initial string
}

type AssetsConfig struct {
	Size int
}

// AudioConfig controls whether the standalone host opens an output device.
type AudioConfig struct {
	Enabled    bool
	SampleRate int `mapstructure:"sample_rate"`
}

type LogConfig struct {
	Level string
}

const (
	LabelsLetters = "letters"
	LabelsSolfege = "solfege"
)

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Window:  WindowConfig{Width: WindowWidth, Height: WindowHeight},
		Circle:  CircleConfig{Labels: LabelsLetters},
		Overlay: OverlayConfig{Initial: overlay.Sevenths.String()},
		Mode:    ModeConfig{Initial: theory.Notes.String()},
		Assets:  AssetsConfig{Size: AssetSize},
		Audio:   AudioConfig{SampleRate: DefaultSampleRate},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads configuration from file and env. Env var overrides use prefix CIRCLEOFFIFTHS_.
func Load() (Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("theme.dark", d.Theme.Dark)
	v.SetDefault("layout.half_width", d.Layout.HalfWidth)
	v.SetDefault("circle.labels", d.Circle.Labels)
	v.SetDefault("overlay.initial", d.Overlay.Initial)
	v.SetDefault("mode.initial", d.Mode.Initial)
	v.SetDefault("assets.size", d.Assets.Size)
	v.SetDefault("audio.enabled", d.Audio.Enabled)
	v.SetDefault("audio.sample_rate", d.Audio.SampleRate)
	v.SetDefault("log.level", d.Log.Level)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CIRCLEOFFIFTHS_CONFIG")
	if cfgPath != "" {
		if _, err := os.Stat(cfgPath); err != nil {
			return Config{}, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(cfgPath)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "circle-of-fifths"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CIRCLEOFFIFTHS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the editor cannot start with.
func (c Config) Validate() error {
	switch c.Circle.Labels {
	case LabelsLetters, LabelsSolfege:
	default:
		return fmt.Errorf("circle.labels: %q is neither %q nor %q", c.Circle.Labels, LabelsLetters, LabelsSolfege)
	}
	if _, err := overlay.Parse(c.Overlay.Initial); err != nil {
		return fmt.Errorf("overlay.initial: %w", err)
	}
	if _, err := theory.ModeByName(c.Mode.Initial); err != nil {
		return fmt.Errorf("mode.initial: %w", err)
	}
	if c.Assets.Size < 64 {
		return fmt.Errorf("assets.size: %d is too small", c.Assets.Size)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: %dx%d is not a size", c.Window.Width, c.Window.Height)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate: %d", c.Audio.SampleRate)
	}
	return nil
}
