package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	MaxCanvasSize = 600

	// Swarm
	ParticleCount = 200
	PixelSize     = 4
	FrameRatio    = 0.8
	FrameInset    = 10
	RadiusDivisor = 3

	// Motion
	JitterAmplitude = 2
	ReturnFactor    = 0.1
	ApproachFactor  = 0.05
	SnapDistance    = 1
	AngularStep     = 0.01

	// Button dimensions
	ButtonSize    = 50
	ButtonSpacing = 20
	ButtonOffsetY = 60

	BackgroundColor = "#000000"
	FrameColor      = "#008080"
)

var DefaultPalette = []string{"#ffb703", "#fb8500"}

type Config struct {
	Width     int            `yaml:"width"`
	Height    int            `yaml:"height"`
	Particles int            `yaml:"particles"`
	Seed      int64          `yaml:"seed"`
	Mute      bool           `yaml:"mute"`
	LogLevel  string         `yaml:"log_level"`
	Colors    ColorConfig    `yaml:"colors"`
	Geometry  GeometryConfig `yaml:"geometry"`
	Motion    MotionConfig   `yaml:"motion"`
	Buttons   ButtonConfig   `yaml:"buttons"`
}

type ColorConfig struct {
	Background string   `yaml:"background"`
	Frame      string   `yaml:"frame"`
	Palette    []string `yaml:"palette"`
}

type GeometryConfig struct {
	PixelSize     float64 `yaml:"pixel_size"`
	FrameRatio    float64 `yaml:"frame_ratio"`
	FrameInset    float64 `yaml:"frame_inset"`
	RadiusDivisor float64 `yaml:"radius_divisor"`
}

type MotionConfig struct {
	Jitter   float64 `yaml:"jitter"`
	Return   float64 `yaml:"return"`
	Approach float64 `yaml:"approach"`
	Snap     float64 `yaml:"snap"`
	Step     float64 `yaml:"step"`
}

type ButtonConfig struct {
	Size    float64 `yaml:"size"`
	Spacing float64 `yaml:"spacing"`
	OffsetY float64 `yaml:"offset_y"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:     MaxCanvasSize,
		Height:    MaxCanvasSize,
		Particles: ParticleCount,
		LogLevel:  "info",
		Colors: ColorConfig{
			Background: BackgroundColor,
			Frame:      FrameColor,
			Palette:    append([]string(nil), DefaultPalette...),
		},
		Geometry: GeometryConfig{
			PixelSize:     PixelSize,
			FrameRatio:    FrameRatio,
			FrameInset:    FrameInset,
			RadiusDivisor: RadiusDivisor,
		},
		Motion: MotionConfig{
			Jitter:   JitterAmplitude,
			Return:   ReturnFactor,
			Approach: ApproachFactor,
			Snap:     SnapDistance,
			Step:     AngularStep,
		},
		Buttons: ButtonConfig{
			Size:    ButtonSize,
			Spacing: ButtonSpacing,
			OffsetY: ButtonOffsetY,
		},
	}
}

// Load reads a YAML file over the defaults, so a partial file only
// overrides the keys it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Particles <= 0 {
		errs = append(errs, fmt.Errorf("particles must be positive, got %d", c.Particles))
	}
	if len(c.Colors.Palette) == 0 {
		errs = append(errs, errors.New("palette must not be empty"))
	}
	if c.Geometry.FrameRatio <= 0 || c.Geometry.FrameRatio > 1 {
		errs = append(errs, fmt.Errorf("frame_ratio must be in (0,1], got %g", c.Geometry.FrameRatio))
	}
	if c.Geometry.RadiusDivisor <= 0 {
		errs = append(errs, fmt.Errorf("radius_divisor must be positive, got %g", c.Geometry.RadiusDivisor))
	}
	for name, f := range map[string]float64{"return": c.Motion.Return, "approach": c.Motion.Approach} {
		if f <= 0 || f > 1 {
			errs = append(errs, fmt.Errorf("motion.%s must be in (0,1], got %g", name, f))
		}
	}
	if c.Motion.Snap <= 0 {
		errs = append(errs, fmt.Errorf("motion.snap must be positive, got %g", c.Motion.Snap))
	}
	if c.Buttons.Size <= 0 {
		errs = append(errs, fmt.Errorf("buttons.size must be positive, got %g", c.Buttons.Size))
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}
	if _, _, err := c.FrameColors(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// CanvasSize caps the configured size the way the window is capped.
func (c *Config) CanvasSize() (int, int) {
	return min(c.Width, MaxCanvasSize), min(c.Height, MaxCanvasSize)
}

func (c *Config) Palette() ([]colorful.Color, error) {
	out := make([]colorful.Color, 0, len(c.Colors.Palette))
	for _, hex := range c.Colors.Palette {
		col, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette color %q: %w", hex, err)
		}
		out = append(out, col)
	}
	return out, nil
}

// FrameColors returns the background and frame border colors.
func (c *Config) FrameColors() (bg, frame colorful.Color, err error) {
	if bg, err = colorful.Hex(c.Colors.Background); err != nil {
		return bg, frame, fmt.Errorf("background color %q: %w", c.Colors.Background, err)
	}
	if frame, err = colorful.Hex(c.Colors.Frame); err != nil {
		return bg, frame, fmt.Errorf("frame color %q: %w", c.Colors.Frame, err)
	}
	return bg, frame, nil
}
