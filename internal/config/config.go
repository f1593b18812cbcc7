// Package config loads and validates the TOML job configuration the CLI
// passes to the subtitle engine.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"subforge/internal/captions"
)

//go:embed sample_config.toml
var sampleConfig string

// Job contains output and logging parameters.
type Job struct {
	LogLevel  string  `toml:"log_level"`
	LogFormat string  `toml:"log_format"`
	FPS       float64 `toml:"fps"`
}

// StyleSection mirrors captions.StyleParams in TOML form, plus the font
// file the frame renderer rasterizes with.
type StyleSection struct {
	FontFamily      string  `toml:"font_family"`
	FontFile        string  `toml:"font_file"`
	BaseFontPx      float64 `toml:"base_font_px"`
	PrimaryColor    string  `toml:"primary_color"`
	SecondaryColor  string  `toml:"secondary_color"`
	OutlineColor    string  `toml:"outline_color"`
	BackgroundColor string  `toml:"background_color"`
	OutlinePx       float64 `toml:"outline_px"`
	Alignment       int     `toml:"alignment"`
	MarginBottomPx  int     `toml:"margin_bottom_px"`
	MarginLeftPx    int     `toml:"margin_left_px"`
	MarginRightPx   int     `toml:"margin_right_px"`
	MaxLines        int     `toml:"max_lines"`
	PositionPercent int     `toml:"position_percent"`
	ShadowStrength  int     `toml:"shadow_strength"`
	ScalePercent    int     `toml:"subtitle_scale_percent"`
	HighlightStyle  string  `toml:"highlight_style"`
	CanvasWidth     int     `toml:"canvas_width"`
	CanvasHeight    int     `toml:"canvas_height"`
}

// Config is the root of the job configuration file.
type Config struct {
	Job   Job          `toml:"job"`
	Style StyleSection `toml:"style"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	if err := toml.Unmarshal([]byte(sampleConfig), cfg); err != nil {
		// The embedded sample is part of the build; failing to parse it is
		// a programming error.
		panic(fmt.Sprintf("config: embedded sample invalid: %v", err))
	}
	return cfg
}

// Load reads a TOML job file, layering it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the configuration is usable. Style ranges are enforced
// by captions.NewStyle; this layer checks the job section.
func (c *Config) Validate() error {
	if c.Job.FPS <= 0 {
		return errors.New("job.fps must be positive")
	}
	if c.Job.FPS > 240 {
		return errors.New("job.fps must not exceed 240")
	}
	switch c.Job.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("job.log_format: unsupported value %q", c.Job.LogFormat)
	}
	return nil
}

// StyleConfig builds the validated engine style from the style section.
func (c *Config) StyleConfig() (*captions.Style, error) {
	return captions.NewStyle(captions.StyleParams{
		FontFamily:      c.Style.FontFamily,
		BaseFontPx:      c.Style.BaseFontPx,
		PrimaryColor:    c.Style.PrimaryColor,
		SecondaryColor:  c.Style.SecondaryColor,
		OutlineColor:    c.Style.OutlineColor,
		BackgroundColor: c.Style.BackgroundColor,
		OutlinePx:       c.Style.OutlinePx,
		Alignment:       c.Style.Alignment,
		MarginBottomPx:  c.Style.MarginBottomPx,
		MarginLeftPx:    c.Style.MarginLeftPx,
		MarginRightPx:   c.Style.MarginRightPx,
		MaxLines:        c.Style.MaxLines,
		PositionPercent: c.Style.PositionPercent,
		ShadowStrength:  c.Style.ShadowStrength,
		ScalePercent:    c.Style.ScalePercent,
		HighlightStyle:  c.Style.HighlightStyle,
		CanvasWidth:     c.Style.CanvasWidth,
		CanvasHeight:    c.Style.CanvasHeight,
	})
}

// Sample returns the embedded sample configuration for `config init`.
func Sample() string {
	return sampleConfig
}
