package captions

import (
	"errors"
	"fmt"
	"strings"
)

// Highlight styles a job can request.
const (
	HighlightKaraoke = "karaoke"
	HighlightActive  = "active"
	HighlightStatic  = "static"
)

// StyleParams carries raw, externally supplied style values. A job request
// maps onto this struct and NewStyle validates it once; the resulting Style
// is never mutated afterwards.
type StyleParams struct {
	FontFamily      string
	BaseFontPx      float64
	PrimaryColor    string
	SecondaryColor  string
	OutlineColor    string
	BackgroundColor string
	OutlinePx       float64
	Alignment       int
	MarginBottomPx  int
	MarginLeftPx    int
	MarginRightPx   int
	MaxLines        int
	PositionPercent int
	ShadowStrength  int
	ScalePercent    int
	HighlightStyle  string
	CanvasWidth     int
	CanvasHeight    int
}

// DefaultStyleParams returns the baseline vertical-video style.
func DefaultStyleParams() StyleParams {
	return StyleParams{
		FontFamily:      "Arial",
		BaseFontPx:      64,
		PrimaryColor:    "&H00FFFFFF",
		SecondaryColor:  "&H00AAAAAA",
		OutlineColor:    "&H00000000",
		BackgroundColor: "&H64000000",
		OutlinePx:       3,
		Alignment:       2,
		MarginBottomPx:  80,
		MarginLeftPx:    60,
		MarginRightPx:   60,
		MaxLines:        2,
		PositionPercent: 0,
		ShadowStrength:  1,
		ScalePercent:    100,
		HighlightStyle:  HighlightKaraoke,
		CanvasWidth:     1080,
		CanvasHeight:    1920,
	}
}

// Style is a validated, immutable style configuration. Construct with
// NewStyle; treat all fields as read-only.
type Style struct {
	StyleParams
}

// NewStyle validates params and returns the immutable style for a job.
// Field-delimiter violations in text fields fail loudly here: silently
// stripping the character could corrupt the output grammar, so this is the
// one anomaly class that rejects instead of degrading.
func NewStyle(params StyleParams) (*Style, error) {
	if err := validateTextFields(params); err != nil {
		return nil, err
	}
	if err := validateRanges(params); err != nil {
		return nil, err
	}
	switch params.HighlightStyle {
	case HighlightKaraoke, HighlightActive, HighlightStatic:
	default:
		return nil, fmt.Errorf("style: unsupported highlight_style %q", params.HighlightStyle)
	}
	return &Style{StyleParams: params}, nil
}

// FontPx returns the base font size with the subtitle scale applied.
func (s *Style) FontPx() float64 {
	return s.BaseFontPx * float64(s.ScalePercent) / 100
}

// BottomOffsetPx returns the pixel distance from the canvas bottom to the
// subtitle block's lower edge. PositionPercent, when set, is the user-facing
// knob and wins over the compositor-facing margin.
func (s *Style) BottomOffsetPx() int {
	if s.PositionPercent > 0 {
		return s.CanvasHeight * s.PositionPercent / 100
	}
	return s.MarginBottomPx
}

func validateTextFields(params StyleParams) error {
	fields := []struct {
		name  string
		value string
	}{
		{"font_family", params.FontFamily},
		{"primary_color", params.PrimaryColor},
		{"secondary_color", params.SecondaryColor},
		{"outline_color", params.OutlineColor},
		{"background_color", params.BackgroundColor},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("style: %s must be set", f.name)
		}
		if strings.ContainsAny(f.value, ",\n\r") {
			return fmt.Errorf("style: %s contains a format delimiter", f.name)
		}
	}
	return nil
}

func validateRanges(params StyleParams) error {
	if params.BaseFontPx <= 0 {
		return errors.New("style: base_font_px must be positive")
	}
	if params.CanvasWidth <= 0 || params.CanvasHeight <= 0 {
		return errors.New("style: canvas dimensions must be positive")
	}
	if params.MaxLines < 0 {
		return errors.New("style: max_lines must not be negative")
	}
	if params.PositionPercent != 0 && (params.PositionPercent < 5 || params.PositionPercent > 35) {
		return errors.New("style: position_percent must be within 5-35")
	}
	if params.ShadowStrength < 0 || params.ShadowStrength > 10 {
		return errors.New("style: shadow_strength must be within 0-10")
	}
	if params.ScalePercent < 50 || params.ScalePercent > 150 {
		return errors.New("style: subtitle_scale_percent must be within 50-150")
	}
	if params.OutlinePx < 0 {
		return errors.New("style: outline_px must not be negative")
	}
	if params.Alignment < 1 || params.Alignment > 9 {
		return errors.New("style: alignment must be an ASS alignment code (1-9)")
	}
	return nil
}
