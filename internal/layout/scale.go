package layout

import "math"

// Reference resolution the nominal character budget is calibrated against:
// a 1080px-wide vertical canvas with a 64px font.
const (
	referenceCanvasWidth = 1080.0
	referenceFontPx      = 64.0
)

// Character budget clamp. Below 10 cells lines degenerate into single
// words; above 40 they overflow every supported canvas.
const (
	minLineChars = 10
	maxLineChars = 40
)

// DefaultMaxChars is the nominal per-line budget at reference resolution.
const DefaultMaxChars = 26

// Font shrink parameters shared by the single-line pre-shrink and the
// renderer's multi-line shrink loop.
const (
	FontShrinkFactor = 0.9
	MinFontPx        = 10.0
)

// Estimated average glyph width as a fraction of the font size. The layout
// engine has no rasterizer; the renderer re-measures with real font metrics.
const avgGlyphWidthFactor = 0.55

// EffectiveMaxChars scales the nominal character budget for the actual
// canvas width and font size, clamped to [10, 40]. Wider canvases fit more
// characters, larger fonts fewer.
func EffectiveMaxChars(configured int, fontPx float64, canvasWidth int) int {
	if configured <= 0 {
		configured = DefaultMaxChars
	}
	if fontPx <= 0 {
		fontPx = referenceFontPx
	}
	if canvasWidth <= 0 {
		canvasWidth = int(referenceCanvasWidth)
	}
	scale := (float64(canvasWidth) / referenceCanvasWidth) * (referenceFontPx / fontPx)
	out := int(math.Round(float64(configured) * scale))
	if out < minLineChars {
		return minLineChars
	}
	if out > maxLineChars {
		return maxLineChars
	}
	return out
}

// FitSingleLineFont shrinks the font multiplicatively until the estimated
// pixel width of text fits maxWidthPx, flooring at MinFontPx. Used for
// single-line mode where wrapping is not available and truncation would be
// worse than a smaller font. The width estimate is approximate by design.
func FitSingleLineFont(text string, basePx, maxWidthPx float64) float64 {
	if basePx <= 0 {
		return MinFontPx
	}
	cells := float64(cellWidth(text))
	size := basePx
	for size > MinFontPx && cells*size*avgGlyphWidthFactor > maxWidthPx {
		size *= FontShrinkFactor
	}
	if size < MinFontPx {
		size = MinFontPx
	}
	return size
}
