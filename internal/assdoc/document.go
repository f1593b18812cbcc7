package assdoc

import (
	"fmt"
	"strings"

	"subforge/internal/captions"
	"subforge/internal/layout"
)

// StyleName is the single named style every dialogue event references.
const StyleName = "Default"

// Generate runs the full batch path for one job: sanitize, normalize,
// split to the line budget, then serialize. Pure function of its inputs;
// safe to call concurrently for different jobs.
func Generate(cues []captions.Cue, style *captions.Style) (string, error) {
	return Document(layout.PrepareCues(cues, style), style)
}

// Document serializes cues into a complete ASS description. Callers pass
// cues that are already sanitized, normalized, and split to the line budget;
// Document re-derives per-line wrapping only to place explicit break tokens.
func Document(cues []captions.Cue, style *captions.Style) (string, error) {
	if err := rejectDelimiters(style); err != nil {
		return "", err
	}
	var b strings.Builder
	writeHeader(&b, style)
	b.WriteString("\n[Events]\n")
	b.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	for _, cue := range cues {
		writeCue(&b, cue, style)
	}
	return b.String(), nil
}

// rejectDelimiters re-checks the loud-failure class at the serialization
// boundary. NewStyle already enforces this; a style built by hand must not
// slip a field separator into the grammar.
func rejectDelimiters(style *captions.Style) error {
	for _, v := range []string{
		style.FontFamily,
		style.PrimaryColor,
		style.SecondaryColor,
		style.OutlineColor,
		style.BackgroundColor,
	} {
		if strings.ContainsAny(v, ",\n\r") {
			return fmt.Errorf("assdoc: style value %q contains a field delimiter", v)
		}
	}
	return nil
}

func writeHeader(b *strings.Builder, style *captions.Style) {
	fmt.Fprintf(b, "[Script Info]\nScriptType: v4.00+\nPlayResX: %d\nPlayResY: %d\nWrapStyle: 2\nScaledBorderAndShadow: yes\n",
		style.CanvasWidth, style.CanvasHeight)
	b.WriteString("\n[V4+ Styles]\n")
	b.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	fmt.Fprintf(b, "Style: %s,%s,%d,%s,%s,%s,%s,0,0,0,0,100,100,0,0,1,%g,%d,%d,%d,%d,%d,1\n",
		StyleName,
		style.FontFamily,
		int(style.FontPx()),
		style.PrimaryColor,
		style.SecondaryColor,
		style.OutlineColor,
		style.BackgroundColor,
		style.OutlinePx,
		style.ShadowStrength,
		style.Alignment,
		style.MarginLeftPx,
		style.MarginRightPx,
		style.BottomOffsetPx(),
	)
}

func writeCue(b *strings.Builder, cue captions.Cue, style *captions.Style) {
	switch {
	case !cue.HasWords():
		writeStaticEvent(b, cue, style)
	case style.HighlightStyle == captions.HighlightKaraoke:
		writeKaraokeEvent(b, cue, style)
	case style.HighlightStyle == captions.HighlightActive:
		writeActiveWordEvents(b, cue, style)
	default:
		writeStaticEvent(b, cue, style)
	}
}

func writeDialogue(b *strings.Builder, layer int, start, end float64, text string) {
	fmt.Fprintf(b, "Dialogue: %d,%s,%s,%s,,0,0,0,,%s\n",
		layer, Timestamp(start), Timestamp(end), StyleName, text)
}
