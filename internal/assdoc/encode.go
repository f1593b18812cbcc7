package assdoc

import (
	"fmt"
	"strings"

	"subforge/internal/captions"
	"subforge/internal/layout"
)

// lineBreak is the ASS hard line break token.
const lineBreak = `\N`

// effectiveChars returns the per-line budget for the style, accounting for
// the single-line pre-shrunk font when max_lines is 1.
func effectiveChars(style *captions.Style, fontPx float64) int {
	return layout.EffectiveMaxChars(layout.DefaultMaxChars, fontPx, style.CanvasWidth)
}

// wrapTokens wraps under the style budget. Single-line mode never breaks:
// the pre-shrunk font is the mechanism that makes the line fit.
func wrapTokens[T layout.Token[T]](tokens []T, style *captions.Style, fontPx float64) [][]T {
	if style.MaxLines == 1 {
		if len(tokens) == 0 {
			return nil
		}
		return [][]T{tokens}
	}
	return layout.Wrap(tokens, effectiveChars(style, fontPx))
}

// cueFont returns the font size for one cue, pre-shrinking once in
// single-line mode so the unbroken line fits the horizontal pixel budget.
func cueFont(cue captions.Cue, style *captions.Style) float64 {
	base := style.FontPx()
	if style.MaxLines != 1 {
		return base
	}
	avail := float64(style.CanvasWidth - style.MarginLeftPx - style.MarginRightPx)
	return layout.FitSingleLineFont(cue.Text, base, avail)
}

// fontOverride emits an inline font-size tag when the cue font diverges
// from the style's declared size.
func fontOverride(style *captions.Style, fontPx float64) string {
	if int(fontPx) == int(style.FontPx()) {
		return ""
	}
	return fmt.Sprintf(`{\fs%d}`, int(fontPx))
}

// writeStaticEvent emits one plain dialogue event with layout line breaks.
// This is the terminal fallback for cues without word timings and for any
// word/text desync in the richer encoders.
func writeStaticEvent(b *strings.Builder, cue captions.Cue, style *captions.Style) {
	fontPx := cueFont(cue, style)
	lines := wrapTokens(layout.Words(cue.Text), style, fontPx)
	if len(lines) == 0 {
		return
	}
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = layout.LineText(line)
	}
	writeDialogue(b, 0, cue.Start, cue.End, fontOverride(style, fontPx)+strings.Join(parts, lineBreak))
}

// writeKaraokeEvent emits a single event whose text carries per-word fill
// durations. A timing gap since the previous token becomes a separate
// bare fill token so the highlight sweep stays aligned with speech.
func writeKaraokeEvent(b *strings.Builder, cue captions.Cue, style *captions.Style) {
	words := layout.ExplodePhrases(cue.Words)
	if len(words) == 0 {
		writeStaticEvent(b, cue, style)
		return
	}
	fontPx := cueFont(cue, style)
	lines := wrapTokens(layout.TimedWords(words), style, fontPx)
	var text strings.Builder
	text.WriteString(fontOverride(style, fontPx))
	prev := cue.Start
	for li, line := range lines {
		if li > 0 {
			text.WriteString(lineBreak)
		}
		for wi, word := range line {
			if wi > 0 {
				text.WriteString(" ")
			}
			if gap := gapCS(prev, word.Start); gap > 0 {
				fmt.Fprintf(&text, `{\k%d}`, gap)
			}
			fmt.Fprintf(&text, `{\k%d}%s`, durationCS(word.Start, word.End), word.Text)
			prev = word.End
		}
	}
	writeDialogue(b, 0, cue.Start, cue.End, text.String())
}

// writeActiveWordEvents emits a dim backdrop event spanning the cue plus
// one highlight event per word on a higher layer. Line structure comes from
// re-wrapping the cue text; timings map onto the tokens positionally, so a
// count mismatch between words and tokens degrades the whole cue to a
// static event instead of emitting misaligned highlights.
func writeActiveWordEvents(b *strings.Builder, cue captions.Cue, style *captions.Style) {
	words := layout.ExplodePhrases(cue.Words)
	fontPx := cueFont(cue, style)
	lines := wrapTokens(layout.Words(cue.Text), style, fontPx)
	tokenCount := 0
	for _, line := range lines {
		tokenCount += len(line)
	}
	if tokenCount == 0 || tokenCount != len(words) {
		writeStaticEvent(b, cue, style)
		return
	}

	dim := colorOverride(style.SecondaryColor)
	lit := colorOverride(style.PrimaryColor)
	prefix := fontOverride(style, fontPx)

	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = layout.LineText(line)
	}
	writeDialogue(b, 0, cue.Start, cue.End, prefix+dim+strings.Join(parts, lineBreak))

	for idx, word := range words {
		var text strings.Builder
		text.WriteString(prefix)
		j := 0
		for li, ln := range lines {
			if li > 0 {
				text.WriteString(lineBreak)
			}
			for wi, tok := range ln {
				if wi > 0 {
					text.WriteString(" ")
				}
				if j == idx {
					text.WriteString(`{\alpha&H00&}` + lit + tok.TokenText())
				} else {
					text.WriteString(`{\alpha&HFF&}` + tok.TokenText())
				}
				j++
			}
		}
		writeDialogue(b, 1, word.Start, word.End, text.String())
	}
}

// colorOverride converts a style color (&HAABBGGRR or &HBBGGRR) into an
// inline primary-color tag.
func colorOverride(color string) string {
	hex := strings.TrimSuffix(strings.TrimPrefix(color, "&H"), "&")
	if len(hex) > 6 {
		hex = hex[len(hex)-6:]
	}
	return fmt.Sprintf(`{\1c&H%s&}`, hex)
}
