package layout

import "subforge/internal/captions"

// PrepareCues runs the shared pre-output pipeline: sanitize every cue,
// normalize ordering and overlaps, then split cues that cannot fit the
// style's line budget. Both the serializer and the frame renderer consume
// the result, so the two outputs agree on cue boundaries.
func PrepareCues(cues []captions.Cue, style *captions.Style) []captions.Cue {
	clean := captions.SanitizeCues(cues)
	normalized := captions.Normalize(clean)
	maxLines := style.MaxLines
	if maxLines < 1 {
		maxLines = 1
	}
	maxChars := EffectiveMaxChars(DefaultMaxChars, style.FontPx(), style.CanvasWidth)
	out := make([]captions.Cue, 0, len(normalized))
	for _, c := range normalized {
		out = append(out, SplitLongCue(c, maxChars, maxLines)...)
	}
	return out
}
