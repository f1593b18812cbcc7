package layout

import (
	"strings"

	"subforge/internal/captions"
)

// SplitLongCue breaks a cue whose text wraps to more lines than maxLines
// into a sequence of shorter cues that each fit the maxLines × maxChars
// budget. Cues that already fit are returned unchanged as a single-element
// slice.
//
// With word timings, chunk boundaries align to word boundaries and each new
// cue spans its first word's start to its last word's end; the final chunk
// is extended to the original cue end so the sequence covers the same span.
// Without word timings the duration is distributed across chunks
// proportionally to character count, a linear approximation flagged for
// consumers that must not assume sub-cue precision in this path.
func SplitLongCue(cue captions.Cue, maxChars, maxLines int) []captions.Cue {
	if maxLines < 1 {
		maxLines = 1
	}
	if cue.HasWords() {
		return splitTimedCue(cue, maxChars, maxLines)
	}
	return splitPlainCue(cue, maxChars, maxLines)
}

func splitTimedCue(cue captions.Cue, maxChars, maxLines int) []captions.Cue {
	words := ExplodePhrases(cue.Words)
	lines := Wrap(TimedWords(words), maxChars)
	if len(lines) <= maxLines {
		return []captions.Cue{cue}
	}
	var out []captions.Cue
	for i := 0; i < len(lines); i += maxLines {
		end := i + maxLines
		if end > len(lines) {
			end = len(lines)
		}
		var chunk []captions.WordTiming
		for _, line := range lines[i:end] {
			for _, tw := range line {
				chunk = append(chunk, captions.WordTiming(tw))
			}
		}
		c := captions.Cue{
			Start: chunk[0].Start,
			End:   chunk[len(chunk)-1].End,
			Words: chunk,
		}
		c.RebuildText()
		out = append(out, c)
	}
	last := &out[len(out)-1]
	if cue.End > last.Start {
		last.End = cue.End
	}
	return out
}

func splitPlainCue(cue captions.Cue, maxChars, maxLines int) []captions.Cue {
	lines := Wrap(Words(cue.Text), maxChars)
	if len(lines) <= maxLines {
		return []captions.Cue{cue}
	}
	var texts []string
	for i := 0; i < len(lines); i += maxLines {
		end := i + maxLines
		if end > len(lines) {
			end = len(lines)
		}
		parts := make([]string, 0, end-i)
		for _, line := range lines[i:end] {
			parts = append(parts, LineText(line))
		}
		texts = append(texts, strings.Join(parts, " "))
	}
	total := 0
	for _, t := range texts {
		total += len([]rune(t))
	}
	out := make([]captions.Cue, 0, len(texts))
	start := cue.Start
	for i, t := range texts {
		end := cue.End
		if i < len(texts)-1 && total > 0 {
			end = start + cue.Duration()*float64(len([]rune(t)))/float64(total)
		}
		out = append(out, captions.Cue{Start: start, End: end, Text: t})
		start = end
	}
	return out
}

// ExplodePhrases splits any word whose text contains embedded whitespace
// (a multi-token phrase from the transcription side) into sub-words with
// timings interpolated linearly by character count.
func ExplodePhrases(words []captions.WordTiming) []captions.WordTiming {
	out := make([]captions.WordTiming, 0, len(words))
	for _, w := range words {
		parts := strings.Fields(w.Text)
		if len(parts) <= 1 {
			out = append(out, w)
			continue
		}
		total := 0
		for _, p := range parts {
			total += len([]rune(p))
		}
		start := w.Start
		for i, p := range parts {
			end := w.End
			if i < len(parts)-1 && total > 0 {
				end = start + w.Duration()*float64(len([]rune(p)))/float64(total)
			}
			out = append(out, captions.WordTiming{Start: start, End: end, Text: p})
			start = end
		}
	}
	return out
}
