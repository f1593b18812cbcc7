package captions

import "strings"

// WordTiming attributes a sub-interval of a cue's duration to one word.
// Instances arrive from the transcription side and are treated as read-only;
// every transform in this package clones before mutating.
type WordTiming struct {
	Start float64
	End   float64
	Text  string
}

// Duration returns the word's span in seconds.
func (w WordTiming) Duration() float64 {
	return w.End - w.Start
}

// Cue is one subtitle display unit. Words, when present, are ordered by
// start time and cover [Start, End] at sentence granularity; concatenating
// their texts with single spaces reconstructs Text for well-formed input.
type Cue struct {
	Start float64
	End   float64
	Text  string
	Words []WordTiming
}

// Duration returns the cue's span in seconds.
func (c Cue) Duration() float64 {
	return c.End - c.Start
}

// HasWords reports whether per-word timings are available.
func (c Cue) HasWords() bool {
	return len(c.Words) > 0
}

// Clone returns a deep copy so callers can mutate freely.
func (c Cue) Clone() Cue {
	out := c
	if len(c.Words) > 0 {
		out.Words = make([]WordTiming, len(c.Words))
		copy(out.Words, c.Words)
	}
	return out
}

// RebuildText replaces Text with the words joined by single spaces.
// No-op for cues without word timings.
func (c *Cue) RebuildText() {
	if len(c.Words) == 0 {
		return
	}
	parts := make([]string, 0, len(c.Words))
	for _, w := range c.Words {
		if w.Text != "" {
			parts = append(parts, w.Text)
		}
	}
	c.Text = strings.Join(parts, " ")
}
