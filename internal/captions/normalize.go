package captions

import (
	"sort"
	"strings"
)

// OverlapEpsilon is the gap left between a clamped cue and its successor.
// It matches the centisecond resolution of the serialized output, so two
// cues separated by one epsilon never round onto the same timestamp.
const OverlapEpsilon = 0.01

// Normalize sorts cues by (start, end), resolves temporal overlaps, and
// drops degenerate cues. The downstream renderer shows one subtitle block at
// a time, so when two cues overlap the earlier cue's end is pulled back to
// leave the later cue's start untouched: new text wins over stale text.
//
// Clamping never destroys a cue. If pulling the end back would leave zero or
// negative duration, the overlap is kept as-is and the serializer's ordering
// still holds per-cue start monotonicity. Words beyond a clamped end are
// trimmed or dropped and the cue text is rebuilt from the survivors. The
// input slice is not mutated.
func Normalize(cues []Cue) []Cue {
	work := make([]Cue, 0, len(cues))
	for _, c := range cues {
		work = append(work, c.Clone())
	}
	sort.SliceStable(work, func(i, j int) bool {
		if work[i].Start != work[j].Start {
			return work[i].Start < work[j].Start
		}
		return work[i].End < work[j].End
	})

	for i := 0; i+1 < len(work); i++ {
		cur, next := &work[i], &work[i+1]
		if cur.End <= next.Start {
			continue
		}
		clamped := next.Start - OverlapEpsilon
		if clamped <= cur.Start {
			// Clamping would destroy the cue; tolerate the overlap.
			continue
		}
		cur.End = clamped
		trimWords(cur)
	}

	out := work[:0]
	for _, c := range work {
		if c.End <= c.Start {
			continue
		}
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// trimWords drops words fully past the cue end, clips words straddling it,
// and rebuilds the cue text from what survives.
func trimWords(c *Cue) {
	if len(c.Words) == 0 {
		return
	}
	kept := c.Words[:0]
	for _, w := range c.Words {
		if w.Start >= c.End {
			continue
		}
		if w.End > c.End {
			w.End = c.End
		}
		if w.End <= w.Start {
			continue
		}
		kept = append(kept, w)
	}
	c.Words = kept
	c.RebuildText()
}
