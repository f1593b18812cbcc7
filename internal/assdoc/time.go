package assdoc

import (
	"fmt"
	"math"
)

// Timestamp renders seconds as H:MM:SS.cc, flooring to centiseconds so
// serialized times never land past the 0.01s epsilon the normalizer leaves
// between neighboring cues. The small bias absorbs float artifacts from
// epsilon arithmetic (3.99 stored as 3.9899999... must still print as 3.99).
func Timestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	cs := int(math.Floor(seconds*100 + 1e-6))
	h := cs / 360000
	cs -= h * 360000
	m := cs / 6000
	cs -= m * 6000
	s := cs / 100
	cs -= s * 100
	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, cs)
}

// durationCS converts a span to centiseconds with a 1cs floor. Zero-length
// karaoke tokens trigger division glitches in renderers, so never emit one.
func durationCS(start, end float64) int {
	cs := int(math.Round((end - start) * 100))
	if cs < 1 {
		cs = 1
	}
	return cs
}

// gapCS converts the silence between two tokens to centiseconds, zero when
// the gap is below timestamp resolution.
func gapCS(prevEnd, nextStart float64) int {
	cs := int(math.Round((nextStart - prevEnd) * 100))
	if cs < 1 {
		return 0
	}
	return cs
}
