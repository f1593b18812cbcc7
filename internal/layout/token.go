package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"subforge/internal/captions"
)

// Token is a wrappable unit. SplitAt divides the token after n runes,
// which only happens when a single token exceeds a whole line budget.
type Token[T any] interface {
	TokenText() string
	SplitAt(n int) (T, T)
}

// Word is a plain text token with no timing.
type Word string

func (w Word) TokenText() string { return string(w) }

func (w Word) SplitAt(n int) (Word, Word) {
	runes := []rune(w)
	n = clampSplit(n, len(runes))
	return Word(runes[:n]), Word(runes[n:])
}

// TimedWord adapts captions.WordTiming to the Token interface. Splitting
// interpolates the timing linearly by rune count, the same approximation
// used for phrase explosion.
type TimedWord captions.WordTiming

func (w TimedWord) TokenText() string { return w.Text }

func (w TimedWord) SplitAt(n int) (TimedWord, TimedWord) {
	runes := []rune(w.Text)
	n = clampSplit(n, len(runes))
	frac := float64(n) / float64(len(runes))
	mid := w.Start + (w.End-w.Start)*frac
	head := TimedWord{Start: w.Start, End: mid, Text: string(runes[:n])}
	tail := TimedWord{Start: mid, End: w.End, Text: string(runes[n:])}
	return head, tail
}

// Words converts plain text into word tokens.
func Words(text string) []Word {
	fields := strings.Fields(text)
	out := make([]Word, len(fields))
	for i, f := range fields {
		out[i] = Word(f)
	}
	return out
}

// TimedWords converts cue word timings into timed tokens.
func TimedWords(words []captions.WordTiming) []TimedWord {
	out := make([]TimedWord, len(words))
	for i, w := range words {
		out[i] = TimedWord(w)
	}
	return out
}

func clampSplit(n, max int) int {
	if n > max-1 {
		n = max - 1
	}
	if n < 1 {
		n = 1
	}
	return n
}

func cellWidth(text string) int {
	return runewidth.StringWidth(text)
}
