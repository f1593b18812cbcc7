package layout

import (
	"math"
	"strings"
	"testing"

	"subforge/internal/captions"
)

func timedCue(start, end float64, words ...string) captions.Cue {
	cue := captions.Cue{Start: start, End: end}
	span := (end - start) / float64(len(words))
	for i, w := range words {
		cue.Words = append(cue.Words, captions.WordTiming{
			Start: start + span*float64(i),
			End:   start + span*float64(i+1),
			Text:  w,
		})
	}
	cue.RebuildText()
	return cue
}

func TestSplitLongCueReturnsFittingCueUnchanged(t *testing.T) {
	cue := timedCue(0, 2, "hello", "world")
	out := SplitLongCue(cue, 20, 2)
	if len(out) != 1 {
		t.Fatalf("expected single cue, got %d", len(out))
	}
	if out[0].Text != "hello world" {
		t.Fatalf("expected cue unchanged, got %q", out[0].Text)
	}
}

func TestSplitLongCueAlignsChunksToWordTimings(t *testing.T) {
	cue := timedCue(0, 8, "alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel")
	out := SplitLongCue(cue, 13, 2)
	if len(out) < 2 {
		t.Fatalf("expected cue split, got %d chunks", len(out))
	}
	for i, c := range out {
		if !c.HasWords() {
			t.Fatalf("chunk %d lost word timings", i)
		}
		if c.Start != c.Words[0].Start {
			t.Fatalf("chunk %d start %v != first word start %v", i, c.Start, c.Words[0].Start)
		}
	}
	if out[len(out)-1].End != cue.End {
		t.Fatalf("expected last chunk end clamped to cue end %v, got %v", cue.End, out[len(out)-1].End)
	}
	var words []string
	for _, c := range out {
		for _, w := range c.Words {
			words = append(words, w.Text)
		}
	}
	if got := strings.Join(words, " "); got != cue.Text {
		t.Fatalf("split dropped or reordered words:\nwant %q\ngot  %q", cue.Text, got)
	}
	for i := 0; i+1 < len(out); i++ {
		if out[i].End > out[i+1].Start {
			t.Fatalf("chunks %d and %d overlap", i, i+1)
		}
	}
}

func TestSplitLongCueWithoutWordsDistributesDuration(t *testing.T) {
	cue := captions.Cue{
		Start: 0,
		End:   10,
		Text:  "one two three four five six seven eight nine ten eleven twelve",
	}
	out := SplitLongCue(cue, 12, 2)
	if len(out) < 2 {
		t.Fatalf("expected cue split, got %d chunks", len(out))
	}
	if out[0].Start != 0 {
		t.Fatalf("expected first chunk to start at cue start, got %v", out[0].Start)
	}
	if out[len(out)-1].End != 10 {
		t.Fatalf("expected last chunk to end at cue end, got %v", out[len(out)-1].End)
	}
	var total float64
	for i, c := range out {
		if c.End <= c.Start {
			t.Fatalf("chunk %d has non-positive duration", i)
		}
		total += c.Duration()
	}
	if math.Abs(total-10) > 1e-9 {
		t.Fatalf("expected durations to sum to cue duration, got %v", total)
	}
	var words []string
	for _, c := range out {
		words = append(words, strings.Fields(c.Text)...)
	}
	if got := strings.Join(words, " "); got != cue.Text {
		t.Fatalf("split dropped words:\nwant %q\ngot  %q", cue.Text, got)
	}
}

func TestSplitLongCueExplodesEmbeddedPhrases(t *testing.T) {
	cue := captions.Cue{
		Start: 0,
		End:   4,
		Text:  "a very long phrase with several words inside it somehow kept going",
		Words: []captions.WordTiming{
			{Start: 0, End: 4, Text: "a very long phrase with several words inside it somehow kept going"},
		},
	}
	out := SplitLongCue(cue, 12, 2)
	if len(out) < 2 {
		t.Fatalf("expected phrase exploded and split, got %d chunks", len(out))
	}
	for i, c := range out {
		for _, w := range c.Words {
			if strings.ContainsAny(w.Text, " \t") {
				t.Fatalf("chunk %d still contains a phrase word %q", i, w.Text)
			}
		}
	}
}
