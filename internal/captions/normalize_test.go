package captions

import (
	"math"
	"testing"
)

func TestNormalizeClampsOverlappingCues(t *testing.T) {
	cues := []Cue{
		{Start: 0, End: 5, Text: "A"},
		{Start: 4, End: 8, Text: "B"},
	}
	out := Normalize(cues)
	if len(out) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(out))
	}
	if math.Abs(out[0].End-3.99) > 1e-9 {
		t.Fatalf("expected first cue end 3.99, got %v", out[0].End)
	}
	if out[1].Start != 4 {
		t.Fatalf("expected second cue start untouched, got %v", out[1].Start)
	}
}

func TestNormalizeSortsByStartThenEnd(t *testing.T) {
	cues := []Cue{
		{Start: 6, End: 7, Text: "C"},
		{Start: 0, End: 3, Text: "B"},
		{Start: 0, End: 2, Text: "A"},
	}
	out := Normalize(cues)
	if len(out) != 3 {
		t.Fatalf("expected 3 cues, got %d", len(out))
	}
	if out[0].Text != "A" || out[1].Text != "B" || out[2].Text != "C" {
		t.Fatalf("unexpected order: %q %q %q", out[0].Text, out[1].Text, out[2].Text)
	}
}

func TestNormalizeAdjacentPairsNeverOverlap(t *testing.T) {
	cues := []Cue{
		{Start: 0, End: 10, Text: "one"},
		{Start: 2, End: 6, Text: "two"},
		{Start: 5, End: 9, Text: "three"},
		{Start: 8, End: 12, Text: "four"},
	}
	out := Normalize(cues)
	for i := 0; i+1 < len(out); i++ {
		if out[i].End > out[i+1].Start {
			t.Fatalf("cues %d and %d overlap: %v > %v", i, i+1, out[i].End, out[i+1].Start)
		}
	}
	for i, c := range out {
		if c.End <= c.Start {
			t.Fatalf("cue %d has non-positive duration: %v..%v", i, c.Start, c.End)
		}
	}
}

func TestNormalizeKeepsOverlapWhenClampWouldDestroyCue(t *testing.T) {
	cues := []Cue{
		{Start: 1.0, End: 1.5, Text: "tiny"},
		{Start: 1.005, End: 3, Text: "next"},
	}
	out := Normalize(cues)
	if len(out) != 2 {
		t.Fatalf("expected both cues kept, got %d", len(out))
	}
	// Clamping to 1.005-0.01 would put the end before the start.
	if out[0].End != 1.5 {
		t.Fatalf("expected overlap tolerated, got end %v", out[0].End)
	}
}

func TestNormalizeTrimsWordsPastClampedEnd(t *testing.T) {
	cues := []Cue{
		{
			Start: 0, End: 6, Text: "alpha beta gamma",
			Words: []WordTiming{
				{Start: 0, End: 2, Text: "alpha"},
				{Start: 2, End: 4, Text: "beta"},
				{Start: 4, End: 6, Text: "gamma"},
			},
		},
		{Start: 3, End: 8, Text: "delta"},
	}
	out := Normalize(cues)
	if len(out) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(out))
	}
	first := out[0]
	if len(first.Words) != 2 {
		t.Fatalf("expected word past clamp dropped, got %d words", len(first.Words))
	}
	if first.Words[1].End != first.End {
		t.Fatalf("expected straddling word clipped to %v, got %v", first.End, first.Words[1].End)
	}
	if first.Text != "alpha beta" {
		t.Fatalf("expected text rebuilt from surviving words, got %q", first.Text)
	}
}

func TestNormalizeDropsDegenerateCues(t *testing.T) {
	cues := []Cue{
		{Start: 2, End: 2, Text: "zero"},
		{Start: 3, End: 2.5, Text: "negative"},
		{Start: 4, End: 5, Text: "   "},
		{Start: 6, End: 7, Text: "keep"},
	}
	out := Normalize(cues)
	if len(out) != 1 || out[0].Text != "keep" {
		t.Fatalf("expected only the valid cue to survive, got %+v", out)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	cues := []Cue{
		{Start: 0, End: 5, Text: "A", Words: []WordTiming{{Start: 0, End: 5, Text: "A"}}},
		{Start: 4, End: 8, Text: "B"},
	}
	Normalize(cues)
	if cues[0].End != 5 {
		t.Fatalf("expected input untouched, got end %v", cues[0].End)
	}
	if cues[0].Words[0].End != 5 {
		t.Fatalf("expected input words untouched, got end %v", cues[0].Words[0].End)
	}
}
