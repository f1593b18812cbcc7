package assdoc

import (
	"strings"
	"testing"

	"subforge/internal/captions"
)

func testStyle(t *testing.T, mutate func(*captions.StyleParams)) *captions.Style {
	t.Helper()
	params := captions.DefaultStyleParams()
	if mutate != nil {
		mutate(&params)
	}
	style, err := captions.NewStyle(params)
	if err != nil {
		t.Fatalf("style: %v", err)
	}
	return style
}

func TestTimestampFormatsAndFloors(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00:00.00"},
		{3.99, "0:00:03.99"},
		{4 - 0.01, "0:00:03.99"}, // epsilon arithmetic must not floor to 3.98
		{3.989, "0:00:03.98"},
		{59.999, "0:00:59.99"},
		{61.5, "0:01:01.50"},
		{3600 + 125.25, "1:02:05.25"},
		{-1, "0:00:00.00"},
	}
	for _, tc := range cases {
		if got := Timestamp(tc.seconds); got != tc.want {
			t.Fatalf("Timestamp(%v): expected %q, got %q", tc.seconds, tc.want, got)
		}
	}
}

func TestDocumentHeaderCarriesStyleVerbatim(t *testing.T) {
	style := testStyle(t, func(p *captions.StyleParams) {
		p.FontFamily = "Inter"
		p.PrimaryColor = "&H00FFD200"
		p.CanvasWidth = 720
		p.CanvasHeight = 1280
	})
	doc, err := Document(nil, style)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"ScriptType: v4.00+",
		"PlayResX: 720",
		"PlayResY: 1280",
		"WrapStyle: 2",
		"ScaledBorderAndShadow: yes",
		"Style: Default,Inter,64,&H00FFD200,",
		"Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("header missing %q in:\n%s", want, doc)
		}
	}
}

func TestDocumentRejectsHandBuiltDelimiterStyle(t *testing.T) {
	style := testStyle(t, nil)
	broken := *style
	broken.FontFamily = "Arial,Narrow"
	if _, err := Document(nil, &broken); err == nil {
		t.Fatal("expected delimiter rejection")
	}
}

func TestKaraokeEventEmitsFillTokens(t *testing.T) {
	style := testStyle(t, nil)
	cues := []captions.Cue{{
		Start: 0, End: 2, Text: "HELLO WORLD",
		Words: []captions.WordTiming{
			{Start: 0, End: 1, Text: "HELLO"},
			{Start: 1, End: 2, Text: "WORLD"},
		},
	}}
	doc, err := Document(cues, style)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(doc, "Dialogue:"); got != 1 {
		t.Fatalf("expected one dialogue event, got %d", got)
	}
	if got := strings.Count(doc, `{\k100}`); got != 2 {
		t.Fatalf("expected two \\k100 tokens, got %d in:\n%s", got, doc)
	}
	if strings.Contains(doc, `\N`) {
		t.Fatalf("expected no line break for a short cue:\n%s", doc)
	}
	if !strings.Contains(doc, "Dialogue: 0,0:00:00.00,0:00:02.00,Default,") {
		t.Fatalf("unexpected event timing:\n%s", doc)
	}
}

func TestKaraokeEventInsertsGapToken(t *testing.T) {
	style := testStyle(t, nil)
	cues := []captions.Cue{{
		Start: 0, End: 3, Text: "one two",
		Words: []captions.WordTiming{
			{Start: 0, End: 1, Text: "one"},
			{Start: 2, End: 3, Text: "two"}, // 1s silence before this word
		},
	}}
	doc, err := Document(cues, style)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(doc, `{\k100}{\k100}two`) {
		t.Fatalf("expected gap token before second word:\n%s", doc)
	}
}

func TestKaraokeTokenDurationNeverZero(t *testing.T) {
	style := testStyle(t, nil)
	cues := []captions.Cue{{
		Start: 0, End: 1, Text: "blip rest",
		Words: []captions.WordTiming{
			{Start: 0, End: 0.001, Text: "blip"},
			{Start: 0.001, End: 1, Text: "rest"},
		},
	}}
	doc, err := Document(cues, style)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(doc, `{\k0}`) {
		t.Fatalf("zero-duration fill token emitted:\n%s", doc)
	}
	if !strings.Contains(doc, `{\k1}blip`) {
		t.Fatalf("expected 1cs floor for short word:\n%s", doc)
	}
}

func TestActiveWordEmitsBackdropAndPerWordLayers(t *testing.T) {
	style := testStyle(t, func(p *captions.StyleParams) {
		p.HighlightStyle = captions.HighlightActive
	})
	cues := []captions.Cue{{
		Start: 0, End: 2, Text: "HELLO WORLD",
		Words: []captions.WordTiming{
			{Start: 0, End: 1, Text: "HELLO"},
			{Start: 1, End: 2, Text: "WORLD"},
		},
	}}
	doc, err := Document(cues, style)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(doc, "Dialogue: 0,"); got != 1 {
		t.Fatalf("expected one backdrop event, got %d:\n%s", got, doc)
	}
	if got := strings.Count(doc, "Dialogue: 1,"); got != 2 {
		t.Fatalf("expected one highlight event per word, got %d:\n%s", got, doc)
	}
	if !strings.Contains(doc, "Dialogue: 1,0:00:00.00,0:00:01.00,") {
		t.Fatalf("first highlight should span first word only:\n%s", doc)
	}
	if !strings.Contains(doc, `{\alpha&HFF&}`) {
		t.Fatalf("expected inactive words alpha-hidden:\n%s", doc)
	}
	if !strings.Contains(doc, `{\alpha&H00&}`) {
		t.Fatalf("expected active word visible:\n%s", doc)
	}
}

func TestActiveWordDesyncFallsBackToStatic(t *testing.T) {
	style := testStyle(t, func(p *captions.StyleParams) {
		p.HighlightStyle = captions.HighlightActive
	})
	cues := []captions.Cue{{
		Start: 0, End: 2, Text: "HELLO BRAVE WORLD", // three tokens
		Words: []captions.WordTiming{ // two timings
			{Start: 0, End: 1, Text: "HELLO"},
			{Start: 1, End: 2, Text: "WORLD"},
		},
	}}
	doc, err := Document(cues, style)
	if err != nil {
		t.Fatalf("desync must degrade, not fail: %v", err)
	}
	if got := strings.Count(doc, "Dialogue:"); got != 1 {
		t.Fatalf("expected single static fallback event, got %d:\n%s", got, doc)
	}
	if strings.Contains(doc, `\alpha`) {
		t.Fatalf("fallback must not carry alpha overrides:\n%s", doc)
	}
}

func TestCueWithoutWordsAlwaysStatic(t *testing.T) {
	style := testStyle(t, nil)
	cues := []captions.Cue{{Start: 0, End: 4, Text: "just a plain sentence with no word timings at all here"}}
	doc, err := Document(cues, style)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(doc, "Dialogue:"); got != 1 {
		t.Fatalf("expected one static event, got %d", got)
	}
	if strings.Contains(doc, `{\k`) {
		t.Fatalf("static event must not carry karaoke tokens:\n%s", doc)
	}
	if !strings.Contains(doc, `\N`) {
		t.Fatalf("expected wrapped lines joined by break token:\n%s", doc)
	}
}

func TestSingleLineModeShrinksFontInline(t *testing.T) {
	style := testStyle(t, func(p *captions.StyleParams) {
		p.MaxLines = 1
	})
	cues := []captions.Cue{{
		Start: 0, End: 5,
		Text: "this sentence is far too long to fit on a single subtitle line at full size",
	}}
	doc, err := Document(cues, style)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(doc, `{\fs`) {
		t.Fatalf("expected inline font-size override in single-line mode:\n%s", doc)
	}
}

func TestGenerateRunsFullPipeline(t *testing.T) {
	style := testStyle(t, nil)
	cues := []captions.Cue{
		{Start: 4, End: 8, Text: "B {late}"},
		{Start: 0, End: 5, Text: "A first"},
	}
	doc, err := Generate(cues, style)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Sorted, overlap clamped, sanitized.
	aIdx := strings.Index(doc, "A first")
	bIdx := strings.Index(doc, "B (late)")
	if aIdx == -1 || bIdx == -1 || aIdx > bIdx {
		t.Fatalf("expected sanitized cues in sorted order:\n%s", doc)
	}
	if !strings.Contains(doc, "0:00:03.99") {
		t.Fatalf("expected clamped end 3.99:\n%s", doc)
	}
}
