package render

import (
	"image"
	"sort"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"

	"subforge/internal/captions"
	"subforge/internal/layout"
)

// Renderer turns timestamps into RGBA overlay frames for one job. It is
// owned by exactly one frame-producing loop: every RenderFrame call mutates
// the internal cache.
type Renderer struct {
	cues     []captions.Cue
	style    *captions.Style
	font     *sfnt.Font
	strategy strategy

	state      renderState
	blank      *image.RGBA
	layoutRuns int
}

// renderState caches the last rendered frame and the layout of the cue it
// belongs to.
type renderState struct {
	valid   bool
	cueIdx  int
	wordIdx int
	frame   *image.RGBA
	layout  *cueLayout
}

// cueLayout is the result of the shrink-loop layout for one cue.
type cueLayout struct {
	cueIdx int
	fontPx float64
	face   font.Face
	lines  [][]layout.TimedWord
}

// strategy rasterizes one frame for the active cue/word pair.
type strategy interface {
	draw(r *Renderer, lay *cueLayout, wordIdx int) *image.RGBA
}

// Option adjusts renderer construction.
type Option func(*Renderer)

// WithFontPath points the renderer at a font file on disk. Unset or
// unloadable paths fall back to the embedded default face.
func WithFontPath(path string) Option {
	return func(r *Renderer) {
		r.font = loadFont(path)
	}
}

// New builds a renderer for one job. Cues pass through the same sanitize,
// normalize, and split pipeline the serializer uses, so the rendered
// preview matches the constraints the ASS output assumes. The active-word
// strategy is selected for max_lines 0 or an "active" highlight style;
// every other configuration renders the full line block.
func New(cues []captions.Cue, style *captions.Style, opts ...Option) *Renderer {
	r := &Renderer{
		cues:  layout.PrepareCues(cues, style),
		style: style,
	}
	if style.MaxLines == 0 || style.HighlightStyle == captions.HighlightActive {
		r.strategy = activeWordStrategy{}
	} else {
		r.strategy = lineBlockStrategy{highlight: style.HighlightStyle == captions.HighlightKaraoke}
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.font == nil {
		r.font = loadFont("")
	}
	return r
}

// RenderFrame returns the overlay for timestamp t. The result is reused
// verbatim while the active (cue, word) pair is unchanged; callers must not
// mutate it. Arbitrary, non-monotonic t is handled correctly, monotonic t
// is what the cache is built for.
func (r *Renderer) RenderFrame(t float64) *image.RGBA {
	cueIdx, wordIdx := r.locate(t)
	if cueIdx < 0 {
		return r.blankFrame()
	}
	if r.state.valid && r.state.cueIdx == cueIdx && r.state.wordIdx == wordIdx {
		return r.state.frame
	}
	lay := r.layoutFor(cueIdx)
	frame := r.strategy.draw(r, lay, wordIdx)
	r.state = renderState{
		valid:   true,
		cueIdx:  cueIdx,
		wordIdx: wordIdx,
		frame:   frame,
		layout:  lay,
	}
	return frame
}

// locate finds the active cue and word for t. Binary search selects the
// greatest cue starting at or before t; the cue is active only while t is
// inside its span. The word scan is linear in the cue's word count.
func (r *Renderer) locate(t float64) (int, int) {
	i := sort.Search(len(r.cues), func(i int) bool { return r.cues[i].Start > t }) - 1
	if i < 0 {
		return -1, -1
	}
	cue := r.cues[i]
	if t >= cue.End {
		return -1, -1
	}
	for j, w := range cue.Words {
		if w.Start <= t && t < w.End {
			return i, j
		}
	}
	return i, -1
}

// blankFrame returns the shared fully transparent frame, allocated once.
func (r *Renderer) blankFrame() *image.RGBA {
	if r.blank == nil {
		r.blank = image.NewRGBA(image.Rect(0, 0, r.style.CanvasWidth, r.style.CanvasHeight))
	}
	return r.blank
}

// layoutFor wraps the cue's words and runs the shrink loop: starting at the
// styled font size, reduce multiplicatively while the wrapped line count
// exceeds max_lines or the widest line overflows the horizontal budget.
// The floor is 40% of base, or the global minimum in single-line mode.
func (r *Renderer) layoutFor(cueIdx int) *cueLayout {
	if r.state.layout != nil && r.state.layout.cueIdx == cueIdx {
		return r.state.layout
	}
	r.layoutRuns++
	cue := r.cues[cueIdx]
	tokens := cueTokens(cue)

	base := r.style.FontPx()
	floor := base * 0.4
	maxLines := r.style.MaxLines
	if maxLines < 1 {
		maxLines = 1
	}
	if r.style.MaxLines == 1 {
		floor = layout.MinFontPx
	}
	if floor < layout.MinFontPx {
		floor = layout.MinFontPx
	}
	availPx := float64(r.style.CanvasWidth - r.style.MarginLeftPx - r.style.MarginRightPx)

	size := base
	var lines [][]layout.TimedWord
	var face font.Face
	measure := gg.NewContext(1, 1)
	for {
		maxChars := layout.EffectiveMaxChars(layout.DefaultMaxChars, size, r.style.CanvasWidth)
		lines = layout.Wrap(tokens, maxChars)
		face = newFace(r.font, size)
		measure.SetFontFace(face)
		if fits(measure, lines, maxLines, availPx) {
			break
		}
		next := size * layout.FontShrinkFactor
		if next < floor {
			break
		}
		size = next
	}
	return &cueLayout{cueIdx: cueIdx, fontPx: size, face: face, lines: lines}
}

func fits(measure *gg.Context, lines [][]layout.TimedWord, maxLines int, availPx float64) bool {
	if len(lines) > maxLines {
		return false
	}
	for _, line := range lines {
		w, _ := measure.MeasureString(layout.LineText(line))
		if w > availPx {
			return false
		}
	}
	return true
}

// cueTokens returns the cue's words as wrap tokens. Cues without word
// timings get zero-duration tokens that can never be the active word, so
// they always render in the static look.
func cueTokens(cue captions.Cue) []layout.TimedWord {
	if cue.HasWords() {
		return layout.TimedWords(layout.ExplodePhrases(cue.Words))
	}
	return layout.TimedWords(layout.ExplodePhrases([]captions.WordTiming{{Text: cue.Text}}))
}
