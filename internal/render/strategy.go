package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"subforge/internal/captions"
)

// lineBlockStrategy renders every wrapped line of the active cue, stacked
// and centered above the bottom offset. With highlighting enabled the
// active word is tinted primary and the rest secondary; with highlighting
// disabled every word gets the primary color for a static look.
type lineBlockStrategy struct {
	highlight bool
}

func (s lineBlockStrategy) draw(r *Renderer, lay *cueLayout, wordIdx int) *image.RGBA {
	style := r.style
	dc := gg.NewContext(style.CanvasWidth, style.CanvasHeight)
	dc.SetFontFace(lay.face)

	primary := parseASSColor(style.PrimaryColor)
	secondary := parseASSColor(style.SecondaryColor)
	activeStart, activeEnd, haveActive := r.activeSpan(lay.cueIdx, wordIdx)

	lineHeight := lay.fontPx * 1.4
	bottom := float64(style.CanvasHeight - style.BottomOffsetPx())
	top := bottom - lineHeight*float64(len(lay.lines))
	spaceW := spaceWidth(dc, lay.fontPx)

	for li, line := range lay.lines {
		baseline := top + lineHeight*float64(li) + lay.fontPx
		lineW := -spaceW
		for _, tok := range line {
			w, _ := dc.MeasureString(tok.Text)
			lineW += w + spaceW
		}
		x := (float64(style.CanvasWidth) - lineW) / 2
		for _, tok := range line {
			fill := primary
			if s.highlight {
				fill = secondary
				if haveActive && tok.Start >= activeStart-1e-9 && tok.End <= activeEnd+1e-9 {
					fill = primary
				}
			}
			w, _ := dc.MeasureString(tok.Text)
			drawWord(dc, r.style, tok.Text, x, baseline, fill)
			x += w + spaceW
		}
	}
	return dc.Image().(*image.RGBA)
}

// activeWordStrategy renders only the currently spoken word, centered
// horizontally above the bottom offset. Between words it yields the shared
// transparent frame.
type activeWordStrategy struct{}

func (activeWordStrategy) draw(r *Renderer, lay *cueLayout, wordIdx int) *image.RGBA {
	cue := r.cues[lay.cueIdx]
	if wordIdx < 0 || wordIdx >= len(cue.Words) {
		return r.blankFrame()
	}
	style := r.style
	dc := gg.NewContext(style.CanvasWidth, style.CanvasHeight)
	dc.SetFontFace(lay.face)

	text := cue.Words[wordIdx].Text
	w, _ := dc.MeasureString(text)
	x := (float64(style.CanvasWidth) - w) / 2
	baseline := float64(style.CanvasHeight - style.BottomOffsetPx())
	drawWord(dc, style, text, x, baseline, parseASSColor(style.PrimaryColor))
	return dc.Image().(*image.RGBA)
}

// activeSpan returns the time interval of the active word so exploded
// phrase fragments inside it highlight together.
func (r *Renderer) activeSpan(cueIdx, wordIdx int) (float64, float64, bool) {
	cue := r.cues[cueIdx]
	if wordIdx < 0 || wordIdx >= len(cue.Words) {
		return 0, 0, false
	}
	w := cue.Words[wordIdx]
	return w.Start, w.End, true
}

// drawWord paints one word with the style's shadow and outline beneath the
// fill color.
func drawWord(dc *gg.Context, style *captions.Style, text string, x, baseline float64, fill color.NRGBA) {
	if style.ShadowStrength > 0 {
		depth := float64(style.ShadowStrength)
		dc.SetColor(color.NRGBA{A: 160})
		dc.DrawString(text, x+depth, baseline+depth)
	}
	if style.OutlinePx > 0 {
		dc.SetColor(parseASSColor(style.OutlineColor))
		o := style.OutlinePx
		for _, d := range [][2]float64{
			{-o, 0}, {o, 0}, {0, -o}, {0, o},
			{-o, -o}, {-o, o}, {o, -o}, {o, o},
		} {
			dc.DrawString(text, x+d[0], baseline+d[1])
		}
	}
	dc.SetColor(fill)
	dc.DrawString(text, x, baseline)
}

// spaceWidth measures the inter-word gap, with a size-relative floor for
// faces that report a degenerate space advance.
func spaceWidth(dc *gg.Context, fontPx float64) float64 {
	w, _ := dc.MeasureString(" ")
	if w <= 0 {
		return fontPx * 0.3
	}
	return w
}
