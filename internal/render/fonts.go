package render

import (
	"image/color"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// loadFont parses the font file at path, falling back to the embedded Go
// Regular face when the path is empty or unloadable. A missing font is a
// degraded-rendering condition, never an error.
func loadFont(path string) *sfnt.Font {
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if f, err := opentype.Parse(data); err == nil {
				return f
			}
		}
	}
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil
	}
	return f
}

// newFace builds a face at the given pixel size. The bitmap basicfont is
// the last-resort fallback so drawing always has a usable face.
func newFace(f *sfnt.Font, sizePx float64) font.Face {
	if f == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// parseASSColor decodes the compositor's &HAABBGGRR hex form into an RGBA
// color. ASS alpha is inverted: 00 is opaque, FF fully transparent.
// Unparseable input degrades to opaque white.
func parseASSColor(value string) color.NRGBA {
	hex := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(value), "&H"), "&")
	if len(hex) == 6 {
		hex = "00" + hex
	}
	if len(hex) != 8 {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	var parts [4]uint8
	for i := 0; i < 4; i++ {
		hi, okHi := hexNibble(hex[i*2])
		lo, okLo := hexNibble(hex[i*2+1])
		if !okHi || !okLo {
			return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}
		parts[i] = hi<<4 | lo
	}
	return color.NRGBA{
		R: parts[3],
		G: parts[2],
		B: parts[1],
		A: 255 - parts[0],
	}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
