package font

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Face measures and encodes text set in one typeface.
type Face interface {
	// Name returns the PostScript-style name, e.g. "Helvetica-Bold".
	Name() string
	// Family returns the family name the PDF writer registers the face under.
	Family() string
	// Style returns "" for regular or "B" for bold.
	Style() string
	// Program returns the font program to embed, or nil for standard fonts.
	Program() []byte
	// StringWidth returns the width of s in points at the given size.
	StringWidth(s string, size float64) float64
	// Supports reports whether the face can draw r.
	Supports(r rune) bool
	// Encode converts s to the byte string the PDF writer expects.
	Encode(s string) (string, error)
}

// Font is a PDF Standard 14 font drawn with WinAnsiEncoding.
type Font struct {
	BaseFont string

	// Character width information
	widths map[rune]float64
}

// NewFont creates a new font. Base fonts outside the Standard 14 are measured
// with Helvetica's ASCII widths.
func NewFont(baseFont string) *Font {
	f := &Font{
		BaseFont: baseFont,
		widths:   make(map[rune]float64),
	}

	// Load default widths for Standard 14 fonts
	f.loadStandardWidths()

	return f
}

// GetWidth returns the width of a character (in 1000ths of em)
func (f *Font) GetWidth(r rune) float64 {
	if w, ok := f.widths[r]; ok {
		return w
	}

	// Default width if not found
	return 500.0
}

// GetStringWidth calculates the total width of a string (in 1000ths of em)
func (f *Font) GetStringWidth(s string) float64 {
	total := 0.0
	for _, r := range s {
		total += f.GetWidth(r)
	}
	return total
}

// Name returns the base font name.
func (f *Font) Name() string {
	return f.BaseFont
}

// Family returns the core font family name, e.g. "Helvetica" for
// "Helvetica-Bold".
func (f *Font) Family() string {
	family, _, _ := strings.Cut(f.BaseFont, "-")
	return family
}

// Style returns "B" for bold variants.
func (f *Font) Style() string {
	if strings.Contains(f.BaseFont, "Bold") {
		return "B"
	}
	return ""
}

// Program returns nil; standard fonts are never embedded.
func (f *Font) Program() []byte {
	return nil
}

// StringWidth returns the width of s in points at size.
func (f *Font) StringWidth(s string, size float64) float64 {
	return f.GetStringWidth(s) * size / 1000
}

// Supports reports whether r is representable in WinAnsiEncoding.
func (f *Font) Supports(r rune) bool {
	_, ok := charmap.Windows1252.EncodeRune(r)
	return ok
}

// Encode converts s to WinAnsiEncoding. It fails on the first rune that has
// no cp1252 code point.
func (f *Font) Encode(s string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(s))
	for i, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			return "", fmt.Errorf("%s cannot encode %q at byte %d", f.BaseFont, r, i)
		}
		sb.WriteByte(b)
	}
	return sb.String(), nil
}

// loadStandardWidths loads default widths for Standard 14 fonts
func (f *Font) loadStandardWidths() {
	// For Standard 14 fonts, use predefined widths
	if widths, ok := standardFonts[f.BaseFont]; ok {
		// Copy standard widths
		for r, w := range widths {
			f.widths[r] = w
		}
	} else {
		// For non-standard fonts, use default widths
		f.setDefaultWidths()
	}
}

// setDefaultWidths sets default widths for all printable ASCII characters
func (f *Font) setDefaultWidths() {
	// Use Helvetica widths as default
	for r := rune(32); r <= 126; r++ {
		if w, ok := helveticaWidths[r]; ok {
			f.widths[r] = w
		} else {
			f.widths[r] = 500.0 // Fallback
		}
	}
}
