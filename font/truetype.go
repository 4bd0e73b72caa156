package font

import (
	"fmt"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// TrueType is an embeddable TrueType face measured with golang.org/x/image.
// A TrueType value caches one x/image face per point size and must not be
// shared between goroutines; use [TrueType.Clone] to get an independent copy
// backed by the same parsed program.
type TrueType struct {
	name   string
	family string
	style  string
	data   []byte
	parsed *opentype.Font

	buf   sfnt.Buffer
	faces map[float64]xfont.Face
}

// ParseTrueType parses a TrueType or OpenType font program.
func ParseTrueType(name, family, style string, data []byte) (*TrueType, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return newTrueType(name, family, style, data, parsed), nil
}

func newTrueType(name, family, style string, data []byte, parsed *opentype.Font) *TrueType {
	return &TrueType{
		name:   name,
		family: family,
		style:  style,
		data:   data,
		parsed: parsed,
		faces:  make(map[float64]xfont.Face),
	}
}

// Clone returns a copy that shares the parsed program but has its own
// measurement state.
func (t *TrueType) Clone() *TrueType {
	return newTrueType(t.name, t.family, t.style, t.data, t.parsed)
}

// Name returns the face name.
func (t *TrueType) Name() string { return t.name }

// Family returns the family the face is registered under.
func (t *TrueType) Family() string { return t.family }

// Style returns "" or "B".
func (t *TrueType) Style() string { return t.style }

// Program returns the raw font program for embedding.
func (t *TrueType) Program() []byte { return t.data }

// StringWidth returns the advance width of s in points at size, including
// kerning.
func (t *TrueType) StringWidth(s string, size float64) float64 {
	face, err := t.face(size)
	if err != nil {
		return 0
	}
	return float64(xfont.MeasureString(face, s)) / 64
}

// Supports reports whether the font maps r to a real glyph.
func (t *TrueType) Supports(r rune) bool {
	idx, err := t.parsed.GlyphIndex(&t.buf, r)
	return err == nil && idx != 0
}

// Encode returns s unchanged if every rune has a glyph. TrueType faces are
// embedded as UTF-8 fonts.
func (t *TrueType) Encode(s string) (string, error) {
	for i, r := range s {
		if !t.Supports(r) {
			return "", fmt.Errorf("%s has no glyph for %q at byte %d", t.name, r, i)
		}
	}
	return s, nil
}

func (t *TrueType) face(size float64) (xfont.Face, error) {
	if f, ok := t.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(t.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s face at %.1fpt: %w", t.name, size, err)
	}
	t.faces[size] = f
	return f, nil
}

// The Go fonts are parsed once per process. Parsed programs are immutable.
var goFonts = sync.OnceValues(func() ([2]*TrueType, error) {
	regular, err := ParseTrueType("Go-Regular", "Go", "", goregular.TTF)
	if err != nil {
		return [2]*TrueType{}, err
	}
	bold, err := ParseTrueType("Go-Bold", "Go", "B", gobold.TTF)
	if err != nil {
		return [2]*TrueType{}, err
	}
	return [2]*TrueType{regular, bold}, nil
})
