package font

import (
	"math"
	"testing"
)

// TestNewFont tests font creation
func TestNewFont(t *testing.T) {
	font := NewFont("Helvetica")

	if font.Name() != "Helvetica" {
		t.Errorf("expected base font Helvetica, got %s", font.Name())
	}
}

// TestGetWidth tests character width retrieval
func TestGetWidth(t *testing.T) {
	font := NewFont("Helvetica")

	if width := font.GetWidth('A'); width != 667 {
		t.Errorf("expected width 667 for 'A', got %f", width)
	}

	if width := font.GetWidth(' '); width != 278 {
		t.Errorf("expected width 278 for space, got %f", width)
	}
}

// TestGetStringWidth tests string width calculation
func TestGetStringWidth(t *testing.T) {
	font := NewFont("Helvetica")

	width := font.GetStringWidth("Hi")

	// H=722, i=222
	expected := 722.0 + 222.0
	if width != expected {
		t.Errorf("expected width %f for 'Hi', got %f", expected, width)
	}
}

func TestStringWidth_Points(t *testing.T) {
	font := NewFont("Helvetica-Bold")

	// S=667 u=611 n=611 n=611 y=556 -> 3056 units
	got := font.StringWidth("Sunny", 24)
	want := 3056.0 * 24 / 1000
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, got)
	}
}

// TestStandardFonts tests width loading for standard and unknown base fonts
func TestStandardFonts(t *testing.T) {
	tests := []struct {
		baseFont string
		r        rune
		width    float64
	}{
		{"Helvetica", 'W', 944},
		{"Helvetica-Bold", 'W', 944},
		{"Times-Roman", 'W', 944},
		{"Times-Bold", 'W', 1000},
		{"Courier", 'W', 600},
		{"Arial", 'W', 944},
		{"CustomFont", 'i', 222},
	}

	for _, tt := range tests {
		t.Run(tt.baseFont, func(t *testing.T) {
			font := NewFont(tt.baseFont)

			if got := font.GetWidth(tt.r); got != tt.width {
				t.Errorf("width of %q in %s: expected %f, got %f",
					tt.r, tt.baseFont, tt.width, got)
			}
		})
	}
}

// TestTimesWidths tests Times metrics beyond letters, including cp1252
// characters outside ASCII
func TestTimesWidths(t *testing.T) {
	tests := []struct {
		baseFont string
		r        rune
		width    float64
	}{
		{"Times-Roman", '@', 921},
		{"Times-Roman", '%', 833},
		{"Times-Roman", '&', 778},
		{"Times-Roman", '1', 500},
		{"Times-Roman", '\u00c9', 611},
		{"Times-Roman", '\u2014', 1000},
		{"Times-Bold", '@', 930},
		{"Times-Bold", '%', 1000},
		{"Times-Bold", '&', 833},
		{"Times-Bold", '\u00c9', 667},
		{"Courier", '\u00e9', 600},
	}

	for _, tt := range tests {
		font := NewFont(tt.baseFont)
		if got := font.GetWidth(tt.r); got != tt.width {
			t.Errorf("width of %q in %s: expected %f, got %f", tt.r, tt.baseFont, tt.width, got)
		}
	}
}

func TestFamilyAndStyle(t *testing.T) {
	tests := []struct {
		baseFont string
		family   string
		style    string
	}{
		{"Helvetica", "Helvetica", ""},
		{"Helvetica-Bold", "Helvetica", "B"},
		{"Times-Roman", "Times", ""},
		{"Times-Bold", "Times", "B"},
		{"Courier-Bold", "Courier", "B"},
	}

	for _, tt := range tests {
		font := NewFont(tt.baseFont)
		if font.Family() != tt.family || font.Style() != tt.style {
			t.Errorf("%s: got (%q, %q), want (%q, %q)", tt.baseFont, font.Family(), font.Style(), tt.family, tt.style)
		}
		if font.Program() != nil {
			t.Errorf("%s: standard fonts must not carry a program", tt.baseFont)
		}
	}
}

// TestCourierMonospaced tests Courier monospaced widths
func TestCourierMonospaced(t *testing.T) {
	font := NewFont("Courier")

	if width := font.GetWidth('A'); width != 600 {
		t.Errorf("expected width 600, got %f", width)
	}

	if width := font.GetWidth('i'); width != 600 {
		t.Errorf("expected width 600 for 'i', got %f", width)
	}
}

// TestHelveticaBold tests Helvetica-Bold widths, including punctuation
func TestHelveticaBold(t *testing.T) {
	font := NewFont("Helvetica-Bold")

	tests := map[rune]float64{
		'A': 722,
		':': 333,
		'@': 975,
		'7': 556,
		'.': 278,
	}
	for r, want := range tests {
		if got := font.GetWidth(r); got != want {
			t.Errorf("width of %q: expected %f, got %f", r, want, got)
		}
	}
}

// TestUnknownCharacter tests fallback for unknown characters
func TestUnknownCharacter(t *testing.T) {
	font := NewFont("Times-Roman")

	if width := font.GetWidth('\u2192'); width != 500.0 {
		t.Errorf("expected default width 500, got %f", width)
	}
}

func TestEncode_WinAnsi(t *testing.T) {
	font := NewFont("Helvetica")

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"ascii", "Sunny Villa", "Sunny Villa", true},
		{"e-acute", "café", "caf\xe9", true},
		{"euro sign", "€5", "\x805", true},
		{"smart quote", "’", "\x92", true},
		{"cjk", "漢字", "", false},
		{"emoji", "home \U0001F3E0", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := font.Encode(tt.input)
			if (err == nil) != tt.ok {
				t.Fatalf("Encode(%q) error = %v, want ok=%v", tt.input, err, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	fam, err := Lookup("")
	if err != nil {
		t.Fatalf("Lookup default: %v", err)
	}
	if fam.Name != DefaultFamily {
		t.Errorf("expected %s, got %s", DefaultFamily, fam.Name)
	}
	if fam.Regular.Name() != "Helvetica" || fam.Bold.Name() != "Helvetica-Bold" {
		t.Errorf("unexpected faces %s / %s", fam.Regular.Name(), fam.Bold.Name())
	}
	if fam.Face(true) != fam.Bold || fam.Face(false) != fam.Regular {
		t.Error("Face(bold) returned the wrong face")
	}
	if fam.Embedded() {
		t.Error("helvetica must not be embedded")
	}

	if _, err := Lookup("Comic Sans"); err == nil {
		t.Error("expected error for unknown family")
	}

	times, err := Lookup("TIMES")
	if err != nil {
		t.Fatalf("Lookup times: %v", err)
	}
	if times.Bold.Name() != "Times-Bold" {
		t.Errorf("expected Times-Bold, got %s", times.Bold.Name())
	}
}

func TestFamilies(t *testing.T) {
	got := Families()
	want := []string{"courier", "go", "helvetica", "times"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
}

func TestGoFamily(t *testing.T) {
	fam, err := Go()
	if err != nil {
		t.Fatalf("Go(): %v", err)
	}
	if !fam.Embedded() {
		t.Error("Go family must carry font programs")
	}
	if fam.Regular.Family() != "Go" || fam.Bold.Style() != "B" {
		t.Errorf("unexpected registration %s/%s", fam.Regular.Family(), fam.Bold.Style())
	}

	short := fam.Regular.StringWidth("Hi", 12)
	long := fam.Regular.StringWidth("Hello there", 12)
	if short <= 0 || long <= short {
		t.Errorf("expected increasing widths, got %f and %f", short, long)
	}

	small := fam.Bold.StringWidth("Sunny Villa", 12)
	large := fam.Bold.StringWidth("Sunny Villa", 24)
	if math.Abs(large-2*small) > 1 {
		t.Errorf("expected width to scale with size: %f vs %f", small, large)
	}

	if !fam.Regular.Supports('A') {
		t.Error("expected glyph for 'A'")
	}
	if fam.Regular.Supports('漢') {
		t.Error("did not expect a CJK glyph in the Go fonts")
	}
	if _, err := fam.Regular.Encode("漢"); err == nil {
		t.Error("expected encode error for missing glyph")
	}
	if s, err := fam.Regular.Encode("café"); err != nil || s != "café" {
		t.Errorf("expected UTF-8 passthrough, got %q, %v", s, err)
	}
}

func TestGoFamily_IndependentFaces(t *testing.T) {
	a, err := Go()
	if err != nil {
		t.Fatal(err)
	}
	b, err := Go()
	if err != nil {
		t.Fatal(err)
	}
	if a.Regular == b.Regular {
		t.Error("each family must own its faces")
	}
	if a.Regular.StringWidth("Lake", 12) != b.Regular.StringWidth("Lake", 12) {
		t.Error("faces backed by the same program must measure identically")
	}
}

func TestParseTrueType_Invalid(t *testing.T) {
	if _, err := ParseTrueType("bad", "Bad", "", []byte("not a font")); err == nil {
		t.Error("expected parse error")
	}
}
