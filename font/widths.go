package font

// Standard 14 font names
var standardFonts = map[string]map[rune]float64{
	"Helvetica":             helveticaWidths,
	"Helvetica-Bold":        helveticaBoldWidths,
	"Helvetica-Oblique":     helveticaWidths,
	"Helvetica-BoldOblique": helveticaBoldWidths,
	"Times-Roman":           timesWidths,
	"Times-Bold":            timesBoldWidths,
	"Times-Italic":          timesWidths,
	"Times-BoldItalic":      timesBoldWidths,
	"Courier":               courierWidths,
	"Courier-Bold":          courierWidths,
	"Courier-Oblique":       courierWidths,
	"Courier-BoldOblique":   courierWidths,
	"Symbol":                symbolWidths,
	"ZapfDingbats":          zapfDingbatsWidths,
}

// Helvetica widths (in 1000ths of em) for printable ASCII
var helveticaWidths = map[rune]float64{
	' ':  278,
	'!':  278,
	'"':  355,
	'#':  556,
	'$':  556,
	'%':  889,
	'&':  667,
	'\'': 191,
	'(':  333,
	')':  333,
	'*':  389,
	'+':  584,
	',':  278,
	'-':  333,
	'.':  278,
	'/':  278,
	'0':  556,
	'1':  556,
	'2':  556,
	'3':  556,
	'4':  556,
	'5':  556,
	'6':  556,
	'7':  556,
	'8':  556,
	'9':  556,
	':':  278,
	';':  278,
	'<':  584,
	'=':  584,
	'>':  584,
	'?':  556,
	'@':  1015,
	'A':  667,
	'B':  667,
	'C':  722,
	'D':  722,
	'E':  667,
	'F':  611,
	'G':  778,
	'H':  722,
	'I':  278,
	'J':  500,
	'K':  667,
	'L':  556,
	'M':  833,
	'N':  722,
	'O':  778,
	'P':  667,
	'Q':  778,
	'R':  722,
	'S':  667,
	'T':  611,
	'U':  722,
	'V':  667,
	'W':  944,
	'X':  667,
	'Y':  667,
	'Z':  611,
	'[':  278,
	'\\': 278,
	']':  278,
	'^':  469,
	'_':  556,
	'`':  333,
	'a':  556,
	'b':  556,
	'c':  500,
	'd':  556,
	'e':  556,
	'f':  278,
	'g':  556,
	'h':  556,
	'i':  222,
	'j':  222,
	'k':  500,
	'l':  222,
	'm':  833,
	'n':  556,
	'o':  556,
	'p':  556,
	'q':  556,
	'r':  333,
	's':  500,
	't':  278,
	'u':  556,
	'v':  500,
	'w':  722,
	'x':  500,
	'y':  500,
	'z':  500,
	'{':  334,
	'|':  260,
	'}':  334,
	'~':  584,
}

// Helvetica-Bold widths (in 1000ths of em)
var helveticaBoldWidths = map[rune]float64{
	' ':  278,
	'!':  333,
	'"':  474,
	'#':  556,
	'$':  556,
	'%':  889,
	'&':  722,
	'\'': 238,
	'(':  333,
	')':  333,
	'*':  389,
	'+':  584,
	',':  278,
	'-':  333,
	'.':  278,
	'/':  278,
	'0':  556,
	'1':  556,
	'2':  556,
	'3':  556,
	'4':  556,
	'5':  556,
	'6':  556,
	'7':  556,
	'8':  556,
	'9':  556,
	':':  333,
	';':  333,
	'<':  584,
	'=':  584,
	'>':  584,
	'?':  611,
	'@':  975,
	'A':  722,
	'B':  722,
	'C':  722,
	'D':  722,
	'E':  667,
	'F':  611,
	'G':  778,
	'H':  722,
	'I':  278,
	'J':  556,
	'K':  722,
	'L':  611,
	'M':  833,
	'N':  722,
	'O':  778,
	'P':  667,
	'Q':  778,
	'R':  722,
	'S':  667,
	'T':  611,
	'U':  722,
	'V':  667,
	'W':  944,
	'X':  667,
	'Y':  667,
	'Z':  611,
	'[':  333,
	'\\': 278,
	']':  333,
	'^':  584,
	'_':  556,
	'`':  333,
	'a':  556,
	'b':  611,
	'c':  556,
	'd':  611,
	'e':  556,
	'f':  333,
	'g':  611,
	'h':  611,
	'i':  278,
	'j':  278,
	'k':  556,
	'l':  278,
	'm':  889,
	'n':  611,
	'o':  611,
	'p':  611,
	'q':  611,
	'r':  389,
	's':  556,
	't':  333,
	'u':  611,
	'v':  556,
	'w':  778,
	'x':  556,
	'y':  556,
	'z':  500,
	'{':  389,
	'|':  280,
	'}':  389,
	'~':  584,
}

// Times-Roman widths (in 1000ths of em) for printable ASCII
var timesWidths = map[rune]float64{
	' ':  250,
	'!':  333,
	'"':  408,
	'#':  500,
	'$':  500,
	'%':  833,
	'&':  778,
	'\'': 180,
	'(':  333,
	')':  333,
	'*':  500,
	'+':  564,
	',':  250,
	'-':  333,
	'.':  250,
	'/':  278,
	'0':  500,
	'1':  500,
	'2':  500,
	'3':  500,
	'4':  500,
	'5':  500,
	'6':  500,
	'7':  500,
	'8':  500,
	'9':  500,
	':':  278,
	';':  278,
	'<':  564,
	'=':  564,
	'>':  564,
	'?':  444,
	'@':  921,
	'A':  722,
	'B':  667,
	'C':  667,
	'D':  722,
	'E':  611,
	'F':  556,
	'G':  722,
	'H':  722,
	'I':  333,
	'J':  389,
	'K':  722,
	'L':  611,
	'M':  889,
	'N':  722,
	'O':  722,
	'P':  556,
	'Q':  722,
	'R':  667,
	'S':  556,
	'T':  611,
	'U':  722,
	'V':  722,
	'W':  944,
	'X':  722,
	'Y':  722,
	'Z':  611,
	'[':  333,
	'\\': 278,
	']':  333,
	'^':  469,
	'_':  500,
	'`':  333,
	'a':  444,
	'b':  500,
	'c':  444,
	'd':  500,
	'e':  444,
	'f':  333,
	'g':  500,
	'h':  500,
	'i':  278,
	'j':  278,
	'k':  500,
	'l':  278,
	'm':  778,
	'n':  500,
	'o':  500,
	'p':  500,
	'q':  500,
	'r':  333,
	's':  389,
	't':  278,
	'u':  500,
	'v':  500,
	'w':  722,
	'x':  500,
	'y':  500,
	'z':  444,
	'{':  480,
	'|':  200,
	'}':  480,
	'~':  541,
}

// Times-Bold widths (in 1000ths of em) for printable ASCII
var timesBoldWidths = map[rune]float64{
	' ':  250,
	'!':  333,
	'"':  555,
	'#':  500,
	'$':  500,
	'%':  1000,
	'&':  833,
	'\'': 278,
	'(':  333,
	')':  333,
	'*':  500,
	'+':  570,
	',':  250,
	'-':  333,
	'.':  250,
	'/':  278,
	'0':  500,
	'1':  500,
	'2':  500,
	'3':  500,
	'4':  500,
	'5':  500,
	'6':  500,
	'7':  500,
	'8':  500,
	'9':  500,
	':':  333,
	';':  333,
	'<':  570,
	'=':  570,
	'>':  570,
	'?':  500,
	'@':  930,
	'A':  722,
	'B':  667,
	'C':  722,
	'D':  722,
	'E':  667,
	'F':  611,
	'G':  778,
	'H':  778,
	'I':  389,
	'J':  500,
	'K':  778,
	'L':  667,
	'M':  944,
	'N':  722,
	'O':  778,
	'P':  611,
	'Q':  778,
	'R':  722,
	'S':  556,
	'T':  667,
	'U':  722,
	'V':  722,
	'W':  1000,
	'X':  722,
	'Y':  722,
	'Z':  667,
	'[':  333,
	'\\': 278,
	']':  333,
	'^':  581,
	'_':  500,
	'`':  333,
	'a':  500,
	'b':  556,
	'c':  444,
	'd':  556,
	'e':  444,
	'f':  333,
	'g':  500,
	'h':  556,
	'i':  278,
	'j':  333,
	'k':  556,
	'l':  278,
	'm':  833,
	'n':  556,
	'o':  500,
	'p':  556,
	'q':  556,
	'r':  444,
	's':  389,
	't':  333,
	'u':  556,
	'v':  500,
	'w':  722,
	'x':  500,
	'y':  500,
	'z':  444,
	'{':  394,
	'|':  220,
	'}':  394,
	'~':  520,
}

// Courier widths (monospaced)
var courierWidths = map[rune]float64{}

// Symbol widths
var symbolWidths = map[rune]float64{}

// ZapfDingbats widths
var zapfDingbatsWidths = map[rune]float64{}

func init() {
	// Courier is monospaced - all characters have same width
	for r := rune(32); r <= 126; r++ {
		courierWidths[r] = 600
	}
	for r := range helveticaLatinWidths {
		courierWidths[r] = 600
	}

	// Symbol and ZapfDingbats - use default width for now
	for r := rune(32); r <= 126; r++ {
		symbolWidths[r] = 500
		zapfDingbatsWidths[r] = 500
	}

	merge := func(dst, src map[rune]float64) {
		for r, w := range src {
			dst[r] = w
		}
	}
	merge(helveticaWidths, helveticaLatinWidths)
	merge(helveticaBoldWidths, helveticaBoldLatinWidths)
	merge(timesWidths, timesLatinWidths)
	merge(timesBoldWidths, timesBoldLatinWidths)
}

// WinAnsi characters outside ASCII, keyed by Unicode code point.
var helveticaLatinWidths = map[rune]float64{
	'\u20ac': 556,
	'\u201a': 222,
	'\u0192': 556,
	'\u201e': 333,
	'\u2026': 1000,
	'\u2020': 556,
	'\u2021': 556,
	'\u02c6': 333,
	'\u2030': 1000,
	'\u0160': 667,
	'\u2039': 333,
	'\u0152': 1000,
	'\u017d': 611,
	'\u2018': 222,
	'\u2019': 222,
	'\u201c': 333,
	'\u201d': 333,
	'\u2022': 350,
	'\u2013': 556,
	'\u2014': 1000,
	'\u02dc': 333,
	'\u2122': 1000,
	'\u0161': 500,
	'\u203a': 333,
	'\u0153': 944,
	'\u017e': 500,
	'\u0178': 667,
	'\u00a0': 278,
	'\u00a1': 333,
	'\u00a2': 556,
	'\u00a3': 556,
	'\u00a4': 556,
	'\u00a5': 556,
	'\u00a6': 260,
	'\u00a7': 556,
	'\u00a8': 333,
	'\u00a9': 737,
	'\u00aa': 370,
	'\u00ab': 556,
	'\u00ac': 584,
	'\u00ad': 333,
	'\u00ae': 737,
	'\u00af': 333,
	'\u00b0': 400,
	'\u00b1': 584,
	'\u00b2': 333,
	'\u00b3': 333,
	'\u00b4': 333,
	'\u00b5': 556,
	'\u00b6': 537,
	'\u00b7': 278,
	'\u00b8': 333,
	'\u00b9': 333,
	'\u00ba': 365,
	'\u00bb': 556,
	'\u00bc': 834,
	'\u00bd': 834,
	'\u00be': 834,
	'\u00bf': 611,
	'\u00c0': 667,
	'\u00c1': 667,
	'\u00c2': 667,
	'\u00c3': 667,
	'\u00c4': 667,
	'\u00c5': 667,
	'\u00c6': 1000,
	'\u00c7': 722,
	'\u00c8': 667,
	'\u00c9': 667,
	'\u00ca': 667,
	'\u00cb': 667,
	'\u00cc': 278,
	'\u00cd': 278,
	'\u00ce': 278,
	'\u00cf': 278,
	'\u00d0': 722,
	'\u00d1': 722,
	'\u00d2': 778,
	'\u00d3': 778,
	'\u00d4': 778,
	'\u00d5': 778,
	'\u00d6': 778,
	'\u00d7': 584,
	'\u00d8': 778,
	'\u00d9': 722,
	'\u00da': 722,
	'\u00db': 722,
	'\u00dc': 722,
	'\u00dd': 667,
	'\u00de': 667,
	'\u00df': 611,
	'\u00e0': 556,
	'\u00e1': 556,
	'\u00e2': 556,
	'\u00e3': 556,
	'\u00e4': 556,
	'\u00e5': 556,
	'\u00e6': 889,
	'\u00e7': 500,
	'\u00e8': 556,
	'\u00e9': 556,
	'\u00ea': 556,
	'\u00eb': 556,
	'\u00ec': 278,
	'\u00ed': 278,
	'\u00ee': 278,
	'\u00ef': 278,
	'\u00f0': 556,
	'\u00f1': 556,
	'\u00f2': 556,
	'\u00f3': 556,
	'\u00f4': 556,
	'\u00f5': 556,
	'\u00f6': 556,
	'\u00f7': 584,
	'\u00f8': 611,
	'\u00f9': 556,
	'\u00fa': 556,
	'\u00fb': 556,
	'\u00fc': 556,
	'\u00fd': 500,
	'\u00fe': 556,
	'\u00ff': 500,
}

var helveticaBoldLatinWidths = map[rune]float64{
	'\u20ac': 556,
	'\u201a': 278,
	'\u0192': 556,
	'\u201e': 500,
	'\u2026': 1000,
	'\u2020': 556,
	'\u2021': 556,
	'\u02c6': 333,
	'\u2030': 1000,
	'\u0160': 667,
	'\u2039': 333,
	'\u0152': 1000,
	'\u017d': 611,
	'\u2018': 278,
	'\u2019': 278,
	'\u201c': 500,
	'\u201d': 500,
	'\u2022': 350,
	'\u2013': 556,
	'\u2014': 1000,
	'\u02dc': 333,
	'\u2122': 1000,
	'\u0161': 556,
	'\u203a': 333,
	'\u0153': 944,
	'\u017e': 500,
	'\u0178': 667,
	'\u00a0': 278,
	'\u00a1': 333,
	'\u00a2': 556,
	'\u00a3': 556,
	'\u00a4': 556,
	'\u00a5': 556,
	'\u00a6': 280,
	'\u00a7': 556,
	'\u00a8': 333,
	'\u00a9': 737,
	'\u00aa': 370,
	'\u00ab': 556,
	'\u00ac': 584,
	'\u00ad': 333,
	'\u00ae': 737,
	'\u00af': 333,
	'\u00b0': 400,
	'\u00b1': 584,
	'\u00b2': 333,
	'\u00b3': 333,
	'\u00b4': 333,
	'\u00b5': 611,
	'\u00b6': 556,
	'\u00b7': 278,
	'\u00b8': 333,
	'\u00b9': 333,
	'\u00ba': 365,
	'\u00bb': 556,
	'\u00bc': 834,
	'\u00bd': 834,
	'\u00be': 834,
	'\u00bf': 611,
	'\u00c0': 722,
	'\u00c1': 722,
	'\u00c2': 722,
	'\u00c3': 722,
	'\u00c4': 722,
	'\u00c5': 722,
	'\u00c6': 1000,
	'\u00c7': 722,
	'\u00c8': 667,
	'\u00c9': 667,
	'\u00ca': 667,
	'\u00cb': 667,
	'\u00cc': 278,
	'\u00cd': 278,
	'\u00ce': 278,
	'\u00cf': 278,
	'\u00d0': 722,
	'\u00d1': 722,
	'\u00d2': 778,
	'\u00d3': 778,
	'\u00d4': 778,
	'\u00d5': 778,
	'\u00d6': 778,
	'\u00d7': 584,
	'\u00d8': 778,
	'\u00d9': 722,
	'\u00da': 722,
	'\u00db': 722,
	'\u00dc': 722,
	'\u00dd': 667,
	'\u00de': 667,
	'\u00df': 611,
	'\u00e0': 556,
	'\u00e1': 556,
	'\u00e2': 556,
	'\u00e3': 556,
	'\u00e4': 556,
	'\u00e5': 556,
	'\u00e6': 889,
	'\u00e7': 556,
	'\u00e8': 556,
	'\u00e9': 556,
	'\u00ea': 556,
	'\u00eb': 556,
	'\u00ec': 278,
	'\u00ed': 278,
	'\u00ee': 278,
	'\u00ef': 278,
	'\u00f0': 611,
	'\u00f1': 611,
	'\u00f2': 611,
	'\u00f3': 611,
	'\u00f4': 611,
	'\u00f5': 611,
	'\u00f6': 611,
	'\u00f7': 584,
	'\u00f8': 611,
	'\u00f9': 611,
	'\u00fa': 611,
	'\u00fb': 611,
	'\u00fc': 611,
	'\u00fd': 556,
	'\u00fe': 611,
	'\u00ff': 556,
}

var timesLatinWidths = map[rune]float64{
	'\u20ac': 500,
	'\u201a': 333,
	'\u0192': 500,
	'\u201e': 444,
	'\u2026': 1000,
	'\u2020': 500,
	'\u2021': 500,
	'\u02c6': 333,
	'\u2030': 1000,
	'\u0160': 556,
	'\u2039': 333,
	'\u0152': 889,
	'\u017d': 611,
	'\u2018': 333,
	'\u2019': 333,
	'\u201c': 444,
	'\u201d': 444,
	'\u2022': 350,
	'\u2013': 500,
	'\u2014': 1000,
	'\u02dc': 333,
	'\u2122': 980,
	'\u0161': 389,
	'\u203a': 333,
	'\u0153': 722,
	'\u017e': 444,
	'\u0178': 722,
	'\u00a0': 250,
	'\u00a1': 333,
	'\u00a2': 500,
	'\u00a3': 500,
	'\u00a4': 500,
	'\u00a5': 500,
	'\u00a6': 200,
	'\u00a7': 500,
	'\u00a8': 333,
	'\u00a9': 760,
	'\u00aa': 276,
	'\u00ab': 500,
	'\u00ac': 564,
	'\u00ad': 333,
	'\u00ae': 760,
	'\u00af': 333,
	'\u00b0': 400,
	'\u00b1': 564,
	'\u00b2': 300,
	'\u00b3': 300,
	'\u00b4': 333,
	'\u00b5': 500,
	'\u00b6': 453,
	'\u00b7': 250,
	'\u00b8': 333,
	'\u00b9': 300,
	'\u00ba': 310,
	'\u00bb': 500,
	'\u00bc': 750,
	'\u00bd': 750,
	'\u00be': 750,
	'\u00bf': 444,
	'\u00c0': 722,
	'\u00c1': 722,
	'\u00c2': 722,
	'\u00c3': 722,
	'\u00c4': 722,
	'\u00c5': 722,
	'\u00c6': 889,
	'\u00c7': 667,
	'\u00c8': 611,
	'\u00c9': 611,
	'\u00ca': 611,
	'\u00cb': 611,
	'\u00cc': 333,
	'\u00cd': 333,
	'\u00ce': 333,
	'\u00cf': 333,
	'\u00d0': 722,
	'\u00d1': 722,
	'\u00d2': 722,
	'\u00d3': 722,
	'\u00d4': 722,
	'\u00d5': 722,
	'\u00d6': 722,
	'\u00d7': 564,
	'\u00d8': 722,
	'\u00d9': 722,
	'\u00da': 722,
	'\u00db': 722,
	'\u00dc': 722,
	'\u00dd': 722,
	'\u00de': 556,
	'\u00df': 500,
	'\u00e0': 444,
	'\u00e1': 444,
	'\u00e2': 444,
	'\u00e3': 444,
	'\u00e4': 444,
	'\u00e5': 444,
	'\u00e6': 667,
	'\u00e7': 444,
	'\u00e8': 444,
	'\u00e9': 444,
	'\u00ea': 444,
	'\u00eb': 444,
	'\u00ec': 278,
	'\u00ed': 278,
	'\u00ee': 278,
	'\u00ef': 278,
	'\u00f0': 500,
	'\u00f1': 500,
	'\u00f2': 500,
	'\u00f3': 500,
	'\u00f4': 500,
	'\u00f5': 500,
	'\u00f6': 500,
	'\u00f7': 564,
	'\u00f8': 500,
	'\u00f9': 500,
	'\u00fa': 500,
	'\u00fb': 500,
	'\u00fc': 500,
	'\u00fd': 500,
	'\u00fe': 500,
	'\u00ff': 500,
}

var timesBoldLatinWidths = map[rune]float64{
	'\u20ac': 500,
	'\u201a': 333,
	'\u0192': 500,
	'\u201e': 500,
	'\u2026': 1000,
	'\u2020': 500,
	'\u2021': 500,
	'\u02c6': 333,
	'\u2030': 1000,
	'\u0160': 556,
	'\u2039': 333,
	'\u0152': 1000,
	'\u017d': 667,
	'\u2018': 333,
	'\u2019': 333,
	'\u201c': 500,
	'\u201d': 500,
	'\u2022': 350,
	'\u2013': 500,
	'\u2014': 1000,
	'\u02dc': 333,
	'\u2122': 1000,
	'\u0161': 389,
	'\u203a': 333,
	'\u0153': 722,
	'\u017e': 444,
	'\u0178': 722,
	'\u00a0': 250,
	'\u00a1': 333,
	'\u00a2': 500,
	'\u00a3': 500,
	'\u00a4': 500,
	'\u00a5': 500,
	'\u00a6': 220,
	'\u00a7': 500,
	'\u00a8': 333,
	'\u00a9': 747,
	'\u00aa': 300,
	'\u00ab': 500,
	'\u00ac': 570,
	'\u00ad': 333,
	'\u00ae': 747,
	'\u00af': 333,
	'\u00b0': 400,
	'\u00b1': 570,
	'\u00b2': 300,
	'\u00b3': 300,
	'\u00b4': 333,
	'\u00b5': 556,
	'\u00b6': 540,
	'\u00b7': 250,
	'\u00b8': 333,
	'\u00b9': 300,
	'\u00ba': 330,
	'\u00bb': 500,
	'\u00bc': 750,
	'\u00bd': 750,
	'\u00be': 750,
	'\u00bf': 500,
	'\u00c0': 722,
	'\u00c1': 722,
	'\u00c2': 722,
	'\u00c3': 722,
	'\u00c4': 722,
	'\u00c5': 722,
	'\u00c6': 1000,
	'\u00c7': 722,
	'\u00c8': 667,
	'\u00c9': 667,
	'\u00ca': 667,
	'\u00cb': 667,
	'\u00cc': 389,
	'\u00cd': 389,
	'\u00ce': 389,
	'\u00cf': 389,
	'\u00d0': 722,
	'\u00d1': 722,
	'\u00d2': 778,
	'\u00d3': 778,
	'\u00d4': 778,
	'\u00d5': 778,
	'\u00d6': 778,
	'\u00d7': 570,
	'\u00d8': 778,
	'\u00d9': 722,
	'\u00da': 722,
	'\u00db': 722,
	'\u00dc': 722,
	'\u00dd': 722,
	'\u00de': 611,
	'\u00df': 556,
	'\u00e0': 500,
	'\u00e1': 500,
	'\u00e2': 500,
	'\u00e3': 500,
	'\u00e4': 500,
	'\u00e5': 500,
	'\u00e6': 722,
	'\u00e7': 444,
	'\u00e8': 444,
	'\u00e9': 444,
	'\u00ea': 444,
	'\u00eb': 444,
	'\u00ec': 278,
	'\u00ed': 278,
	'\u00ee': 278,
	'\u00ef': 278,
	'\u00f0': 500,
	'\u00f1': 556,
	'\u00f2': 500,
	'\u00f3': 500,
	'\u00f4': 500,
	'\u00f5': 500,
	'\u00f6': 500,
	'\u00f7': 570,
	'\u00f8': 500,
	'\u00f9': 556,
	'\u00fa': 556,
	'\u00fb': 556,
	'\u00fc': 556,
	'\u00fd': 500,
	'\u00fe': 556,
	'\u00ff': 500,
}
