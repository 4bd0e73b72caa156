// Package font provides the typefaces used to measure and draw flyer text.
//
// A [Face] knows three things about one typeface: how wide a string is at a
// given size, which runes it can draw, and how the PDF writer should register
// it. Two kinds of face exist:
//
//   - [Font] - one of the PDF Standard 14 fonts (Helvetica, Times, Courier).
//     These are never embedded; text is drawn in WinAnsi (cp1252) encoding.
//   - [TrueType] - an embedded TrueType program measured with
//     golang.org/x/image. The bundled Go fonts are the default.
//
// # Families
//
// A [Family] pairs a regular and a bold face. The layout engine measures with
// a family and the PDF writer registers the same family, so measured widths
// match what is drawn:
//
//	fam, err := font.Lookup("helvetica")
//	w := fam.Bold.StringWidth("Sunny Villa", 24)
//
// Families are values owned by a single pipeline run. TrueType faces cache
// per-size measurement state and are not safe for concurrent use; the parsed
// font programs behind them are shared read-only.
package font
