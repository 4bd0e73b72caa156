// Package layout places merged flyer text onto a fixed-size page.
//
// The [Engine] turns plain text into positioned [model.Line] values using
// manual typography: every paragraph is classified into a [model.FontRole],
// assigned a font size and line gap, stripped of control characters and
// greedily word-wrapped against the page's content width.
//
// # Classification
//
// A paragraph is:
//
//   - a title if it contains the project title verbatim
//   - a heading if it is shorter than 50 runes and ends with a colon
//   - body text otherwise
//
// # Usage
//
//	fam := font.Helvetica()
//	engine := layout.NewEngine(fam, "Sunny Villa")
//	page := engine.Layout(mergedText)
//
// # Overflow
//
// By default the engine does not paginate: once the vertical cursor passes the
// bottom margin, lines keep being emitted with baselines below it, which puts
// them off the visible page. Set [Config.Paginate] to start a new sheet
// instead.
package layout
