// Package model provides the data structures that flow through the flyer
// pipeline.
//
// The types in this package are plain values. None of them carry behaviour
// beyond small helpers, and none of them outlive a single pipeline run except
// the [PaperSize] presets.
//
// # Project Data
//
// [ProjectData] holds the caller-supplied values that are merged into a
// template:
//
//	p := model.ProjectData{Title: "Sunny Villa", Address: "123 Lake Rd"}
//
// # Lines and Pages
//
// The layout engine produces a [Page], which is an ordered list of [Line]
// values positioned on a fixed [PaperSize]. Each line carries its resolved
// [FontRole], font size and baseline position in PDF coordinates (origin at
// the bottom-left corner, Y growing upwards).
//
//	page := engine.Layout(text)
//	for _, line := range page.Lines {
//	    fmt.Println(line.Role, line.Size, line.Text)
//	}
package model
