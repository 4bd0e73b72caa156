package model

// FontRole identifies which typographic style a line is drawn with.
type FontRole int

const (
	// RoleBody is regular body text.
	RoleBody FontRole = iota
	// RoleHeading is a short bold heading.
	RoleHeading
	// RoleTitle is the project title.
	RoleTitle
)

// String returns the string representation of the role.
func (r FontRole) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleHeading:
		return "heading"
	default:
		return "body"
	}
}

// Bold reports whether the role is drawn with the bold face.
func (r FontRole) Bold() bool {
	return r == RoleTitle || r == RoleHeading
}

// Line is one positioned line of text.
type Line struct {
	Text  string   // Sanitized text to draw
	Role  FontRole // Typographic role
	Size  float64  // Font size in points
	X     float64  // Left edge of the baseline in points
	Y     float64  // Baseline in PDF coordinates (bottom-up)
	Width float64  // Measured width at Size
	Sheet int      // 0-indexed sheet; always 0 unless pagination is enabled
}

// OnPage reports whether the baseline falls inside the page height.
func (l Line) OnPage(height float64) bool {
	return l.Y >= 0 && l.Y <= height
}
