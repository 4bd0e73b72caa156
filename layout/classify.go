package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/flyer/model"
)

// Classify returns the font role for a paragraph using the default heading
// length limit.
func Classify(paragraph, title string) model.FontRole {
	return classify(paragraph, title, DefaultConfig().HeadingMaxLength)
}

func classify(paragraph, title string, headingMax int) model.FontRole {
	// An empty title would match every paragraph.
	if title != "" && strings.Contains(paragraph, title) {
		return model.RoleTitle
	}
	if utf8.RuneCountInString(paragraph) < headingMax && strings.HasSuffix(paragraph, ":") {
		return model.RoleHeading
	}
	return model.RoleBody
}

// Sanitize removes control characters (U+0000-U+001F and U+007F-U+009F).
// Tabs become spaces first so they still separate words.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return ' '
		}
		if r <= 0x1F || (r >= 0x7F && r <= 0x9F) {
			return -1
		}
		return r
	}, s)
}
