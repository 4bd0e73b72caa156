package layout

import (
	"strings"

	"github.com/tsawler/flyer/font"
)

// Wrap greedily packs the words of s into lines no wider than limit when set
// in face at size. A word that is wider than limit on its own is emitted as a
// line by itself and never split.
func Wrap(s string, face font.Face, size, limit float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""
	for _, word := range words {
		if current == "" {
			current = word
			continue
		}
		candidate := current + " " + word
		if face.StringWidth(candidate, size) > limit {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	lines = append(lines, current)

	return lines
}
