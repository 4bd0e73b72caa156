// Package merge substitutes placeholder tokens with resolved values.
//
// A Map is an ordered list of (key, selector, value) entries built once per
// document. Merge applies the entries in that order and treats every
// selector as a literal string, so the result is the same on every run.
package merge

import (
	"strings"

	"github.com/tsawler/flyer/model"
	"github.com/tsawler/flyer/registry"
)

// SummaryKey is the placeholder key that receives the summary text.
const SummaryKey = "summary"

// Entry binds a selector token to its replacement.
type Entry struct {
	Key      string
	Selector string
	Value    string
}

// Map is an ordered list of entries.
type Map []Entry

// Build resolves every placeholder of tpl, in template order. Project fields
// supply title, website, email and address; the summary key receives
// summary. Unknown keys resolve to the empty string.
func Build(tpl registry.Template, project model.ProjectData, summary string) Map {
	m := make(Map, 0, len(tpl.Placeholders))
	for _, p := range tpl.Placeholders {
		var value string
		if strings.EqualFold(p.Key, SummaryKey) {
			value = summary
		} else {
			value, _ = project.Field(p.Key)
		}
		m = append(m, Entry{Key: p.Key, Selector: p.Selector, Value: value})
	}
	return m
}

// Merge replaces every occurrence of each selector with its value. Entries
// are applied in order; empty selectors are skipped.
func Merge(text string, m Map) string {
	for _, e := range m {
		if e.Selector == "" {
			continue
		}
		text = strings.ReplaceAll(text, e.Selector, e.Value)
	}
	return text
}

// Residual returns the selectors that still occur in text.
func Residual(text string, m Map) []string {
	var left []string
	for _, e := range m {
		if e.Selector != "" && strings.Contains(text, e.Selector) {
			left = append(left, e.Selector)
		}
	}
	return left
}

// Value returns the value bound to key.
func (m Map) Value(key string) (string, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}
