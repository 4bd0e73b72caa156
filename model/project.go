package model

import "strings"

// ProjectData holds the property values merged into a template.
type ProjectData struct {
	Title   string `json:"title" yaml:"title"`
	Website string `json:"website" yaml:"website"`
	Email   string `json:"email" yaml:"email"`
	Address string `json:"address" yaml:"address"`
}

// Field returns the value for a placeholder key. Keys are matched
// case-insensitively; unknown keys return false.
func (p ProjectData) Field(key string) (string, bool) {
	switch strings.ToLower(key) {
	case "title":
		return p.Title, true
	case "website":
		return p.Website, true
	case "email":
		return p.Email, true
	case "address":
		return p.Address, true
	}
	return "", false
}

// IsZero reports whether no field is set.
func (p ProjectData) IsZero() bool {
	return p == ProjectData{}
}
