package font

import (
	"fmt"
	"sort"
	"strings"
)

// Family pairs the regular and bold faces used for one document.
type Family struct {
	Name    string
	Regular Face
	Bold    Face
}

// Face returns the bold face if bold is set, the regular face otherwise.
func (f Family) Face(bold bool) Face {
	if bold {
		return f.Bold
	}
	return f.Regular
}

// Embedded reports whether the family carries font programs to embed.
func (f Family) Embedded() bool {
	return f.Regular.Program() != nil || f.Bold.Program() != nil
}

// DefaultFamily is the family used when none is configured.
const DefaultFamily = "helvetica"

var standardFamilies = map[string][2]string{
	"helvetica": {"Helvetica", "Helvetica-Bold"},
	"times":     {"Times-Roman", "Times-Bold"},
	"courier":   {"Courier", "Courier-Bold"},
}

// Helvetica returns the standard Helvetica family.
func Helvetica() Family {
	fam, _ := Lookup("helvetica")
	return fam
}

// Go returns a fresh family backed by the bundled Go TrueType fonts.
func Go() (Family, error) {
	faces, err := goFonts()
	if err != nil {
		return Family{}, err
	}
	return Family{Name: "go", Regular: faces[0].Clone(), Bold: faces[1].Clone()}, nil
}

// Lookup returns a new Family by name. Names are case-insensitive; the empty
// name selects [DefaultFamily].
func Lookup(name string) (Family, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultFamily
	}
	if key == "go" {
		return Go()
	}
	names, ok := standardFamilies[key]
	if !ok {
		return Family{}, fmt.Errorf("unknown font family %q (available: %s)", name, strings.Join(Families(), ", "))
	}
	return Family{
		Name:    key,
		Regular: NewFont(names[0]),
		Bold:    NewFont(names[1]),
	}, nil
}

// Families lists the available family names.
func Families() []string {
	names := []string{"go"}
	for name := range standardFamilies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
