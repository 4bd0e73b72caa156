package registry

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	r := Default()

	tpl, err := r.Resolve("basic")
	if err != nil {
		t.Fatalf("Resolve(basic) error = %v", err)
	}
	if tpl.Asset != "embed://basic.html" {
		t.Errorf("expected embedded asset, got %q", tpl.Asset)
	}

	var keys []string
	for _, p := range tpl.Placeholders {
		keys = append(keys, p.Key)
		if p.Selector != "{{"+p.Key+"}}" {
			t.Errorf("placeholder %q has selector %q", p.Key, p.Selector)
		}
	}
	want := []string{"title", "address", "summary", "website", "email"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("placeholder order = %v, want %v", keys, want)
	}

	if Default() != r {
		t.Error("expected Default to return the same registry")
	}
}

func TestResolve_NotFound(t *testing.T) {
	_, err := Default().Resolve("luxury")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "luxury") {
		t.Errorf("expected error to name the id, got %q", err)
	}
}

func TestResolve_ReturnsCopy(t *testing.T) {
	r := Default()
	tpl, _ := r.Resolve("basic")
	tpl.Placeholders[0].Selector = "changed"

	again, _ := r.Resolve("basic")
	if again.Placeholders[0].Selector != "{{title}}" {
		t.Error("mutating a resolved template must not affect the registry")
	}
}

func TestAssets(t *testing.T) {
	data, err := fs.ReadFile(Assets(), "basic.html")
	if err != nil {
		t.Fatalf("failed to read embedded asset: %v", err)
	}
	for _, p := range Default().Templates()[0].Placeholders {
		if !strings.Contains(string(data), p.Selector) {
			t.Errorf("basic.html does not contain %s", p.Selector)
		}
	}
}

func TestLoad(t *testing.T) {
	src := `
templates:
  - id: open-house
    name: Open house
    asset: https://assets.example/open-house.docx
    placeholders:
      - key: title
        selector: "[TITLE]"
      - key: summary
        selector: "[SUMMARY]"
  - id: basic
    asset: file:///srv/basic.odt
`
	r, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := r.IDs(); !reflect.DeepEqual(got, []string{"basic", "open-house"}) {
		t.Errorf("IDs() = %v", got)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d", r.Len())
	}

	tpl, err := r.Resolve("open-house")
	if err != nil {
		t.Fatal(err)
	}
	if tpl.Name != "Open house" || len(tpl.Placeholders) != 2 || tpl.Placeholders[1].Selector != "[SUMMARY]" {
		t.Errorf("unexpected template: %+v", tpl)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", "empty"},
		{"bad yaml", "templates: [", "parse"},
		{"unknown field", "templates:\n  - id: a\n    asset: x\n    colour: red\n", "parse"},
		{"missing id", "templates:\n  - asset: x\n", "id is required"},
		{"missing asset", "templates:\n  - id: a\n", "asset is required"},
		{"duplicate id", "templates:\n  - id: a\n    asset: x\n  - id: a\n    asset: y\n", "duplicate id"},
		{"empty selector", "templates:\n  - id: a\n    asset: x\n    placeholders:\n      - key: title\n", "no selector"},
		{"duplicate key", "templates:\n  - id: a\n    asset: x\n    placeholders:\n      - {key: t, selector: A}\n      - {key: t, selector: B}\n", "duplicate placeholder key"},
		{"duplicate selector", "templates:\n  - id: a\n    asset: x\n    placeholders:\n      - {key: t, selector: A}\n      - {key: u, selector: A}\n", "duplicate selector"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %q", tt.want, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	src := "templates:\n  - id: a\n    asset: embed://basic.html\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if _, err := r.Resolve("a"); err != nil {
		t.Error(err)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
