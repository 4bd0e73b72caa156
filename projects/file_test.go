package projects

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleYAML = `
projects:
  - id: sunny-villa
    title: Sunny Villa
    website: https://sunny.example
    email: sales@sunny.example
    address: 123 Lake Rd
  - id: harbour-loft
    title: Harbour Loft
    address: 9 Quay St
`

func TestLoad(t *testing.T) {
	store, err := Load(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	p, err := store.Get(context.Background(), "sunny-villa")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if p.Title != "Sunny Villa" || p.Address != "123 Lake Rd" || p.Email != "sales@sunny.example" {
		t.Errorf("unexpected project %+v", p)
	}

	list, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(list))
	}
	if list[0].ID != "harbour-loft" || list[1].ID != "sunny-villa" {
		t.Errorf("expected projects ordered by id, got %q, %q", list[0].ID, list[1].ID)
	}
	if list[0].Website != "" {
		t.Errorf("expected empty website, got %q", list[0].Website)
	}
}

func TestGet_NotFound(t *testing.T) {
	store, err := Load(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	_, err = store.Get(context.Background(), "castle")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errText string
	}{
		{"missing id", "projects:\n  - title: X\n", "id is required"},
		{"duplicate id", "projects:\n  - id: a\n  - id: a\n", "duplicate id"},
		{"unknown field", "projects:\n  - id: a\n    price: 1\n", "failed to parse projects"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("expected error containing %q, got %v", tt.errText, err)
			}
		})
	}
}

func TestLoad_Empty(t *testing.T) {
	store, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	list, _ := store.List(context.Background())
	if len(list) != 0 {
		t.Errorf("expected no projects, got %d", len(list))
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if _, err := store.Get(context.Background(), "harbour-loft"); err != nil {
		t.Errorf("Get failed: %v", err)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileStore_CanceledContext(t *testing.T) {
	store, _ := NewFileStore(Project{ID: "a"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Get(ctx, "a"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
