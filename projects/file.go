package projects

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/flyer/model"
)

// FileStore serves projects held in memory, typically loaded from YAML.
//
// The YAML layout is:
//
//	projects:
//	  - id: sunny-villa
//	    title: Sunny Villa
//	    address: 123 Lake Rd
type FileStore struct {
	byID     map[string]model.ProjectData
	projects []Project
}

var _ Store = (*FileStore)(nil)

type fileDoc struct {
	Projects []Project `yaml:"projects"`
}

// NewFileStore builds a store from projects. Ids must be unique and
// non-empty.
func NewFileStore(projects ...Project) (*FileStore, error) {
	s := &FileStore{byID: make(map[string]model.ProjectData, len(projects))}
	for i, p := range projects {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, fmt.Errorf("project %d: id is required", i)
		}
		if _, dup := s.byID[id]; dup {
			return nil, fmt.Errorf("project %q: duplicate id", id)
		}
		p.ID = id
		s.byID[id] = p.ProjectData
		s.projects = append(s.projects, p)
	}
	sort.Slice(s.projects, func(i, j int) bool { return s.projects[i].ID < s.projects[j].ID })
	return s, nil
}

// Load parses a YAML project list.
func Load(rd io.Reader) (*FileStore, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	var doc fileDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse projects: %w", err)
	}
	return NewFileStore(doc.Projects...)
}

// LoadFile parses the YAML project list at path.
func LoadFile(path string) (*FileStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Get returns the project with the given id.
func (s *FileStore) Get(ctx context.Context, id string) (model.ProjectData, error) {
	if err := ctx.Err(); err != nil {
		return model.ProjectData{}, err
	}
	p, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return model.ProjectData{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return p, nil
}

// List returns every project ordered by id.
func (s *FileStore) List(ctx context.Context) ([]Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]Project(nil), s.projects...), nil
}
