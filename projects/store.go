// Package projects reads property records that feed the flyer pipeline.
//
// Two stores are provided: FileStore reads a YAML document and
// PostgresStore reads a "projects" table through a pgx connection pool.
package projects

import (
	"context"
	"errors"

	"github.com/tsawler/flyer/model"
)

// ErrNotFound is returned when no project has the requested id.
var ErrNotFound = errors.New("project not found")

// Project is a stored property record.
type Project struct {
	ID                string `json:"id" yaml:"id"`
	model.ProjectData `yaml:",inline"`
}

// Store is a read-only source of projects.
type Store interface {
	// Get returns the data for the project with the given id.
	Get(ctx context.Context, id string) (model.ProjectData, error)
	// List returns every project ordered by id.
	List(ctx context.Context) ([]Project, error)
}
