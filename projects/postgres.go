package projects

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/tsawler/flyer/model"
)

const (
	selectProject  = `SELECT title, website, email, address FROM projects WHERE id = $1`
	selectProjects = `SELECT id, title, website, email, address FROM projects ORDER BY id`
)

// querier is the subset of *pgxpool.Pool used by PostgresStore.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresStore reads projects from a PostgreSQL "projects" table with
// text columns id, title, website, email and address.
type PostgresStore struct {
	db     querier
	pool   *pgxpool.Pool
	logger *zap.Logger
}

var _ Store = (*PostgresStore)(nil)

// OpenPostgres connects to the database at dsn and verifies the connection.
func OpenPostgres(ctx context.Context, dsn string, logger *zap.Logger) (*PostgresStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx config: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 0
	config.MaxConnLifetime = 3 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	logger.Info("project store connected", zap.String("host", config.ConnConfig.Host))
	return &PostgresStore{db: pool, pool: pool, logger: logger}, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Get returns the project with the given id.
func (s *PostgresStore) Get(ctx context.Context, id string) (model.ProjectData, error) {
	var p model.ProjectData
	err := s.db.QueryRow(ctx, selectProject, id).Scan(&p.Title, &p.Website, &p.Email, &p.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ProjectData{}, fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		return model.ProjectData{}, fmt.Errorf("query project %q: %w", id, err)
	}
	return p, nil
}

// List returns every project ordered by id.
func (s *PostgresStore) List(ctx context.Context) ([]Project, error) {
	rows, err := s.db.Query(ctx, selectProjects)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Website, &p.Email, &p.Address); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	s.logger.Debug("projects listed", zap.Int("count", len(out)))
	return out, nil
}
