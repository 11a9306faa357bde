package router

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/slok/tasklist/internal/log"
	"github.com/slok/tasklist/internal/model"
	"github.com/slok/tasklist/internal/storage"
)

// SQLiteExtensions are the file extensions stored as SQLite databases.
var SQLiteExtensions = []string{".db", ".sqlite", ".sqlite3"}

// RepositoryConfig is the configuration for the router repository.
type RepositoryConfig struct {
	Text   storage.TaskListRepository
	SQLite storage.TaskListRepository
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Text == nil {
		return fmt.Errorf("text repository is required")
	}

	if c.SQLite == nil {
		return fmt.Errorf("sqlite repository is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Router"})

	return nil
}

// Repository is a storage.TaskListRepository that selects the file format
// based on the path extension, plain text is used by default.
type Repository struct {
	text   storage.TaskListRepository
	sqlite storage.TaskListRepository
	logger log.Logger
}

// NewRepository creates a new router repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		text:   cfg.Text,
		sqlite: cfg.SQLite,
		logger: cfg.Logger,
	}, nil
}

func (r *Repository) SaveTaskList(ctx context.Context, path string, tasks []model.Task) error {
	return r.repoFor(path).SaveTaskList(ctx, path, tasks)
}

func (r *Repository) LoadTaskList(ctx context.Context, path string) ([]model.Task, error) {
	return r.repoFor(path).LoadTaskList(ctx, path)
}

func (r *Repository) repoFor(path string) storage.TaskListRepository {
	if IsSQLitePath(path) {
		r.logger.Debugf("Using SQLite format for %s", path)
		return r.sqlite
	}

	r.logger.Debugf("Using text format for %s", path)
	return r.text
}

// IsSQLitePath returns true if the path has a SQLite database extension.
func IsSQLitePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SQLiteExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
