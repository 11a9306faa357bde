package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/slok/tasklist/internal/log"
	"github.com/slok/tasklist/internal/model"
	"github.com/slok/tasklist/internal/storage/sqlite/migrations"
)

// TaskListRepositoryConfig is the configuration for the SQLite task list repository.
type TaskListRepositoryConfig struct {
	Logger log.Logger
	// TimeNow is used to set the saved at timestamp, defaults to time.Now.
	TimeNow func() time.Time
}

func (c *TaskListRepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})

	if c.TimeNow == nil {
		c.TimeNow = time.Now
	}
	return nil
}

// TaskListRepository is a SQLite implementation of storage.TaskListRepository.
// Every path is its own SQLite database file holding a single task list.
type TaskListRepository struct {
	logger  log.Logger
	timeNow func() time.Time
}

// NewTaskListRepository creates a new SQLite task list repository.
func NewTaskListRepository(cfg TaskListRepositoryConfig) (*TaskListRepository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &TaskListRepository{
		logger:  cfg.Logger,
		timeNow: cfg.TimeNow,
	}, nil
}

// SaveTaskList replaces the task list stored in the database at path, creating it if required.
func (r *TaskListRepository) SaveTaskList(ctx context.Context, path string, tasks []model.Task) error {
	db, err := r.open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("could not delete tasks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (id, position, title, completed, saved_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("could not prepare insert: %w", err)
	}
	defer stmt.Close()

	savedAt := r.timeNow().UTC().Unix()
	for i, t := range tasks {
		_, err := stmt.ExecContext(ctx, ulid.Make().String(), i, t.Title, t.Completed, savedAt)
		if err != nil {
			return fmt.Errorf("could not insert task %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	r.logger.Debugf("Saved %d tasks into %s", len(tasks), path)
	return nil
}

// LoadTaskList returns the task list stored in the database at path.
// A missing database is an error, it is never created on load.
func (r *TaskListRepository) LoadTaskList(ctx context.Context, path string) ([]model.Task, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	db, err := r.open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT title, completed FROM tasks ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("could not query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.Title, &t.Completed); err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	r.logger.Debugf("Loaded %d tasks from %s", len(tasks), path)
	return tasks, nil
}

// open opens the database at path and applies the schema migrations.
func (r *TaskListRepository) open(ctx context.Context, path string) (*sql.DB, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, r.logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	if err := migrator.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	return db, nil
}
