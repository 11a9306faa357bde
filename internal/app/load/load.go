package load

import (
	"context"
	"fmt"

	"github.com/slok/tasklist/internal/log"
	"github.com/slok/tasklist/internal/model"
	"github.com/slok/tasklist/internal/storage"
)

// ServiceConfig is the configuration for the load service.
type ServiceConfig struct {
	Store      storage.TaskStore
	Repository storage.TaskListRepository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}

	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Load"})

	return nil
}

// Service restores the task list from a file.
type Service struct {
	store  storage.TaskStore
	repo   storage.TaskListRepository
	logger log.Logger
}

// NewService creates a new load service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the load request parameters.
type Request struct {
	// Path is the file path to read the task list from.
	Path string
}

// Run replaces the whole store with the tasks read from the requested path.
// The file is fully read before touching the store, so on error the store
// keeps its previous tasks.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Task, error) {
	tasks, err := s.repo.LoadTaskList(ctx, req.Path)
	if err != nil {
		return nil, fmt.Errorf("could not load task list: %w", err)
	}

	if err := s.store.ReplaceTasks(ctx, tasks); err != nil {
		return nil, fmt.Errorf("could not replace tasks: %w", err)
	}

	s.logger.Infof("loaded %d tasks from %s", len(tasks), req.Path)
	return tasks, nil
}
