package save

import (
	"context"
	"fmt"

	"github.com/slok/tasklist/internal/log"
	"github.com/slok/tasklist/internal/storage"
)

// ServiceConfig is the configuration for the save service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Save"})

	return nil
}

// Service persists the task list into a file.
type Service struct {
	store  storage.TaskStore
	repo   storage.TaskListRepository
	logger log.Logger
}

// NewService creates a new save service.
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

// Request represents the save request parameters.
type Request struct {
	// Path is the file path, any existing content will be replaced.
	Path string
}

// Run saves all the tasks of the store into the requested path.
func (s *Service) Run(ctx context.Context, req Request) error {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("could not list tasks: %w", err)
	}

	if err := s.repo.SaveTaskList(ctx, req.Path, tasks); err != nil {
		return fmt.Errorf("could not save task list: %w", err)
	}

	s.logger.Infof("saved %d tasks into %s", len(tasks), req.Path)
	return nil
}
