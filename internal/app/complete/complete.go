package complete

import (
	"context"
	"fmt"

	"github.com/slok/tasklist/internal/log"
	"github.com/slok/tasklist/internal/model"
	"github.com/slok/tasklist/internal/storage"
)

// ServiceConfig is the configuration for the complete service.
type ServiceConfig struct {
	Store  storage.TaskStore
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Complete"})

	return nil
}

// Service marks tasks as completed.
type Service struct {
	store  storage.TaskStore
	logger log.Logger
}

// NewService creates a new complete service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Request represents the complete request parameters.
type Request struct {
	// Index is the zero based position of the task.
	Index int
}

// Run marks the task at the requested position as completed. Completing an
// already completed task is a no-op that succeeds.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	task, err := s.store.GetTaskAt(ctx, req.Index)
	if err != nil {
		return nil, fmt.Errorf("could not get task: %w", err)
	}

	if task.Completed {
		s.logger.Debugf("task at index %d already completed", req.Index)
		return task, nil
	}

	task.MarkComplete()
	if err := s.store.UpdateTaskAt(ctx, req.Index, *task); err != nil {
		return nil, fmt.Errorf("could not update task: %w", err)
	}

	s.logger.Infof("completed task: %q", task.Title)
	return task, nil
}
