package remove

import (
	"context"
	"fmt"

	"github.com/slok/tasklist/internal/log"
	"github.com/slok/tasklist/internal/model"
	"github.com/slok/tasklist/internal/storage"
)

// ServiceConfig is the configuration for the remove service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Remove"})

	return nil
}

// Service removes a task.
type Service struct {
	store  storage.TaskStore
	logger log.Logger
}

// NewService creates a new remove service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Request represents the remove request parameters.
type Request struct {
	// Index is the zero based position of the task.
	Index int
}

// Run removes the task at the requested position, the following tasks shift down by one.
// An out of range index returns model.ErrNotFound and the store is not modified.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	s.logger.Debugf("removing task at index %d", req.Index)

	task, err := s.store.DeleteTaskAt(ctx, req.Index)
	if err != nil {
		return nil, fmt.Errorf("could not remove task: %w", err)
	}

	s.logger.Infof("removed task: %q", task.Title)
	return task, nil
}
