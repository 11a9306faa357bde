package add

import (
	"context"
	"fmt"

	"github.com/slok/tasklist/internal/log"
	"github.com/slok/tasklist/internal/model"
	"github.com/slok/tasklist/internal/storage"
)

// ServiceConfig is the configuration for the add service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Add"})

	return nil
}

// Service adds tasks at the end of the list.
type Service struct {
	store  storage.TaskStore
	logger log.Logger
}

// NewService creates a new add service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Request represents the add request parameters.
type Request struct {
	// Title is used as is, empty titles are allowed.
	Title string
}

// Run creates a new not completed task and appends it to the store.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	task := model.NewTask(req.Title)
	if err := s.store.AppendTask(ctx, task); err != nil {
		return nil, fmt.Errorf("could not add task: %w", err)
	}

	s.logger.Debugf("task added: %q", task.Title)
	return &task, nil
}
