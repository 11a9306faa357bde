package list

import (
	"context"
	"fmt"
	"iter"

	"github.com/slok/tasklist/internal/log"
	"github.com/slok/tasklist/internal/model"
	"github.com/slok/tasklist/internal/storage"
)

// ServiceConfig is the configuration for the list service.
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

	return nil
}

// Service lists tasks with optional filtering.
type Service struct {
	store  storage.TaskStore
	logger log.Logger
}

// NewService creates a new list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		store:  cfg.Store,
		logger: cfg.Logger,
	}, nil
}

// Request represents the list request parameters.
type Request struct {
	// CompletedOnly only shows completed tasks.
	CompletedOnly bool
}

// Run returns the tasks in store order keyed by their zero based position. The
// sequence is lazy and can be iterated any number of times, it works on a snapshot
// of the store taken when Run is called.
func (s *Service) Run(ctx context.Context, req Request) (iter.Seq2[int, model.Task], error) {
	s.logger.Debugf("listing tasks (completed only: %v)", req.CompletedOnly)

	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list tasks: %w", err)
	}

	seq := func(yield func(int, model.Task) bool) {
		for i, t := range tasks {
			if req.CompletedOnly && !t.Completed {
				continue
			}
			if !yield(i, t) {
				return
			}
		}
	}

	return seq, nil
}
