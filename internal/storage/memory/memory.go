package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/slok/tasklist/internal/log"
	"github.com/slok/tasklist/internal/model"
)

// TaskStoreConfig is the configuration for the memory task store.
type TaskStoreConfig struct {
	Logger log.Logger
}

func (c *TaskStoreConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// TaskStore is an in-memory implementation of storage.TaskStore.
// Tasks keep insertion order, deleting a task shifts the following ones down by one.
type TaskStore struct {
	tasks  []model.Task
	mu     sync.RWMutex
	logger log.Logger
}

// NewTaskStore creates a new empty memory task store.
func NewTaskStore(cfg TaskStoreConfig) (*TaskStore, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &TaskStore{
		tasks:  []model.Task{},
		logger: cfg.Logger,
	}, nil
}

// AppendTask adds a task at the end of the store.
func (s *TaskStore) AppendTask(ctx context.Context, t model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, t)
	s.logger.Debugf("Appended task at index %d", len(s.tasks)-1)

	return nil
}

// GetTaskAt retrieves a copy of the task at index.
func (s *TaskStore) GetTaskAt(ctx context.Context, index int) (*model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.inRange(index) {
		return nil, fmt.Errorf("task at index %d: %w", index, model.ErrNotFound)
	}

	taskCopy := s.tasks[index]
	return &taskCopy, nil
}

// UpdateTaskAt replaces the task at index.
func (s *TaskStore) UpdateTaskAt(ctx context.Context, index int, t model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inRange(index) {
		return fmt.Errorf("task at index %d: %w", index, model.ErrNotFound)
	}

	s.tasks[index] = t
	s.logger.Debugf("Updated task at index %d", index)

	return nil
}

// DeleteTaskAt removes the task at index and returns it.
func (s *TaskStore) DeleteTaskAt(ctx context.Context, index int) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inRange(index) {
		return nil, fmt.Errorf("task at index %d: %w", index, model.ErrNotFound)
	}

	removed := s.tasks[index]
	s.tasks = slices.Delete(s.tasks, index, index+1)
	s.logger.Debugf("Deleted task at index %d", index)

	return &removed, nil
}

// ListTasks returns a copy of all the tasks in store order.
func (s *TaskStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.tasks), nil
}

// ReplaceTasks drops every task in the store and sets the received ones.
func (s *TaskStore) ReplaceTasks(ctx context.Context, tasks []model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(make([]model.Task, 0, len(tasks)), tasks...)
	s.logger.Debugf("Replaced store with %d tasks", len(tasks))

	return nil
}

func (s *TaskStore) inRange(index int) bool {
	return index >= 0 && index < len(s.tasks)
}
