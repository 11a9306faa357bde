package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/slok/tasklist/internal/model"
	"github.com/slok/tasklist/internal/storage"
)

var (
	_ storage.TaskStore           = &MockTaskStore{}
	_ storage.TaskListRepository  = &MockTaskListRepository{}
	_ storage.AppConfigRepository = &MockAppConfigRepository{}
)

// MockTaskStore is a testify mock for storage.TaskStore.
type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) AppendTask(ctx context.Context, t model.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskStore) GetTaskAt(ctx context.Context, index int) (*model.Task, error) {
	args := m.Called(ctx, index)
	t, _ := args.Get(0).(*model.Task)
	return t, args.Error(1)
}

func (m *MockTaskStore) UpdateTaskAt(ctx context.Context, index int, t model.Task) error {
	args := m.Called(ctx, index, t)
	return args.Error(0)
}

func (m *MockTaskStore) DeleteTaskAt(ctx context.Context, index int) (*model.Task, error) {
	args := m.Called(ctx, index)
	t, _ := args.Get(0).(*model.Task)
	return t, args.Error(1)
}

func (m *MockTaskStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	ts, _ := args.Get(0).([]model.Task)
	return ts, args.Error(1)
}

func (m *MockTaskStore) ReplaceTasks(ctx context.Context, tasks []model.Task) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}

// MockTaskListRepository is a testify mock for storage.TaskListRepository.
type MockTaskListRepository struct {
	mock.Mock
}

func (m *MockTaskListRepository) SaveTaskList(ctx context.Context, path string, tasks []model.Task) error {
	args := m.Called(ctx, path, tasks)
	return args.Error(0)
}

func (m *MockTaskListRepository) LoadTaskList(ctx context.Context, path string) ([]model.Task, error) {
	args := m.Called(ctx, path)
	ts, _ := args.Get(0).([]model.Task)
	return ts, args.Error(1)
}

// MockAppConfigRepository is a testify mock for storage.AppConfigRepository.
type MockAppConfigRepository struct {
	mock.Mock
}

func (m *MockAppConfigRepository) GetAppConfig(ctx context.Context, path string) (model.AppConfig, error) {
	args := m.Called(ctx, path)
	cfg, _ := args.Get(0).(model.AppConfig)
	return cfg, args.Error(1)
}
