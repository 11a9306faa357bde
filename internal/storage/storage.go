package storage

import (
	"context"

	"github.com/slok/tasklist/internal/model"
)

// TaskStore is the interface for the ordered, position addressed task collection
// the application works on.
type TaskStore interface {
	AppendTask(ctx context.Context, t model.Task) error
	GetTaskAt(ctx context.Context, index int) (*model.Task, error)
	UpdateTaskAt(ctx context.Context, index int, t model.Task) error
	DeleteTaskAt(ctx context.Context, index int) (*model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	ReplaceTasks(ctx context.Context, tasks []model.Task) error
}

// TaskListRepository is the interface for task list persistence.
type TaskListRepository interface {
	SaveTaskList(ctx context.Context, path string, tasks []model.Task) error
	LoadTaskList(ctx context.Context, path string) ([]model.Task, error)
}

// AppConfigRepository is the interface to get the application configuration.
type AppConfigRepository interface {
	GetAppConfig(ctx context.Context, path string) (model.AppConfig, error)
}
