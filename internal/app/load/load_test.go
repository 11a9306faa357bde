package load_test

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slok/tasklist/internal/app/load"
	"github.com/slok/tasklist/internal/model"
	"github.com/slok/tasklist/internal/storage/io"
	"github.com/slok/tasklist/internal/storage/memory"
	"github.com/slok/tasklist/internal/storage/storagemock"
)

func TestService_Run(t *testing.T) {
	tasks := []model.Task{
		{Title: "A", Completed: true},
		{Title: "B"},
	}

	tests := map[string]struct {
		mockStore func(m *storagemock.MockTaskStore)
		mockRepo  func(m *storagemock.MockTaskListRepository)
		req       load.Request
		expTasks  []model.Task
		expErr    bool
	}{
		"loading should replace the store tasks": {
			mockRepo: func(m *storagemock.MockTaskListRepository) {
				m.On("LoadTaskList", mock.Anything, "tasks.txt").Once().Return(tasks, nil)
			},
			mockStore: func(m *storagemock.MockTaskStore) {
				m.On("ReplaceTasks", mock.Anything, tasks).Once().Return(nil)
			},
			req:      load.Request{Path: "tasks.txt"},
			expTasks: tasks,
		},
		"repository error should not touch the store": {
			mockRepo: func(m *storagemock.MockTaskListRepository) {
				m.On("LoadTaskList", mock.Anything, "missing.txt").Once().Return(nil, fmt.Errorf("could not open file: %w", fs.ErrNotExist))
			},
			mockStore: func(m *storagemock.MockTaskStore) {},
			req:       load.Request{Path: "missing.txt"},
			expErr:    true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			mStore := &storagemock.MockTaskStore{}
			mRepo := &storagemock.MockTaskListRepository{}
			test.mockStore(mStore)
			test.mockRepo(mRepo)

			svc, err := load.NewService(load.ServiceConfig{Store: mStore, Repository: mRepo})
			require.NoError(err)

			got, err := svc.Run(context.Background(), test.req)

			if test.expErr {
				assert.Error(err)
			} else if assert.NoError(err) {
				assert.Equal(test.expTasks, got)
			}

			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestService_RunFromTextFile(t *testing.T) {
	ctx := context.Background()
	require := require.New(t)

	store, err := memory.NewTaskStore(memory.TaskStoreConfig{})
	require.NoError(err)
	require.NoError(store.AppendTask(ctx, model.NewTask("previous")))

	repo, err := io.NewTaskListTextRepository(io.TaskListTextRepositoryConfig{})
	require.NoError(err)

	svc, err := load.NewService(load.ServiceConfig{Store: store, Repository: repo})
	require.NoError(err)

	// Missing file keeps the store as it was.
	_, err = svc.Run(ctx, load.Request{Path: filepath.Join(t.TempDir(), "missing.txt")})
	require.Error(err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	got, err := store.ListTasks(ctx)
	require.NoError(err)
	assert.Equal(t, []model.Task{{Title: "previous"}}, got)

	// A valid file replaces the store, malformed lines are dropped.
	path := filepath.Join(t.TempDir(), "tasks.txt")
	require.NoError(os.WriteFile(path, []byte("A,true\nBADLINE\nB,false\n"), 0o644))
	_, err = svc.Run(ctx, load.Request{Path: path})
	require.NoError(err)
	got, err = store.ListTasks(ctx)
	require.NoError(err)
	assert.Equal(t, []model.Task{{Title: "A", Completed: true}, {Title: "B"}}, got)
}
