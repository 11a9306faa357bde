package list_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slok/tasklist/internal/app/list"
	"github.com/slok/tasklist/internal/log"
	"github.com/slok/tasklist/internal/model"
	"github.com/slok/tasklist/internal/storage/storagemock"
)

type listed struct {
	Index int
	Task  model.Task
}

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		config list.ServiceConfig
		expErr bool
	}{
		"valid config should create service": {
			config: list.ServiceConfig{
				Store:  &storagemock.MockTaskStore{},
				Logger: log.Noop,
			},
			expErr: false,
		},
		"missing store should fail": {
			config: list.ServiceConfig{
				Logger: log.Noop,
			},
			expErr: true,
		},
		"nil logger should default to noop": {
			config: list.ServiceConfig{
				Store: &storagemock.MockTaskStore{},
			},
			expErr: false,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			svc, err := list.NewService(test.config)

			if test.expErr {
				require.Error(err)
				require.Nil(svc)
			} else {
				require.NoError(err)
				require.NotNil(svc)
			}
		})
	}
}

func TestService_Run(t *testing.T) {
	tasks := []model.Task{
		{Title: "Buy milk", Completed: true},
		{Title: "Write report"},
		{Title: "Call mom", Completed: true},
	}

	tests := map[string]struct {
		mock      func(m *storagemock.MockTaskStore)
		req       list.Request
		expResult []listed
		expErr    bool
	}{
		"list all tasks without filter": {
			mock: func(m *storagemock.MockTaskStore) {
				m.On("ListTasks", mock.Anything).Once().Return(tasks, nil)
			},
			req: list.Request{},
			expResult: []listed{
				{Index: 0, Task: tasks[0]},
				{Index: 1, Task: tasks[1]},
				{Index: 2, Task: tasks[2]},
			},
		},
		"completed only should keep store order and positions": {
			mock: func(m *storagemock.MockTaskStore) {
				m.On("ListTasks", mock.Anything).Once().Return(tasks, nil)
			},
			req: list.Request{CompletedOnly: true},
			expResult: []listed{
				{Index: 0, Task: tasks[0]},
				{Index: 2, Task: tasks[2]},
			},
		},
		"completed only with no matches returns an empty sequence": {
			mock: func(m *storagemock.MockTaskStore) {
				m.On("ListTasks", mock.Anything).Once().Return([]model.Task{{Title: "a"}}, nil)
			},
			req:       list.Request{CompletedOnly: true},
			expResult: []listed{},
		},
		"empty store returns an empty sequence": {
			mock: func(m *storagemock.MockTaskStore) {
				m.On("ListTasks", mock.Anything).Once().Return([]model.Task{}, nil)
			},
			req:       list.Request{},
			expResult: []listed{},
		},
		"store error should propagate": {
			mock: func(m *storagemock.MockTaskStore) {
				m.On("ListTasks", mock.Anything).Once().Return(nil, fmt.Errorf("something"))
			},
			req:    list.Request{},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			m := &storagemock.MockTaskStore{}
			test.mock(m)

			svc, err := list.NewService(list.ServiceConfig{
				Store:  m,
				Logger: log.Noop,
			})
			require.NoError(err)

			seq, err := svc.Run(context.Background(), test.req)

			if test.expErr {
				assert.Error(err)
			} else if assert.NoError(err) {
				// Iterate twice, the sequence must be restartable.
				for range 2 {
					got := []listed{}
					for i, task := range seq {
						got = append(got, listed{Index: i, Task: task})
					}
					assert.Equal(test.expResult, got)
				}
			}

			m.AssertExpectations(t)
		})
	}
}
