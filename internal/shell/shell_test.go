package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/tasklist/internal/model"
	"github.com/slok/tasklist/internal/printer"
	"github.com/slok/tasklist/internal/shell"
	storageio "github.com/slok/tasklist/internal/storage/io"
	"github.com/slok/tasklist/internal/storage/memory"
)

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func newTestShell(t *testing.T, input io.Reader, out io.Writer, msgs *printer.Messages, defaultFile string) (*shell.Shell, *memory.TaskStore) {
	t.Helper()

	store, err := memory.NewTaskStore(memory.TaskStoreConfig{})
	require.NoError(t, err)
	repo, err := storageio.NewTaskListTextRepository(storageio.TaskListTextRepositoryConfig{})
	require.NoError(t, err)

	s, err := shell.NewShell(shell.ShellConfig{
		Store:       store,
		Repository:  repo,
		Messages:    msgs,
		DefaultFile: defaultFile,
		Stdin:       input,
		Stdout:      out,
	})
	require.NoError(t, err)

	return s, store
}

func TestShellRun(t *testing.T) {
	tests := map[string]struct {
		input       func(dir string) string
		files       map[string]string
		defaultFile string
		messages    *printer.Messages
		expOut      []string
		expNotOut   []string
		expFiles    map[string]string
		expErr      bool
	}{
		"Exiting right away should say goodbye.": {
			input: func(string) string { return "0\n" },
			expOut: []string{
				"\nMenu:\n1. Add task\n2. Remove task\n3. Mark task as completed\n4. Show all tasks\n5. Show completed tasks\n6. Save tasks to file\n7. Load tasks from file\n0. Exit\nChoose an action: ",
				"Exiting the program.\n",
			},
		},

		"Adding and completing tasks should be shown on the task list.": {
			input: func(string) string { return "1\nBuy milk\n1\nWrite report\n3\n1\n4\n0\n" },
			expOut: []string{
				"Task added: Buy milk\n",
				"Task added: Write report\n",
				"Task marked as completed: Buy milk\n",
				"\nTask list:\n1. [Done] Buy milk\n2. [Not done] Write report\n",
			},
		},

		"Showing completed tasks should only show the completed ones.": {
			input: func(string) string { return "1\nA\n1\nB\n3\n2\n5\n0\n" },
			expOut: []string{
				"\nCompleted tasks:\n[Done] B\n",
			},
			expNotOut: []string{"[Not done] A"},
		},

		"Showing an empty task list should print the empty message and completed header.": {
			input: func(string) string { return "4\n5\n0\n" },
			expOut: []string{
				"Task list is empty.\n",
				"\nCompleted tasks:\n",
			},
		},

		"Removing a task should shift the following ones.": {
			input: func(string) string { return "1\nA\n1\nB\n2\n1\n4\n0\n" },
			expOut: []string{
				"Task removed: A\n",
				"\nTask list:\n1. [Not done] B\n",
			},
		},

		"Removing an out of range task should report an invalid index.": {
			input: func(string) string { return "1\nA\n1\nB\n2\n5\n4\n0\n" },
			expOut: []string{
				"Invalid task index.\n",
				"\nTask list:\n1. [Not done] A\n2. [Not done] B\n",
			},
		},

		"Completing position zero should report an invalid index.": {
			input:  func(string) string { return "1\nA\n3\n0\n0\n" },
			expOut: []string{"Invalid task index.\n"},
		},

		"A non numeric position should report an input error and go back to the menu.": {
			input:  func(string) string { return "1\nA\n2\nfirst\n4\n0\n" },
			expOut: []string{"Input error. Please enter valid data.\n", "1. [Not done] A\n"},
		},

		"A non numeric choice should report an input error.": {
			input:  func(string) string { return "abc\n0\n" },
			expOut: []string{"Input error. Please enter valid data.\n", "Exiting the program.\n"},
		},

		"An unknown choice should be reported.": {
			input:  func(string) string { return "9\n-1\n0\n" },
			expOut: []string{"Invalid choice. Please choose an action from the menu.\n"},
		},

		"Blank lines should be ignored when a number is expected.": {
			input:     func(string) string { return "\n  \n0\n" },
			expOut:    []string{"Exiting the program.\n"},
			expNotOut: []string{"Input error."},
		},

		"Windows line endings should be accepted.": {
			input:  func(string) string { return "1\r\nBuy milk\r\n4\r\n0\r\n" },
			expOut: []string{"1. [Not done] Buy milk\n"},
		},

		"Saving should write the task list file.": {
			input: func(dir string) string {
				return "1\nBuy milk\n1\nWrite report\n3\n1\n6\n" + filepath.Join(dir, "tasks.txt") + "\n0\n"
			},
			expOut:   []string{"Task list saved to file.\n"},
			expFiles: map[string]string{"tasks.txt": "Buy milk,true\nWrite report,false\n"},
		},

		"Saving with an empty file name should use the default file.": {
			input: func(dir string) string {
				return "1\nA\n6\n\n0\n"
			},
			defaultFile: "default.txt",
			expOut:      []string{"Task list saved to file.\n"},
			expFiles:    map[string]string{"default.txt": "A,false\n"},
		},

		"Saving on a missing directory should report a file error.": {
			input: func(dir string) string {
				return "6\n" + filepath.Join(dir, "missing", "tasks.txt") + "\n0\n"
			},
			expOut:    []string{"File error: ", "Exiting the program.\n"},
			expNotOut: []string{"Task list saved to file."},
		},

		"Loading should replace the tasks and skip malformed lines.": {
			input: func(dir string) string {
				return "1\nOld\n7\n" + filepath.Join(dir, "tasks.txt") + "\n4\n0\n"
			},
			files: map[string]string{"tasks.txt": "A,true\nBADLINE\nB,false\n"},
			expOut: []string{
				"Task list loaded from file.\n",
				"\nTask list:\n1. [Done] A\n2. [Not done] B\n",
			},
			expNotOut: []string{"[Not done] Old"},
		},

		"Loading a missing file should report a file error and keep the tasks.": {
			input: func(dir string) string {
				return "1\nA\n7\n" + filepath.Join(dir, "nope.txt") + "\n4\n0\n"
			},
			expOut:    []string{"File error: ", "1. [Not done] A\n"},
			expNotOut: []string{"Task list loaded from file."},
		},

		"Russian messages should be used when configured.": {
			input:    func(string) string { return "1\nКупить молоко\n3\n1\n4\n0\n" },
			messages: &printer.RussianMessages,
			expOut: []string{
				"\nМеню:\n1. Добавить задачу\n",
				"Задача добавлена: Купить молоко\n",
				"\nСписок задач:\n1. [Выполнено] Купить молоко\n",
				"Выход из программы.\n",
			},
		},

		"The end of the input should end with an error.": {
			input:  func(string) string { return "1\nA\n" },
			expOut: []string{"Task added: A\n"},
			expErr: true,
		},

		"The end of the input while asking for a title should end with an error.": {
			input:  func(string) string { return "1\n" },
			expErr: true,
		},

		"A last line without new line should be read.": {
			input:  func(string) string { return "1\nA\n0" },
			expOut: []string{"Task added: A\n", "Exiting the program.\n"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			dir := t.TempDir()
			for f, content := range test.files {
				err := os.WriteFile(filepath.Join(dir, f), []byte(content), 0o644)
				require.NoError(err)
			}

			defaultFile := test.defaultFile
			if defaultFile != "" {
				defaultFile = filepath.Join(dir, defaultFile)
			}

			var out bytes.Buffer
			s, _ := newTestShell(t, strings.NewReader(test.input(dir)), &out, test.messages, defaultFile)

			err := s.Run(context.TODO())
			if test.expErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
			}

			gotOut := out.String()
			for _, exp := range test.expOut {
				assert.Contains(gotOut, exp)
			}
			for _, notExp := range test.expNotOut {
				assert.NotContains(gotOut, notExp)
			}

			for f, expContent := range test.expFiles {
				got, err := os.ReadFile(filepath.Join(dir, f))
				require.NoError(err)
				assert.Equal(expContent, string(got))
			}
		})
	}
}

func TestShellRunClosesInputOnExit(t *testing.T) {
	in := &closeTracker{Reader: strings.NewReader("0\n")}
	s, _ := newTestShell(t, in, io.Discard, nil, "")

	err := s.Run(context.TODO())
	require.NoError(t, err)
	assert.True(t, in.closed)
}

func TestShellRunKeepsStoreState(t *testing.T) {
	s, store := newTestShell(t, strings.NewReader("1\nA\n1\nB\n3\n2\n0\n"), io.Discard, nil, "")

	err := s.Run(context.TODO())
	require.NoError(t, err)

	tasks, err := store.ListTasks(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, []model.Task{
		{Title: "A", Completed: false},
		{Title: "B", Completed: true},
	}, tasks)
}

func TestShellRunCancelledContext(t *testing.T) {
	s, _ := newTestShell(t, strings.NewReader("4\n0\n"), io.Discard, nil, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShellRunCancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	s, _ := newTestShell(t, pr, io.Discard, nil, "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errC := make(chan error, 1)
	go func() { errC <- s.Run(ctx) }()

	// Choose add so the shell blocks waiting for the title.
	_, err := pw.Write([]byte("1\n"))
	require.NoError(t, err)
	cancel()

	select {
	case err := <-errC:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("shell didn't stop after the context was cancelled")
	}
}

// blankLines is an endless input of empty lines that cancels a context after some reads.
type blankLines struct {
	reads  int
	cancel context.CancelFunc
}

func (b *blankLines) Read(p []byte) (int, error) {
	b.reads++
	if b.reads == 3 {
		b.cancel()
	}
	for i := range p {
		p[i] = '\n'
	}
	return len(p), nil
}

func TestShellRunCancelWhileSkippingBlankLines(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, _ := newTestShell(t, &blankLines{cancel: cancel}, io.Discard, nil, "")

	errC := make(chan error, 1)
	go func() { errC <- s.Run(ctx) }()

	select {
	case err := <-errC:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("shell didn't stop after the context was cancelled")
	}
}

func TestParseChoice(t *testing.T) {
	tests := map[string]struct {
		n         int
		expChoice shell.Choice
	}{
		"Zero is exit.":           {n: 0, expChoice: shell.ChoiceExit},
		"One is add.":             {n: 1, expChoice: shell.ChoiceAdd},
		"Five is completed list.": {n: 5, expChoice: shell.ChoiceListCompleted},
		"Seven is load.":          {n: 7, expChoice: shell.ChoiceLoad},
		"Eight is unknown.":       {n: 8, expChoice: shell.ChoiceUnknown},
		"Negatives are unknown.":  {n: -1, expChoice: shell.ChoiceUnknown},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expChoice, shell.ParseChoice(test.n))
		})
	}
}

func TestNewShellInvalidConfig(t *testing.T) {
	_, err := shell.NewShell(shell.ShellConfig{})
	assert.Error(t, err)
}
