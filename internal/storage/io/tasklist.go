package io

import (
	"bufio"
	"context"
	"fmt"
	goio "io"
	"os"
	"strconv"
	"strings"

	"github.com/slok/tasklist/internal/log"
	"github.com/slok/tasklist/internal/model"
)

const (
	fieldSeparator = ","
	trueToken      = "true"
)

// TaskListTextRepositoryConfig is the configuration for the text task list repository.
type TaskListTextRepositoryConfig struct {
	Logger log.Logger
}

func (c *TaskListTextRepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.TextFile"})
	return nil
}

// TaskListTextRepository stores task lists in plain text files, one `title,completed`
// record per line. Titles are not escaped, a title with a comma will not load back.
type TaskListTextRepository struct {
	logger log.Logger
}

// NewTaskListTextRepository creates a new text task list repository.
func NewTaskListTextRepository(cfg TaskListTextRepositoryConfig) (*TaskListTextRepository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &TaskListTextRepository{logger: cfg.Logger}, nil
}

// SaveTaskList truncates the file at path and writes the tasks on it.
// A failure in the middle can leave a partially written file.
func (r *TaskListTextRepository) SaveTaskList(ctx context.Context, path string, tasks []model.Task) (err error) {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer func() {
		cerr := f.Close()
		if cerr != nil && err == nil {
			err = fmt.Errorf("could not close file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := EncodeTaskList(w, tasks); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("could not write file: %w", err)
	}

	r.logger.Debugf("Saved %d tasks into %s", len(tasks), path)
	return nil
}

// LoadTaskList reads the tasks from the file at path. Malformed lines are skipped.
func (r *TaskListTextRepository) LoadTaskList(ctx context.Context, path string) ([]model.Task, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()

	tasks, skipped, err := DecodeTaskList(f)
	if err != nil {
		return nil, err
	}

	if skipped > 0 {
		r.logger.Debugf("Skipped %d malformed lines from %s", skipped, path)
	}
	r.logger.Debugf("Loaded %d tasks from %s", len(tasks), path)

	return tasks, nil
}

// EncodeTaskList writes one `title,completed` line per task.
func EncodeTaskList(w goio.Writer, tasks []model.Task) error {
	for _, t := range tasks {
		_, err := fmt.Fprintf(w, "%s%s%s\n", t.Title, fieldSeparator, strconv.FormatBool(t.Completed))
		if err != nil {
			return fmt.Errorf("could not write task: %w", err)
		}
	}
	return nil
}

// DecodeTaskList parses task lines, it returns the decoded tasks and the number of
// lines skipped because they did not have exactly two fields.
func DecodeTaskList(r goio.Reader) (tasks []model.Task, skipped int, err error) {
	tasks = []model.Task{}

	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != goio.EOF {
			return nil, skipped, fmt.Errorf("could not read file: %w", readErr)
		}
		if line == "" && readErr == goio.EOF {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		fields := splitRecord(line)
		// Malformed lines are dropped without reporting them to the user.
		if len(fields) != 2 {
			skipped++
		} else {
			tasks = append(tasks, model.Task{
				Title:     fields[0],
				Completed: strings.EqualFold(fields[1], trueToken),
			})
		}

		if readErr == goio.EOF {
			break
		}
	}

	return tasks, skipped, nil
}

// splitRecord splits on every separator ignoring trailing empty fields,
// so `a,true,` is a two field record and `,,` has none.
func splitRecord(line string) []string {
	fields := strings.Split(line, fieldSeparator)
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}
