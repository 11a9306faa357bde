package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/slok/tasklist/internal/app/add"
	"github.com/slok/tasklist/internal/app/complete"
	"github.com/slok/tasklist/internal/app/list"
	"github.com/slok/tasklist/internal/app/load"
	"github.com/slok/tasklist/internal/app/remove"
	"github.com/slok/tasklist/internal/app/save"
	"github.com/slok/tasklist/internal/log"
	"github.com/slok/tasklist/internal/model"
	"github.com/slok/tasklist/internal/printer"
	"github.com/slok/tasklist/internal/storage"
)

// ShellConfig is the configuration for the interactive shell.
type ShellConfig struct {
	Store      storage.TaskStore
	Repository storage.TaskListRepository
	// Messages defaults to the english catalog.
	Messages *printer.Messages
	// DefaultFile is used on save and load when the user enters an empty file name.
	DefaultFile string
	Stdin       io.Reader
	Stdout      io.Writer
	Logger      log.Logger
}

func (c *ShellConfig) defaults() error {
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}

	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Stdin == nil {
		return fmt.Errorf("stdin is required")
	}

	if c.Stdout == nil {
		return fmt.Errorf("stdout is required")
	}

	if c.Messages == nil {
		c.Messages = &printer.EnglishMessages
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "shell.Shell"})

	return nil
}

// Shell is the interactive menu loop. It reads choices and their arguments line by
// line and prints the results, it's not safe for concurrent use.
type Shell struct {
	stdin       *bufio.Reader
	stdinCloser io.Closer
	stdout      io.Writer
	printer     *printer.TextPrinter
	msgs        printer.Messages
	defaultFile string
	logger      log.Logger
	pendingLine chan lineResult

	addSvc      *add.Service
	removeSvc   *remove.Service
	completeSvc *complete.Service
	listSvc     *list.Service
	saveSvc     *save.Service
	loadSvc     *load.Service
}

// NewShell creates a new interactive shell.
func NewShell(cfg ShellConfig) (*Shell, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Shell{
		stdin:       bufio.NewReader(cfg.Stdin),
		stdout:      cfg.Stdout,
		printer:     printer.NewTextPrinter(cfg.Stdout, *cfg.Messages),
		msgs:        *cfg.Messages,
		defaultFile: cfg.DefaultFile,
		logger:      cfg.Logger,
	}
	if c, ok := cfg.Stdin.(io.Closer); ok {
		s.stdinCloser = c
	}

	var err error
	s.addSvc, err = add.NewService(add.ServiceConfig{Store: cfg.Store, Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create add service: %w", err)
	}
	s.removeSvc, err = remove.NewService(remove.ServiceConfig{Store: cfg.Store, Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create remove service: %w", err)
	}
	s.completeSvc, err = complete.NewService(complete.ServiceConfig{Store: cfg.Store, Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create complete service: %w", err)
	}
	s.listSvc, err = list.NewService(list.ServiceConfig{Store: cfg.Store, Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create list service: %w", err)
	}
	s.saveSvc, err = save.NewService(save.ServiceConfig{Store: cfg.Store, Repository: cfg.Repository, Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create save service: %w", err)
	}
	s.loadSvc, err = load.NewService(load.ServiceConfig{Store: cfg.Store, Repository: cfg.Repository, Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create load service: %w", err)
	}

	return s, nil
}

// errNotANumber is returned when a line can't be parsed as an integer.
var errNotANumber = fmt.Errorf("input is not a number: %w", model.ErrNotValid)

// Run runs the menu loop until the exit option is chosen, in that case it returns nil.
// Failing to read the input (including reaching its end) ends the loop with an error.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()

		n, err := s.readInt(ctx)
		if err != nil {
			if errors.Is(err, errNotANumber) {
				s.print(s.msgs.InputError)
				continue
			}
			return err
		}

		choice := ParseChoice(n)
		s.logger.Debugf("menu choice %d", choice)

		exit, err := s.dispatch(ctx, choice)
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, choice Choice) (exit bool, err error) {
	switch choice {
	case ChoiceAdd:
		return false, s.addTask(ctx)
	case ChoiceRemove:
		return false, s.removeTask(ctx)
	case ChoiceComplete:
		return false, s.completeTask(ctx)
	case ChoiceListAll:
		return false, s.listTasks(ctx, false)
	case ChoiceListCompleted:
		return false, s.listTasks(ctx, true)
	case ChoiceSave:
		return false, s.saveTasks(ctx)
	case ChoiceLoad:
		return false, s.loadTasks(ctx)
	case ChoiceExit:
		s.print(s.msgs.Farewell)
		if s.stdinCloser != nil {
			if err := s.stdinCloser.Close(); err != nil {
				s.logger.Warningf("could not close input: %s", err)
			}
		}
		return true, nil
	default:
		s.print(s.msgs.InvalidChoice)
		return false, nil
	}
}

func (s *Shell) addTask(ctx context.Context) error {
	s.prompt(s.msgs.PromptTitle)
	title, err := s.readLine(ctx)
	if err != nil {
		return err
	}

	task, err := s.addSvc.Run(ctx, add.Request{Title: title})
	if err != nil {
		return fmt.Errorf("could not add task: %w", err)
	}

	s.print(fmt.Sprintf(s.msgs.TaskAddedF, task.Title))
	return nil
}

func (s *Shell) removeTask(ctx context.Context) error {
	index, ok, err := s.readPosition(ctx, s.msgs.PromptRemove)
	if err != nil || !ok {
		return err
	}

	task, err := s.removeSvc.Run(ctx, remove.Request{Index: index})
	if err != nil {
		return s.handleIndexErr(err)
	}

	s.print(fmt.Sprintf(s.msgs.TaskRemovedF, task.Title))
	return nil
}

func (s *Shell) completeTask(ctx context.Context) error {
	index, ok, err := s.readPosition(ctx, s.msgs.PromptComplete)
	if err != nil || !ok {
		return err
	}

	task, err := s.completeSvc.Run(ctx, complete.Request{Index: index})
	if err != nil {
		return s.handleIndexErr(err)
	}

	s.print(fmt.Sprintf(s.msgs.TaskCompletedF, task.Title))
	return nil
}

// handleIndexErr reports invalid positions to the user, any other error is returned.
func (s *Shell) handleIndexErr(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		s.print(s.msgs.InvalidIndex)
		return nil
	}
	return err
}

func (s *Shell) listTasks(ctx context.Context, completedOnly bool) error {
	tasks, err := s.listSvc.Run(ctx, list.Request{CompletedOnly: completedOnly})
	if err != nil {
		return fmt.Errorf("could not list tasks: %w", err)
	}

	if completedOnly {
		return s.printer.PrintCompletedTaskList(tasks)
	}
	return s.printer.PrintTaskList(tasks)
}

func (s *Shell) saveTasks(ctx context.Context) error {
	path, err := s.readPath(ctx, s.msgs.PromptSave)
	if err != nil {
		return err
	}

	if err := s.saveSvc.Run(ctx, save.Request{Path: path}); err != nil {
		s.logger.Errorf("could not save tasks: %s", err)
		s.print(fmt.Sprintf(s.msgs.FileErrorF, err))
		return nil
	}

	s.print(s.msgs.Saved)
	return nil
}

func (s *Shell) loadTasks(ctx context.Context) error {
	path, err := s.readPath(ctx, s.msgs.PromptLoad)
	if err != nil {
		return err
	}

	if _, err := s.loadSvc.Run(ctx, load.Request{Path: path}); err != nil {
		s.logger.Errorf("could not load tasks: %s", err)
		s.print(fmt.Sprintf(s.msgs.FileErrorF, err))
		return nil
	}

	s.print(s.msgs.Loaded)
	return nil
}

// readPosition asks for a one based task position and returns it zero based.
// ok is false when the user didn't enter a number, that has already been reported.
func (s *Shell) readPosition(ctx context.Context, prompt string) (index int, ok bool, err error) {
	s.prompt(prompt)
	n, err := s.readInt(ctx)
	if err != nil {
		if errors.Is(err, errNotANumber) {
			s.print(s.msgs.InputError)
			return 0, false, nil
		}
		return 0, false, err
	}

	return n - 1, true, nil
}

func (s *Shell) readPath(ctx context.Context, prompt string) (string, error) {
	s.prompt(prompt)
	path, err := s.readLine(ctx)
	if err != nil {
		return "", err
	}

	if path == "" && s.defaultFile != "" {
		s.logger.Debugf("using default file %s", s.defaultFile)
		return s.defaultFile, nil
	}

	return path, nil
}

// readInt reads the next non blank line as an integer, the line is consumed even
// when it's not a number.
func (s *Shell) readInt(ctx context.Context) (int, error) {
	for {
		line, err := s.readLine(ctx)
		if err != nil {
			return 0, err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			return 0, errNotANumber
		}
		return n, nil
	}
}

// readLine returns the next input line without its line terminator. The read
// runs on its own goroutine so a cancelled context doesn't wait for the input,
// an interrupted read is picked up by the next call.
func (s *Shell) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if s.pendingLine == nil {
		lineC := make(chan lineResult, 1)
		go func() {
			line, err := s.stdin.ReadString('\n')
			lineC <- lineResult{line: line, err: err}
		}()
		s.pendingLine = lineC
	}

	var res lineResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-s.pendingLine:
		s.pendingLine = nil
	}

	line, err := res.line, res.err
	if err != nil {
		// Last line without a new line.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", fmt.Errorf("could not read input: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

type lineResult struct {
	line string
	err  error
}

func (s *Shell) printMenu() {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", s.msgs.MenuTitle)
	for _, c := range menuOrder {
		fmt.Fprintf(&b, "%d. %s\n", c, s.menuText(c))
	}
	fmt.Fprint(&b, s.msgs.PromptChoice)
	s.prompt(b.String())
}

func (s *Shell) menuText(c Choice) string {
	switch c {
	case ChoiceAdd:
		return s.msgs.MenuAdd
	case ChoiceRemove:
		return s.msgs.MenuRemove
	case ChoiceComplete:
		return s.msgs.MenuComplete
	case ChoiceListAll:
		return s.msgs.MenuListAll
	case ChoiceListCompleted:
		return s.msgs.MenuListCompleted
	case ChoiceSave:
		return s.msgs.MenuSave
	case ChoiceLoad:
		return s.msgs.MenuLoad
	case ChoiceExit:
		return s.msgs.MenuExit
	}
	return ""
}

func (s *Shell) prompt(msg string) {
	fmt.Fprint(s.stdout, msg)
}

func (s *Shell) print(msg string) {
	_ = s.printer.PrintMessage(msg)
}
