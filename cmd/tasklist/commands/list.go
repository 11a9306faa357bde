package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasklist/internal/app/list"
	"github.com/slok/tasklist/internal/app/load"
	"github.com/slok/tasklist/internal/printer"
	"github.com/slok/tasklist/internal/storage/memory"
)

type ListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	file          string
	completedOnly bool
	format        string
}

// NewListCommand returns the list command.
func NewListCommand(rootCmd *RootCommand, app *kingpin.Application) *ListCommand {
	c := &ListCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("list", "List the tasks of a saved task list file.")
	c.Cmd.Flag("file", "Task list file (defaults to the configured default file).").Short('f').StringVar(&c.file)
	c.Cmd.Flag("completed", "Only list completed tasks.").BoolVar(&c.completedOnly)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c ListCommand) Name() string { return c.Cmd.FullCommand() }

func (c ListCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	path := c.file
	if path == "" {
		cfg, err := c.rootCmd.AppConfig(ctx)
		if err != nil {
			return err
		}
		path = cfg.DefaultFile
	}
	if path == "" {
		return fmt.Errorf("a task list file is required, use --file or set default_file in the configuration")
	}

	store, err := memory.NewTaskStore(memory.TaskStoreConfig{Logger: logger})
	if err != nil {
		return fmt.Errorf("could not create task store: %w", err)
	}

	repo, err := newTaskListRepository(logger)
	if err != nil {
		return err
	}

	loadSvc, err := load.NewService(load.ServiceConfig{
		Store:      store,
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	listSvc, err := list.NewService(list.ServiceConfig{
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	if _, err := loadSvc.Run(ctx, load.Request{Path: path}); err != nil {
		return err
	}

	tasks, err := listSvc.Run(ctx, list.Request{CompletedOnly: c.completedOnly})
	if err != nil {
		return err
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if c.completedOnly {
		err = p.PrintCompletedTaskList(tasks)
	} else {
		err = p.PrintTaskList(tasks)
	}
	if err != nil {
		return fmt.Errorf("could not print task list: %w", err)
	}

	return nil
}
