package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/tasklist/internal/printer"
	"github.com/slok/tasklist/internal/shell"
	"github.com/slok/tasklist/internal/storage/memory"
)

type ShellCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewShellCommand returns the shell command.
func NewShellCommand(rootCmd *RootCommand, app *kingpin.Application) *ShellCommand {
	c := &ShellCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("shell", "Start the interactive task list menu.").Default()

	return c
}

func (c ShellCommand) Name() string { return c.Cmd.FullCommand() }

func (c ShellCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	cfg, err := c.rootCmd.AppConfig(ctx)
	if err != nil {
		return err
	}

	msgs, err := printer.MessagesFor(cfg.Language)
	if err != nil {
		return fmt.Errorf("could not select messages: %w", err)
	}

	store, err := memory.NewTaskStore(memory.TaskStoreConfig{Logger: logger})
	if err != nil {
		return fmt.Errorf("could not create task store: %w", err)
	}

	repo, err := newTaskListRepository(logger)
	if err != nil {
		return err
	}

	sh, err := shell.NewShell(shell.ShellConfig{
		Store:       store,
		Repository:  repo,
		Messages:    &msgs,
		DefaultFile: cfg.DefaultFile,
		Stdin:       c.rootCmd.Stdin,
		Stdout:      c.rootCmd.Stdout,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("could not create shell: %w", err)
	}

	return sh.Run(ctx)
}
