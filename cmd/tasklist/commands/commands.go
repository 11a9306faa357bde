package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/slok/tasklist/internal/conventions"
	"github.com/slok/tasklist/internal/log"
	"github.com/slok/tasklist/internal/model"
	"github.com/slok/tasklist/internal/storage"
	storageio "github.com/slok/tasklist/internal/storage/io"
	"github.com/slok/tasklist/internal/storage/router"
	"github.com/slok/tasklist/internal/storage/sqlite"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	ConfigPath string
	Language   string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger

	defaultConfigPath string
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{
		defaultConfigPath: conventions.ConfigPath(homedir.HomeDir()),
	}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)
	app.Flag("config", "Path to the YAML configuration file.").Default(c.defaultConfigPath).StringVar(&c.ConfigPath)
	app.Flag("lang", "Message language, overrides the configuration file.").EnumVar(&c.Language, model.LanguageEnglish, model.LanguageRussian)

	return c
}

// AppConfig returns the application configuration, flags take precedence over the
// configuration file. A missing file at the default location is not an error.
func (r RootCommand) AppConfig(ctx context.Context) (model.AppConfig, error) {
	if r.ConfigPath == "" {
		return model.AppConfig{Language: r.Language}, nil
	}

	path, err := filepath.Abs(r.ConfigPath)
	if err != nil {
		return model.AppConfig{}, fmt.Errorf("could not resolve config path: %w", err)
	}

	repo := storageio.NewAppConfigYAMLRepository(os.DirFS(filepath.Dir(path)))
	return r.appConfig(ctx, repo, filepath.Base(path))
}

func (r RootCommand) appConfig(ctx context.Context, repo storage.AppConfigRepository, file string) (model.AppConfig, error) {
	fileCfg, err := repo.GetAppConfig(ctx, file)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || r.ConfigPath != r.defaultConfigPath {
			return model.AppConfig{}, fmt.Errorf("could not load config %q: %w", r.ConfigPath, err)
		}
		r.Logger.Debugf("No config file at %s, using defaults", r.ConfigPath)
		fileCfg = model.AppConfig{}
	}

	cfg := model.AppConfig{Language: r.Language}.Merge(fileCfg)
	if err := cfg.Validate(); err != nil {
		return model.AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// newTaskListRepository returns the task list file repository, the format is
// selected by the file extension.
func newTaskListRepository(logger log.Logger) (*router.Repository, error) {
	textRepo, err := storageio.NewTaskListTextRepository(storageio.TaskListTextRepositoryConfig{
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create text repository: %w", err)
	}

	sqliteRepo, err := sqlite.NewTaskListRepository(sqlite.TaskListRepositoryConfig{
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create sqlite repository: %w", err)
	}

	repo, err := router.NewRepository(router.RepositoryConfig{
		Text:   textRepo,
		SQLite: sqliteRepo,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create repository: %w", err)
	}

	return repo, nil
}
