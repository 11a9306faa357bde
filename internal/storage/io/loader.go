package io

import (
	"context"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/slok/tasklist/internal/model"
)

// AppConfigYAMLRepository loads the application configuration from YAML files.
type AppConfigYAMLRepository struct {
	fs fs.FS
}

// NewAppConfigYAMLRepository creates a new YAML app config repository.
func NewAppConfigYAMLRepository(filesystem fs.FS) *AppConfigYAMLRepository {
	return &AppConfigYAMLRepository{fs: filesystem}
}

// GetAppConfig loads the app configuration from a YAML file and returns a validated domain model.
func (r *AppConfigYAMLRepository) GetAppConfig(ctx context.Context, path string) (model.AppConfig, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return model.AppConfig{}, fmt.Errorf("reading config file: %w", err)
	}

	if ctx.Err() != nil {
		return model.AppConfig{}, ctx.Err()
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.AppConfig{}, fmt.Errorf("parsing YAML: %w", err)
	}

	m := cfg.toModel()
	if err := m.Validate(); err != nil {
		return model.AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return m, nil
}

// AppConfig represents the YAML structure for the app configuration.
type AppConfig struct {
	Language    string `yaml:"language"`
	DefaultFile string `yaml:"default_file"`
}

func (c AppConfig) toModel() model.AppConfig {
	return model.AppConfig{
		Language:    c.Language,
		DefaultFile: c.DefaultFile,
	}
}
