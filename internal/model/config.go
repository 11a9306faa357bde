package model

import "fmt"

const (
	// LanguageEnglish is the default message language.
	LanguageEnglish = "en"
	// LanguageRussian is the russian message language.
	LanguageRussian = "ru"
)

// AppConfig is the user configuration of the application.
type AppConfig struct {
	// Language selects the message catalog.
	Language string
	// DefaultFile is used on save and load when no file name is entered.
	DefaultFile string
}

// Validate validates the app configuration.
func (c *AppConfig) Validate() error {
	switch c.Language {
	case "", LanguageEnglish, LanguageRussian:
	default:
		return fmt.Errorf("unsupported language %q: %w", c.Language, ErrNotValid)
	}

	return nil
}

// Merge returns a copy of the config where every empty field is taken from base.
func (c AppConfig) Merge(base AppConfig) AppConfig {
	if c.Language == "" {
		c.Language = base.Language
	}
	if c.DefaultFile == "" {
		c.DefaultFile = base.DefaultFile
	}
	return c
}
