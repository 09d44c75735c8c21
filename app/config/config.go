// Package config loads the catalog of sections, best-seller lists and
// search settings. Defaults are embedded, a user file overrides them.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfig []byte

const appName = "newsly"

// Option is a labeled value of a selector.
type Option struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Search defines timings of the search view.
type Search struct {
	Debounce time.Duration `yaml:"debounce"`
	Cooldown time.Duration `yaml:"cooldown"`
}

// Config is the catalog of the application.
type Config struct {
	HomeSections   []string `yaml:"home_sections"`
	SearchSections []string `yaml:"search_sections"`
	BookLists      []Option `yaml:"book_lists"`
	Topics         []string `yaml:"topics"`
	Keywords       []string `yaml:"keywords"`
	Search         Search   `yaml:"search"`
}

// BookListLabel returns the label of the best-seller list, or the value itself.
func (c Config) BookListLabel(value string) string {
	opt, ok := lo.Find(c.BookLists, func(o Option) bool { return o.Value == value })
	if !ok {
		return value
	}
	return opt.Label
}

// DefaultPath returns the path of the user config file.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// DataPath returns the path of the database file.
func DataPath() string {
	return filepath.Join(xdg.DataHome, appName, appName+".db")
}

// Default returns the embedded config.
func Default() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfig, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse embedded config: %w", err)
	}
	return cfg, nil
}

// Load reads the config at path over the embedded defaults.
// A missing file at the default location is not an error.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && !explicit:
		return cfg, nil
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err = cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Search.Debounce <= 0 {
		return fmt.Errorf("search debounce must be positive, got %s", c.Search.Debounce)
	}

	if c.Search.Cooldown < 0 {
		return fmt.Errorf("search cooldown must not be negative, got %s", c.Search.Cooldown)
	}

	for _, s := range append(append([]string{}, c.HomeSections...), c.SearchSections...) {
		if strings.TrimSpace(s) == "" {
			return errors.New("section name must not be empty")
		}
	}

	for i, l := range c.BookLists {
		if l.Value == "" {
			return fmt.Errorf("book list %d: value is required", i)
		}
	}

	return nil
}
