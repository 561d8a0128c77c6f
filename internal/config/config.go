// Package config loads and saves the CLI configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither config file nor flags say otherwise.
const (
	DefaultDelimiter  = ","
	DefaultGroupBy    = "Task"
	DefaultJoinColumn = "Name"
	DefaultTitle      = "Model Zoo"
	DefaultOutPath    = "report.html"
)

// DefaultLinkColumns are the columns rendered as short anchor labels.
var DefaultLinkColumns = []string{"Source", "Compiled", "onnx", "json"}

// Config represents the CLI configuration
type Config struct {
	// Default input CSV path for render/inspect
	CSVPath string `yaml:"csv_path,omitempty"`

	// Default meta table path (empty disables the join)
	MetaPath string `yaml:"meta_path,omitempty"`

	// Default output HTML path
	OutPath string `yaml:"out_path,omitempty"`

	// Field delimiter for CSV inputs (single character)
	Delimiter string `yaml:"delimiter,omitempty"`

	// Column used to partition rows into report sections
	GroupBy string `yaml:"group_by,omitempty"`

	// Column used to match rows against the meta table
	JoinColumn string `yaml:"join_column,omitempty"`

	// Report heading and document title
	Title string `yaml:"title,omitempty"`

	// Columns rendered as anchor labels instead of raw text
	LinkColumns []string `yaml:"link_columns,omitempty"`

	// Columns omitted from the rendered tables
	HideColumns []string `yaml:"hide_columns,omitempty"`

	// Default output format for inspect (text, json, table, yaml)
	Output string `yaml:"output,omitempty"`

	// Default color mode (auto, always, never)
	Color string `yaml:"color,omitempty"`
}

// configPathFunc is the function used to get the default config path.
// It can be overridden for testing.
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing.
// Returns the original function so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

// defaultConfigPath returns ~/.config/csv2html/config.yaml, honoring the
// C2H_CONFIG environment variable when set.
func defaultConfigPath() (string, error) {
	if p := os.Getenv("C2H_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "csv2html", "config.yaml"), nil
}

// DefaultConfigPath returns the effective config file path.
func DefaultConfigPath() (string, error) {
	return configPathFunc()
}

// Load loads config from the default path, returns empty config if not found
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil // Return empty config if file doesn't exist
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return &cfg, nil
}

// Save saves config to the default path
func (c *Config) Save() error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveToPath(path)
}

// SaveToPath saves config to a specific path
func (c *Config) SaveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// GetDelimiter returns the configured delimiter or the default comma.
func (c *Config) GetDelimiter() string {
	if c.Delimiter != "" {
		return c.Delimiter
	}
	return DefaultDelimiter
}

// GetGroupBy returns the configured grouping column or the default.
func (c *Config) GetGroupBy() string {
	if c.GroupBy != "" {
		return c.GroupBy
	}
	return DefaultGroupBy
}

// GetJoinColumn returns the configured join column or the default.
func (c *Config) GetJoinColumn() string {
	if c.JoinColumn != "" {
		return c.JoinColumn
	}
	return DefaultJoinColumn
}

// GetTitle returns the configured report title or the default.
func (c *Config) GetTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return DefaultTitle
}

// GetOutPath returns the configured output path or the default.
func (c *Config) GetOutPath() string {
	if c.OutPath != "" {
		return c.OutPath
	}
	return DefaultOutPath
}

// GetLinkColumns returns the configured link columns or the defaults.
func (c *Config) GetLinkColumns() []string {
	if len(c.LinkColumns) > 0 {
		return c.LinkColumns
	}
	return DefaultLinkColumns
}
