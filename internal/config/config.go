package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/editmark/core/validate"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "editmark.yaml"

var (
	validFormats   = []string{"markdown", "html", "json", "pdf"}
	validEngines   = []string{"editor", "commonmark"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Messages holds the user-facing text for URL rejections
type Messages struct {
	HTTPSRequired   string `yaml:"httpsRequired"`
	InvalidProtocol string `yaml:"invalidProtocol"`
}

// Config represents the editmark configuration
type Config struct {
	Selector  string   `yaml:"selector"`
	Engine    string   `yaml:"engine"`
	Format    string   `yaml:"format"`
	OutputDir string   `yaml:"output_dir"`
	LogLevel  string   `yaml:"log_level"`
	Messages  Messages `yaml:"messages"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	defaults := validate.DefaultMessages()
	return &Config{
		Selector: "",
		Engine:   "editor",
		Format:   "markdown",
		LogLevel: "info",
		Messages: Messages{
			HTTPSRequired:   defaults[validate.ReasonHTTPSRequired],
			InvalidProtocol: defaults[validate.ReasonInvalidProtocol],
		},
	}
}

// Load reads configuration from path. A missing file yields the defaults;
// keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Engine = strings.ToLower(strings.TrimSpace(cfg.Engine))
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.OutputDir != "" {
		if cfg.OutputDir, err = ExpandPath(cfg.OutputDir); err != nil {
			return nil, fmt.Errorf("failed to expand output_dir: %w", err)
		}
	}

	return cfg, nil
}

// Save writes configuration to path
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !contains(validEngines, c.Engine) {
		return fmt.Errorf("invalid engine '%s': must be one of: %s", c.Engine, strings.Join(validEngines, ", "))
	}
	if !contains(validFormats, c.Format) {
		return fmt.Errorf("invalid format '%s': must be one of: %s", c.Format, strings.Join(validFormats, ", "))
	}
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log_level '%s': must be one of: %s", c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	return nil
}

// RejectionMessages converts the configured text into validator messages
func (c *Config) RejectionMessages() validate.Messages {
	return validate.Messages{
		validate.ReasonHTTPSRequired:   c.Messages.HTTPSRequired,
		validate.ReasonInvalidProtocol: c.Messages.InvalidProtocol,
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// ExpandPath expands ~ to the home directory and converts to an absolute path
func ExpandPath(path string) (string, error) {
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}
	return filepath.Abs(path)
}
